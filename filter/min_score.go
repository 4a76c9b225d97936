package filter

import (
	"context"

	"github.com/rushteam/matchkit/core"
)

// DefaultMinScore 是"极差匹配"的截断线：总分 <= 20 的结果不值得展示。
// 这是刻意的产品决策（避免给用户推荐无关品牌），调整前需产品确认。
const DefaultMinScore = 20

// MinScore 剔除总分 <= Threshold 的 Match。
type MinScore struct {
	// Threshold <= 0 时使用 DefaultMinScore。
	Threshold int
}

func (f *MinScore) Name() string { return "filter.min_score" }

func (f *MinScore) Keep(_ context.Context, _ *core.MatchContext, m *core.Match) bool {
	threshold := f.Threshold
	if threshold <= 0 {
		threshold = DefaultMinScore
	}
	return m.Score > threshold
}
