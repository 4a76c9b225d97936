package filter

import (
	"context"

	"github.com/rushteam/matchkit/core"
)

// Blacklist 剔除指定品牌 ID 的候选（例如已下架/违规品牌）。
type Blacklist struct {
	ids map[string]struct{}
}

// NewBlacklist 基于品牌 ID 列表构建黑名单过滤器。
func NewBlacklist(ids []string) *Blacklist {
	set := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}
	return &Blacklist{ids: set}
}

func (f *Blacklist) Name() string { return "filter.blacklist" }

func (f *Blacklist) Keep(_ context.Context, _ *core.MatchContext, m *core.Match) bool {
	if m.Candidate == nil {
		return false
	}
	_, blocked := f.ids[m.Candidate.ID]
	return !blocked
}
