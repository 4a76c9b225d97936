// Package source 提供候选品牌的供给层：静态列表、存储读取、热度 TopN，
// 以及可并发 fan-out 的多源合并节点。
package source

import (
	"context"

	"github.com/rushteam/matchkit/core"
)

// Source 表示一个可复用的候选供给源（静态/存储/热度/...）。
// 你可以把它理解为"可并发 fan-out 的策略单元"。
type Source interface {
	Name() string
	Candidates(ctx context.Context, mctx *core.MatchContext) ([]*core.Candidate, error)
}

// Static 是内存候选源，常用于测试与演示。
type Static struct {
	// SourceName 为空时使用 "source.static"。
	SourceName string
	Items      []*core.Candidate
}

func (s *Static) Name() string {
	if s.SourceName != "" {
		return s.SourceName
	}
	return "source.static"
}

func (s *Static) Candidates(_ context.Context, _ *core.MatchContext) ([]*core.Candidate, error) {
	return s.Items, nil
}
