package pipeline

import (
	"context"

	"github.com/rushteam/matchkit/core"
)

// Pipeline 是 matchkit 的核心抽象：把匹配逻辑拆成可组合的 Node 链。
// 典型链路：score -> filter -> sort -> rerank -> annotate。
type Pipeline struct {
	Nodes []Node
}

func (p *Pipeline) Run(
	ctx context.Context,
	mctx *core.MatchContext,
	matches []*core.Match,
) ([]*core.Match, error) {
	cur := matches
	for _, node := range p.Nodes {
		next, err := node.Process(ctx, mctx, cur)
		if err != nil {
			return nil, err
		}
		cur = next
	}
	return cur, nil
}
