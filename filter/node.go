package filter

import (
	"context"

	"github.com/rushteam/matchkit/core"
	"github.com/rushteam/matchkit/pipeline"
	"github.com/rushteam/matchkit/pkg/utils"
)

// Node 是过滤节点：依次应用多个 Filter，保留全部通过的 Match。
// 被剔除的 Match 不再流向下游；保留者的相对顺序不变。
type Node struct {
	Filters []Filter
}

func (n *Node) Name() string        { return "filter" }
func (n *Node) Kind() pipeline.Kind { return pipeline.KindFilter }

func (n *Node) Process(
	ctx context.Context,
	mctx *core.MatchContext,
	matches []*core.Match,
) ([]*core.Match, error) {
	if len(n.Filters) == 0 {
		return matches, nil
	}

	out := make([]*core.Match, 0, len(matches))
	for _, m := range matches {
		if m == nil {
			continue
		}
		keep := true
		for _, f := range n.Filters {
			if !f.Keep(ctx, mctx, m) {
				keep = false
				m.PutLabel("filtered_by", utils.Label{Value: f.Name(), Source: "filter"})
				break
			}
		}
		if keep {
			out = append(out, m)
		}
	}
	return out, nil
}
