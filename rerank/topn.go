// Package rerank 提供排序结果上的调优节点。
package rerank

import (
	"context"

	"github.com/rushteam/matchkit/core"
	"github.com/rushteam/matchkit/pipeline"
)

// TopN 是截断节点，用于在排序后截取前 N 个匹配结果。
// 通常在 rank.SortNode 之后使用，控制品牌发现页的展示数量。
type TopN struct {
	// N 要保留的数量。
	// 如果 N <= 0 或 N >= len(matches)，则不截断。
	N int
}

func (n *TopN) Name() string        { return "rerank.topn" }
func (n *TopN) Kind() pipeline.Kind { return pipeline.KindReRank }

func (n *TopN) Process(
	_ context.Context,
	_ *core.MatchContext,
	matches []*core.Match,
) ([]*core.Match, error) {
	if n.N <= 0 || len(matches) <= n.N {
		return matches, nil
	}
	return matches[:n.N], nil
}
