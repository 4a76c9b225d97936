package rank

import (
	"context"
	"sort"

	"github.com/rushteam/matchkit/core"
	"github.com/rushteam/matchkit/pipeline"
)

// SortNode 按总分降序对 Match 做稳定排序：
// 同分时保持输入（候选集合）的原始顺序。
type SortNode struct{}

func (n *SortNode) Name() string        { return "rank.sort" }
func (n *SortNode) Kind() pipeline.Kind { return pipeline.KindSort }

func (n *SortNode) Process(
	_ context.Context,
	_ *core.MatchContext,
	matches []*core.Match,
) ([]*core.Match, error) {
	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Score > matches[j].Score
	})
	return matches, nil
}
