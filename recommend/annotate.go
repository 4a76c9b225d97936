package recommend

import (
	"context"

	"github.com/rushteam/matchkit/core"
	"github.com/rushteam/matchkit/pipeline"
)

// AnnotateNode 在流水线末端为每个 Match 填充建议列表：
// 先按内置规则合成，再叠加运营配置的 Rules 命中项。
// 只追加 Recommendations 与标签，不改动分数与排序。
type AnnotateNode struct {
	// Rules 追加在内置建议之后的可配置规则，可为空。
	Rules []Rule
}

func (n *AnnotateNode) Name() string        { return "recommend.annotate" }
func (n *AnnotateNode) Kind() pipeline.Kind { return pipeline.KindAnnotate }

func (n *AnnotateNode) Process(
	_ context.Context,
	mctx *core.MatchContext,
	matches []*core.Match,
) ([]*core.Match, error) {
	var subject *core.Subject
	if mctx != nil {
		subject = mctx.Subject
	}
	for _, m := range matches {
		if m == nil {
			continue
		}
		m.Recommendations = ForMatch(m)
		if extra := Apply(n.Rules, m, subject); len(extra) > 0 {
			m.Recommendations = append(m.Recommendations, extra...)
		}
	}
	return matches, nil
}
