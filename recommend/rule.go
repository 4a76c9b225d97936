package recommend

import (
	"github.com/rushteam/matchkit/core"
	"github.com/rushteam/matchkit/pkg/dsl"
)

// Rule 是运营侧可配置的建议规则：表达式命中即追加一条建议。
// 表达式语法见 pkg/dsl，可引用 match.score、factor.<name>、subject.* 等变量。
//
// 例如:
//
//	expr: "factor.budget >= 80 && factor.location >= 70"
//	type: success
//	message: "本地高预算客户，建议安排线下见面"
type Rule struct {
	Name    string                  `yaml:"name" json:"name"`
	Expr    string                  `yaml:"expr" json:"expr"`
	Type    core.RecommendationType `yaml:"type" json:"type"`
	Message string                  `yaml:"message" json:"message"`
}

// Apply 对单个 Match 依次求值全部规则，返回命中规则对应的建议。
// 单条规则求值失败按未命中处理，不中断其余规则。
func Apply(rules []Rule, m *core.Match, subject *core.Subject) []core.Recommendation {
	if len(rules) == 0 || m == nil {
		return nil
	}
	eval := dsl.NewEval(m, subject)
	var out []core.Recommendation
	for _, r := range rules {
		ok, err := eval.Evaluate(r.Expr)
		if err != nil || !ok {
			continue
		}
		typ := r.Type
		if typ == "" {
			typ = core.RecommendationInfo
		}
		out = append(out, core.Recommendation{Type: typ, Message: r.Message})
	}
	return out
}
