// Package recommend 将评分结果合成为纯文本建议与匹配摘要。
// 所有输出只做提示，不回写、不改变任何分数。
package recommend

import (
	"github.com/rushteam/matchkit/core"
	"github.com/rushteam/matchkit/scorer"
)

// Synthesize 按固定规则从总分与子分合成建议列表。
//
// 规则相互独立、可叠加命中，输出顺序与规则声明顺序一致：
//  1. 总分 >= 80 → success
//  2. 60-79     → info
//  3. 40-59     → warning
//  4. 子分规则：budget < 50 → warning；location < 40 → info；experience < 50 → info
func Synthesize(total int, factors map[string]core.ScoreFactor) []core.Recommendation {
	var out []core.Recommendation

	switch {
	case total >= 80:
		out = append(out, core.Recommendation{
			Type:    core.RecommendationSuccess,
			Message: "Excellent match: high-quality opportunity, prioritize it",
		})
	case total >= 60:
		out = append(out, core.Recommendation{
			Type:    core.RecommendationInfo,
			Message: "Good match, consider further review",
		})
	case total >= 40:
		out = append(out, core.Recommendation{
			Type:    core.RecommendationWarning,
			Message: "Moderate match, review carefully and plan nurturing",
		})
	}

	if f, ok := factors[scorer.FactorBudget]; ok && f.Score < 50 {
		out = append(out, core.Recommendation{
			Type:    core.RecommendationWarning,
			Message: "Budget mismatch, expect price sensitivity",
		})
	}
	if f, ok := factors[scorer.FactorLocation]; ok && f.Score < 40 {
		out = append(out, core.Recommendation{
			Type:    core.RecommendationInfo,
			Message: "No nearby presence in the target location",
		})
	}
	if f, ok := factors[scorer.FactorExperience]; ok && f.Score < 50 {
		out = append(out, core.Recommendation{
			Type:    core.RecommendationInfo,
			Message: "Limited experience, additional onboarding support likely needed",
		})
	}

	return out
}

// ForResult 为线索评分结果合成建议。
func ForResult(r *core.ScoreResult) []core.Recommendation {
	if r == nil {
		return nil
	}
	return Synthesize(r.TotalScore, r.Factors)
}

// ForMatch 为品牌匹配结果合成建议。
func ForMatch(m *core.Match) []core.Recommendation {
	if m == nil {
		return nil
	}
	return Synthesize(m.Score, m.Factors)
}
