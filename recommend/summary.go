package recommend

import (
	"sort"

	"github.com/rushteam/matchkit/core"
	"github.com/rushteam/matchkit/rank"
)

// 摘要的强弱项判定线：子分 >= 70 算强项，< 50 算弱项。
const (
	strengthThreshold = 70
	weaknessThreshold = 50
)

// SummaryOf 将一个 Match 浓缩为品牌发现 UI 的摘要：
// 总分、等级、强项/弱项维度名与建议列表。
// 维度名按字典序输出，保证同一输入的摘要字节级稳定。
func SummaryOf(m *core.Match) *core.MatchSummary {
	if m == nil {
		return nil
	}

	var strengths, weaknesses []string
	names := make([]string, 0, len(m.Factors))
	for name := range m.Factors {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		f := m.Factors[name]
		switch {
		case f.Score >= strengthThreshold:
			strengths = append(strengths, name)
		case f.Score < weaknessThreshold:
			weaknesses = append(weaknesses, name)
		}
	}

	recommendations := m.Recommendations
	if recommendations == nil {
		recommendations = ForMatch(m)
	}

	summary := &core.MatchSummary{
		MatchScore:      m.Score,
		MatchGrade:      rank.GradeOf(m.Score),
		Strengths:       strengths,
		Weaknesses:      weaknesses,
		Recommendations: recommendations,
	}
	if m.Candidate != nil {
		summary.BrandID = m.Candidate.ID
		summary.BrandName = m.Candidate.Name
	}
	return summary
}
