package scorer

import (
	"fmt"
	"strings"

	"github.com/rushteam/matchkit/core"
	"github.com/rushteam/matchkit/refdata"
)

// IndustryOverlap 计算主体兴趣与候选行业的重合度。
//
// 策略：
//   - 直接匹配（大小写不敏感子串）：min(100, 60 + 20*命中数)
//   - 无直接匹配时查行业邻接表：40 基础分 + 每个相关命中 +10（封顶 100）
//   - 既无直接匹配也无相关行业 → 20
//   - 任一侧为空 → 50（中性默认）
type IndustryOverlap struct{}

// DefaultIndustryScore 是行业维度的中性默认分。
const DefaultIndustryScore = 50

func (IndustryOverlap) Name() string { return FactorIndustry }

func (IndustryOverlap) Score(subject *core.Subject, candidate *core.Candidate) (float64, string) {
	if subject == nil || candidate == nil ||
		len(subject.Interests) == 0 || len(candidate.Industries) == 0 {
		return DefaultIndustryScore, "industry data unavailable"
	}

	// 直接匹配：兴趣与行业互为子串即算命中
	direct := 0
	for _, interest := range subject.Interests {
		if matchesAnyIndustry(interest, candidate.Industries) {
			direct++
		}
	}
	if direct > 0 {
		score := 60 + 20*float64(direct)
		if score > 100 {
			score = 100
		}
		return score, fmt.Sprintf("%d direct industry match(es)", direct)
	}

	// 邻接表：相关行业命中
	related := 0
	for _, interest := range subject.Interests {
		for _, industry := range candidate.Industries {
			if refdata.IndustriesRelated(interest, industry) {
				related++
			}
		}
	}
	if related > 0 {
		score := 40 + 10*float64(related)
		if score > 100 {
			score = 100
		}
		return score, fmt.Sprintf("%d related industry hit(s)", related)
	}

	return 20, "no industry overlap"
}

// matchesAnyIndustry 做大小写不敏感的双向子串匹配。
func matchesAnyIndustry(interest string, industries []string) bool {
	ni := strings.ToLower(strings.TrimSpace(interest))
	if ni == "" {
		return false
	}
	for _, industry := range industries {
		nd := strings.ToLower(strings.TrimSpace(industry))
		if nd == "" {
			continue
		}
		if strings.Contains(nd, ni) || strings.Contains(ni, nd) {
			return true
		}
	}
	return false
}
