package scorer

import (
	"fmt"
	"strings"

	"github.com/rushteam/matchkit/core"
)

// 两个场景的中性默认分刻意不同：品牌匹配 40，线索评分 50。
// 按场景独立调优的结果，未经产品确认不要统一。
const (
	DefaultLocationMatchScore = 40
	DefaultLocationLeadScore  = 50
)

// LocationMatch 按地理接近度为品牌匹配评分。
//
// 策略（取候选所有地点中的最高档）：
//   - 城市精确匹配 → 100
//   - 同州（含子串匹配，兼容 "Maharashtra" / "Maharashtra, India" 之类的脏数据）→ 70
//   - 同国 → 30
//   - 无任何匹配 → 10
//   - 任一侧缺失 → 40（中性默认）
type LocationMatch struct{}

func (LocationMatch) Name() string { return FactorLocation }

func (LocationMatch) Score(subject *core.Subject, candidate *core.Candidate) (float64, string) {
	if subject == nil || candidate == nil || len(candidate.Locations) == 0 {
		return DefaultLocationMatchScore, "location data unavailable"
	}
	city := strings.TrimSpace(subject.City)
	state := strings.TrimSpace(subject.State)
	country := strings.TrimSpace(subject.Country)
	if city == "" && state == "" && country == "" {
		return DefaultLocationMatchScore, "location data unavailable"
	}

	best := 10.0
	detail := "no nearby presence"
	for _, loc := range candidate.Locations {
		switch {
		case city != "" && strings.EqualFold(strings.TrimSpace(loc.City), city):
			return 100, fmt.Sprintf("city match: %s", loc.City)
		case state != "" && sameState(state, loc.State):
			if best < 70 {
				best = 70
				detail = fmt.Sprintf("same state: %s", loc.State)
			}
		case country != "" && strings.EqualFold(strings.TrimSpace(loc.Country), country):
			if best < 30 {
				best = 30
				detail = fmt.Sprintf("same country: %s", loc.Country)
			}
		}
	}
	return best, detail
}

// sameState 做大小写不敏感的州名子串匹配。
func sameState(a, b string) bool {
	a = strings.ToLower(strings.TrimSpace(a))
	b = strings.ToLower(strings.TrimSpace(b))
	if a == "" || b == "" {
		return false
	}
	return strings.Contains(a, b) || strings.Contains(b, a)
}

// LocationLead 为线索评分场景做基于城市同一性的检查：
// 主体城市出现在候选地点列表 → 100，否则 → 30。
// 任一侧缺失 → 50（中性默认）。
type LocationLead struct{}

func (LocationLead) Name() string { return FactorLocation }

func (LocationLead) Score(subject *core.Subject, candidate *core.Candidate) (float64, string) {
	if subject == nil || strings.TrimSpace(subject.City) == "" {
		return DefaultLocationLeadScore, "location data unavailable"
	}
	if candidate == nil || len(candidate.Locations) == 0 {
		return DefaultLocationLeadScore, "location data unavailable"
	}

	city := strings.TrimSpace(subject.City)
	for _, loc := range candidate.Locations {
		if strings.EqualFold(strings.TrimSpace(loc.City), city) {
			return 100, fmt.Sprintf("city match: %s", loc.City)
		}
	}
	return 30, fmt.Sprintf("city %q not in candidate locations", city)
}
