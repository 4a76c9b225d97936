package refdata

import "strings"

// InvestmentBands 是投资区间的有序类目域（从小到大）。
// "₹100K - ₹250K" 位于 index 2，"₹250K - ₹500K" 位于 index 3。
var InvestmentBands = NewDomain("investment_bands",
	"Under ₹50K",
	"₹50K - ₹100K",
	"₹100K - ₹250K",
	"₹250K - ₹500K",
	"₹500K - ₹1M",
	"Above ₹1M",
)

// Timelines 是启动时间档位的有序类目域（从最急到最缓）。
var Timelines = NewDomain("timelines",
	"As soon as possible",
	"Within 3 months",
	"3-6 months",
	"6-12 months",
	"Just exploring",
)

// ExperienceLevels 是主体自述经验水平的有序类目域（从浅到深）。
var ExperienceLevels = NewDomain("experience_levels",
	"No business experience",
	"Some business experience",
	"Experienced entrepreneur",
	"Industry veteran",
)

// 候选方对加盟者经验的要求档位。
const (
	ExperienceNone      = "None"      // 无要求
	ExperiencePreferred = "Preferred" // 有经验者优先
	ExperienceRequired  = "Required"  // 必须有经验
)

// ExperienceRequirements 是候选方经验要求的有序类目域。
var ExperienceRequirements = NewDomain("experience_requirements",
	ExperienceNone,
	ExperiencePreferred,
	ExperienceRequired,
)

// relatedIndustries 是行业邻接表：key 行业与 value 列表中的行业视为相关。
// 全部小写存储，查表前先归一化。
var relatedIndustries = map[string][]string{
	"food & beverage": {"hospitality", "quick service restaurant", "cafe & bakery"},
	"hospitality":     {"food & beverage", "travel & tourism", "wellness & spa"},
	"education":       {"training & coaching", "edtech", "childcare"},
	"retail":          {"fashion & apparel", "e-commerce", "convenience store"},
	"health & fitness": {"wellness & spa", "healthcare", "sports & recreation"},
	"healthcare":       {"health & fitness", "pharmacy", "wellness & spa"},
	"automotive":       {"logistics & transport", "car care & detailing"},
	"beauty & salon":   {"wellness & spa", "fashion & apparel"},
	"cleaning services": {"home services", "facility management"},
	"home services":     {"cleaning services", "repair & maintenance"},
}

// RelatedIndustries 返回与 industry 相关的行业列表（大小写不敏感）。
// 无相关行业时返回 nil；返回值为副本，可安全修改。
func RelatedIndustries(industry string) []string {
	related, ok := relatedIndustries[strings.ToLower(strings.TrimSpace(industry))]
	if !ok {
		return nil
	}
	out := make([]string, len(related))
	copy(out, related)
	return out
}

// IndustriesRelated 判断两个行业是否在邻接表中相关（双向、大小写不敏感）。
func IndustriesRelated(a, b string) bool {
	na := strings.ToLower(strings.TrimSpace(a))
	nb := strings.ToLower(strings.TrimSpace(b))
	if na == "" || nb == "" {
		return false
	}
	for _, r := range relatedIndustries[na] {
		if r == nb {
			return true
		}
	}
	for _, r := range relatedIndustries[nb] {
		if r == na {
			return true
		}
	}
	return false
}

// DefaultRequiredProfileFields 是完整度评分默认的必填字段（7 个）。
var DefaultRequiredProfileFields = []string{
	"name", "phone", "email", "budget", "timeline", "location", "experience",
}

// DefaultOptionalProfileFields 是完整度评分默认的选填字段（3 个）。
var DefaultOptionalProfileFields = []string{
	"interests", "notes", "company",
}
