package scorer

import (
	"fmt"
	"strings"

	"github.com/rushteam/matchkit/core"
	"github.com/rushteam/matchkit/refdata"
)

// DefaultExperienceScore 是经验维度的中性默认分（两个场景同值）。
const DefaultExperienceScore = 50

// leadExperienceScores 是线索评分场景的经验水平查表（越资深分越高）。
var leadExperienceScores = map[string]float64{
	"No business experience":   40,
	"Some business experience": 65,
	"Experienced entrepreneur": 85,
	"Industry veteran":         100,
}

// matchExperienceScores 是品牌匹配场景的二维查表：
// 主体经验水平 × 候选方经验要求 → 分值。
// 未覆盖的组合 → 50。
var matchExperienceScores = map[string]map[string]float64{
	"No business experience": {
		refdata.ExperienceNone:      85,
		refdata.ExperiencePreferred: 60,
		refdata.ExperienceRequired:  30,
	},
	"Some business experience": {
		refdata.ExperienceNone:      90,
		refdata.ExperiencePreferred: 80,
		refdata.ExperienceRequired:  60,
	},
	"Experienced entrepreneur": {
		refdata.ExperienceNone:      95,
		refdata.ExperiencePreferred: 95,
		refdata.ExperienceRequired:  90,
	},
	"Industry veteran": {
		refdata.ExperienceNone:      100,
		refdata.ExperiencePreferred: 100,
		refdata.ExperienceRequired:  100,
	},
}

// ExperienceLevel 为"线索本身"的自述经验水平评分。
// 未知档位 → 50。
type ExperienceLevel struct{}

func (ExperienceLevel) Name() string { return FactorExperience }

func (ExperienceLevel) Score(subject *core.Subject, _ *core.Candidate) (float64, string) {
	if subject == nil {
		return DefaultExperienceScore, "experience not provided"
	}
	level := strings.TrimSpace(subject.Experience)
	if level == "" {
		return DefaultExperienceScore, "experience not provided"
	}
	if score, ok := leadExperienceScores[level]; ok {
		return score, fmt.Sprintf("experience %q", level)
	}
	return DefaultExperienceScore, fmt.Sprintf("unrecognized experience %q", level)
}

// ExperienceMatch 按"主体经验 × 候选要求"二维表为品牌匹配评分。
// 未覆盖的组合（含任一侧缺失/未知）→ 50。
type ExperienceMatch struct{}

func (ExperienceMatch) Name() string { return FactorExperience }

func (ExperienceMatch) Score(subject *core.Subject, candidate *core.Candidate) (float64, string) {
	if subject == nil || candidate == nil {
		return DefaultExperienceScore, "experience data unavailable"
	}
	level := strings.TrimSpace(subject.Experience)
	requirement := strings.TrimSpace(candidate.RequiredExperience)

	if row, ok := matchExperienceScores[level]; ok {
		if score, ok := row[requirement]; ok {
			return score, fmt.Sprintf("experience %q vs requirement %q", level, requirement)
		}
	}
	return DefaultExperienceScore, "experience combination not mapped"
}
