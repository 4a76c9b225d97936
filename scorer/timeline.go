package scorer

import (
	"fmt"
	"strings"

	"github.com/rushteam/matchkit/core"
)

// 两个场景的中性默认分刻意不同：线索评分 30，品牌匹配 50。
// 这是按场景独立调优的结果，未经产品确认不要统一。
const (
	DefaultTimelineLeadScore  = 30
	DefaultTimelineMatchScore = 50
)

// leadTimelineScores 是线索评分场景的时间档位查表（越急分越高）。
var leadTimelineScores = map[string]float64{
	"As soon as possible": 100,
	"Within 3 months":     80,
	"3-6 months":          60,
	"6-12 months":         40,
	"Just exploring":      20,
}

// matchTimelineScores 是品牌匹配场景的时间档位查表。
// 档位分值与线索评分同形，但与之独立维护（默认分不同，后续可独立调）。
var matchTimelineScores = map[string]float64{
	"As soon as possible": 100,
	"Within 3 months":     80,
	"3-6 months":          60,
	"6-12 months":         40,
	"Just exploring":      20,
}

// TimelineUrgency 为"线索本身"的启动时间紧迫度评分。
// 未知档位 → 30。
type TimelineUrgency struct{}

func (TimelineUrgency) Name() string { return FactorTimeline }

func (TimelineUrgency) Score(subject *core.Subject, _ *core.Candidate) (float64, string) {
	if subject == nil {
		return DefaultTimelineLeadScore, "timeline not provided"
	}
	tl := strings.TrimSpace(subject.Timeline)
	if tl == "" {
		return DefaultTimelineLeadScore, "timeline not provided"
	}
	if score, ok := leadTimelineScores[tl]; ok {
		return score, fmt.Sprintf("timeline %q", tl)
	}
	return DefaultTimelineLeadScore, fmt.Sprintf("unrecognized timeline %q", tl)
}

// TimelineMatch 为"品牌匹配"场景的启动时间评分。
// 未知档位 → 50。
type TimelineMatch struct{}

func (TimelineMatch) Name() string { return FactorTimeline }

func (TimelineMatch) Score(subject *core.Subject, _ *core.Candidate) (float64, string) {
	if subject == nil {
		return DefaultTimelineMatchScore, "timeline not provided"
	}
	tl := strings.TrimSpace(subject.Timeline)
	if tl == "" {
		return DefaultTimelineMatchScore, "timeline not provided"
	}
	if score, ok := matchTimelineScores[tl]; ok {
		return score, fmt.Sprintf("timeline %q", tl)
	}
	return DefaultTimelineMatchScore, fmt.Sprintf("unrecognized timeline %q", tl)
}
