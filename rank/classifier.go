package rank

import "github.com/rushteam/matchkit/core"

// GradeThresholds 是质量等级的断点配置（含下界）。
// 总分 >= A 给 A，>= B 给 B，>= C 给 C，其余 D。
type GradeThresholds struct {
	A int
	B int
	C int
}

// PriorityThresholds 是跟进优先级的断点配置（含下界）。
//
// 与 GradeThresholds 共用同一组默认断点（80/60/40）是刻意为之：
// 两套档位服务不同的下游语义（给人看的质量标签 vs 驱动调度的路由键），
// 必须各自独立定义，不要用其中一个推导另一个。
type PriorityThresholds struct {
	High   int
	Medium int
	Low    int
}

// DefaultGradeThresholds 是默认的等级断点。
var DefaultGradeThresholds = GradeThresholds{A: 80, B: 60, C: 40}

// DefaultPriorityThresholds 是默认的优先级断点。
var DefaultPriorityThresholds = PriorityThresholds{High: 80, Medium: 60, Low: 40}

// Grade 按断点把总分映射为等级。
func (t GradeThresholds) Grade(total int) core.Grade {
	switch {
	case total >= t.A:
		return core.GradeA
	case total >= t.B:
		return core.GradeB
	case total >= t.C:
		return core.GradeC
	default:
		return core.GradeD
	}
}

// Priority 按断点把总分映射为优先级。
func (t PriorityThresholds) Priority(total int) core.Priority {
	switch {
	case total >= t.High:
		return core.PriorityHigh
	case total >= t.Medium:
		return core.PriorityMedium
	case total >= t.Low:
		return core.PriorityLow
	default:
		return core.PriorityVeryLow
	}
}

// GradeOf 按默认断点把总分映射为等级。
func GradeOf(total int) core.Grade {
	return DefaultGradeThresholds.Grade(total)
}

// PriorityOf 按默认断点把总分映射为优先级。
func PriorityOf(total int) core.Priority {
	return DefaultPriorityThresholds.Priority(total)
}

// followUps 是按优先级固定的跟进建议表。
var followUps = map[core.Priority]core.FollowUp{
	core.PriorityHigh: {
		Timeframe: "Within 2 hours",
		Method:    "Phone call",
		Message:   "High-intent lead, call immediately while interest is fresh",
	},
	core.PriorityMedium: {
		Timeframe: "Within 24 hours",
		Method:    "Phone call or email",
		Message:   "Promising lead, reach out within a day",
	},
	core.PriorityLow: {
		Timeframe: "Within 3 days",
		Method:    "Email",
		Message:   "Needs nurturing, send brand information and follow up later",
	},
	core.PriorityVeryLow: {
		Timeframe: "Within 1 week",
		Method:    "Email newsletter",
		Message:   "Keep on the drip campaign, revisit if engagement improves",
	},
}

// FollowUpFor 返回 ScoreResult 对应优先级的跟进建议。
// 未识别的优先级回退到 Low 档。
func FollowUpFor(result *core.ScoreResult) core.FollowUp {
	if result != nil {
		if fu, ok := followUps[result.Priority]; ok {
			return fu
		}
	}
	return followUps[core.PriorityLow]
}
