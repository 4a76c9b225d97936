package rank

import (
	"github.com/rushteam/matchkit/core"
	"github.com/rushteam/matchkit/scorer"
)

// LeadScorer 计算单条线索的评分（面向后台线索分流视图）。
//
// 维度：预算档位（单值归一化）、启动时间紧迫度、自述经验、
// 城市同一性（相对可选的目标品牌）、画像完整度。
// 无状态：每次 Score 产出全新的 ScoreResult，可并发调用。
type LeadScorer struct {
	// Weights 为空时使用 LeadScoringWeights()。
	Weights Weights

	// Completeness 可自定义必填/选填字段集；零值用默认字段集。
	Completeness scorer.Completeness

	// Grades / Priorities 可覆盖分类断点；零值用默认断点。
	Grades     *GradeThresholds
	Priorities *PriorityThresholds
}

// leadFactorScorers 是线索评分场景的固定 Scorer 清单。
// candidate 仅被 location 维度使用（为 nil 时该维度走中性默认分）。
func (s LeadScorer) factorScorers() []scorer.FactorScorer {
	return []scorer.FactorScorer{
		scorer.BudgetPosition{},
		scorer.TimelineUrgency{},
		scorer.ExperienceLevel{},
		scorer.LocationLead{},
		s.Completeness,
	}
}

// Score 对一条线索评分。candidate 可以为 nil（无目标品牌时）。
func (s LeadScorer) Score(subject *core.Subject, candidate *core.Candidate) *core.ScoreResult {
	weights := s.Weights
	if len(weights.Values) == 0 {
		weights = LeadScoringWeights()
	}

	factors := make(map[string]core.ScoreFactor, len(weights.Values))
	for _, fs := range s.factorScorers() {
		score, detail := fs.Score(subject, candidate)
		factors[fs.Name()] = core.ScoreFactor{
			Name:   fs.Name(),
			Score:  score,
			Weight: weights.Values[fs.Name()],
			Detail: detail,
		}
	}

	total := Aggregate(factors, weights)

	grades := DefaultGradeThresholds
	if s.Grades != nil {
		grades = *s.Grades
	}
	priorities := DefaultPriorityThresholds
	if s.Priorities != nil {
		priorities = *s.Priorities
	}

	return &core.ScoreResult{
		TotalScore: total,
		Factors:    factors,
		Grade:      grades.Grade(total),
		Priority:   priorities.Priority(total),
	}
}
