package scorer

import (
	"fmt"
	"math"
	"strings"

	"github.com/rushteam/matchkit/core"
	"github.com/rushteam/matchkit/refdata"
)

// DefaultBudgetScore 是预算维度的中性默认分：
// 任一侧预算缺失或不在投资区间表内时使用（匹配与线索评分同值）。
const DefaultBudgetScore = 30

// BudgetDistance 按投资区间的序数距离为"双方匹配"评分。
//
// 策略：档位相同 → 100；相差 1 档 → 80；2 档 → 60；3 档 → 40；>= 4 档 → 20。
// 任一侧缺失/未知 → 30（中性默认）。
type BudgetDistance struct{}

func (BudgetDistance) Name() string { return FactorBudget }

func (BudgetDistance) Score(subject *core.Subject, candidate *core.Candidate) (float64, string) {
	if subject == nil || candidate == nil {
		return DefaultBudgetScore, "budget data unavailable"
	}
	want := strings.TrimSpace(subject.Budget)
	have := strings.TrimSpace(candidate.InvestmentBand)
	if want == "" || have == "" {
		return DefaultBudgetScore, "budget data unavailable"
	}

	dist, ok := refdata.InvestmentBands.Distance(want, have)
	if !ok {
		return DefaultBudgetScore, "unrecognized investment band"
	}

	var score float64
	switch dist {
	case 0:
		score = 100
	case 1:
		score = 80
	case 2:
		score = 60
	case 3:
		score = 40
	default:
		score = 20
	}
	return score, fmt.Sprintf("budget %q vs %q: %d band(s) apart", want, have, dist)
}

// BudgetPosition 按单一预算档位的绝对位置为"线索本身"评分：
// 档位越高分越高，round((index+1)/bandCount*100)。
// 缺失/未知 → 30（中性默认）。
//
// 注意：这与 BudgetDistance 是两个不同的 Scorer：前者比较双方距离，
// 后者归一化单值，输入形态不同，不是同一个函数的两种写法。
type BudgetPosition struct{}

func (BudgetPosition) Name() string { return FactorBudget }

func (BudgetPosition) Score(subject *core.Subject, _ *core.Candidate) (float64, string) {
	if subject == nil {
		return DefaultBudgetScore, "budget not provided"
	}
	band := strings.TrimSpace(subject.Budget)
	if band == "" {
		return DefaultBudgetScore, "budget not provided"
	}

	idx, ok := refdata.InvestmentBands.PositionOf(band)
	if !ok {
		return DefaultBudgetScore, "unrecognized investment band"
	}

	count := refdata.InvestmentBands.Len()
	score := math.Round(float64(idx+1) / float64(count) * 100)
	return score, fmt.Sprintf("budget %q at band %d of %d", band, idx+1, count)
}
