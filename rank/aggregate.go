package rank

import (
	"math"

	"github.com/rushteam/matchkit/core"
)

// Aggregate 将各维度子分按权重表聚合为总分：
// round(Σ(子分ᵢ × 权重ᵢ))，并收敛到闭区间 [0, 100]。
//
// factors 中没有对应权重的维度不参与聚合；权重表中缺失的维度按 0 贡献。
func Aggregate(factors map[string]core.ScoreFactor, w Weights) int {
	total := 0.0
	for name, weight := range w.Values {
		if f, ok := factors[name]; ok {
			total += f.Score * weight
		}
	}
	return clampScore(total)
}

// clampScore 四舍五入并收敛到 [0, 100]。
func clampScore(value float64) int {
	rounded := int(math.Round(value))
	if rounded < 0 {
		return 0
	}
	if rounded > 100 {
		return 100
	}
	return rounded
}
