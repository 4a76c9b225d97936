// Package scorer 提供各评分维度的纯函数 Scorer。
//
// 设计要点：
//   - 每个 Scorer 都是全函数：输入缺失/未知类目走中性默认分，永不报错
//   - 同一维度在"线索评分"与"品牌匹配"两个场景下是两个独立的 Scorer，
//     默认分与查表策略各自独立调优，不要合并
//   - Scorer 无状态，可并发调用
package scorer

import "github.com/rushteam/matchkit/core"

// 统一的 factor 名称，贯穿评分、聚合、建议合成与摘要。
const (
	FactorBudget       = "budget"
	FactorTimeline     = "timeline"
	FactorExperience   = "experience"
	FactorLocation     = "location"
	FactorIndustry     = "industry"
	FactorCompleteness = "completeness"
)

// FactorScorer 计算单个维度的子分（0-100）与解释文本。
// candidate 在部分线索评分维度中可以为 nil。
type FactorScorer interface {
	Name() string
	Score(subject *core.Subject, candidate *core.Candidate) (float64, string)
}
