package core

// Grade 是总分映射出的粗粒度质量等级（面向人的展示标签）。
type Grade string

const (
	GradeA Grade = "A" // 总分 >= 80
	GradeB Grade = "B" // 总分 >= 60
	GradeC Grade = "C" // 总分 >= 40
	GradeD Grade = "D" // 其余
)

// Priority 是总分映射出的跟进优先级（面向运营的路由键）。
//
// 注意：Grade 与 Priority 共用同一组阈值（80/60/40），但语义不同：
// Grade 给人看，Priority 驱动跟进调度。两者独立定义，不要互相推导。
type Priority string

const (
	PriorityHigh    Priority = "High"
	PriorityMedium  Priority = "Medium"
	PriorityLow     Priority = "Low"
	PriorityVeryLow Priority = "Very Low"
)

// ScoreFactor 是单个评分维度的结果：子分、权重与解释文本。
// 同一次聚合中所有 factor 的 Weight 之和应为 1.0（允许浮点误差）。
type ScoreFactor struct {
	Name   string  `json:"name"`
	Score  float64 `json:"score"`  // 子分，0-100
	Weight float64 `json:"weight"` // 权重，0-1
	Detail string  `json:"detail"` // 解释，用于 explain / 运营审查
}

// ScoreResult 是一次线索评分的完整输出。
// 计算完成后不可变：新的输入产生新的 ScoreResult，而不是就地修改。
type ScoreResult struct {
	TotalScore int                    `json:"total_score"` // 0-100 整数
	Factors    map[string]ScoreFactor `json:"factors"`
	Grade      Grade                  `json:"grade"`
	Priority   Priority               `json:"priority"`
}

// FollowUp 是按优先级推导出的跟进建议（仅用于线索评分场景）。
type FollowUp struct {
	Timeframe string `json:"timeframe"` // 例如 "Within 2 hours"
	Method    string `json:"method"`    // 例如 "Phone call"
	Message   string `json:"message"`
}

// RecommendationType 是建议条目的类型标记，驱动 UI 展示样式。
type RecommendationType string

const (
	RecommendationSuccess RecommendationType = "success"
	RecommendationInfo    RecommendationType = "info"
	RecommendationWarning RecommendationType = "warning"
)

// Recommendation 是一条纯文本建议；只做提示，不改变任何分数。
type Recommendation struct {
	Type    RecommendationType `json:"type"`
	Message string             `json:"message"`
}

// MatchSummary 是面向品牌发现 UI 的匹配摘要。
// Strengths 为子分 >= 70 的维度，Weaknesses 为子分 < 50 的维度。
type MatchSummary struct {
	BrandID         string           `json:"brand_id"`
	BrandName       string           `json:"brand_name"`
	MatchScore      int              `json:"match_score"`
	MatchGrade      Grade            `json:"match_grade"`
	Strengths       []string         `json:"strengths"`
	Weaknesses      []string         `json:"weaknesses"`
	Recommendations []Recommendation `json:"recommendations"`
}
