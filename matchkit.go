package matchkit

import (
	"context"

	"github.com/rushteam/matchkit/core"
	"github.com/rushteam/matchkit/filter"
	"github.com/rushteam/matchkit/pipeline"
	"github.com/rushteam/matchkit/rank"
	"github.com/rushteam/matchkit/recommend"
	"github.com/rushteam/matchkit/rerank"
	"github.com/rushteam/matchkit/scorer"
)

// Ranker 是品牌匹配的默认编排：
// Score → MinScore Filter → Sort → TopN → Annotate。
// 零值可用；各字段用于按需调整默认行为。
type Ranker struct {
	// Weights 为空时使用 rank.BrandMatchWeights()。
	Weights rank.Weights

	// MinScore <= 0 时使用 filter.DefaultMinScore。
	MinScore int

	// TopN <= 0 时不截断。
	TopN int

	// MaxConcurrent > 1 时并发评分。
	MaxConcurrent int

	// Rules 是叠加在内置建议之后的自定义规则，可为空。
	Rules []recommend.Rule

	// Blacklist 是要剔除的品牌 ID 列表，可为空。
	Blacklist []string
}

// Pipeline 装配 Ranker 对应的节点链。
func (r *Ranker) Pipeline() *pipeline.Pipeline {
	filters := []filter.Filter{&filter.MinScore{Threshold: r.MinScore}}
	if len(r.Blacklist) > 0 {
		filters = append(filters, filter.NewBlacklist(r.Blacklist))
	}

	nodes := []pipeline.Node{
		&rank.ScoreNode{Weights: r.Weights, MaxConcurrent: r.MaxConcurrent},
		&filter.Node{Filters: filters},
		&rank.SortNode{},
	}
	if r.TopN > 0 {
		nodes = append(nodes, &rerank.TopN{N: r.TopN})
	}
	nodes = append(nodes, &recommend.AnnotateNode{Rules: r.Rules})

	return &pipeline.Pipeline{Nodes: nodes}
}

// MatchBrands 对候选品牌做匹配评分并返回过滤排序后的结果。
// 输入 candidates 不会被修改，也不保证被全部保留。
func (r *Ranker) MatchBrands(ctx context.Context, subject *core.Subject, candidates []*core.Candidate) ([]*core.Match, error) {
	matches := make([]*core.Match, 0, len(candidates))
	for _, c := range candidates {
		if c == nil {
			continue
		}
		matches = append(matches, core.NewMatch(c))
	}

	mctx := &core.MatchContext{Subject: subject, Scene: "brand_discovery"}
	return r.Pipeline().Run(ctx, mctx, matches)
}

// MatchBrands 使用默认 Ranker 做品牌匹配。
func MatchBrands(ctx context.Context, subject *core.Subject, candidates []*core.Candidate) ([]*core.Match, error) {
	r := &Ranker{}
	return r.MatchBrands(ctx, subject, candidates)
}

// ScoreLead 对单条线索评分：总分、子分明细、等级、优先级。
func ScoreLead(subject *core.Subject) *core.ScoreResult {
	s := &rank.LeadScorer{}
	return s.Score(subject, nil)
}

// FollowUpFor 按评分结果的优先级给出跟进时限与方式。
func FollowUpFor(result *core.ScoreResult) core.FollowUp {
	return rank.FollowUpFor(result)
}

// SummaryOf 生成单个匹配结果的 UI 摘要。
func SummaryOf(m *core.Match) *core.MatchSummary {
	return recommend.SummaryOf(m)
}

// RecommendationsFor 为线索评分结果合成建议文本。
func RecommendationsFor(result *core.ScoreResult) []core.Recommendation {
	return recommend.ForResult(result)
}

// Completeness 暴露默认的资料完整度 Scorer，便于单独复用。
func Completeness() scorer.Completeness {
	return scorer.Completeness{}
}
