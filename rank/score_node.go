package rank

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/rushteam/matchkit/core"
	"github.com/rushteam/matchkit/pipeline"
	"github.com/rushteam/matchkit/pkg/utils"
	"github.com/rushteam/matchkit/scorer"
)

// brandMatchScorers 是品牌匹配场景的固定 Scorer 清单，
// 与 BrandMatchWeights 的 factor 名称一一对应。
func brandMatchScorers() []scorer.FactorScorer {
	return []scorer.FactorScorer{
		scorer.BudgetDistance{},
		scorer.LocationMatch{},
		scorer.IndustryOverlap{},
		scorer.ExperienceMatch{},
		scorer.TimelineMatch{},
	}
}

// scoreBrandMatch 为单个候选计算品牌匹配的全部子分与总分。
func scoreBrandMatch(subject *core.Subject, candidate *core.Candidate, weights Weights) (int, map[string]core.ScoreFactor) {
	factors := make(map[string]core.ScoreFactor, len(weights.Values))
	for _, fs := range brandMatchScorers() {
		score, detail := fs.Score(subject, candidate)
		factors[fs.Name()] = core.ScoreFactor{
			Name:   fs.Name(),
			Score:  score,
			Weight: weights.Values[fs.Name()],
			Detail: detail,
		}
	}
	return Aggregate(factors, weights), factors
}

// ScoreNode 是评分节点：对流经的每个 Match 计算品牌匹配子分与总分。
// 候选本身不被修改；结果写入 Match。
type ScoreNode struct {
	// Weights 为空时使用 BrandMatchWeights()。
	Weights Weights

	// MaxConcurrent > 1 时并发评分（按下标写回，保持输入顺序）。
	// 评分是纯计算，通常几百个候选以内串行即可。
	MaxConcurrent int
}

func (n *ScoreNode) Name() string        { return "rank.score" }
func (n *ScoreNode) Kind() pipeline.Kind { return pipeline.KindScore }

func (n *ScoreNode) Process(
	ctx context.Context,
	mctx *core.MatchContext,
	matches []*core.Match,
) ([]*core.Match, error) {
	if len(matches) == 0 {
		return matches, nil
	}

	weights := n.Weights
	if len(weights.Values) == 0 {
		weights = BrandMatchWeights()
	}

	var subject *core.Subject
	if mctx != nil {
		subject = mctx.Subject
	}

	score := func(m *core.Match) {
		if m == nil {
			return
		}
		total, factors := scoreBrandMatch(subject, m.Candidate, weights)
		m.Score = total
		m.Factors = factors
		m.PutLabel("rank_weights", utils.Label{Value: weights.Name, Source: "rank"})
	}

	if n.MaxConcurrent <= 1 {
		for _, m := range matches {
			score(m)
		}
		return matches, nil
	}

	eg, _ := errgroup.WithContext(ctx)
	eg.SetLimit(n.MaxConcurrent)
	for _, m := range matches {
		m := m
		eg.Go(func() error {
			score(m)
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return matches, nil
}
