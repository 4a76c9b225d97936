package recommend

import (
	"context"
	"testing"

	"github.com/rushteam/matchkit/core"
	"github.com/rushteam/matchkit/scorer"
)

func ruleMatch(score int, budget float64) *core.Match {
	m := core.NewMatch(core.NewCandidate("brand-1"))
	m.Score = score
	m.Factors = map[string]core.ScoreFactor{
		scorer.FactorBudget: {Name: scorer.FactorBudget, Score: budget},
	}
	return m
}

func TestApplyRules(t *testing.T) {
	subject := core.NewSubject("s1")
	subject.Experience = "Industry veteran"

	rules := []Rule{
		{Name: "high_score", Expr: `match.score >= 80`, Type: core.RecommendationSuccess, Message: "top match"},
		{Name: "budget_strong", Expr: `factor.budget >= 90`, Type: core.RecommendationInfo, Message: "budget fits"},
		{Name: "veteran", Expr: `subject.experience == "Industry veteran"`, Message: "fast track"},
		{Name: "broken", Expr: `this is not CEL`, Type: core.RecommendationInfo, Message: "never"},
	}

	got := Apply(rules, ruleMatch(85, 95), subject)
	if len(got) != 3 {
		t.Fatalf("Apply() produced %d recommendations, want 3", len(got))
	}
	if got[0].Message != "top match" || got[0].Type != core.RecommendationSuccess {
		t.Errorf("first hit = %+v", got[0])
	}
	if got[1].Message != "budget fits" {
		t.Errorf("second hit = %+v", got[1])
	}
	// 未指定类型回退为 info
	if got[2].Type != core.RecommendationInfo {
		t.Errorf("default type = %s, want info", got[2].Type)
	}
}

func TestApplyNoRules(t *testing.T) {
	if got := Apply(nil, ruleMatch(85, 95), nil); got != nil {
		t.Errorf("Apply(nil rules) = %v, want nil", got)
	}
	if got := Apply([]Rule{{Expr: "true", Message: "x"}}, nil, nil); got != nil {
		t.Errorf("Apply(nil match) = %v, want nil", got)
	}
}

func TestAnnotateNodeProcess(t *testing.T) {
	m := ruleMatch(85, 95)
	mctx := &core.MatchContext{Subject: core.NewSubject("s1")}

	node := &AnnotateNode{Rules: []Rule{
		{Name: "budget_strong", Expr: `factor.budget >= 90`, Type: core.RecommendationInfo, Message: "budget fits"},
	}}
	out, err := node.Process(context.Background(), mctx, []*core.Match{m})
	if err != nil {
		t.Fatal(err)
	}

	recs := out[0].Recommendations
	if len(recs) < 2 {
		t.Fatalf("annotate produced %d recommendations, want built-in + rule hit", len(recs))
	}
	// 内置建议在前，规则命中在后
	if recs[0].Type != core.RecommendationSuccess {
		t.Errorf("first recommendation type = %s, want success tier", recs[0].Type)
	}
	if recs[len(recs)-1].Message != "budget fits" {
		t.Errorf("last recommendation = %+v, want the rule hit", recs[len(recs)-1])
	}
}
