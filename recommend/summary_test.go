package recommend

import (
	"reflect"
	"testing"

	"github.com/rushteam/matchkit/core"
	"github.com/rushteam/matchkit/scorer"
)

func TestSummaryOf(t *testing.T) {
	c := core.NewCandidate("brand-1")
	c.Name = "Chai Point Express"
	m := core.NewMatch(c)
	m.Score = 76
	m.Factors = map[string]core.ScoreFactor{
		scorer.FactorBudget:     {Name: scorer.FactorBudget, Score: 100},
		scorer.FactorLocation:   {Name: scorer.FactorLocation, Score: 70},
		scorer.FactorIndustry:   {Name: scorer.FactorIndustry, Score: 80},
		scorer.FactorExperience: {Name: scorer.FactorExperience, Score: 45},
		scorer.FactorTimeline:   {Name: scorer.FactorTimeline, Score: 60},
	}

	summary := SummaryOf(m)
	if summary.BrandID != "brand-1" || summary.BrandName != "Chai Point Express" {
		t.Errorf("brand identity = (%s, %s)", summary.BrandID, summary.BrandName)
	}
	if summary.MatchScore != 76 {
		t.Errorf("MatchScore = %d, want 76", summary.MatchScore)
	}
	if summary.MatchGrade != core.GradeB {
		t.Errorf("MatchGrade = %s, want B", summary.MatchGrade)
	}

	// 强项 >= 70，弱项 < 50，按字典序
	wantStrengths := []string{scorer.FactorBudget, scorer.FactorIndustry, scorer.FactorLocation}
	if !reflect.DeepEqual(summary.Strengths, wantStrengths) {
		t.Errorf("Strengths = %v, want %v", summary.Strengths, wantStrengths)
	}
	wantWeaknesses := []string{scorer.FactorExperience}
	if !reflect.DeepEqual(summary.Weaknesses, wantWeaknesses) {
		t.Errorf("Weaknesses = %v, want %v", summary.Weaknesses, wantWeaknesses)
	}

	// Recommendations 未预填时由摘要自行合成
	if len(summary.Recommendations) == 0 {
		t.Error("Recommendations should be synthesized when absent")
	}
}

func TestSummaryOfPrefersExistingRecommendations(t *testing.T) {
	m := core.NewMatch(core.NewCandidate("brand-1"))
	m.Score = 90
	m.Recommendations = []core.Recommendation{
		{Type: core.RecommendationInfo, Message: "pre-computed"},
	}

	summary := SummaryOf(m)
	if len(summary.Recommendations) != 1 || summary.Recommendations[0].Message != "pre-computed" {
		t.Errorf("Recommendations = %v, want the pre-computed list", summary.Recommendations)
	}
}

func TestSummaryOfNil(t *testing.T) {
	if SummaryOf(nil) != nil {
		t.Error("SummaryOf(nil) should be nil")
	}
}
