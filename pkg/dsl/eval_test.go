package dsl

import (
	"testing"

	"github.com/rushteam/matchkit/core"
)

func evalMatch() *core.Match {
	m := core.NewMatch(core.NewCandidate("brand-1"))
	m.Score = 72
	m.Factors = map[string]core.ScoreFactor{
		"budget":   {Name: "budget", Score: 45, Weight: 0.3},
		"location": {Name: "location", Score: 100, Weight: 0.25},
	}
	return m
}

func evalSubject() *core.Subject {
	s := core.NewSubject("s1")
	s.Budget = "₹100K - ₹250K"
	s.City = "Pune"
	s.Experience = "Industry veteran"
	return s
}

func TestEvaluate(t *testing.T) {
	eval := NewEval(evalMatch(), evalSubject())

	tests := []struct {
		name    string
		expr    string
		want    bool
		wantErr bool
	}{
		{name: "empty expr is true", expr: "", want: true},
		{name: "total score compare", expr: "match.score >= 70", want: true},
		{name: "total score compare false", expr: "match.score >= 80", want: false},
		{name: "factor accessor", expr: "factor.budget < 50", want: true},
		{name: "factor combination", expr: "factor.budget < 50 && factor.location >= 70", want: true},
		{name: "subject field", expr: `subject.city == "Pune"`, want: true},
		{name: "subject and match combined", expr: `subject.experience == "Industry veteran" && match.score >= 60`, want: true},
		{name: "compile error", expr: "not valid cel ((", wantErr: true},
		{name: "non-boolean result", expr: "match.score", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := eval.Evaluate(tt.expr)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Evaluate(%q) error = %v, wantErr %v", tt.expr, err, tt.wantErr)
			}
			if err == nil && got != tt.want {
				t.Errorf("Evaluate(%q) = %v, want %v", tt.expr, got, tt.want)
			}
		})
	}
}

func TestEvaluateNilMatch(t *testing.T) {
	eval := NewEval(nil, nil)
	got, err := eval.Evaluate(`!("score" in match)`)
	if err != nil {
		t.Fatalf("Evaluate() error = %v", err)
	}
	if !got {
		t.Error("nil match should expose an empty match map")
	}
}
