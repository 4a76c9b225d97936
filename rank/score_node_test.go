package rank

import (
	"context"
	"testing"

	"github.com/rushteam/matchkit/core"
)

func applicant() *core.Subject {
	s := core.NewSubject("applicant-1")
	s.Budget = "₹100K - ₹250K"
	s.Timeline = "As soon as possible"
	s.Experience = "Some business experience"
	s.City = "Pune"
	s.State = "Maharashtra"
	s.Country = "India"
	s.Interests = []string{"Food & Beverage"}
	return s
}

func perfectFit() *core.Candidate {
	c := core.NewCandidate("brand-fit")
	c.Name = "Chai Point Express"
	c.InvestmentBand = "₹100K - ₹250K"
	c.Industries = []string{"Food & Beverage"}
	c.Locations = []core.Location{{City: "Pune", State: "Maharashtra", Country: "India"}}
	c.RequiredExperience = "None"
	return c
}

func TestScoreNodeProcess(t *testing.T) {
	matches := []*core.Match{core.NewMatch(perfectFit())}
	mctx := &core.MatchContext{Subject: applicant()}

	node := &ScoreNode{}
	out, err := node.Process(context.Background(), mctx, matches)
	if err != nil {
		t.Fatalf("Process() error = %v", err)
	}
	if len(out) != 1 {
		t.Fatalf("Process() returned %d matches, want 1", len(out))
	}

	m := out[0]
	// budget 100*.30 + location 100*.25 + industry 80*.20 + experience 90*.15 + timeline 100*.10 = 94.5
	if m.Score != 95 {
		t.Errorf("Score = %d, want 95", m.Score)
	}
	if len(m.Factors) != 5 {
		t.Errorf("Factors count = %d, want 5", len(m.Factors))
	}
	if lbl, ok := m.Labels["rank_weights"]; !ok || lbl.Value != "brand_match" {
		t.Errorf("rank_weights label = %+v, want brand_match", lbl)
	}
}

func TestScoreNodeConcurrentKeepsOrder(t *testing.T) {
	bands := []string{"Under ₹50K", "₹50K - ₹100K", "₹100K - ₹250K", "₹250K - ₹500K", "₹500K - ₹1M", "Above ₹1M"}
	matches := make([]*core.Match, 0, len(bands))
	for i, band := range bands {
		c := core.NewCandidate(bands[i])
		c.InvestmentBand = band
		matches = append(matches, core.NewMatch(c))
	}
	mctx := &core.MatchContext{Subject: applicant()}

	serial, err := (&ScoreNode{}).Process(context.Background(), mctx, cloneMatches(matches))
	if err != nil {
		t.Fatal(err)
	}
	concurrent, err := (&ScoreNode{MaxConcurrent: 4}).Process(context.Background(), mctx, cloneMatches(matches))
	if err != nil {
		t.Fatal(err)
	}

	for i := range serial {
		if serial[i].Candidate.ID != concurrent[i].Candidate.ID {
			t.Errorf("order differs at %d: %s vs %s", i, serial[i].Candidate.ID, concurrent[i].Candidate.ID)
		}
		if serial[i].Score != concurrent[i].Score {
			t.Errorf("score differs for %s: %d vs %d", serial[i].Candidate.ID, serial[i].Score, concurrent[i].Score)
		}
	}
}

func cloneMatches(matches []*core.Match) []*core.Match {
	out := make([]*core.Match, 0, len(matches))
	for _, m := range matches {
		out = append(out, core.NewMatch(m.Candidate))
	}
	return out
}

func TestScoreNodeDoesNotMutateCandidate(t *testing.T) {
	c := perfectFit()
	before := *c

	_, err := (&ScoreNode{}).Process(context.Background(),
		&core.MatchContext{Subject: applicant()},
		[]*core.Match{core.NewMatch(c)})
	if err != nil {
		t.Fatal(err)
	}

	if c.ID != before.ID || c.InvestmentBand != before.InvestmentBand || c.RequiredExperience != before.RequiredExperience {
		t.Error("candidate was mutated during scoring")
	}
}

func TestSortNodeStableDescending(t *testing.T) {
	mk := func(id string, score int) *core.Match {
		m := core.NewMatch(core.NewCandidate(id))
		m.Score = score
		return m
	}
	matches := []*core.Match{
		mk("a", 50), mk("b", 90), mk("c", 50), mk("d", 70), mk("e", 90),
	}

	out, err := (&SortNode{}).Process(context.Background(), nil, matches)
	if err != nil {
		t.Fatal(err)
	}

	wantOrder := []string{"b", "e", "d", "a", "c"} // 同分保持输入顺序
	for i, want := range wantOrder {
		if out[i].Candidate.ID != want {
			t.Errorf("position %d = %s, want %s", i, out[i].Candidate.ID, want)
		}
	}
}
