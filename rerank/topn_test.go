package rerank

import (
	"context"
	"testing"

	"github.com/rushteam/matchkit/core"
)

func TestTopN(t *testing.T) {
	mk := func(n int) []*core.Match {
		out := make([]*core.Match, 0, n)
		for i := 0; i < n; i++ {
			out = append(out, core.NewMatch(core.NewCandidate(string(rune('a'+i)))))
		}
		return out
	}

	tests := []struct {
		name  string
		n     int
		total int
		want  int
	}{
		{name: "truncates to n", n: 3, total: 10, want: 3},
		{name: "fewer than n untouched", n: 5, total: 2, want: 2},
		{name: "exactly n untouched", n: 4, total: 4, want: 4},
		{name: "zero disables truncation", n: 0, total: 6, want: 6},
		{name: "negative disables truncation", n: -1, total: 6, want: 6},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := (&TopN{N: tt.n}).Process(context.Background(), nil, mk(tt.total))
			if err != nil {
				t.Fatal(err)
			}
			if len(out) != tt.want {
				t.Errorf("TopN(%d) kept %d of %d, want %d", tt.n, len(out), tt.total, tt.want)
			}
		})
	}
}

func TestTopNKeepsHead(t *testing.T) {
	matches := []*core.Match{
		core.NewMatch(core.NewCandidate("first")),
		core.NewMatch(core.NewCandidate("second")),
		core.NewMatch(core.NewCandidate("third")),
	}
	out, err := (&TopN{N: 2}).Process(context.Background(), nil, matches)
	if err != nil {
		t.Fatal(err)
	}
	if out[0].Candidate.ID != "first" || out[1].Candidate.ID != "second" {
		t.Errorf("TopN should keep the head of the list, got %s, %s", out[0].Candidate.ID, out[1].Candidate.ID)
	}
}
