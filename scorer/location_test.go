package scorer

import (
	"testing"

	"github.com/rushteam/matchkit/core"
)

func subjectIn(city, state, country string) *core.Subject {
	s := core.NewSubject("s1")
	s.City = city
	s.State = state
	s.Country = country
	return s
}

func candidateAt(locations ...core.Location) *core.Candidate {
	c := core.NewCandidate("c1")
	c.Locations = locations
	return c
}

func TestLocationMatch(t *testing.T) {
	pune := core.Location{City: "Pune", State: "Maharashtra", Country: "India"}
	delhi := core.Location{City: "Delhi", State: "Delhi", Country: "India"}

	tests := []struct {
		name      string
		subject   *core.Subject
		candidate *core.Candidate
		want      float64
	}{
		{
			name:      "exact city match",
			subject:   subjectIn("Pune", "Maharashtra", "India"),
			candidate: candidateAt(delhi, pune),
			want:      100,
		},
		{
			name:      "city match is case insensitive",
			subject:   subjectIn("pune", "", ""),
			candidate: candidateAt(pune),
			want:      100,
		},
		{
			name:      "same state",
			subject:   subjectIn("Nagpur", "Maharashtra", "India"),
			candidate: candidateAt(pune),
			want:      70,
		},
		{
			name:      "state substring tolerated",
			subject:   subjectIn("Nagpur", "Maharashtra, India", ""),
			candidate: candidateAt(pune),
			want:      70,
		},
		{
			name:      "same country only",
			subject:   subjectIn("Chennai", "Tamil Nadu", "India"),
			candidate: candidateAt(pune),
			want:      30,
		},
		{
			name:      "no overlap",
			subject:   subjectIn("Austin", "Texas", "USA"),
			candidate: candidateAt(pune),
			want:      10,
		},
		{
			name:      "subject location absent",
			subject:   subjectIn("", "", ""),
			candidate: candidateAt(pune),
			want:      DefaultLocationMatchScore,
		},
		{
			name:      "candidate has no locations",
			subject:   subjectIn("Pune", "Maharashtra", "India"),
			candidate: candidateAt(),
			want:      DefaultLocationMatchScore,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, _ := LocationMatch{}.Score(tt.subject, tt.candidate)
			if got != tt.want {
				t.Errorf("LocationMatch.Score() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestLocationLead(t *testing.T) {
	pune := core.Location{City: "Pune", State: "Maharashtra", Country: "India"}
	delhi := core.Location{City: "Delhi", State: "Delhi", Country: "India"}

	tests := []struct {
		name      string
		subject   *core.Subject
		candidate *core.Candidate
		want      float64
	}{
		{
			name:      "city in candidate list",
			subject:   subjectIn("Pune", "", ""),
			candidate: candidateAt(delhi, pune),
			want:      100,
		},
		{
			name:      "city not in candidate list",
			subject:   subjectIn("Chennai", "", ""),
			candidate: candidateAt(delhi, pune),
			want:      30,
		},
		{
			name:      "subject city absent",
			subject:   subjectIn("", "Maharashtra", "India"),
			candidate: candidateAt(pune),
			want:      DefaultLocationLeadScore,
		},
		{
			name:      "candidate locations absent",
			subject:   subjectIn("Pune", "", ""),
			candidate: candidateAt(),
			want:      DefaultLocationLeadScore,
		},
		{
			name:      "nil candidate",
			subject:   subjectIn("Pune", "", ""),
			candidate: nil,
			want:      DefaultLocationLeadScore,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, _ := LocationLead{}.Score(tt.subject, tt.candidate)
			if got != tt.want {
				t.Errorf("LocationLead.Score() = %v, want %v", got, tt.want)
			}
		})
	}
}
