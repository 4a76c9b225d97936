package scorer

import (
	"testing"

	"github.com/rushteam/matchkit/core"
)

func fullSubject() *core.Subject {
	s := core.NewSubject("s1")
	s.Name = "Priya Sharma"
	s.Budget = "₹100K - ₹250K"
	s.Timeline = "Within 3 months"
	s.Experience = "Some business experience"
	s.City = "Pune"
	s.Interests = []string{"Food & Beverage"}
	s.SetAttr("phone", "+91-98xxxxxx01")
	s.SetAttr("email", "priya@example.com")
	s.SetAttr("notes", "walk-in lead")
	s.SetAttr("company", "Sharma Foods")
	return s
}

func TestCompleteness(t *testing.T) {
	tests := []struct {
		name    string
		subject *core.Subject
		want    float64
	}{
		{
			name:    "all fields filled",
			subject: fullSubject(),
			want:    100,
		},
		{
			// 5/7 必填 + 1/3 选填：0.7*5/7 + 0.3*1/3 = 0.6
			name: "partial profile",
			subject: func() *core.Subject {
				s := core.NewSubject("s1")
				s.Name = "Priya"
				s.Budget = "₹100K - ₹250K"
				s.Timeline = "Within 3 months"
				s.City = "Pune"
				s.Interests = []string{"Food & Beverage"}
				s.SetAttr("phone", "+91-98xxxxxx01")
				return s
			}(),
			want: 60,
		},
		{
			name:    "empty profile",
			subject: core.NewSubject("s1"),
			want:    0,
		},
		{
			name:    "nil subject",
			subject: nil,
			want:    0,
		},
		{
			// 空白字符串不算已填写
			name: "whitespace does not count",
			subject: func() *core.Subject {
				s := core.NewSubject("s1")
				s.Name = "   "
				s.SetAttr("phone", "")
				return s
			}(),
			want: 0,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, _ := Completeness{}.Score(tt.subject, nil)
			if got != tt.want {
				t.Errorf("Completeness.Score() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCompletenessCustomFields(t *testing.T) {
	s := core.NewSubject("s1")
	s.SetAttr("pan_number", "ABCDE1234F")

	c := Completeness{Required: []string{"pan_number"}, Optional: []string{"gst_number"}}
	got, _ := c.Score(s, nil)
	// 1/1 必填 + 0/1 选填：0.7*1 + 0.3*0 = 0.7
	if got != 70 {
		t.Errorf("custom fields score = %v, want 70", got)
	}
}
