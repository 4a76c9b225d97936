package scorer

import (
	"testing"

	"github.com/rushteam/matchkit/core"
)

func subjectWithTimeline(tl string) *core.Subject {
	s := core.NewSubject("s1")
	s.Timeline = tl
	return s
}

func TestTimelineUrgency(t *testing.T) {
	tests := []struct {
		name     string
		timeline string
		want     float64
	}{
		{name: "asap", timeline: "As soon as possible", want: 100},
		{name: "within 3 months", timeline: "Within 3 months", want: 80},
		{name: "3-6 months", timeline: "3-6 months", want: 60},
		{name: "6-12 months", timeline: "6-12 months", want: 40},
		{name: "just exploring", timeline: "Just exploring", want: 20},
		{name: "missing", timeline: "", want: DefaultTimelineLeadScore},
		{name: "unrecognized", timeline: "someday", want: DefaultTimelineLeadScore},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, _ := TimelineUrgency{}.Score(subjectWithTimeline(tt.timeline), nil)
			if got != tt.want {
				t.Errorf("TimelineUrgency.Score(%q) = %v, want %v", tt.timeline, got, tt.want)
			}
		})
	}
}

func TestTimelineMatch(t *testing.T) {
	tests := []struct {
		name     string
		timeline string
		want     float64
	}{
		{name: "asap", timeline: "As soon as possible", want: 100},
		{name: "just exploring", timeline: "Just exploring", want: 20},
		{name: "missing falls back to match default", timeline: "", want: DefaultTimelineMatchScore},
		{name: "unrecognized falls back to match default", timeline: "someday", want: DefaultTimelineMatchScore},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, _ := TimelineMatch{}.Score(subjectWithTimeline(tt.timeline), nil)
			if got != tt.want {
				t.Errorf("TimelineMatch.Score(%q) = %v, want %v", tt.timeline, got, tt.want)
			}
		})
	}
}

// 两个场景的缺省分是独立调优的：线索 30，匹配 50。
func TestTimelineDefaultsDiffer(t *testing.T) {
	lead, _ := TimelineUrgency{}.Score(nil, nil)
	match, _ := TimelineMatch{}.Score(nil, nil)
	if lead != 30 || match != 50 {
		t.Errorf("defaults = (%v, %v), want (30, 50)", lead, match)
	}
}
