package utils

import "testing"

func TestMergeLabel(t *testing.T) {
	tests := []struct {
		name     string
		existing Label
		incoming Label
		want     Label
	}{
		{
			name:     "both present accumulate",
			existing: Label{Value: "trending", Source: "source"},
			incoming: Label{Value: "store", Source: "source"},
			want:     Label{Value: "trending|store", Source: "source,source"},
		},
		{
			name:     "empty existing returns incoming",
			existing: Label{},
			incoming: Label{Value: "store", Source: "source"},
			want:     Label{Value: "store", Source: "source"},
		},
		{
			name:     "empty incoming returns existing",
			existing: Label{Value: "trending", Source: "source"},
			incoming: Label{},
			want:     Label{Value: "trending", Source: "source"},
		},
		{
			name:     "missing existing source takes incoming source",
			existing: Label{Value: "a"},
			incoming: Label{Value: "b", Source: "rank"},
			want:     Label{Value: "a|b", Source: "rank"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := MergeLabel(tt.existing, tt.incoming); got != tt.want {
				t.Errorf("MergeLabel() = %+v, want %+v", got, tt.want)
			}
		})
	}
}
