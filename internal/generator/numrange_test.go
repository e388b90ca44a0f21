package generator

import "testing"

func TestParseRange(t *testing.T) {
	tests := []struct {
		spec      string
		wantStart uint64
		wantEnd   uint64
	}{
		{"", 1, 999},
		{"10", 1, 10},
		{"0", 1, 0},
		{"1,5", 1, 5},
		{",5", 1, 5},
		{"5,", 5, 999},
		{",", 1, 999},
		{"10,5", 10, 5},
		{"1,000", 1, 0},
		{"1,2,3", 1, 999},
		{",,", 1, 999},
		{"99999999999999999999", 1, 999},
		{"99999999999999999999,4", 1, 4},
		{"abc", 1, 999},
	}

	for _, tt := range tests {
		t.Run(tt.spec, func(t *testing.T) {
			start, end := ParseRange(tt.spec)
			if start != tt.wantStart || end != tt.wantEnd {
				t.Errorf("ParseRange(%q) = (%d, %d), want (%d, %d)",
					tt.spec, start, end, tt.wantStart, tt.wantEnd)
			}
		})
	}
}
