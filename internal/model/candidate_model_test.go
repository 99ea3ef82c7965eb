package model

import "testing"

func TestCandidateExperience(t *testing.T) {
	cases := []struct {
		raw  string
		want int
	}{
		{"5", 5},
		{" 12 ", 12},
		{"0", 0},
		{"", 0},
		{"n/a", 0},
		{"5 yrs", 0},
		{"-3", 0},
	}
	for _, tc := range cases {
		c := Candidate{ExperienceYears: tc.raw}
		if got := c.Experience(); got != tc.want {
			t.Errorf("Experience(%q) = %d, want %d", tc.raw, got, tc.want)
		}
	}
}
