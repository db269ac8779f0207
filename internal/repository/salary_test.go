package repository

import "testing"

func TestParseSalaryRange(t *testing.T) {
	cases := []struct {
		in      string
		wantMin float64
		wantMax float64
		wantOK  bool
	}{
		{"£30,000 - £40,000", 30000, 40000, true},
		{"$55,000-$65,000", 55000, 65000, true},
		{"70000", 70000, 70000, true},
		{"up to 45,000", 45000, 45000, true},
		{"40k", 40, 40, true},
		{"competitive", 0, 0, false},
		{"", 0, 0, false},
		{"   ", 0, 0, false},
		// reversed ranges collapse to the first number
		{"50,000 - 30,000", 50000, 50000, true},
	}

	for _, tc := range cases {
		gotMin, gotMax, ok := ParseSalaryRange(tc.in)
		if ok != tc.wantOK {
			t.Fatalf("ParseSalaryRange(%q) ok = %v, want %v", tc.in, ok, tc.wantOK)
		}
		if gotMin != tc.wantMin || gotMax != tc.wantMax {
			t.Fatalf("ParseSalaryRange(%q) = %v, %v; want %v, %v", tc.in, gotMin, gotMax, tc.wantMin, tc.wantMax)
		}
	}
}
