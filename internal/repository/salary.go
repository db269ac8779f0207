package repository

import (
	"regexp"
	"strconv"
	"strings"
)

var salaryDigits = regexp.MustCompile(`\d+`)

// ParseSalaryRange extracts the minimum and maximum salary from a free-form
// range string like "£30,000 - £40,000" or "55000". Thousands separators are
// ignored; a single number is both min and max. ok reports whether any number
// was found — a missing or unparseable range stays unknown, never zero.
func ParseSalaryRange(s string) (minSalary, maxSalary float64, ok bool) {
	s = strings.ReplaceAll(s, ",", "")
	matches := salaryDigits.FindAllString(s, -1)
	if len(matches) == 0 {
		return 0, 0, false
	}

	first, err := strconv.ParseFloat(matches[0], 64)
	if err != nil {
		return 0, 0, false
	}
	last, err := strconv.ParseFloat(matches[len(matches)-1], 64)
	if err != nil {
		return 0, 0, false
	}

	if last < first {
		last = first
	}
	return first, last, true
}
