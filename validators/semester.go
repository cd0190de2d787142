// Package validators contains validators found throughout the application
// that have been abstracted away from the main code. The semester, course
// and professor validators return the canonical form a field is stored
// under; raw user input is never persisted. Messages are user-facing and
// rendered as-is by the frontend.
package validators

import (
	"errors"
	"regexp"
	"strconv"
	"strings"
)

var (
	ErrSemesterRequired = errors.New("Semester is required")
	ErrSemesterFormat   = errors.New(`Format should be "Term YYYY" (e.g., "Fall 2025")`)
	ErrSemesterYear     = errors.New("Year must be between 2000 and 2100")
)

var semesterRegex = regexp.MustCompile(`(?i)^(spring|summer|fall)\s+(\d{4})$`)

// SemesterValidator checks a semester string and returns its canonical
// form, e.g. "FALL 2025" -> "Fall 2025". Allowed terms are Spring, Summer
// and Fall with a 4-digit year between 2000 and 2100.
func SemesterValidator(s string) (string, error) {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return "", ErrSemesterRequired
	}

	m := semesterRegex.FindStringSubmatch(trimmed)
	if m == nil {
		return "", ErrSemesterFormat
	}

	term, yearStr := m[1], m[2]

	year, err := strconv.Atoi(yearStr)
	if err != nil {
		return "", ErrSemesterFormat
	}

	if year < 2000 || year > 2100 {
		return "", ErrSemesterYear
	}

	return strings.ToUpper(term[:1]) + strings.ToLower(term[1:]) + " " + yearStr, nil
}
