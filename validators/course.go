package validators

import (
	"errors"
	"regexp"
	"strings"
)

var (
	ErrCourseRequired = errors.New("Course is required")
	ErrCourseFormat   = errors.New(`Format should be "SUBJECT NUMBER" (e.g., "CS 1301")`)
)

var (
	courseRegex     = regexp.MustCompile(`^([A-Za-z]{2,4}) (\d{3,4})$`)
	whitespaceRegex = regexp.MustCompile(`\s+`)
)

// CourseValidator checks a course string and returns its canonical form,
// e.g. "cs  1301" -> "CS 1301". The subject is 2-4 letters, the number
// 3-4 digits, separated by exactly one space.
func CourseValidator(s string) (string, error) {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return "", ErrCourseRequired
	}

	// Runs of whitespace collapse to a single space before matching
	normalized := whitespaceRegex.ReplaceAllString(trimmed, " ")

	m := courseRegex.FindStringSubmatch(normalized)
	if m == nil {
		return "", ErrCourseFormat
	}

	return strings.ToUpper(m[1]) + " " + m[2], nil
}
