package validators

import (
	"errors"
	"regexp"
	"strings"
)

var (
	ErrProfessorRequired = errors.New("Professor name is required")
	ErrProfessorTitle    = errors.New("Do not include titles (Dr., Prof., Mr., Mrs., Ms.)")
	ErrProfessorChars    = errors.New("Only letters, apostrophes, hyphens, and periods are allowed")
	ErrProfessorFormat   = errors.New(`Enter first and last name (e.g., "Jane Smith" or "John Q. Smith")`)
)

var (
	titleRegex        = regexp.MustCompile(`(?i)^(dr\.?|prof\.?|professor|mr\.?|mrs\.?|ms\.?)\s+`)
	allowedCharsRegex = regexp.MustCompile(`^[a-zA-Z\s'\-.]+$`)
	// At least a first and a last name. Middle parts may be full words or
	// a single initial followed by a period
	nameRegex    = regexp.MustCompile(`^[a-zA-Z][a-zA-Z'\-]*(\s+[a-zA-Z]([a-zA-Z'\-]*|\.))*\s+[a-zA-Z][a-zA-Z'\-]*$`)
	initialRegex = regexp.MustCompile(`^[a-zA-Z]\.?$`)
	tokenRegex   = regexp.MustCompile(`\S+|\s+`)
)

// ProfessorValidator checks a professor name and returns its canonical
// title-cased form, e.g. "john q smith" -> "John Q. Smith". Single-letter
// tokens are treated as middle initials and rendered uppercase with a
// trailing period. Honorifics are rejected so that the same person never
// shows up twice as "Smith" and "Dr. Smith".
func ProfessorValidator(s string) (string, error) {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return "", ErrProfessorRequired
	}

	if titleRegex.MatchString(trimmed) {
		return "", ErrProfessorTitle
	}

	if !allowedCharsRegex.MatchString(trimmed) {
		return "", ErrProfessorChars
	}

	if !nameRegex.MatchString(trimmed) {
		return "", ErrProfessorFormat
	}

	// Tokenize keeping the whitespace separators intact
	parts := tokenRegex.FindAllString(trimmed, -1)
	for i, p := range parts {
		if strings.TrimSpace(p) == "" {
			continue
		}

		if initialRegex.MatchString(p) {
			p = strings.ToUpper(p)
			if !strings.HasSuffix(p, ".") {
				p += "."
			}
		} else {
			p = strings.ToUpper(p[:1]) + strings.ToLower(p[1:])
		}

		parts[i] = p
	}

	return strings.Join(parts, ""), nil
}
