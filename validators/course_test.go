package validators

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCourseValidator(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
		err   error
	}{
		{"canonical already", "CS 1301", "CS 1301", nil},
		{"lowercase subject", "cs 1301", "CS 1301", nil},
		{"mixed case subject", "Cs 1301", "CS 1301", nil},
		{"extra spaces", "CS  1301", "CS 1301", nil},
		{"tab separator", "cs\t1301", "CS 1301", nil},
		{"surrounding whitespace", " math 2550 ", "MATH 2550", nil},
		{"three digit number", "ece 447", "ECE 447", nil},
		{"empty", "", "", ErrCourseRequired},
		{"no separator", "cs1301", "", ErrCourseFormat},
		{"subject too short", "c 1301", "", ErrCourseFormat},
		{"subject too long", "compsci 1301", "", ErrCourseFormat},
		{"number too short", "cs 13", "", ErrCourseFormat},
		{"number too long", "cs 13011", "", ErrCourseFormat},
		{"trailing garbage", "cs 1301 a", "", ErrCourseFormat},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := CourseValidator(tt.input)

			assert.ErrorIs(t, err, tt.err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCourseValidatorIdempotent(t *testing.T) {
	first, err := CourseValidator("cs  1301")
	require.NoError(t, err)

	second, err := CourseValidator(first)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}
