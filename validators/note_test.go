package validators

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNoteValidatorAggregatesAllErrors(t *testing.T) {
	_, errs := NoteValidator(NoteInput{
		Title:     "",
		Course:    "cs1301",
		Professor: "Dr. Smith",
		Semester:  "fal 2025",
	})

	require.Len(t, errs, 4)
	assert.Contains(t, errs, "Title is required")
	assert.Contains(t, errs, "Course: "+ErrCourseFormat.Error())
	assert.Contains(t, errs, "Professor: "+ErrProfessorTitle.Error())
	assert.Contains(t, errs, "Semester: "+ErrSemesterFormat.Error())
}

func TestNoteValidatorFormatsFields(t *testing.T) {
	formatted, errs := NoteValidator(NoteInput{
		Title:       "  Midterm 1 Review  ",
		Course:      "cs  1301",
		Professor:   "john q smith",
		Semester:    "FALL 2025",
		Description: " covers chapters 1-4 ",
	})

	require.Empty(t, errs)
	assert.Equal(t, "Midterm 1 Review", formatted.Title)
	assert.Equal(t, "CS 1301", formatted.Course)
	assert.Equal(t, "John Q. Smith", formatted.Professor)
	assert.Equal(t, "Fall 2025", formatted.Semester)
	assert.Equal(t, "covers chapters 1-4", formatted.Description)
}

func TestNoteValidatorEmptyDescription(t *testing.T) {
	formatted, errs := NoteValidator(NoteInput{
		Title:     "Final exam notes",
		Course:    "math 2550",
		Professor: "jane smith",
		Semester:  "spring 2026",
	})

	require.Empty(t, errs)
	assert.Equal(t, "", formatted.Description)
}

func TestNoteValidatorSingleFieldError(t *testing.T) {
	_, errs := NoteValidator(NoteInput{
		Title:     "Lecture notes",
		Course:    "CS 1301",
		Professor: "Jane Smith",
		Semester:  "fall 1999",
	})

	require.Len(t, errs, 1)
	assert.Equal(t, "Semester: "+ErrSemesterYear.Error(), errs[0])
}
