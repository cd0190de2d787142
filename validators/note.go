package validators

import "strings"

// NoteInput is the user-submitted metadata accompanying a note upload
type NoteInput struct {
	Title       string `json:"title" form:"title"`
	Course      string `json:"course" form:"course"`
	Professor   string `json:"professor" form:"professor"`
	Semester    string `json:"semester" form:"semester"`
	Description string `json:"description" form:"description"`
}

// NoteValidator runs every field check and reports all failures in one
// pass instead of stopping at the first one, so the frontend can mark
// every bad field at once. When the returned slice is empty the returned
// NoteInput holds the canonical values that downstream code must persist
// in place of the raw input.
func NoteValidator(in NoteInput) (NoteInput, []string) {
	var errs []string

	if strings.TrimSpace(in.Title) == "" {
		errs = append(errs, "Title is required")
	}

	course, err := CourseValidator(in.Course)
	if err != nil {
		errs = append(errs, "Course: "+err.Error())
	}

	professor, err := ProfessorValidator(in.Professor)
	if err != nil {
		errs = append(errs, "Professor: "+err.Error())
	}

	semester, err := SemesterValidator(in.Semester)
	if err != nil {
		errs = append(errs, "Semester: "+err.Error())
	}

	if len(errs) > 0 {
		return NoteInput{}, errs
	}

	return NoteInput{
		Title:       strings.TrimSpace(in.Title),
		Course:      course,
		Professor:   professor,
		Semester:    semester,
		Description: strings.TrimSpace(in.Description),
	}, nil
}
