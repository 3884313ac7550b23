package models

// Semester represents a semester token as stored on a course.
type Semester string

// Semester constants
const (
	SemesterFall   Semester = "FALL"
	SemesterSpring Semester = "SPRING"
	SemesterSummer Semester = "SUMMER"
)

// Credit-hour domain bounds. Lecture and lab components are constrained
// independently.
const (
	MinLectureCreditHours = 1.0
	MaxLectureCreditHours = 3.0
	MinLabCreditHours     = 0.0
	MaxLabCreditHours     = 1.0
)
