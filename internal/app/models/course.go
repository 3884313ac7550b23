package models

// Course represents a catalog offering with credit-hour attributes and
// prerequisite links.
type Course struct {
	ID                 int64   `json:"id" db:"id"`
	Code               string  `json:"code" db:"code"`
	Name               string  `json:"name" db:"name"`
	Department         string  `json:"department" db:"department"`
	Semester           string  `json:"semester" db:"semester"`
	LectureCreditHours float64 `json:"lectureCreditHours" db:"lecture_credit_hours"`
	LabCreditHours     float64 `json:"labCreditHours" db:"lab_credit_hours"`

	// Prerequisites are weak references: the link carries identity only, no
	// ownership. Deleting a prerequisite course leaves referencing courses
	// untouched; the dangling link simply stops resolving on expansion.
	Prerequisites []CourseRef `json:"prerequisites,omitempty"`
}

// CourseRef is a lightweight projection of a prerequisite course. Code and
// Name are populated only when the reference has been expanded by a read.
type CourseRef struct {
	ID   int64  `json:"id"`
	Code string `json:"code,omitempty"`
	Name string `json:"name,omitempty"`
}

// PrerequisiteIDs returns the referenced course IDs in stored order.
func (c *Course) PrerequisiteIDs() []int64 {
	if len(c.Prerequisites) == 0 {
		return nil
	}
	ids := make([]int64, len(c.Prerequisites))
	for i, ref := range c.Prerequisites {
		ids[i] = ref.ID
	}
	return ids
}

// CourseFilter holds the optional search criteria. Nil fields impose no
// constraint. Code, name and department match as case-insensitive
// substrings; Semester matches exactly; the hour bounds are inclusive.
type CourseFilter struct {
	Code            *string
	Name            *string
	Department      *string
	Semester        *string
	MinLectureHours *float64
	MaxLectureHours *float64
	MinLabHours     *float64
	MaxLabHours     *float64
}

// IsZero reports whether no criterion is set.
func (f *CourseFilter) IsZero() bool {
	return f == nil || (f.Code == nil && f.Name == nil && f.Department == nil &&
		f.Semester == nil && f.MinLectureHours == nil && f.MaxLectureHours == nil &&
		f.MinLabHours == nil && f.MaxLabHours == nil)
}
