package dto

import (
	"bytes"
	"fmt"

	"github.com/unidesk/registrar/internal/app/models"
)

// CreditHours carries a credit-hour value as received from the client. Both
// JSON numbers and quoted numeric strings are accepted on the wire; the
// service layer performs the actual numeric parse and range check.
type CreditHours string

// UnmarshalJSON accepts either a JSON number or a JSON string.
func (h *CreditHours) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) >= 2 && data[0] == '"' && data[len(data)-1] == '"' {
		data = data[1 : len(data)-1]
	}
	if bytes.Equal(data, []byte("null")) {
		return fmt.Errorf("credit hours cannot be null")
	}
	*h = CreditHours(data)
	return nil
}

// String returns the raw token as received.
func (h CreditHours) String() string { return string(h) }

// CourseRequest represents course creation and update data. Prerequisites is
// an optional comma-separated list of course codes.
type CourseRequest struct {
	Code               string      `json:"code" binding:"required" example:"CS301"`
	Name               string      `json:"name" binding:"required" example:"Operating Systems"`
	Department         string      `json:"department" binding:"required" example:"Computer Engineering"`
	Semester           string      `json:"semester" binding:"required" example:"FALL"`
	Prerequisites      string      `json:"prerequisites" example:"CS101, CS202"`
	LectureCreditHours CreditHours `json:"lectureCreditHours" binding:"required" swaggertype:"string" example:"3"`
	LabCreditHours     CreditHours `json:"labCreditHours" binding:"required" swaggertype:"string" example:"1"`
}

// SearchCoursesQuery represents the optional search criteria as query
// parameters. Absent parameters impose no constraint.
type SearchCoursesQuery struct {
	Code            *string  `form:"code"`
	Name            *string  `form:"name"`
	Department      *string  `form:"department"`
	Semester        *string  `form:"semester"`
	MinLectureHours *float64 `form:"minLectureHours"`
	MaxLectureHours *float64 `form:"maxLectureHours"`
	MinLabHours     *float64 `form:"minLabHours"`
	MaxLabHours     *float64 `form:"maxLabHours"`
}

// ToFilter translates the query parameters into the repository filter.
func (q *SearchCoursesQuery) ToFilter() *models.CourseFilter {
	return &models.CourseFilter{
		Code:            q.Code,
		Name:            q.Name,
		Department:      q.Department,
		Semester:        q.Semester,
		MinLectureHours: q.MinLectureHours,
		MaxLectureHours: q.MaxLectureHours,
		MinLabHours:     q.MinLabHours,
		MaxLabHours:     q.MaxLabHours,
	}
}

// PrerequisiteResponse is the display projection of a prerequisite course.
type PrerequisiteResponse struct {
	Code string `json:"code" example:"CS101"`
	Name string `json:"name" example:"Introduction to Programming"`
}

// CourseResponse represents course information returned by the API.
type CourseResponse struct {
	ID                 int64                  `json:"id" example:"1"`
	Code               string                 `json:"code" example:"CS301"`
	Name               string                 `json:"name" example:"Operating Systems"`
	Department         string                 `json:"department" example:"Computer Engineering"`
	Semester           string                 `json:"semester" example:"FALL"`
	LectureCreditHours float64                `json:"lectureCreditHours" example:"3"`
	LabCreditHours     float64                `json:"labCreditHours" example:"1"`
	Prerequisites      []PrerequisiteResponse `json:"prerequisites"`
}

// CourseListResponse represents a list of courses.
type CourseListResponse struct {
	Courses []CourseResponse `json:"courses"`
}

// NewCourseResponse maps a course model to its response shape.
func NewCourseResponse(course *models.Course) CourseResponse {
	prereqs := make([]PrerequisiteResponse, 0, len(course.Prerequisites))
	for _, ref := range course.Prerequisites {
		prereqs = append(prereqs, PrerequisiteResponse{Code: ref.Code, Name: ref.Name})
	}
	return CourseResponse{
		ID:                 course.ID,
		Code:               course.Code,
		Name:               course.Name,
		Department:         course.Department,
		Semester:           course.Semester,
		LectureCreditHours: course.LectureCreditHours,
		LabCreditHours:     course.LabCreditHours,
		Prerequisites:      prereqs,
	}
}

// NewCourseListResponse maps a slice of course models to the list response.
func NewCourseListResponse(courses []*models.Course) CourseListResponse {
	out := CourseListResponse{Courses: make([]CourseResponse, 0, len(courses))}
	for _, course := range courses {
		out.Courses = append(out.Courses, NewCourseResponse(course))
	}
	return out
}
