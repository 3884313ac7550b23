package dto

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/unidesk/registrar/internal/app/models"
)

func TestCourseRequest_AcceptsNumberAndStringHours(t *testing.T) {
	var req CourseRequest
	body := `{
		"code": "CS301",
		"name": "Operating Systems",
		"department": "Computer Engineering",
		"semester": "FALL",
		"lectureCreditHours": 3,
		"labCreditHours": "1"
	}`
	require.NoError(t, json.Unmarshal([]byte(body), &req))

	assert.Equal(t, "3", req.LectureCreditHours.String())
	assert.Equal(t, "1", req.LabCreditHours.String())
}

func TestCreditHours_KeepsRawToken(t *testing.T) {
	for _, tc := range []struct {
		input string
		want  string
	}{
		{`"2.5"`, "2.5"},
		{`2.5`, "2.5"},
		{`"three"`, "three"},
		{`""`, ""},
	} {
		var h CreditHours
		require.NoError(t, json.Unmarshal([]byte(tc.input), &h), tc.input)
		assert.Equal(t, tc.want, h.String())
	}
}

func TestCreditHours_RejectsNull(t *testing.T) {
	var h CreditHours
	assert.Error(t, json.Unmarshal([]byte(`null`), &h))
}

func TestSearchCoursesQuery_ToFilter(t *testing.T) {
	code := "CS"
	minLecture := 2.0
	q := SearchCoursesQuery{Code: &code, MinLectureHours: &minLecture}

	filter := q.ToFilter()
	require.NotNil(t, filter)

	assert.Same(t, &code, filter.Code)
	assert.Same(t, &minLecture, filter.MinLectureHours)
	assert.Nil(t, filter.Name)
	assert.Nil(t, filter.Semester)
	assert.Nil(t, filter.MaxLabHours)
}

func TestNewCourseResponse_ExpandsPrerequisites(t *testing.T) {
	course := &models.Course{
		ID:                 7,
		Code:               "CS301",
		Name:               "Operating Systems",
		Department:         "Computer Engineering",
		Semester:           "FALL",
		LectureCreditHours: 3,
		LabCreditHours:     1,
		Prerequisites: []models.CourseRef{
			{ID: 1, Code: "CS101", Name: "Introduction to Programming"},
			{ID: 2, Code: "CS102", Name: "Data Structures"},
		},
	}

	resp := NewCourseResponse(course)
	require.Len(t, resp.Prerequisites, 2)
	assert.Equal(t, PrerequisiteResponse{Code: "CS101", Name: "Introduction to Programming"}, resp.Prerequisites[0])
	assert.Equal(t, PrerequisiteResponse{Code: "CS102", Name: "Data Structures"}, resp.Prerequisites[1])
}

func TestNewCourseResponse_NoPrerequisitesSerializesEmptyList(t *testing.T) {
	resp := NewCourseResponse(&models.Course{ID: 1, Code: "CS101"})

	data, err := json.Marshal(resp)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"prerequisites":[]`)
}
