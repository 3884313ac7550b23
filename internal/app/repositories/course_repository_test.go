package repositories

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/unidesk/registrar/internal/app/models"
)

func TestSearchQuery_NoFilter(t *testing.T) {
	repo := NewCourseRepository(nil)

	sql, args, err := repo.searchQuery(nil)
	require.NoError(t, err)

	assert.Equal(t,
		"SELECT id, code, name, department, semester, lecture_credit_hours, lab_credit_hours FROM courses ORDER BY id",
		sql)
	assert.Empty(t, args)
}

func TestSearchQuery_EmptyFilter(t *testing.T) {
	repo := NewCourseRepository(nil)

	sql, args, err := repo.searchQuery(&models.CourseFilter{})
	require.NoError(t, err)

	assert.NotContains(t, sql, "WHERE")
	assert.Empty(t, args)
}

func TestSearchQuery_TextFieldsUseSubstringMatch(t *testing.T) {
	repo := NewCourseRepository(nil)

	code := "cs1"
	name := "intro"
	department := "eng"
	sql, args, err := repo.searchQuery(&models.CourseFilter{
		Code:       &code,
		Name:       &name,
		Department: &department,
	})
	require.NoError(t, err)

	assert.Contains(t, sql, "code ILIKE $1")
	assert.Contains(t, sql, "name ILIKE $2")
	assert.Contains(t, sql, "department ILIKE $3")
	assert.Equal(t, []interface{}{"%cs1%", "%intro%", "%eng%"}, args)
}

func TestSearchQuery_SemesterIsExact(t *testing.T) {
	repo := NewCourseRepository(nil)

	semester := "FALL"
	sql, args, err := repo.searchQuery(&models.CourseFilter{Semester: &semester})
	require.NoError(t, err)

	assert.Contains(t, sql, "semester = $1")
	assert.NotContains(t, sql, "semester ILIKE")
	assert.Equal(t, []interface{}{"FALL"}, args)
}

func TestSearchQuery_HourBoundsAreInclusive(t *testing.T) {
	repo := NewCourseRepository(nil)

	minLecture := 1.0
	maxLecture := 3.0
	minLab := 0.0
	maxLab := 1.0
	sql, args, err := repo.searchQuery(&models.CourseFilter{
		MinLectureHours: &minLecture,
		MaxLectureHours: &maxLecture,
		MinLabHours:     &minLab,
		MaxLabHours:     &maxLab,
	})
	require.NoError(t, err)

	assert.Contains(t, sql, "lecture_credit_hours >= $1")
	assert.Contains(t, sql, "lecture_credit_hours <= $2")
	assert.Contains(t, sql, "lab_credit_hours >= $3")
	assert.Contains(t, sql, "lab_credit_hours <= $4")
	assert.Equal(t, []interface{}{1.0, 3.0, 0.0, 1.0}, args)
}

func TestSearchQuery_OrdersByID(t *testing.T) {
	repo := NewCourseRepository(nil)

	code := "CS"
	sql, _, err := repo.searchQuery(&models.CourseFilter{Code: &code})
	require.NoError(t, err)

	assert.Contains(t, sql, "ORDER BY id")
}
