package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/unidesk/registrar/internal/app/models"
	"github.com/unidesk/registrar/internal/app/models/dto"
	"github.com/unidesk/registrar/internal/pkg/apperrors"
)

// stubCourseService returns canned results so the tests can exercise the HTTP
// layer in isolation.
type stubCourseService struct {
	course  *models.Course
	courses []*models.Course
	err     error

	lastFilter *models.CourseFilter
	lastID     int64
}

func (s *stubCourseService) CreateCourse(_ context.Context, _ *dto.CourseRequest) (*models.Course, error) {
	return s.course, s.err
}

func (s *stubCourseService) UpdateCourse(_ context.Context, id int64, _ *dto.CourseRequest) (*models.Course, error) {
	s.lastID = id
	return s.course, s.err
}

func (s *stubCourseService) DeleteCourse(_ context.Context, id int64) error {
	s.lastID = id
	return s.err
}

func (s *stubCourseService) GetCourseByID(_ context.Context, id int64) (*models.Course, error) {
	s.lastID = id
	return s.course, s.err
}

func (s *stubCourseService) ListCourses(_ context.Context) ([]*models.Course, error) {
	return s.courses, s.err
}

func (s *stubCourseService) SearchCourses(_ context.Context, filter *models.CourseFilter) ([]*models.Course, error) {
	s.lastFilter = filter
	return s.courses, s.err
}

func newTestRouter(stub *stubCourseService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	controller := NewCourseController(stub)

	router := gin.New()
	courses := router.Group("/api/v1/courses")
	{
		courses.GET("", controller.ListCourses)
		courses.POST("", controller.CreateCourse)
		courses.GET("/search", controller.SearchCourses)
		courses.GET("/:id", controller.GetCourseByID)
		courses.PUT("/:id", controller.UpdateCourse)
		courses.DELETE("/:id", controller.DeleteCourse)
	}
	return router
}

func sampleCourse() *models.Course {
	return &models.Course{
		ID:                 1,
		Code:               "CS301",
		Name:               "Operating Systems",
		Department:         "Computer Engineering",
		Semester:           "FALL",
		LectureCreditHours: 3,
		LabCreditHours:     1,
		Prerequisites: []models.CourseRef{
			{ID: 2, Code: "CS101", Name: "Introduction to Programming"},
		},
	}
}

const validCourseBody = `{
	"code": "CS301",
	"name": "Operating Systems",
	"department": "Computer Engineering",
	"semester": "FALL",
	"prerequisites": "CS101",
	"lectureCreditHours": "3",
	"labCreditHours": "1"
}`

func TestCreateCourse_Created(t *testing.T) {
	stub := &stubCourseService{course: sampleCourse()}
	router := newTestRouter(stub)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/courses", strings.NewReader(validCourseBody))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusCreated, w.Code)

	var resp struct {
		Data dto.CourseResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "CS301", resp.Data.Code)
	require.Len(t, resp.Data.Prerequisites, 1)
	assert.Equal(t, "CS101", resp.Data.Prerequisites[0].Code)
}

func TestCreateCourse_MissingRequiredField(t *testing.T) {
	stub := &stubCourseService{course: sampleCourse()}
	router := newTestRouter(stub)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/courses", strings.NewReader(`{"code":"CS301"}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateCourse_PrerequisiteNotFound(t *testing.T) {
	stub := &stubCourseService{err: &apperrors.CustomError{
		Err:     apperrors.ErrPrerequisiteNotFound,
		Message: "prerequisite courses not found: CS202",
	}}
	router := newTestRouter(stub)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/courses", strings.NewReader(validCourseBody))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "CS202")
}

func TestGetCourseByID_InvalidID(t *testing.T) {
	router := newTestRouter(&stubCourseService{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/courses/abc", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSearchCourses_BindsFilterParameters(t *testing.T) {
	stub := &stubCourseService{courses: []*models.Course{sampleCourse()}}
	router := newTestRouter(stub)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet,
		"/api/v1/courses/search?department=eng&semester=FALL&minLectureHours=2", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	require.NotNil(t, stub.lastFilter)
	require.NotNil(t, stub.lastFilter.Department)
	assert.Equal(t, "eng", *stub.lastFilter.Department)
	require.NotNil(t, stub.lastFilter.Semester)
	assert.Equal(t, "FALL", *stub.lastFilter.Semester)
	require.NotNil(t, stub.lastFilter.MinLectureHours)
	assert.Equal(t, 2.0, *stub.lastFilter.MinLectureHours)
	assert.Nil(t, stub.lastFilter.Code)
}

func TestSearchCourses_InvalidNumberParameter(t *testing.T) {
	router := newTestRouter(&stubCourseService{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/courses/search?minLectureHours=lots", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSearchCourses_NoMatches(t *testing.T) {
	stub := &stubCourseService{err: apperrors.ErrNoMatchingCourses}
	router := newTestRouter(stub)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/courses/search?code=NOPE", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestUpdateCourse_PassesID(t *testing.T) {
	stub := &stubCourseService{course: sampleCourse()}
	router := newTestRouter(stub)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/api/v1/courses/42", strings.NewReader(validCourseBody))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, int64(42), stub.lastID)
}

func TestDeleteCourse_Acknowledges(t *testing.T) {
	stub := &stubCourseService{}
	router := newTestRouter(stub)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/api/v1/courses/1", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "deleted")
}

func TestDeleteCourse_NotFound(t *testing.T) {
	stub := &stubCourseService{err: apperrors.ErrCourseNotFound}
	router := newTestRouter(stub)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/api/v1/courses/999", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}
