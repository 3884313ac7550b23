package middleware

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/unidesk/registrar/internal/app/models/dto"
	"github.com/unidesk/registrar/internal/pkg/apperrors"
)

func handleError(t *testing.T, err error) (*httptest.ResponseRecorder, dto.ErrorResponse) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/api/v1/courses", nil)

	HandleAPIError(c, err)

	var body dto.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return w, body
}

func TestHandleAPIError_ValidationErrors(t *testing.T) {
	for _, err := range []error{
		apperrors.ErrInvalidCreditHours,
		apperrors.ErrCourseValidation,
		fmt.Errorf("%w: lecture credit hours must be between 1 and 3", apperrors.ErrInvalidCreditHours),
	} {
		w, body := handleError(t, err)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, dto.ErrorCodeValidationFailed, body.Error.Code)
	}
}

func TestHandleAPIError_NotFoundErrors(t *testing.T) {
	for _, err := range []error{
		apperrors.ErrCourseNotFound,
		apperrors.ErrNoMatchingCourses,
		&apperrors.CustomError{
			Err:     apperrors.ErrPrerequisiteNotFound,
			Message: "prerequisite courses not found: CS202",
		},
	} {
		w, body := handleError(t, err)
		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, dto.ErrorCodeResourceNotFound, body.Error.Code)
	}
}

func TestHandleAPIError_NotFoundKeepsMessage(t *testing.T) {
	_, body := handleError(t, &apperrors.CustomError{
		Err:     apperrors.ErrPrerequisiteNotFound,
		Message: "prerequisite courses not found: CS202",
	})
	assert.Contains(t, body.Error.Message, "CS202")
}

func TestHandleAPIError_Conflict(t *testing.T) {
	w, body := handleError(t, apperrors.ErrCourseAlreadyExists)
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, dto.ErrorCodeResourceAlreadyExists, body.Error.Code)
}

func TestHandleAPIError_TokenErrors(t *testing.T) {
	w, body := handleError(t, apperrors.ErrTokenExpired)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, dto.ErrorCodeExpiredToken, body.Error.Code)

	w, body = handleError(t, apperrors.ErrTokenInvalid)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, dto.ErrorCodeInvalidToken, body.Error.Code)
}

func TestHandleAPIError_UnknownErrorIsGeneric(t *testing.T) {
	w, body := handleError(t, errors.New("pq: connection refused"))
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, dto.ErrorCodeInternalServer, body.Error.Code)
	assert.NotContains(t, body.Error.Message, "connection refused")
}
