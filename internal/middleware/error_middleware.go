package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/unidesk/registrar/internal/app/models/dto"
	"github.com/unidesk/registrar/internal/pkg/apperrors"
	"github.com/unidesk/registrar/internal/pkg/logger"
)

// HandleAPIError maps service errors to HTTP responses. Validation failures
// become 400, missing resources (including unresolved prerequisite codes and
// empty search results) become 404, duplicates become 409, and anything else
// is reported as a generic 500 with the detail logged only.
func HandleAPIError(c *gin.Context, err error) {
	switch {
	case apperrors.Is(err, apperrors.ErrInvalidCreditHours,
		apperrors.ErrCourseValidation,
		apperrors.ErrValidationFailed,
		apperrors.ErrBadRequest):
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeValidationFailed, err.Error())))

	case apperrors.Is(err, apperrors.ErrCourseNotFound,
		apperrors.ErrPrerequisiteNotFound,
		apperrors.ErrNoMatchingCourses,
		apperrors.ErrResourceNotFound):
		c.JSON(http.StatusNotFound, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeResourceNotFound, err.Error())))

	case apperrors.Is(err, apperrors.ErrCourseAlreadyExists,
		apperrors.ErrResourceAlreadyExists):
		c.JSON(http.StatusConflict, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeResourceAlreadyExists, err.Error())))

	case errors.Is(err, apperrors.ErrTokenExpired):
		c.JSON(http.StatusUnauthorized, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeExpiredToken, "Token expired")))

	case apperrors.Is(err, apperrors.ErrTokenInvalid, apperrors.ErrUnauthorized):
		c.JSON(http.StatusUnauthorized, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeInvalidToken, "Invalid token")))

	default:
		logger.Error().Err(err).
			Str("path", c.FullPath()).
			Str("method", c.Request.Method).
			Msg("Unhandled error")
		c.JSON(http.StatusInternalServerError, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeInternalServer, "Internal server error")))
	}
}
