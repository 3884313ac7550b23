package services

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/rs/zerolog"
	"github.com/unidesk/registrar/internal/app/models"
	"github.com/unidesk/registrar/internal/app/models/dto"
	"github.com/unidesk/registrar/internal/app/repositories"
	"github.com/unidesk/registrar/internal/pkg/apperrors"
	"github.com/unidesk/registrar/internal/pkg/validation"
)

// CourseRepository is the persistence surface the course service depends on.
type CourseRepository interface {
	Create(ctx context.Context, course *models.Course) error
	GetByID(ctx context.Context, id int64) (*models.Course, error)
	GetByCodes(ctx context.Context, codes []string) ([]*models.Course, error)
	GetAll(ctx context.Context) ([]*models.Course, error)
	Search(ctx context.Context, filter *models.CourseFilter) ([]*models.Course, error)
	Update(ctx context.Context, course *models.Course) error
	Delete(ctx context.Context, id int64) error
}

// CourseService handles course-related operations
type CourseService interface {
	CreateCourse(ctx context.Context, req *dto.CourseRequest) (*models.Course, error)
	UpdateCourse(ctx context.Context, id int64, req *dto.CourseRequest) (*models.Course, error)
	DeleteCourse(ctx context.Context, id int64) error
	GetCourseByID(ctx context.Context, id int64) (*models.Course, error)
	ListCourses(ctx context.Context) ([]*models.Course, error)
	SearchCourses(ctx context.Context, filter *models.CourseFilter) ([]*models.Course, error)
}

type courseService struct {
	courseRepo CourseRepository
	logger     zerolog.Logger
}

// NewCourseService creates a new course service instance
func NewCourseService(courseRepo CourseRepository, logger zerolog.Logger) CourseService {
	return &courseService{
		courseRepo: courseRepo,
		logger:     logger,
	}
}

// CreateCourse validates the request, resolves the prerequisite codes and
// persists a new course. Nothing is written when validation or resolution
// fails.
func (s *courseService) CreateCourse(ctx context.Context, req *dto.CourseRequest) (*models.Course, error) {
	course, err := s.buildCourse(ctx, req)
	if err != nil {
		return nil, err
	}

	if err := s.courseRepo.Create(ctx, course); err != nil {
		if errors.Is(err, repositories.ErrCourseAlreadyExists) {
			return nil, apperrors.ErrCourseAlreadyExists
		}
		s.logger.Error().Err(err).Str("code", course.Code).Msg("Failed to create course")
		return nil, fmt.Errorf("error creating course: %w", err)
	}

	return course, nil
}

// UpdateCourse replaces the listed fields of the course with the given ID.
// Validation and prerequisite resolution behave exactly as in CreateCourse.
func (s *courseService) UpdateCourse(ctx context.Context, id int64, req *dto.CourseRequest) (*models.Course, error) {
	if id <= 0 {
		return nil, fmt.Errorf("%w: invalid course ID", apperrors.ErrCourseValidation)
	}

	course, err := s.buildCourse(ctx, req)
	if err != nil {
		return nil, err
	}
	course.ID = id

	if err := s.courseRepo.Update(ctx, course); err != nil {
		switch {
		case errors.Is(err, repositories.ErrCourseNotFound):
			return nil, apperrors.ErrCourseNotFound
		case errors.Is(err, repositories.ErrCourseAlreadyExists):
			return nil, apperrors.ErrCourseAlreadyExists
		}
		s.logger.Error().Err(err).Int64("courseId", id).Msg("Failed to update course")
		return nil, fmt.Errorf("error updating course: %w", err)
	}

	// Re-read so the response carries the expanded prerequisite projections.
	updated, err := s.courseRepo.GetByID(ctx, id)
	if err != nil {
		s.logger.Error().Err(err).Int64("courseId", id).Msg("Failed to reload updated course")
		return nil, fmt.Errorf("error retrieving updated course: %w", err)
	}
	if updated == nil {
		return nil, apperrors.ErrCourseNotFound
	}

	return updated, nil
}

// DeleteCourse removes the course with the given ID. Courses that list the
// deleted course as a prerequisite keep their link; the reference dangles.
func (s *courseService) DeleteCourse(ctx context.Context, id int64) error {
	if id <= 0 {
		return fmt.Errorf("%w: invalid course ID", apperrors.ErrCourseValidation)
	}

	if err := s.courseRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repositories.ErrCourseNotFound) {
			return apperrors.ErrCourseNotFound
		}
		s.logger.Error().Err(err).Int64("courseId", id).Msg("Failed to delete course")
		return fmt.Errorf("error deleting course: %w", err)
	}

	return nil
}

// GetCourseByID retrieves a single course with prerequisites expanded.
func (s *courseService) GetCourseByID(ctx context.Context, id int64) (*models.Course, error) {
	if id <= 0 {
		return nil, fmt.Errorf("%w: invalid course ID", apperrors.ErrCourseValidation)
	}

	course, err := s.courseRepo.GetByID(ctx, id)
	if err != nil {
		s.logger.Error().Err(err).Int64("courseId", id).Msg("Failed to retrieve course")
		return nil, fmt.Errorf("error retrieving course: %w", err)
	}
	if course == nil {
		return nil, apperrors.ErrCourseNotFound
	}

	return course, nil
}

// ListCourses retrieves every course with prerequisites expanded.
func (s *courseService) ListCourses(ctx context.Context) ([]*models.Course, error) {
	courses, err := s.courseRepo.GetAll(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("Failed to list courses")
		return nil, fmt.Errorf("error retrieving courses: %w", err)
	}

	return courses, nil
}

// SearchCourses retrieves the courses matching the filter. An empty result
// set is reported as not found rather than as an empty success.
func (s *courseService) SearchCourses(ctx context.Context, filter *models.CourseFilter) ([]*models.Course, error) {
	var courses []*models.Course
	var err error
	if filter.IsZero() {
		courses, err = s.courseRepo.GetAll(ctx)
	} else {
		courses, err = s.courseRepo.Search(ctx, filter)
	}
	if err != nil {
		s.logger.Error().Err(err).Msg("Failed to search courses")
		return nil, fmt.Errorf("error searching courses: %w", err)
	}

	if len(courses) == 0 {
		return nil, apperrors.ErrNoMatchingCourses
	}

	return courses, nil
}

// buildCourse performs field validation and prerequisite resolution shared by
// the create and update paths.
func (s *courseService) buildCourse(ctx context.Context, req *dto.CourseRequest) (*models.Course, error) {
	if err := validateCourseFields(req); err != nil {
		return nil, err
	}

	lectureHours, err := parseCreditHours("lectureCreditHours", req.LectureCreditHours)
	if err != nil {
		return nil, err
	}
	labHours, err := parseCreditHours("labCreditHours", req.LabCreditHours)
	if err != nil {
		return nil, err
	}

	if lectureHours < models.MinLectureCreditHours || lectureHours > models.MaxLectureCreditHours {
		return nil, fmt.Errorf("%w: lecture credit hours must be between %g and %g",
			apperrors.ErrInvalidCreditHours, models.MinLectureCreditHours, models.MaxLectureCreditHours)
	}
	if labHours < models.MinLabCreditHours || labHours > models.MaxLabCreditHours {
		return nil, fmt.Errorf("%w: lab credit hours must be between %g and %g",
			apperrors.ErrInvalidCreditHours, models.MinLabCreditHours, models.MaxLabCreditHours)
	}

	prerequisites, err := s.resolvePrerequisites(ctx, req.Prerequisites)
	if err != nil {
		return nil, err
	}

	return &models.Course{
		Code:               strings.TrimSpace(req.Code),
		Name:               strings.TrimSpace(req.Name),
		Department:         strings.TrimSpace(req.Department),
		Semester:           strings.TrimSpace(req.Semester),
		LectureCreditHours: lectureHours,
		LabCreditHours:     labHours,
		Prerequisites:      prerequisites,
	}, nil
}

// resolvePrerequisites translates a comma-separated list of course codes into
// identity references. All codes must resolve; any unresolved code fails the
// whole operation with the missing codes named. The resolved references keep
// the caller's input order.
func (s *courseService) resolvePrerequisites(ctx context.Context, list string) ([]models.CourseRef, error) {
	codes := SplitPrerequisiteCodes(list)
	if len(codes) == 0 {
		return nil, nil
	}

	found, err := s.courseRepo.GetByCodes(ctx, codes)
	if err != nil {
		s.logger.Error().Err(err).Msg("Failed to resolve prerequisite codes")
		return nil, fmt.Errorf("error resolving prerequisites: %w", err)
	}

	byCode := make(map[string]*models.Course, len(found))
	for _, course := range found {
		byCode[course.Code] = course
	}

	refs := make([]models.CourseRef, 0, len(codes))
	var missing []string
	for _, code := range codes {
		course, ok := byCode[code]
		if !ok {
			missing = append(missing, code)
			continue
		}
		refs = append(refs, models.CourseRef{ID: course.ID, Code: course.Code, Name: course.Name})
	}

	if len(missing) > 0 {
		return nil, &apperrors.CustomError{
			Err:     apperrors.ErrPrerequisiteNotFound,
			Message: fmt.Sprintf("prerequisite courses not found: %s", strings.Join(missing, ", ")),
		}
	}

	return refs, nil
}

// SplitPrerequisiteCodes splits a comma-separated code list, trimming
// whitespace around each token and dropping empty tokens and duplicates.
func SplitPrerequisiteCodes(list string) []string {
	if strings.TrimSpace(list) == "" {
		return nil
	}

	seen := make(map[string]struct{})
	var codes []string
	for _, token := range strings.Split(list, ",") {
		code := strings.TrimSpace(token)
		if code == "" {
			continue
		}
		if _, dup := seen[code]; dup {
			continue
		}
		seen[code] = struct{}{}
		codes = append(codes, code)
	}

	return codes
}

// validateCourseFields checks the required string fields.
func validateCourseFields(req *dto.CourseRequest) error {
	if req == nil {
		return fmt.Errorf("%w: request is nil", apperrors.ErrCourseValidation)
	}
	if strings.TrimSpace(req.Code) == "" {
		return fmt.Errorf("%w: code cannot be empty", apperrors.ErrCourseValidation)
	}
	if !validation.IsValidCourseCode(strings.TrimSpace(req.Code)) {
		return fmt.Errorf("%w: code must be uppercase alphanumeric", apperrors.ErrCourseValidation)
	}
	if name := strings.TrimSpace(req.Name); len(name) < validation.NameMinLength || len(name) > validation.NameMaxLength {
		return fmt.Errorf("%w: name must be between %d and %d characters",
			apperrors.ErrCourseValidation, validation.NameMinLength, validation.NameMaxLength)
	}
	if strings.TrimSpace(req.Department) == "" {
		return fmt.Errorf("%w: department cannot be empty", apperrors.ErrCourseValidation)
	}
	if strings.TrimSpace(req.Semester) == "" {
		return fmt.Errorf("%w: semester cannot be empty", apperrors.ErrCourseValidation)
	}
	return nil
}

// parseCreditHours parses a credit-hour token as a float.
func parseCreditHours(field string, raw dto.CreditHours) (float64, error) {
	value, err := strconv.ParseFloat(strings.TrimSpace(raw.String()), 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %s %q is not numeric", apperrors.ErrInvalidCreditHours, field, raw.String())
	}
	return value, nil
}
