package seed

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/unidesk/registrar/internal/app/models"
	"github.com/unidesk/registrar/internal/app/repositories"
)

// CreateDefaultCourses inserts a small starter catalog so a fresh
// development database has something to list and search. Courses that
// already exist are left untouched.
func CreateDefaultCourses(ctx context.Context, dbPool *pgxpool.Pool, lgr zerolog.Logger) error {
	courseRepo := repositories.NewCourseRepository(dbPool)

	lgr.Info().Msg("Checking/Creating default course catalog...")

	intro := &models.Course{
		Code:               "CS101",
		Name:               "Introduction to Programming",
		Department:         "Computer Engineering",
		Semester:           string(models.SemesterFall),
		LectureCreditHours: 3,
		LabCreditHours:     1,
	}
	structures := &models.Course{
		Code:               "CS102",
		Name:               "Data Structures",
		Department:         "Computer Engineering",
		Semester:           string(models.SemesterSpring),
		LectureCreditHours: 3,
		LabCreditHours:     1,
	}
	calculus := &models.Course{
		Code:               "MATH101",
		Name:               "Calculus I",
		Department:         "Mathematics",
		Semester:           string(models.SemesterFall),
		LectureCreditHours: 3,
		LabCreditHours:     0,
	}

	var finalErr error
	for _, course := range []*models.Course{intro, structures, calculus} {
		err := courseRepo.Create(ctx, course)
		if err != nil && !errors.Is(err, repositories.ErrCourseAlreadyExists) {
			lgr.Error().Err(err).Str("code", course.Code).Msg("Error creating default course")
			finalErr = errors.Join(finalErr, err)
		}
	}

	// Operating Systems builds on the two CS courses; link it only when the
	// introductory rows were actually created in this run.
	if intro.ID > 0 && structures.ID > 0 {
		os := &models.Course{
			Code:               "CS301",
			Name:               "Operating Systems",
			Department:         "Computer Engineering",
			Semester:           string(models.SemesterFall),
			LectureCreditHours: 3,
			LabCreditHours:     1,
			Prerequisites: []models.CourseRef{
				{ID: intro.ID},
				{ID: structures.ID},
			},
		}
		err := courseRepo.Create(ctx, os)
		if err != nil && !errors.Is(err, repositories.ErrCourseAlreadyExists) {
			lgr.Error().Err(err).Str("code", os.Code).Msg("Error creating default course")
			finalErr = errors.Join(finalErr, err)
		}
	}

	if finalErr == nil {
		lgr.Info().Msg("Default course catalog is in place")
	}
	return finalErr
}
