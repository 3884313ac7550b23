package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/unidesk/registrar/internal/app/models"
	"github.com/unidesk/registrar/internal/pkg/logger"
)

// Course error types
var (
	ErrCourseNotFound      = errors.New("course not found")
	ErrCourseAlreadyExists = errors.New("course with this code already exists")
)

// CourseRepository handles database operations for courses
type CourseRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewCourseRepository creates a new course repository
func NewCourseRepository(db *pgxpool.Pool) *CourseRepository {
	return &CourseRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// Create inserts a new course together with its prerequisite links. The
// course row and the links are written in a single transaction; the assigned
// ID is set on the passed course.
func (r *CourseRepository) Create(ctx context.Context, course *models.Course) error {
	exists, err := r.existsByCode(ctx, course.Code, 0)
	if err != nil {
		return err
	}
	if exists {
		return ErrCourseAlreadyExists
	}

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	query := `
		INSERT INTO courses (code, name, department, semester, lecture_credit_hours, lab_credit_hours)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`

	err = tx.QueryRow(ctx, query,
		course.Code, course.Name, course.Department, course.Semester,
		course.LectureCreditHours, course.LabCreditHours,
	).Scan(&course.ID)
	if err != nil {
		return fmt.Errorf("error creating course: %w", err)
	}

	if err := insertPrerequisiteLinks(ctx, tx, course.ID, course.PrerequisiteIDs()); err != nil {
		return err
	}

	return tx.Commit(ctx)
}

// GetByID retrieves a course by ID with its prerequisites expanded.
// Returns nil without error when no course has that ID.
func (r *CourseRepository) GetByID(ctx context.Context, id int64) (*models.Course, error) {
	query := `
		SELECT id, code, name, department, semester, lecture_credit_hours, lab_credit_hours
		FROM courses
		WHERE id = $1
	`

	var course models.Course
	err := r.db.QueryRow(ctx, query, id).Scan(
		&course.ID,
		&course.Code,
		&course.Name,
		&course.Department,
		&course.Semester,
		&course.LectureCreditHours,
		&course.LabCreditHours,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("error retrieving course: %w", err)
	}

	if err := r.loadPrerequisites(ctx, []*models.Course{&course}); err != nil {
		return nil, err
	}

	return &course, nil
}

// GetByCodes retrieves the courses whose code is in the given set. Codes
// without a matching course are simply absent from the result; prerequisite
// expansion is skipped since callers only need identity, code and name.
func (r *CourseRepository) GetByCodes(ctx context.Context, codes []string) ([]*models.Course, error) {
	if len(codes) == 0 {
		return nil, nil
	}

	query := `
		SELECT id, code, name, department, semester, lecture_credit_hours, lab_credit_hours
		FROM courses
		WHERE code = ANY($1)
	`

	rows, err := r.db.Query(ctx, query, codes)
	if err != nil {
		return nil, fmt.Errorf("error retrieving courses by code: %w", err)
	}
	defer rows.Close()

	return scanCourses(rows)
}

// GetAll retrieves all courses with prerequisites expanded.
func (r *CourseRepository) GetAll(ctx context.Context) ([]*models.Course, error) {
	query := `
		SELECT id, code, name, department, semester, lecture_credit_hours, lab_credit_hours
		FROM courses
		ORDER BY id
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	courses, err := scanCourses(rows)
	if err != nil {
		return nil, err
	}

	if err := r.loadPrerequisites(ctx, courses); err != nil {
		return nil, err
	}

	return courses, nil
}

// Search retrieves the courses matching the filter, with prerequisites
// expanded. A nil or empty filter matches everything.
func (r *CourseRepository) Search(ctx context.Context, filter *models.CourseFilter) ([]*models.Course, error) {
	sql, args, err := r.searchQuery(filter)
	if err != nil {
		logger.Error().Err(err).Msg("Error building course search SQL")
		return nil, fmt.Errorf("failed to build course search query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error searching courses: %w", err)
	}
	defer rows.Close()

	courses, err := scanCourses(rows)
	if err != nil {
		return nil, err
	}

	if err := r.loadPrerequisites(ctx, courses); err != nil {
		return nil, err
	}

	return courses, nil
}

// searchQuery translates the filter into SQL. Each filter field maps to a
// fixed operator: ILIKE substring for code/name/department, equality for
// semester, inclusive bounds for the hour ranges.
func (r *CourseRepository) searchQuery(filter *models.CourseFilter) (string, []interface{}, error) {
	sel := r.sb.Select(
		"id", "code", "name", "department", "semester",
		"lecture_credit_hours", "lab_credit_hours",
	).From("courses")

	where := squirrel.And{}
	if filter != nil {
		if filter.Code != nil {
			where = append(where, squirrel.ILike{"code": "%" + *filter.Code + "%"})
		}
		if filter.Name != nil {
			where = append(where, squirrel.ILike{"name": "%" + *filter.Name + "%"})
		}
		if filter.Department != nil {
			where = append(where, squirrel.ILike{"department": "%" + *filter.Department + "%"})
		}
		if filter.Semester != nil {
			where = append(where, squirrel.Eq{"semester": *filter.Semester})
		}
		if filter.MinLectureHours != nil {
			where = append(where, squirrel.GtOrEq{"lecture_credit_hours": *filter.MinLectureHours})
		}
		if filter.MaxLectureHours != nil {
			where = append(where, squirrel.LtOrEq{"lecture_credit_hours": *filter.MaxLectureHours})
		}
		if filter.MinLabHours != nil {
			where = append(where, squirrel.GtOrEq{"lab_credit_hours": *filter.MinLabHours})
		}
		if filter.MaxLabHours != nil {
			where = append(where, squirrel.LtOrEq{"lab_credit_hours": *filter.MaxLabHours})
		}
	}
	if len(where) > 0 {
		sel = sel.Where(where)
	}

	return sel.OrderBy("id").ToSql()
}

// Update replaces the listed fields of an existing course and rewrites its
// prerequisite links, all in one transaction.
func (r *CourseRepository) Update(ctx context.Context, course *models.Course) error {
	exists, err := r.existsByCode(ctx, course.Code, course.ID)
	if err != nil {
		return err
	}
	if exists {
		return ErrCourseAlreadyExists
	}

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	query := `
		UPDATE courses
		SET code = $1, name = $2, department = $3, semester = $4,
		    lecture_credit_hours = $5, lab_credit_hours = $6
		WHERE id = $7
	`

	cmdTag, err := tx.Exec(ctx, query,
		course.Code, course.Name, course.Department, course.Semester,
		course.LectureCreditHours, course.LabCreditHours, course.ID)
	if err != nil {
		return fmt.Errorf("error updating course: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return ErrCourseNotFound
	}

	if _, err := tx.Exec(ctx, `DELETE FROM course_prerequisites WHERE course_id = $1`, course.ID); err != nil {
		return fmt.Errorf("error clearing prerequisite links: %w", err)
	}

	if err := insertPrerequisiteLinks(ctx, tx, course.ID, course.PrerequisiteIDs()); err != nil {
		return err
	}

	return tx.Commit(ctx)
}

// Delete removes a course by ID. Links owned by the course are removed by
// the schema's cascade; links pointing at the course from other courses are
// left in place, so those references dangle.
func (r *CourseRepository) Delete(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM courses WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting course: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return ErrCourseNotFound
	}

	return nil
}

// existsByCode checks whether another course already uses the code.
func (r *CourseRepository) existsByCode(ctx context.Context, code string, excludeID int64) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `
		SELECT EXISTS(SELECT 1 FROM courses WHERE code = $1 AND id != $2)`,
		code, excludeID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("error checking course existence: %w", err)
	}

	return exists, nil
}

// loadPrerequisites expands the prerequisite links of the given courses into
// {id, code, name} references, preserving the stored link order. Dangling
// links (a prerequisite course deleted after linking) resolve to nothing and
// are omitted.
func (r *CourseRepository) loadPrerequisites(ctx context.Context, courses []*models.Course) error {
	if len(courses) == 0 {
		return nil
	}

	byID := make(map[int64]*models.Course, len(courses))
	ids := make([]int64, 0, len(courses))
	for _, course := range courses {
		byID[course.ID] = course
		ids = append(ids, course.ID)
	}

	query := `
		SELECT cp.course_id, c.id, c.code, c.name
		FROM course_prerequisites cp
		JOIN courses c ON c.id = cp.prerequisite_id
		WHERE cp.course_id = ANY($1)
		ORDER BY cp.course_id, cp.position
	`

	rows, err := r.db.Query(ctx, query, ids)
	if err != nil {
		return fmt.Errorf("error loading prerequisites: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var courseID int64
		var ref models.CourseRef
		if err := rows.Scan(&courseID, &ref.ID, &ref.Code, &ref.Name); err != nil {
			return fmt.Errorf("error scanning prerequisite: %w", err)
		}
		if course, ok := byID[courseID]; ok {
			course.Prerequisites = append(course.Prerequisites, ref)
		}
	}

	return rows.Err()
}

// insertPrerequisiteLinks writes ordered prerequisite links for a course.
func insertPrerequisiteLinks(ctx context.Context, tx pgx.Tx, courseID int64, prerequisiteIDs []int64) error {
	for position, prereqID := range prerequisiteIDs {
		_, err := tx.Exec(ctx, `
			INSERT INTO course_prerequisites (course_id, prerequisite_id, position)
			VALUES ($1, $2, $3)`,
			courseID, prereqID, position)
		if err != nil {
			return fmt.Errorf("error linking prerequisite %d: %w", prereqID, err)
		}
	}
	return nil
}

// scanCourses collects course rows.
func scanCourses(rows pgx.Rows) ([]*models.Course, error) {
	var courses []*models.Course
	for rows.Next() {
		var course models.Course
		if err := rows.Scan(
			&course.ID,
			&course.Code,
			&course.Name,
			&course.Department,
			&course.Semester,
			&course.LectureCreditHours,
			&course.LabCreditHours,
		); err != nil {
			return nil, err
		}
		courses = append(courses, &course)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return courses, nil
}
