package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/ruziba3vich/edugrow_backend/internal/errors_"
	"github.com/ruziba3vich/edugrow_backend/internal/models"
)

const (
	progressHistoryTable        = "progress_history"
	stagingProgressHistoryTable = "progress_history_staging"
)

type Storage struct {
	db *sql.DB
}

func NewStorage(db *sql.DB) *Storage {
	return &Storage{db: db}
}

const studentColumns = `id, full_name, email, role, github_ref, leetcode_ref, hackerrank_ref,
	growth_score, COALESCE(platform_stats, 'null'::jsonb), last_synced_at, created_at, updated_at`

func scanStudent(row interface{ Scan(...any) error }) (*models.Student, error) {
	var s models.Student
	err := row.Scan(
		&s.ID, &s.FullName, &s.Email, &s.Role,
		&s.GithubRef, &s.LeetcodeRef, &s.HackerrankRef,
		&s.GrowthScore, &s.PlatformStats, &s.LastSyncedAt,
		&s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (s *Storage) CreateStudent(ctx context.Context, fullName, email, role string) (*models.Student, error) {
	row := s.db.QueryRowContext(ctx, fmt.Sprintf(`
		INSERT INTO students (full_name, email, role)
		VALUES ($1, $2, $3)
		RETURNING %s;`, studentColumns),
		fullName, email, role)
	return scanStudent(row)
}

func (s *Storage) GetStudent(ctx context.Context, id int64) (*models.Student, error) {
	row := s.db.QueryRowContext(ctx, fmt.Sprintf(
		`SELECT %s FROM students WHERE id = $1;`, studentColumns), id)
	student, err := scanStudent(row)
	if err == sql.ErrNoRows {
		return nil, errors_.ErrStudentNotFound
	}
	return student, err
}

func (s *Storage) ListStudents(ctx context.Context, limit, offset int32) ([]models.Student, int64, error) {
	rows, err := s.db.QueryContext(ctx, fmt.Sprintf(`
		SELECT %s FROM students
		ORDER BY growth_score DESC, full_name ASC
		LIMIT $1 OFFSET $2;`, studentColumns),
		limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("list students: %w", err)
	}
	defer rows.Close()

	var students []models.Student
	for rows.Next() {
		st, err := scanStudent(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan student: %w", err)
		}
		students = append(students, *st)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	var total int64
	if err := s.db.QueryRowContext(ctx, `SELECT count(*) FROM students;`).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count students: %w", err)
	}
	return students, total, nil
}

func (s *Storage) UpdateStudent(ctx context.Context, id int64, fullName, email, role string) (*models.Student, error) {
	row := s.db.QueryRowContext(ctx, fmt.Sprintf(`
		UPDATE students SET
			full_name = COALESCE(NULLIF($2, ''), full_name),
			email = COALESCE(NULLIF($3, ''), email),
			role = COALESCE(NULLIF($4, ''), role),
			updated_at = now()
		WHERE id = $1
		RETURNING %s;`, studentColumns),
		id, fullName, email, role)
	student, err := scanStudent(row)
	if err == sql.ErrNoRows {
		return nil, errors_.ErrStudentNotFound
	}
	return student, err
}

func (s *Storage) DeleteStudent(ctx context.Context, id int64) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM students WHERE id = $1;`, id)
	if err != nil {
		return fmt.Errorf("delete student: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return errors_.ErrStudentNotFound
	}
	return nil
}

func (s *Storage) UpdatePlatformRefs(ctx context.Context, id int64, github, leetcode, hackerrank string) (*models.Student, error) {
	row := s.db.QueryRowContext(ctx, fmt.Sprintf(`
		UPDATE students SET
			github_ref = NULLIF($2, ''),
			leetcode_ref = NULLIF($3, ''),
			hackerrank_ref = NULLIF($4, ''),
			updated_at = now()
		WHERE id = $1
		RETURNING %s;`, studentColumns),
		id, github, leetcode, hackerrank)
	student, err := scanStudent(row)
	if err == sql.ErrNoRows {
		return nil, errors_.ErrStudentNotFound
	}
	return student, err
}

// UpdateSyncOutcome persists the result of one sync run onto the student
// row: new growth score plus the raw normalized platform payloads.
func (s *Storage) UpdateSyncOutcome(ctx context.Context, id int64, growthScore float64, platformStats json.RawMessage) error {
	res, err := s.db.ExecContext(ctx, `
		UPDATE students SET
			growth_score = $2,
			platform_stats = $3,
			last_synced_at = now(),
			updated_at = now()
		WHERE id = $1;`,
		id, growthScore, platformStats)
	if err != nil {
		return fmt.Errorf("update sync outcome: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return errors_.ErrStudentNotFound
	}
	return nil
}

// ListSyncableStudents returns every student with at least one platform
// reference configured, for the bulk sync path.
func (s *Storage) ListSyncableStudents(ctx context.Context) ([]models.Student, error) {
	rows, err := s.db.QueryContext(ctx, fmt.Sprintf(`
		SELECT %s FROM students
		WHERE github_ref IS NOT NULL OR leetcode_ref IS NOT NULL OR hackerrank_ref IS NOT NULL
		ORDER BY id;`, studentColumns))
	if err != nil {
		return nil, fmt.Errorf("list syncable students: %w", err)
	}
	defer rows.Close()

	var students []models.Student
	for rows.Next() {
		st, err := scanStudent(rows)
		if err != nil {
			return nil, fmt.Errorf("scan student: %w", err)
		}
		students = append(students, *st)
	}
	return students, rows.Err()
}

func (s *Storage) UpsertAcademicRecord(ctx context.Context, rec *models.AcademicRecord) (*models.AcademicRecord, error) {
	row := s.db.QueryRowContext(ctx, `
		INSERT INTO academic_records (student_id, cgpa, semester, attendance, updated_at)
		VALUES ($1, $2, $3, $4, now())
		ON CONFLICT (student_id) DO UPDATE SET
			cgpa = EXCLUDED.cgpa,
			semester = EXCLUDED.semester,
			attendance = EXCLUDED.attendance,
			updated_at = now()
		RETURNING student_id, cgpa, semester, attendance, updated_at;`,
		rec.StudentID, rec.CGPA, rec.Semester, rec.Attendance)

	var out models.AcademicRecord
	if err := row.Scan(&out.StudentID, &out.CGPA, &out.Semester, &out.Attendance, &out.UpdatedAt); err != nil {
		return nil, fmt.Errorf("upsert academic record: %w", err)
	}
	return &out, nil
}

func (s *Storage) GetAcademicRecord(ctx context.Context, studentID int64) (*models.AcademicRecord, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT student_id, cgpa, semester, attendance, updated_at
		FROM academic_records WHERE student_id = $1;`, studentID)

	var out models.AcademicRecord
	err := row.Scan(&out.StudentID, &out.CGPA, &out.Semester, &out.Attendance, &out.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, errors_.ErrAcademicRecordNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get academic record: %w", err)
	}
	return &out, nil
}
