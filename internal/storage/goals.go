package storage

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/ruziba3vich/edugrow_backend/internal/errors_"
	"github.com/ruziba3vich/edugrow_backend/internal/models"
)

const goalColumns = `id, student_id, title, description, category, target_date, progress, created_at, updated_at`

func scanGoal(row interface{ Scan(...any) error }) (*models.Goal, error) {
	var g models.Goal
	err := row.Scan(&g.ID, &g.StudentID, &g.Title, &g.Description, &g.Category,
		&g.TargetDate, &g.Progress, &g.CreatedAt, &g.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &g, nil
}

func (s *Storage) CreateGoal(ctx context.Context, g *models.Goal) (*models.Goal, error) {
	row := s.db.QueryRowContext(ctx, fmt.Sprintf(`
		INSERT INTO goals (student_id, title, description, category, target_date)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING %s;`, goalColumns),
		g.StudentID, g.Title, g.Description, g.Category, g.TargetDate)
	return scanGoal(row)
}

func (s *Storage) GetGoal(ctx context.Context, id int64) (*models.Goal, error) {
	row := s.db.QueryRowContext(ctx, fmt.Sprintf(
		`SELECT %s FROM goals WHERE id = $1;`, goalColumns), id)
	goal, err := scanGoal(row)
	if err == sql.ErrNoRows {
		return nil, errors_.ErrGoalNotFound
	}
	return goal, err
}

func (s *Storage) ListGoalsByStudent(ctx context.Context, studentID int64) ([]models.Goal, error) {
	rows, err := s.db.QueryContext(ctx, fmt.Sprintf(`
		SELECT %s FROM goals WHERE student_id = $1 ORDER BY created_at DESC;`, goalColumns), studentID)
	if err != nil {
		return nil, fmt.Errorf("list goals: %w", err)
	}
	defer rows.Close()

	var goals []models.Goal
	for rows.Next() {
		g, err := scanGoal(rows)
		if err != nil {
			return nil, fmt.Errorf("scan goal: %w", err)
		}
		goals = append(goals, *g)
	}
	return goals, rows.Err()
}

func (s *Storage) UpdateGoal(ctx context.Context, g *models.Goal) (*models.Goal, error) {
	row := s.db.QueryRowContext(ctx, fmt.Sprintf(`
		UPDATE goals SET
			title = COALESCE(NULLIF($2, ''), title),
			description = COALESCE(NULLIF($3, ''), description),
			category = COALESCE(NULLIF($4, ''), category),
			target_date = COALESCE($5, target_date),
			updated_at = now()
		WHERE id = $1
		RETURNING %s;`, goalColumns),
		g.ID, g.Title, g.Description, g.Category, g.TargetDate)
	goal, err := scanGoal(row)
	if err == sql.ErrNoRows {
		return nil, errors_.ErrGoalNotFound
	}
	return goal, err
}

func (s *Storage) DeleteGoal(ctx context.Context, id int64) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM goals WHERE id = $1;`, id)
	if err != nil {
		return fmt.Errorf("delete goal: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return errors_.ErrGoalNotFound
	}
	return nil
}

func (s *Storage) CreateMilestone(ctx context.Context, goalID int64, title string) (*models.Milestone, error) {
	row := s.db.QueryRowContext(ctx, `
		INSERT INTO milestones (goal_id, title)
		VALUES ($1, $2)
		RETURNING id, goal_id, title, completed, completed_at, created_at;`,
		goalID, title)

	var m models.Milestone
	if err := row.Scan(&m.ID, &m.GoalID, &m.Title, &m.Completed, &m.CompletedAt, &m.CreatedAt); err != nil {
		return nil, fmt.Errorf("create milestone: %w", err)
	}
	return &m, nil
}

func (s *Storage) ListMilestones(ctx context.Context, goalID int64) ([]models.Milestone, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, goal_id, title, completed, completed_at, created_at
		FROM milestones WHERE goal_id = $1 ORDER BY created_at;`, goalID)
	if err != nil {
		return nil, fmt.Errorf("list milestones: %w", err)
	}
	defer rows.Close()

	var milestones []models.Milestone
	for rows.Next() {
		var m models.Milestone
		if err := rows.Scan(&m.ID, &m.GoalID, &m.Title, &m.Completed, &m.CompletedAt, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan milestone: %w", err)
		}
		milestones = append(milestones, m)
	}
	return milestones, rows.Err()
}

// ToggleMilestone flips one milestone's completed flag and recomputes the
// owning goal's progress as the completed ratio, in a single transaction.
func (s *Storage) ToggleMilestone(ctx context.Context, id int64) (*models.Milestone, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	row := tx.QueryRowContext(ctx, `
		UPDATE milestones SET
			completed = NOT completed,
			completed_at = CASE WHEN completed THEN NULL ELSE now() END
		WHERE id = $1
		RETURNING id, goal_id, title, completed, completed_at, created_at;`, id)

	var m models.Milestone
	err = row.Scan(&m.ID, &m.GoalID, &m.Title, &m.Completed, &m.CompletedAt, &m.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, errors_.ErrMilestoneNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("toggle milestone: %w", err)
	}

	if _, err := tx.ExecContext(ctx, `
		UPDATE goals SET
			progress = (
				SELECT COALESCE(round(100.0 * count(*) FILTER (WHERE completed) / count(*)), 0)
				FROM milestones WHERE goal_id = $1
			),
			updated_at = now()
		WHERE id = $1;`, m.GoalID); err != nil {
		return nil, fmt.Errorf("recompute goal progress: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit tx: %w", err)
	}
	return &m, nil
}

func (s *Storage) CreateFeedback(ctx context.Context, f *models.Feedback) (*models.Feedback, error) {
	row := s.db.QueryRowContext(ctx, `
		INSERT INTO feedback (student_id, mentor_name, subject, body, rating)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, student_id, mentor_name, subject, body, rating, created_at;`,
		f.StudentID, f.MentorName, f.Subject, f.Body, f.Rating)

	var out models.Feedback
	if err := row.Scan(&out.ID, &out.StudentID, &out.MentorName, &out.Subject, &out.Body, &out.Rating, &out.CreatedAt); err != nil {
		return nil, fmt.Errorf("create feedback: %w", err)
	}
	return &out, nil
}

func (s *Storage) ListFeedbackByStudent(ctx context.Context, studentID int64) ([]models.Feedback, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, student_id, mentor_name, subject, body, rating, created_at
		FROM feedback WHERE student_id = $1 ORDER BY created_at DESC;`, studentID)
	if err != nil {
		return nil, fmt.Errorf("list feedback: %w", err)
	}
	defer rows.Close()

	var items []models.Feedback
	for rows.Next() {
		var f models.Feedback
		if err := rows.Scan(&f.ID, &f.StudentID, &f.MentorName, &f.Subject, &f.Body, &f.Rating, &f.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan feedback: %w", err)
		}
		items = append(items, f)
	}
	return items, rows.Err()
}
