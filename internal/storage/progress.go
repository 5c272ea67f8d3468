package storage

import (
	"context"
	"fmt"

	"github.com/lib/pq"
	"github.com/ruziba3vich/edugrow_backend/internal/models"
)

// UpsertSnapshot writes one student's daily snapshot. Re-syncing the same
// day overwrites the row rather than appending a second one.
func (s *Storage) UpsertSnapshot(ctx context.Context, p *models.StageSnapshotParams) error {
	_, err := s.db.ExecContext(ctx, fmt.Sprintf(`
		INSERT INTO %s (student_id, snapshot_date, growth_score, github_repos, github_stars, leetcode_solved, hackerrank_badges)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (student_id, snapshot_date) DO UPDATE SET
			growth_score = EXCLUDED.growth_score,
			github_repos = EXCLUDED.github_repos,
			github_stars = EXCLUDED.github_stars,
			leetcode_solved = EXCLUDED.leetcode_solved,
			hackerrank_badges = EXCLUDED.hackerrank_badges;`, progressHistoryTable),
		p.StudentID, p.SnapshotDate, p.GrowthScore, p.GithubRepos, p.GithubStars, p.LeetcodeSolved, p.HackerrankBadges)
	if err != nil {
		return fmt.Errorf("upsert snapshot: %w", err)
	}
	return nil
}

// BulkUpsertSnapshots copies all records into the staging table, then
// merges into the actual table with an upsert. Used by sync-all, where one
// run can touch every student.
func (s *Storage) BulkUpsertSnapshots(ctx context.Context, records []*models.StageSnapshotParams) error {
	if len(records) == 0 {
		return nil
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	// Clean staging table
	if _, err := tx.ExecContext(ctx, fmt.Sprintf("TRUNCATE %s;", stagingProgressHistoryTable)); err != nil {
		return fmt.Errorf("truncate staging: %w", err)
	}

	// Prepare COPY INTO staging
	stmt, err := tx.Prepare(pq.CopyIn(
		stagingProgressHistoryTable,
		"student_id",
		"snapshot_date",
		"growth_score",
		"github_repos",
		"github_stars",
		"leetcode_solved",
		"hackerrank_badges",
	))
	if err != nil {
		return fmt.Errorf("prepare copyin: %w", err)
	}

	for _, r := range records {
		if _, err := stmt.Exec(
			r.StudentID,
			r.SnapshotDate,
			r.GrowthScore,
			r.GithubRepos,
			r.GithubStars,
			r.LeetcodeSolved,
			r.HackerrankBadges,
		); err != nil {
			return fmt.Errorf("copyin exec: %w", err)
		}
	}

	if _, err := stmt.Exec(); err != nil {
		return fmt.Errorf("finalize copyin: %w", err)
	}
	if err := stmt.Close(); err != nil {
		return fmt.Errorf("close stmt: %w", err)
	}

	// Merge into actual table with upsert
	mergeQuery := fmt.Sprintf(`
		INSERT INTO %s (
			student_id,
			snapshot_date,
			growth_score,
			github_repos,
			github_stars,
			leetcode_solved,
			hackerrank_badges
		)
		SELECT
			student_id,
			snapshot_date,
			growth_score,
			github_repos,
			github_stars,
			leetcode_solved,
			hackerrank_badges
		FROM %s
		ON CONFLICT (student_id, snapshot_date) DO UPDATE SET
			growth_score = EXCLUDED.growth_score,
			github_repos = EXCLUDED.github_repos,
			github_stars = EXCLUDED.github_stars,
			leetcode_solved = EXCLUDED.leetcode_solved,
			hackerrank_badges = EXCLUDED.hackerrank_badges;
	`, progressHistoryTable, stagingProgressHistoryTable)

	if _, err := tx.ExecContext(ctx, mergeQuery); err != nil {
		return fmt.Errorf("merge into actual table: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit tx: %w", err)
	}
	return nil
}

// ListSnapshots returns the most recent snapshots for one student, newest
// first, capped at limit.
func (s *Storage) ListSnapshots(ctx context.Context, studentID int64, limit int32) ([]models.ProgressSnapshot, error) {
	rows, err := s.db.QueryContext(ctx, fmt.Sprintf(`
		SELECT id, student_id, snapshot_date, growth_score, github_repos, github_stars, leetcode_solved, hackerrank_badges
		FROM %s
		WHERE student_id = $1
		ORDER BY snapshot_date DESC
		LIMIT $2;`, progressHistoryTable),
		studentID, limit)
	if err != nil {
		return nil, fmt.Errorf("list snapshots: %w", err)
	}
	defer rows.Close()

	var snapshots []models.ProgressSnapshot
	for rows.Next() {
		var p models.ProgressSnapshot
		if err := rows.Scan(&p.ID, &p.StudentID, &p.SnapshotDate, &p.GrowthScore,
			&p.GithubRepos, &p.GithubStars, &p.LeetcodeSolved, &p.HackerrankBadges); err != nil {
			return nil, fmt.Errorf("scan snapshot: %w", err)
		}
		snapshots = append(snapshots, p)
	}
	return snapshots, rows.Err()
}
