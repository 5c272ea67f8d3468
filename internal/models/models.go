package models

import (
	"database/sql"
	"encoding/json"
	"time"
)

type Student struct {
	ID            int64           `json:"id"`
	FullName      string          `json:"full_name"`
	Email         string          `json:"email"`
	Role          string          `json:"role"`
	GithubRef     sql.NullString  `json:"github_ref"`
	LeetcodeRef   sql.NullString  `json:"leetcode_ref"`
	HackerrankRef sql.NullString  `json:"hackerrank_ref"`
	GrowthScore   float64         `json:"growth_score"`
	PlatformStats json.RawMessage `json:"platform_stats"`
	LastSyncedAt  sql.NullTime    `json:"last_synced_at"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

type AcademicRecord struct {
	StudentID  int64     `json:"student_id"`
	CGPA       float64   `json:"cgpa"`
	Semester   int       `json:"semester"`
	Attendance float64   `json:"attendance"`
	UpdatedAt  time.Time `json:"updated_at"`
}

type Goal struct {
	ID          int64        `json:"id"`
	StudentID   int64        `json:"student_id"`
	Title       string       `json:"title"`
	Description string       `json:"description"`
	Category    string       `json:"category"`
	TargetDate  sql.NullTime `json:"target_date"`
	Progress    int          `json:"progress"`
	CreatedAt   time.Time    `json:"created_at"`
	UpdatedAt   time.Time    `json:"updated_at"`
}

type Milestone struct {
	ID          int64        `json:"id"`
	GoalID      int64        `json:"goal_id"`
	Title       string       `json:"title"`
	Completed   bool         `json:"completed"`
	CompletedAt sql.NullTime `json:"completed_at"`
	CreatedAt   time.Time    `json:"created_at"`
}

type Feedback struct {
	ID         int64     `json:"id"`
	StudentID  int64     `json:"student_id"`
	MentorName string    `json:"mentor_name"`
	Subject    string    `json:"subject"`
	Body       string    `json:"body"`
	Rating     int       `json:"rating"`
	CreatedAt  time.Time `json:"created_at"`
}

type ProgressSnapshot struct {
	ID               int64     `json:"id"`
	StudentID        int64     `json:"student_id"`
	SnapshotDate     time.Time `json:"snapshot_date"`
	GrowthScore      float64   `json:"growth_score"`
	GithubRepos      int       `json:"github_repos"`
	GithubStars      int       `json:"github_stars"`
	LeetcodeSolved   int       `json:"leetcode_solved"`
	HackerrankBadges int       `json:"hackerrank_badges"`
}

// StageSnapshotParams is one row bound for the progress_history staging
// table during a bulk sync-all flush.
type StageSnapshotParams struct {
	StudentID        int64
	SnapshotDate     time.Time
	GrowthScore      float64
	GithubRepos      int
	GithubStars      int
	LeetcodeSolved   int
	HackerrankBadges int
}
