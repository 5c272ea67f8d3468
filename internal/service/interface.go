package service

import (
	"context"
	"encoding/json"

	"github.com/ruziba3vich/edugrow_backend/internal/models"
	"github.com/ruziba3vich/edugrow_backend/internal/platform"
)

// StudentStore is what the student/goal services need from the storage
// layer. *storage.Storage satisfies it; tests substitute mocks.
type StudentStore interface {
	CreateStudent(ctx context.Context, fullName, email, role string) (*models.Student, error)
	GetStudent(ctx context.Context, id int64) (*models.Student, error)
	ListStudents(ctx context.Context, limit, offset int32) ([]models.Student, int64, error)
	UpdateStudent(ctx context.Context, id int64, fullName, email, role string) (*models.Student, error)
	DeleteStudent(ctx context.Context, id int64) error
	UpdatePlatformRefs(ctx context.Context, id int64, github, leetcode, hackerrank string) (*models.Student, error)
	UpsertAcademicRecord(ctx context.Context, rec *models.AcademicRecord) (*models.AcademicRecord, error)
	GetAcademicRecord(ctx context.Context, studentID int64) (*models.AcademicRecord, error)
	ListSnapshots(ctx context.Context, studentID int64, limit int32) ([]models.ProgressSnapshot, error)

	CreateGoal(ctx context.Context, g *models.Goal) (*models.Goal, error)
	GetGoal(ctx context.Context, id int64) (*models.Goal, error)
	ListGoalsByStudent(ctx context.Context, studentID int64) ([]models.Goal, error)
	UpdateGoal(ctx context.Context, g *models.Goal) (*models.Goal, error)
	DeleteGoal(ctx context.Context, id int64) error
	CreateMilestone(ctx context.Context, goalID int64, title string) (*models.Milestone, error)
	ListMilestones(ctx context.Context, goalID int64) ([]models.Milestone, error)
	ToggleMilestone(ctx context.Context, id int64) (*models.Milestone, error)
	CreateFeedback(ctx context.Context, f *models.Feedback) (*models.Feedback, error)
	ListFeedbackByStudent(ctx context.Context, studentID int64) ([]models.Feedback, error)
}

// SyncStore is the persistence surface of the sync pipeline.
type SyncStore interface {
	GetStudent(ctx context.Context, id int64) (*models.Student, error)
	GetAcademicRecord(ctx context.Context, studentID int64) (*models.AcademicRecord, error)
	UpdateSyncOutcome(ctx context.Context, id int64, growthScore float64, platformStats json.RawMessage) error
	UpsertSnapshot(ctx context.Context, p *models.StageSnapshotParams) error
	ListSyncableStudents(ctx context.Context) ([]models.Student, error)
	BulkUpsertSnapshots(ctx context.Context, records []*models.StageSnapshotParams) error
}

// StatsAggregator abstracts the platform fan-out for tests.
type StatsAggregator interface {
	FetchAll(ctx context.Context, refs platform.ProfileRefs) *platform.SyncResult
}
