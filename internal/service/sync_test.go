package service

import (
	"context"
	"database/sql"
	"encoding/json"
	"path/filepath"
	"testing"
	"time"

	"github.com/ruziba3vich/edugrow_backend/internal/errors_"
	"github.com/ruziba3vich/edugrow_backend/internal/models"
	"github.com/ruziba3vich/edugrow_backend/internal/pkg/config"
	"github.com/ruziba3vich/edugrow_backend/internal/platform"
	logger "github.com/ruziba3vich/prodonik_lgger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockSyncStore struct {
	mock.Mock
}

func (m *mockSyncStore) GetStudent(ctx context.Context, id int64) (*models.Student, error) {
	args := m.Called(ctx, id)
	if s := args.Get(0); s != nil {
		return s.(*models.Student), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockSyncStore) GetAcademicRecord(ctx context.Context, studentID int64) (*models.AcademicRecord, error) {
	args := m.Called(ctx, studentID)
	if r := args.Get(0); r != nil {
		return r.(*models.AcademicRecord), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockSyncStore) UpdateSyncOutcome(ctx context.Context, id int64, growthScore float64, platformStats json.RawMessage) error {
	args := m.Called(ctx, id, growthScore, platformStats)
	return args.Error(0)
}

func (m *mockSyncStore) UpsertSnapshot(ctx context.Context, p *models.StageSnapshotParams) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *mockSyncStore) ListSyncableStudents(ctx context.Context) ([]models.Student, error) {
	args := m.Called(ctx)
	if s := args.Get(0); s != nil {
		return s.([]models.Student), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockSyncStore) BulkUpsertSnapshots(ctx context.Context, records []*models.StageSnapshotParams) error {
	args := m.Called(ctx, records)
	return args.Error(0)
}

type mockAggregator struct {
	mock.Mock
}

func (m *mockAggregator) FetchAll(ctx context.Context, refs platform.ProfileRefs) *platform.SyncResult {
	args := m.Called(ctx, refs)
	// fresh copy per call, like the real aggregator
	r := *args.Get(0).(*platform.SyncResult)
	return &r
}

func newTestSyncService(t *testing.T, store SyncStore, agg StatsAggregator) *SyncService {
	t.Helper()
	l, err := logger.NewLogger(filepath.Join(t.TempDir(), "test.log"))
	require.NoError(t, err)
	cfg := &config.Config{SyncWorkers: 2, Delay: time.Millisecond}
	return NewSyncService(store, agg, cfg, l)
}

func student(id int64, github, leetcode, hackerrank string) *models.Student {
	return &models.Student{
		ID:            id,
		GithubRef:     sql.NullString{String: github, Valid: github != ""},
		LeetcodeRef:   sql.NullString{String: leetcode, Valid: leetcode != ""},
		HackerrankRef: sql.NullString{String: hackerrank, Valid: hackerrank != ""},
	}
}

func TestSyncStudentComputesAndPersists(t *testing.T) {
	store := new(mockSyncStore)
	agg := new(mockAggregator)
	svc := newTestSyncService(t, store, agg)

	fetched := &platform.SyncResult{
		GitHub:   &platform.GitHubStats{PublicRepos: 10, TotalStars: 20, RecentCommits: 5},
		Messages: []string{"github: synced"},
	}

	store.On("GetStudent", mock.Anything, int64(7)).Return(student(7, "octocat", "", ""), nil)
	agg.On("FetchAll", mock.Anything, platform.ProfileRefs{GitHub: "octocat"}).Return(fetched)
	store.On("GetAcademicRecord", mock.Anything, int64(7)).Return(nil, errors_.ErrAcademicRecordNotFound)
	store.On("UpdateSyncOutcome", mock.Anything, int64(7), 100.0, mock.Anything).Return(nil)
	store.On("UpsertSnapshot", mock.Anything, mock.MatchedBy(func(p *models.StageSnapshotParams) bool {
		return p.StudentID == 7 && p.GithubRepos == 10 && p.GithubStars == 20 && p.GrowthScore == 100.0
	})).Return(nil)

	result, err := svc.SyncStudent(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, 100.0, result.GrowthScore)
	store.AssertExpectations(t)
	agg.AssertExpectations(t)
}

func TestSyncStudentIncludesAcademics(t *testing.T) {
	store := new(mockSyncStore)
	agg := new(mockAggregator)
	svc := newTestSyncService(t, store, agg)

	store.On("GetStudent", mock.Anything, int64(3)).Return(student(3, "", "someone", ""), nil)
	agg.On("FetchAll", mock.Anything, mock.Anything).Return(&platform.SyncResult{Messages: []string{}})
	store.On("GetAcademicRecord", mock.Anything, int64(3)).
		Return(&models.AcademicRecord{StudentID: 3, CGPA: 5.0}, nil)
	// (5/10)*30 = 15, 1 factor, round(15*4) = 60
	store.On("UpdateSyncOutcome", mock.Anything, int64(3), 60.0, mock.Anything).Return(nil)
	store.On("UpsertSnapshot", mock.Anything, mock.Anything).Return(nil)

	result, err := svc.SyncStudent(context.Background(), 3)
	require.NoError(t, err)
	assert.Equal(t, 60.0, result.GrowthScore)
}

func TestSyncStudentNoPlatforms(t *testing.T) {
	store := new(mockSyncStore)
	agg := new(mockAggregator)
	svc := newTestSyncService(t, store, agg)

	store.On("GetStudent", mock.Anything, int64(9)).Return(student(9, "", "", ""), nil)

	result, err := svc.SyncStudent(context.Background(), 9)
	assert.ErrorIs(t, err, errors_.ErrNoPlatformsConfigured)
	assert.Nil(t, result)
	agg.AssertNotCalled(t, "FetchAll")
}

func TestSyncStudentUnknownStudent(t *testing.T) {
	store := new(mockSyncStore)
	agg := new(mockAggregator)
	svc := newTestSyncService(t, store, agg)

	store.On("GetStudent", mock.Anything, int64(404)).Return(nil, errors_.ErrStudentNotFound)

	_, err := svc.SyncStudent(context.Background(), 404)
	assert.ErrorIs(t, err, errors_.ErrStudentNotFound)
}

func TestStartSyncAllRejectsConcurrentRuns(t *testing.T) {
	store := new(mockSyncStore)
	agg := new(mockAggregator)
	svc := newTestSyncService(t, store, agg)

	started := make(chan struct{})
	release := make(chan struct{})
	store.On("ListSyncableStudents", mock.Anything).Run(func(args mock.Arguments) {
		close(started)
		<-release
	}).Return([]models.Student{}, nil)

	require.NoError(t, svc.StartSyncAll())
	<-started
	assert.ErrorIs(t, svc.StartSyncAll(), errors_.ErrSyncAlreadyRunning)
	assert.True(t, svc.GetSyncStatus().IsOn)

	close(release)
	waitForSyncOff(t, svc)
}

func TestSyncAllProcessesEveryStudent(t *testing.T) {
	store := new(mockSyncStore)
	agg := new(mockAggregator)
	svc := newTestSyncService(t, store, agg)

	students := []models.Student{
		*student(1, "a", "", ""),
		*student(2, "", "b", ""),
		*student(3, "", "", "c"),
	}
	store.On("ListSyncableStudents", mock.Anything).Return(students, nil)
	agg.On("FetchAll", mock.Anything, mock.Anything).
		Return(&platform.SyncResult{GitHub: &platform.GitHubStats{PublicRepos: 1}, Messages: []string{}})
	store.On("GetAcademicRecord", mock.Anything, mock.Anything).Return(nil, errors_.ErrAcademicRecordNotFound)
	store.On("UpdateSyncOutcome", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil)
	store.On("BulkUpsertSnapshots", mock.Anything, mock.MatchedBy(func(records []*models.StageSnapshotParams) bool {
		return len(records) == 3
	})).Return(nil)

	require.NoError(t, svc.StartSyncAll())
	waitForSyncOff(t, svc)

	status := svc.GetSyncStatus()
	assert.Equal(t, int64(3), status.Processed)
	assert.Equal(t, int64(3), status.Total)
	store.AssertExpectations(t)
}

func TestSyncAllRunsWithNonPositiveWorkerConfig(t *testing.T) {
	store := new(mockSyncStore)
	agg := new(mockAggregator)
	l, err := logger.NewLogger(filepath.Join(t.TempDir(), "test.log"))
	require.NoError(t, err)
	// a zero worker count must be clamped, not spin up an empty pool
	cfg := &config.Config{SyncWorkers: 0, Delay: time.Millisecond}
	svc := NewSyncService(store, agg, cfg, l)

	store.On("ListSyncableStudents", mock.Anything).Return([]models.Student{*student(1, "a", "", "")}, nil)
	agg.On("FetchAll", mock.Anything, mock.Anything).
		Return(&platform.SyncResult{GitHub: &platform.GitHubStats{PublicRepos: 1}, Messages: []string{}})
	store.On("GetAcademicRecord", mock.Anything, mock.Anything).Return(nil, errors_.ErrAcademicRecordNotFound)
	store.On("UpdateSyncOutcome", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil)
	store.On("BulkUpsertSnapshots", mock.Anything, mock.Anything).Return(nil)

	require.NoError(t, svc.StartSyncAll())
	waitForSyncOff(t, svc)

	assert.Equal(t, int64(1), svc.GetSyncStatus().Processed)
	assert.NoError(t, svc.StartSyncAll(), "a finished run must not block the next one")
	waitForSyncOff(t, svc)
}

func waitForSyncOff(t *testing.T, svc *SyncService) {
	t.Helper()
	deadline := time.After(5 * time.Second)
	for svc.GetSyncStatus().IsOn {
		select {
		case <-deadline:
			t.Fatal("sync-all did not finish in time")
		case <-time.After(10 * time.Millisecond):
		}
	}
}
