package service

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/ruziba3vich/edugrow_backend/internal/dto"
	"github.com/ruziba3vich/edugrow_backend/internal/errors_"
	"github.com/ruziba3vich/edugrow_backend/internal/models"
	"github.com/ruziba3vich/edugrow_backend/internal/pkg/config"
	"github.com/ruziba3vich/edugrow_backend/internal/platform"
	logger "github.com/ruziba3vich/prodonik_lgger"
)

// SyncService drives the platform aggregation pipeline: one-off syncs of a
// single student and the background sync-all job the daily cron kicks off.
type SyncService struct {
	storage    SyncStore
	aggregator StatsAggregator
	logger     *logger.Logger
	workers    int
	delay      time.Duration

	mu        sync.Mutex
	cancel    context.CancelFunc
	isOn      atomic.Bool
	processed atomic.Int64
	total     atomic.Int64
}

func NewSyncService(storage SyncStore, agg StatsAggregator, cfg *config.Config, log *logger.Logger) *SyncService {
	workers := cfg.SyncWorkers
	if workers < 1 {
		workers = 4
	}
	return &SyncService{
		storage:    storage,
		aggregator: agg,
		logger:     log,
		workers:    workers,
		delay:      cfg.Delay,
	}
}

// SyncStudent refetches every configured platform for one student, recomputes
// the growth score and persists both the stats blob and today's snapshot.
func (s *SyncService) SyncStudent(ctx context.Context, id int64) (*platform.SyncResult, error) {
	student, err := s.storage.GetStudent(ctx, id)
	if err != nil {
		return nil, err
	}

	refs := platform.ProfileRefs{
		GitHub:     student.GithubRef.String,
		LeetCode:   student.LeetcodeRef.String,
		HackerRank: student.HackerrankRef.String,
	}
	if refs.GitHub == "" && refs.LeetCode == "" && refs.HackerRank == "" {
		return nil, errors_.ErrNoPlatformsConfigured
	}

	result := s.aggregator.FetchAll(ctx, refs)

	academics := s.academicsFor(ctx, id)
	result.GrowthScore = platform.CalculateGrowthScore(result.GitHub, result.LeetCode, result.HackerRank, academics)

	if err := s.persistOutcome(ctx, id, result); err != nil {
		s.logger.Errorf("sync: persist student=%d err=%v", id, err)
		return nil, err
	}

	s.logger.Infof("sync: student=%d score=%.0f messages=%v", id, result.GrowthScore, result.Messages)
	return result, nil
}

// StartSyncAll launches the background sync-all job. It returns
// ErrSyncAlreadyRunning if a previous run has not finished.
func (s *SyncService) StartSyncAll() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.isOn.Load() {
		return errors_.ErrSyncAlreadyRunning
	}

	ctx, cancel := context.WithCancel(context.Background())
	s.cancel = cancel
	s.isOn.Store(true)
	s.processed.Store(0)
	s.total.Store(0)

	go s.runSyncAll(ctx)
	return nil
}

// StopSyncing cancels an in-flight sync-all run. Calling it when nothing is
// running is a no-op.
func (s *SyncService) StopSyncing() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cancel != nil {
		s.cancel()
	}
}

func (s *SyncService) GetSyncStatus() dto.GetSyncStatusResponse {
	return dto.GetSyncStatusResponse{
		IsOn:      s.isOn.Load(),
		Processed: s.processed.Load(),
		Total:     s.total.Load(),
	}
}

// runSyncAll fans the syncable students out over a small worker pool, collects
// the day's snapshots and flushes them through the staging table in one go.
func (s *SyncService) runSyncAll(ctx context.Context) {
	defer s.isOn.Store(false)

	students, err := s.storage.ListSyncableStudents(ctx)
	if err != nil {
		s.logger.Errorf("sync-all: list students failed: %v", err)
		return
	}
	s.total.Store(int64(len(students)))
	s.logger.Infof("sync-all: starting students=%d workers=%d delay=%s", len(students), s.workers, s.delay)

	jobs := make(chan models.Student)
	var wg sync.WaitGroup

	var snapMu sync.Mutex
	snapshots := make([]*models.StageSnapshotParams, 0, len(students))

	worker := func() {
		defer wg.Done()
		for student := range jobs {
			result, err := s.syncOne(ctx, &student)
			s.processed.Add(1)
			if err != nil {
				s.logger.Errorf("sync-all: student=%d error=%v", student.ID, err)
				continue
			}

			snapMu.Lock()
			snapshots = append(snapshots, snapshotParams(student.ID, result))
			snapMu.Unlock()

			// be polite between upstream calls
			time.Sleep(s.delay)
		}
	}

	wg.Add(s.workers)
	for i := 0; i < s.workers; i++ {
		go worker()
	}

	for _, student := range students {
		select {
		case <-ctx.Done():
			s.logger.Errorf("sync-all: context canceled")
			close(jobs)
			wg.Wait()
			s.flushSnapshots(snapshots)
			return
		case jobs <- student:
		}
	}
	close(jobs)
	wg.Wait()

	s.flushSnapshots(snapshots)
	s.logger.Infof("sync-all: done. processed=%d students", s.processed.Load())
}

// syncOne is the per-student body of the sync-all worker. Unlike SyncStudent
// it does not write the snapshot itself; the caller batches them.
func (s *SyncService) syncOne(ctx context.Context, student *models.Student) (*platform.SyncResult, error) {
	refs := platform.ProfileRefs{
		GitHub:     student.GithubRef.String,
		LeetCode:   student.LeetcodeRef.String,
		HackerRank: student.HackerrankRef.String,
	}

	result := s.aggregator.FetchAll(ctx, refs)

	academics := s.academicsFor(ctx, student.ID)
	result.GrowthScore = platform.CalculateGrowthScore(result.GitHub, result.LeetCode, result.HackerRank, academics)

	raw, err := json.Marshal(result)
	if err != nil {
		return nil, fmt.Errorf("marshal stats: %w", err)
	}
	if err := s.storage.UpdateSyncOutcome(ctx, student.ID, result.GrowthScore, raw); err != nil {
		return nil, err
	}
	return result, nil
}

// persistOutcome stores the stats blob, the new score and today's snapshot
// for a single-student sync.
func (s *SyncService) persistOutcome(ctx context.Context, id int64, result *platform.SyncResult) error {
	raw, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("marshal stats: %w", err)
	}
	if err := s.storage.UpdateSyncOutcome(ctx, id, result.GrowthScore, raw); err != nil {
		return err
	}
	return s.storage.UpsertSnapshot(ctx, snapshotParams(id, result))
}

// academicsFor loads a student's academic record for scoring. A missing
// record is not an error; it just drops the academics factor.
func (s *SyncService) academicsFor(ctx context.Context, id int64) *platform.AcademicRecord {
	rec, err := s.storage.GetAcademicRecord(ctx, id)
	if err != nil {
		return nil
	}
	return &platform.AcademicRecord{
		CGPA:       rec.CGPA,
		Semester:   rec.Semester,
		Attendance: rec.Attendance,
	}
}

func (s *SyncService) flushSnapshots(snapshots []*models.StageSnapshotParams) {
	if len(snapshots) == 0 {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := s.storage.BulkUpsertSnapshots(ctx, snapshots); err != nil {
		s.logger.Errorf("sync-all: bulk snapshot flush failed: %v", err)
		return
	}
	s.logger.Infof("sync-all: flushed %d snapshots", len(snapshots))
}

func snapshotParams(studentID int64, result *platform.SyncResult) *models.StageSnapshotParams {
	p := &models.StageSnapshotParams{
		StudentID:    studentID,
		SnapshotDate: time.Now().UTC().Truncate(24 * time.Hour),
		GrowthScore:  result.GrowthScore,
	}
	if result.GitHub != nil {
		p.GithubRepos = result.GitHub.PublicRepos
		p.GithubStars = result.GitHub.TotalStars
	}
	if result.LeetCode != nil {
		p.LeetcodeSolved = result.LeetCode.TotalSolved
	}
	if result.HackerRank != nil {
		p.HackerrankBadges = result.HackerRank.Badges
	}
	return p
}
