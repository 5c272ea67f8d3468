package service

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/ruziba3vich/edugrow_backend/internal/dto"
	"github.com/ruziba3vich/edugrow_backend/internal/models"
	logger "github.com/ruziba3vich/prodonik_lgger"
)

type GoalService struct {
	storage StudentStore
	logger  *logger.Logger
}

func NewGoalService(storage StudentStore, log *logger.Logger) *GoalService {
	return &GoalService{storage: storage, logger: log}
}

func (s *GoalService) CreateGoal(ctx context.Context, req *dto.CreateGoalRequest) (*models.Goal, error) {
	if _, err := s.storage.GetStudent(ctx, req.StudentID); err != nil {
		return nil, err
	}

	target, err := parseTargetDate(req.TargetDate)
	if err != nil {
		return nil, err
	}

	goal, err := s.storage.CreateGoal(ctx, &models.Goal{
		StudentID:   req.StudentID,
		Title:       req.Title,
		Description: req.Description,
		Category:    req.Category,
		TargetDate:  target,
	})
	if err != nil {
		s.logger.Errorf("CreateGoal: student=%d err=%v", req.StudentID, err)
		return nil, err
	}
	s.logger.Infof("CreateGoal: student=%d id=%d title=%q", goal.StudentID, goal.ID, goal.Title)
	return goal, nil
}

func (s *GoalService) GetGoal(ctx context.Context, id int64) (*dto.GoalWithMilestones, error) {
	goal, err := s.storage.GetGoal(ctx, id)
	if err != nil {
		s.logger.Errorf("GetGoal: id=%d err=%v", id, err)
		return nil, err
	}
	milestones, err := s.storage.ListMilestones(ctx, id)
	if err != nil {
		s.logger.Errorf("GetGoal: id=%d milestones err=%v", id, err)
		return nil, err
	}
	return &dto.GoalWithMilestones{Goal: *goal, Milestones: milestones}, nil
}

func (s *GoalService) ListGoals(ctx context.Context, studentID int64) ([]dto.GoalWithMilestones, error) {
	goals, err := s.storage.ListGoalsByStudent(ctx, studentID)
	if err != nil {
		s.logger.Errorf("ListGoals: student=%d err=%v", studentID, err)
		return nil, err
	}

	out := make([]dto.GoalWithMilestones, 0, len(goals))
	for _, goal := range goals {
		milestones, err := s.storage.ListMilestones(ctx, goal.ID)
		if err != nil {
			s.logger.Errorf("ListGoals: goal=%d milestones err=%v", goal.ID, err)
			return nil, err
		}
		out = append(out, dto.GoalWithMilestones{Goal: goal, Milestones: milestones})
	}
	return out, nil
}

func (s *GoalService) UpdateGoal(ctx context.Context, id int64, req *dto.UpdateGoalRequest) (*models.Goal, error) {
	goal, err := s.storage.GetGoal(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Title != "" {
		goal.Title = req.Title
	}
	if req.Description != "" {
		goal.Description = req.Description
	}
	if req.Category != "" {
		goal.Category = req.Category
	}
	if req.TargetDate != "" {
		target, err := parseTargetDate(req.TargetDate)
		if err != nil {
			return nil, err
		}
		goal.TargetDate = target
	}

	updated, err := s.storage.UpdateGoal(ctx, goal)
	if err != nil {
		s.logger.Errorf("UpdateGoal: id=%d err=%v", id, err)
		return nil, err
	}
	s.logger.Infof("UpdateGoal: id=%d ok", id)
	return updated, nil
}

func (s *GoalService) DeleteGoal(ctx context.Context, id int64) error {
	if err := s.storage.DeleteGoal(ctx, id); err != nil {
		s.logger.Errorf("DeleteGoal: id=%d err=%v", id, err)
		return err
	}
	s.logger.Infof("DeleteGoal: id=%d ok", id)
	return nil
}

func (s *GoalService) AddMilestone(ctx context.Context, goalID int64, req *dto.CreateMilestoneRequest) (*models.Milestone, error) {
	if _, err := s.storage.GetGoal(ctx, goalID); err != nil {
		return nil, err
	}
	m, err := s.storage.CreateMilestone(ctx, goalID, req.Title)
	if err != nil {
		s.logger.Errorf("AddMilestone: goal=%d err=%v", goalID, err)
		return nil, err
	}
	s.logger.Infof("AddMilestone: goal=%d id=%d", goalID, m.ID)
	return m, nil
}

// ToggleMilestone flips a milestone's completed flag and recomputes the
// parent goal's progress percentage in the same transaction.
func (s *GoalService) ToggleMilestone(ctx context.Context, id int64) (*models.Milestone, error) {
	m, err := s.storage.ToggleMilestone(ctx, id)
	if err != nil {
		s.logger.Errorf("ToggleMilestone: id=%d err=%v", id, err)
		return nil, err
	}
	s.logger.Infof("ToggleMilestone: id=%d completed=%v", m.ID, m.Completed)
	return m, nil
}

func parseTargetDate(raw string) (sql.NullTime, error) {
	if raw == "" {
		return sql.NullTime{}, nil
	}
	t, err := time.Parse("2006-01-02", raw)
	if err != nil {
		return sql.NullTime{}, fmt.Errorf("invalid target_date %q, want YYYY-MM-DD", raw)
	}
	return sql.NullTime{Time: t, Valid: true}, nil
}
