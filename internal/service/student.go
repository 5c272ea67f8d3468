package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/ruziba3vich/edugrow_backend/internal/dto"
	"github.com/ruziba3vich/edugrow_backend/internal/models"
	logger "github.com/ruziba3vich/prodonik_lgger"
)

type StudentService struct {
	storage StudentStore
	logger  *logger.Logger
}

func NewStudentService(storage StudentStore, log *logger.Logger) *StudentService {
	return &StudentService{storage: storage, logger: log}
}

func (s *StudentService) CreateStudent(ctx context.Context, req *dto.CreateStudentRequest) (*models.Student, error) {
	if strings.TrimSpace(req.FullName) == "" {
		return nil, fmt.Errorf("full name is required")
	}
	role := req.Role
	if role == "" {
		role = "student"
	}

	student, err := s.storage.CreateStudent(ctx, strings.TrimSpace(req.FullName), strings.TrimSpace(req.Email), role)
	if err != nil {
		s.logger.Errorf("CreateStudent: email=%s err=%v", req.Email, err)
		return nil, err
	}
	s.logger.Infof("CreateStudent: email=%s id=%d", student.Email, student.ID)
	return student, nil
}

func (s *StudentService) GetStudent(ctx context.Context, id int64) (*models.Student, error) {
	student, err := s.storage.GetStudent(ctx, id)
	if err != nil {
		s.logger.Errorf("GetStudent: id=%d err=%v", id, err)
		return nil, err
	}
	return student, nil
}

func (s *StudentService) ListStudents(ctx context.Context, page, limit int) (*dto.ListStudentsResponse, error) {
	offset := (page - 1) * limit
	students, total, err := s.storage.ListStudents(ctx, int32(limit), int32(offset))
	if err != nil {
		s.logger.Errorf("ListStudents: page=%d limit=%d err=%v", page, limit, err)
		return nil, err
	}
	return &dto.ListStudentsResponse{
		Students:   students,
		TotalCount: total,
		PageLimit:  dto.PageLimit{Page: page, Limit: limit},
	}, nil
}

func (s *StudentService) UpdateStudent(ctx context.Context, id int64, req *dto.UpdateStudentRequest) (*models.Student, error) {
	student, err := s.storage.UpdateStudent(ctx, id, req.FullName, req.Email, req.Role)
	if err != nil {
		s.logger.Errorf("UpdateStudent: id=%d err=%v", id, err)
		return nil, err
	}
	s.logger.Infof("UpdateStudent: id=%d ok", id)
	return student, nil
}

func (s *StudentService) DeleteStudent(ctx context.Context, id int64) error {
	if err := s.storage.DeleteStudent(ctx, id); err != nil {
		s.logger.Errorf("DeleteStudent: id=%d err=%v", id, err)
		return err
	}
	s.logger.Infof("DeleteStudent: id=%d ok", id)
	return nil
}

// UpdatePlatforms replaces a student's stored platform references. Setting
// a reference does not trigger a refetch; the next sync picks it up.
func (s *StudentService) UpdatePlatforms(ctx context.Context, id int64, req *dto.UpdatePlatformsRequest) (*models.Student, error) {
	student, err := s.storage.UpdatePlatformRefs(ctx, id,
		strings.TrimSpace(req.Github), strings.TrimSpace(req.Leetcode), strings.TrimSpace(req.Hackerrank))
	if err != nil {
		s.logger.Errorf("UpdatePlatforms: id=%d err=%v", id, err)
		return nil, err
	}
	s.logger.Infof("UpdatePlatforms: id=%d github=%q leetcode=%q hackerrank=%q",
		id, req.Github, req.Leetcode, req.Hackerrank)
	return student, nil
}

func (s *StudentService) UpsertAcademics(ctx context.Context, id int64, req *dto.UpsertAcademicsRequest) (*models.AcademicRecord, error) {
	if _, err := s.storage.GetStudent(ctx, id); err != nil {
		return nil, err
	}
	rec, err := s.storage.UpsertAcademicRecord(ctx, &models.AcademicRecord{
		StudentID:  id,
		CGPA:       req.CGPA,
		Semester:   req.Semester,
		Attendance: req.Attendance,
	})
	if err != nil {
		s.logger.Errorf("UpsertAcademics: id=%d err=%v", id, err)
		return nil, err
	}
	s.logger.Infof("UpsertAcademics: id=%d cgpa=%.2f semester=%d", id, rec.CGPA, rec.Semester)
	return rec, nil
}

func (s *StudentService) GetAcademics(ctx context.Context, id int64) (*models.AcademicRecord, error) {
	rec, err := s.storage.GetAcademicRecord(ctx, id)
	if err != nil {
		s.logger.Errorf("GetAcademics: id=%d err=%v", id, err)
		return nil, err
	}
	return rec, nil
}

func (s *StudentService) GetHistory(ctx context.Context, id int64, limit int) ([]models.ProgressSnapshot, error) {
	if limit <= 0 || limit > 365 {
		limit = 90
	}
	snapshots, err := s.storage.ListSnapshots(ctx, id, int32(limit))
	if err != nil {
		s.logger.Errorf("GetHistory: id=%d err=%v", id, err)
		return nil, err
	}
	return snapshots, nil
}

func (s *StudentService) CreateFeedback(ctx context.Context, req *dto.CreateFeedbackRequest) (*models.Feedback, error) {
	if _, err := s.storage.GetStudent(ctx, req.StudentID); err != nil {
		return nil, err
	}
	fb, err := s.storage.CreateFeedback(ctx, &models.Feedback{
		StudentID:  req.StudentID,
		MentorName: req.MentorName,
		Subject:    req.Subject,
		Body:       req.Body,
		Rating:     req.Rating,
	})
	if err != nil {
		s.logger.Errorf("CreateFeedback: student=%d err=%v", req.StudentID, err)
		return nil, err
	}
	s.logger.Infof("CreateFeedback: student=%d id=%d", fb.StudentID, fb.ID)
	return fb, nil
}

func (s *StudentService) ListFeedback(ctx context.Context, studentID int64) ([]models.Feedback, error) {
	items, err := s.storage.ListFeedbackByStudent(ctx, studentID)
	if err != nil {
		s.logger.Errorf("ListFeedback: student=%d err=%v", studentID, err)
		return nil, err
	}
	return items, nil
}
