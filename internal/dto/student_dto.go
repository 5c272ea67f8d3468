package dto

import "github.com/ruziba3vich/edugrow_backend/internal/models"

type (
	CreateStudentRequest struct {
		FullName string `json:"full_name" binding:"required"`
		Email    string `json:"email" binding:"required,email"`
		Role     string `json:"role"`
	}

	UpdateStudentRequest struct {
		FullName string `json:"full_name"`
		Email    string `json:"email"`
		Role     string `json:"role"`
	}

	UpdatePlatformsRequest struct {
		Github     string `json:"github"`
		Leetcode   string `json:"leetcode"`
		Hackerrank string `json:"hackerrank"`
	}

	UpsertAcademicsRequest struct {
		CGPA       float64 `json:"cgpa" binding:"min=0,max=10"`
		Semester   int     `json:"semester" binding:"min=1"`
		Attendance float64 `json:"attendance" binding:"min=0,max=100"`
	}

	PageLimit struct {
		Page  int `form:"page"  binding:"required,min=1"`
		Limit int `form:"limit" binding:"required,min=1,max=100"`
	}

	ListStudentsResponse struct {
		Students   []models.Student `json:"students"`
		TotalCount int64            `json:"total_count"`
		PageLimit
	}

	CreateGoalRequest struct {
		StudentID   int64  `json:"student_id" binding:"required"`
		Title       string `json:"title" binding:"required"`
		Description string `json:"description"`
		Category    string `json:"category"`
		TargetDate  string `json:"target_date"` // YYYY-MM-DD, optional
	}

	UpdateGoalRequest struct {
		Title       string `json:"title"`
		Description string `json:"description"`
		Category    string `json:"category"`
		TargetDate  string `json:"target_date"`
	}

	CreateMilestoneRequest struct {
		Title string `json:"title" binding:"required"`
	}

	GoalWithMilestones struct {
		models.Goal
		Milestones []models.Milestone `json:"milestones"`
	}

	CreateFeedbackRequest struct {
		StudentID  int64  `json:"student_id" binding:"required"`
		MentorName string `json:"mentor_name" binding:"required"`
		Subject    string `json:"subject"`
		Body       string `json:"body" binding:"required"`
		Rating     int    `json:"rating" binding:"min=0,max=5"`
	}

	GetSyncStatusResponse struct {
		IsOn      bool  `json:"is_on"`
		Processed int64 `json:"processed"`
		Total     int64 `json:"total"`
	}
)
