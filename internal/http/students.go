package http

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/ruziba3vich/edugrow_backend/internal/dto"
	"github.com/ruziba3vich/edugrow_backend/internal/errors_"
	"github.com/ruziba3vich/edugrow_backend/internal/service"
	logger "github.com/ruziba3vich/prodonik_lgger"
)

type Handler struct {
	students *service.StudentService
	goals    *service.GoalService
	sync     *service.SyncService
	logger   *logger.Logger
}

func NewHandler(students *service.StudentService, goals *service.GoalService, sync *service.SyncService, logger *logger.Logger) *Handler {
	return &Handler{
		students: students,
		goals:    goals,
		sync:     sync,
		logger:   logger,
	}
}

func idParam(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return 0, false
	}
	return id, true
}

func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, errors_.ErrStudentNotFound),
		errors.Is(err, errors_.ErrGoalNotFound),
		errors.Is(err, errors_.ErrMilestoneNotFound),
		errors.Is(err, errors_.ErrAcademicRecordNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, errors_.ErrNoPlatformsConfigured):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}

// CreateStudent godoc
// @Summary     Create a student
// @Description Registers a new student with a name, email and optional role.
// @Tags        students
// @Accept      json
// @Produce     json
// @Param       body  body     dto.CreateStudentRequest  true  "Create student payload"
// @Success     201   {object} models.Student       "Created student"
// @Failure     400   {object} map[string]string    "Bad request"
// @Failure     500   {object} map[string]string    "Internal server error"
// @Router      /api/v1/students [post]
func (h *Handler) CreateStudent(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
	defer cancel()

	var req dto.CreateStudentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "bad request"})
		return
	}

	student, err := h.students.CreateStudent(ctx, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, student)
}

// GetStudent godoc
// @Summary     Get a student by id
// @Tags        students
// @Produce     json
// @Param       id   path     int true "Student ID"
// @Success     200  {object} models.Student
// @Failure     404  {object} map[string]string "Student not found"
// @Router      /api/v1/students/{id} [get]
func (h *Handler) GetStudent(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
	defer cancel()

	id, ok := idParam(c)
	if !ok {
		return
	}
	student, err := h.students.GetStudent(ctx, id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, student)
}

// ListStudents godoc
// @Summary     List students (paginated, ranked by growth score)
// @Tags        students
// @Produce     json
// @Param       page   query    int true "Page number (1-based)"
// @Param       limit  query    int true "Page size (1-100)"
// @Success     200    {object} dto.ListStudentsResponse
// @Failure     400    {object} map[string]string "Validation message"
// @Router      /api/v1/students [get]
func (h *Handler) ListStudents(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
	defer cancel()

	var req dto.PageLimit
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	response, err := h.students.ListStudents(ctx, req.Page, req.Limit)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response)
}

// UpdateStudent godoc
// @Summary     Update a student's profile fields
// @Tags        students
// @Accept      json
// @Produce     json
// @Param       id    path     int                      true "Student ID"
// @Param       body  body     dto.UpdateStudentRequest true "Fields to update (empty fields are kept)"
// @Success     200   {object} models.Student
// @Failure     404   {object} map[string]string "Student not found"
// @Router      /api/v1/students/{id} [put]
func (h *Handler) UpdateStudent(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
	defer cancel()

	id, ok := idParam(c)
	if !ok {
		return
	}
	var req dto.UpdateStudentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "bad request"})
		return
	}

	student, err := h.students.UpdateStudent(ctx, id, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, student)
}

// DeleteStudent godoc
// @Summary     Delete a student and all related records
// @Tags        students
// @Produce     json
// @Param       id   path     int true "Student ID"
// @Success     200  {object} map[string]string
// @Failure     404  {object} map[string]string "Student not found"
// @Router      /api/v1/students/{id} [delete]
func (h *Handler) DeleteStudent(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
	defer cancel()

	id, ok := idParam(c)
	if !ok {
		return
	}
	if err := h.students.DeleteStudent(ctx, id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"response": "student deleted"})
}

// UpdatePlatforms godoc
// @Summary     Set a student's coding platform profiles
// @Description Accepts bare usernames or profile URLs for GitHub, LeetCode and HackerRank. Empty fields clear the reference.
// @Tags        platforms
// @Accept      json
// @Produce     json
// @Param       id    path     int                        true "Student ID"
// @Param       body  body     dto.UpdatePlatformsRequest true "Platform references"
// @Success     200   {object} models.Student
// @Failure     404   {object} map[string]string "Student not found"
// @Router      /api/v1/students/{id}/platforms [put]
func (h *Handler) UpdatePlatforms(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
	defer cancel()

	id, ok := idParam(c)
	if !ok {
		return
	}
	var req dto.UpdatePlatformsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "bad request"})
		return
	}

	student, err := h.students.UpdatePlatforms(ctx, id, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, student)
}

// UpsertAcademics godoc
// @Summary     Create or replace a student's academic record
// @Tags        academics
// @Accept      json
// @Produce     json
// @Param       id    path     int                        true "Student ID"
// @Param       body  body     dto.UpsertAcademicsRequest true "Academic record"
// @Success     200   {object} models.AcademicRecord
// @Failure     404   {object} map[string]string "Student not found"
// @Router      /api/v1/students/{id}/academics [put]
func (h *Handler) UpsertAcademics(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
	defer cancel()

	id, ok := idParam(c)
	if !ok {
		return
	}
	var req dto.UpsertAcademicsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	rec, err := h.students.UpsertAcademics(ctx, id, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, rec)
}

// GetAcademics godoc
// @Summary     Get a student's academic record
// @Tags        academics
// @Produce     json
// @Param       id   path     int true "Student ID"
// @Success     200  {object} models.AcademicRecord
// @Failure     404  {object} map[string]string "Record not found"
// @Router      /api/v1/students/{id}/academics [get]
func (h *Handler) GetAcademics(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
	defer cancel()

	id, ok := idParam(c)
	if !ok {
		return
	}
	rec, err := h.students.GetAcademics(ctx, id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, rec)
}

// SyncStudent godoc
// @Summary     Sync one student's platform stats now
// @Description Fetches GitHub, LeetCode and HackerRank concurrently, recomputes the growth score and stores the result.
// @Tags        sync
// @Produce     json
// @Param       id   path     int true "Student ID"
// @Success     200  {object} platform.SyncResult
// @Failure     400  {object} map[string]string "No platforms configured"
// @Failure     404  {object} map[string]string "Student not found"
// @Router      /api/v1/students/{id}/sync [post]
func (h *Handler) SyncStudent(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 60*time.Second)
	defer cancel()

	id, ok := idParam(c)
	if !ok {
		return
	}
	result, err := h.sync.SyncStudent(ctx, id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// GetHistory godoc
// @Summary     Get a student's daily progress snapshots
// @Tags        history
// @Produce     json
// @Param       id     path     int true  "Student ID"
// @Param       limit  query    int false "Max snapshots to return (default 90)"
// @Success     200    {array}  models.ProgressSnapshot
// @Router      /api/v1/students/{id}/history [get]
func (h *Handler) GetHistory(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
	defer cancel()

	id, ok := idParam(c)
	if !ok {
		return
	}
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "90"))

	snapshots, err := h.students.GetHistory(ctx, id, limit)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, snapshots)
}

// CreateGoal godoc
// @Summary     Create a goal for a student
// @Tags        goals
// @Accept      json
// @Produce     json
// @Param       body  body     dto.CreateGoalRequest true "Goal payload"
// @Success     201   {object} models.Goal
// @Failure     400   {object} map[string]string "Bad request"
// @Failure     404   {object} map[string]string "Student not found"
// @Router      /api/v1/goals [post]
func (h *Handler) CreateGoal(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
	defer cancel()

	var req dto.CreateGoalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "bad request"})
		return
	}

	goal, err := h.goals.CreateGoal(ctx, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, goal)
}

// GetGoal godoc
// @Summary     Get a goal with its milestones
// @Tags        goals
// @Produce     json
// @Param       id   path     int true "Goal ID"
// @Success     200  {object} dto.GoalWithMilestones
// @Failure     404  {object} map[string]string "Goal not found"
// @Router      /api/v1/goals/{id} [get]
func (h *Handler) GetGoal(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
	defer cancel()

	id, ok := idParam(c)
	if !ok {
		return
	}
	goal, err := h.goals.GetGoal(ctx, id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, goal)
}

// ListGoals godoc
// @Summary     List a student's goals with milestones
// @Tags        goals
// @Produce     json
// @Param       id   path     int true "Student ID"
// @Success     200  {array}  dto.GoalWithMilestones
// @Router      /api/v1/students/{id}/goals [get]
func (h *Handler) ListGoals(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
	defer cancel()

	id, ok := idParam(c)
	if !ok {
		return
	}
	goals, err := h.goals.ListGoals(ctx, id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, goals)
}

// UpdateGoal godoc
// @Summary     Update a goal's fields
// @Tags        goals
// @Accept      json
// @Produce     json
// @Param       id    path     int                   true "Goal ID"
// @Param       body  body     dto.UpdateGoalRequest true "Fields to update (empty fields are kept)"
// @Success     200   {object} models.Goal
// @Failure     404   {object} map[string]string "Goal not found"
// @Router      /api/v1/goals/{id} [put]
func (h *Handler) UpdateGoal(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
	defer cancel()

	id, ok := idParam(c)
	if !ok {
		return
	}
	var req dto.UpdateGoalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "bad request"})
		return
	}

	goal, err := h.goals.UpdateGoal(ctx, id, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, goal)
}

// DeleteGoal godoc
// @Summary     Delete a goal and its milestones
// @Tags        goals
// @Produce     json
// @Param       id   path     int true "Goal ID"
// @Success     200  {object} map[string]string
// @Failure     404  {object} map[string]string "Goal not found"
// @Router      /api/v1/goals/{id} [delete]
func (h *Handler) DeleteGoal(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
	defer cancel()

	id, ok := idParam(c)
	if !ok {
		return
	}
	if err := h.goals.DeleteGoal(ctx, id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"response": "goal deleted"})
}

// AddMilestone godoc
// @Summary     Add a milestone under a goal
// @Tags        goals
// @Accept      json
// @Produce     json
// @Param       id    path     int                        true "Goal ID"
// @Param       body  body     dto.CreateMilestoneRequest true "Milestone payload"
// @Success     201   {object} models.Milestone
// @Failure     404   {object} map[string]string "Goal not found"
// @Router      /api/v1/goals/{id}/milestones [post]
func (h *Handler) AddMilestone(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
	defer cancel()

	id, ok := idParam(c)
	if !ok {
		return
	}
	var req dto.CreateMilestoneRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "bad request"})
		return
	}

	m, err := h.goals.AddMilestone(ctx, id, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, m)
}

// ToggleMilestone godoc
// @Summary     Toggle a milestone's completed state
// @Description Flips the milestone and recomputes the parent goal's progress percentage.
// @Tags        goals
// @Produce     json
// @Param       id   path     int true "Milestone ID"
// @Success     200  {object} models.Milestone
// @Failure     404  {object} map[string]string "Milestone not found"
// @Router      /api/v1/milestones/{id}/toggle [post]
func (h *Handler) ToggleMilestone(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
	defer cancel()

	id, ok := idParam(c)
	if !ok {
		return
	}
	m, err := h.goals.ToggleMilestone(ctx, id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, m)
}

// CreateFeedback godoc
// @Summary     Leave mentor feedback for a student
// @Tags        feedback
// @Accept      json
// @Produce     json
// @Param       body  body     dto.CreateFeedbackRequest true "Feedback payload"
// @Success     201   {object} models.Feedback
// @Failure     404   {object} map[string]string "Student not found"
// @Router      /api/v1/feedback [post]
func (h *Handler) CreateFeedback(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
	defer cancel()

	var req dto.CreateFeedbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "bad request"})
		return
	}

	fb, err := h.students.CreateFeedback(ctx, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, fb)
}

// ListFeedback godoc
// @Summary     List feedback left for a student
// @Tags        feedback
// @Produce     json
// @Param       id   path     int true "Student ID"
// @Success     200  {array}  models.Feedback
// @Router      /api/v1/students/{id}/feedback [get]
func (h *Handler) ListFeedback(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
	defer cancel()

	id, ok := idParam(c)
	if !ok {
		return
	}
	items, err := h.students.ListFeedback(ctx, id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

// SyncAll godoc
// @Summary     Start syncing every student with configured platforms
// @Description Kicks off the background job that refetches stats for all syncable students.
// @Tags        sync
// @Produce     json
// @Success     200   {object} map[string]string "Syncing started"
// @Failure     400   {object} map[string]string "Syncing is already on"
// @Router      /api/v1/sync-all [post]
func (h *Handler) SyncAll(c *gin.Context) {
	if err := h.sync.StartSyncAll(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"response": "syncing started"})
}

// StopSyncing godoc
// @Summary     Stop the background sync-all job
// @Tags        sync
// @Produce     json
// @Success     200   {object} map[string]string "Syncing stopped"
// @Router      /api/v1/stop-syncing [post]
func (h *Handler) StopSyncing(c *gin.Context) {
	h.sync.StopSyncing()
	c.JSON(http.StatusOK, gin.H{"response": "syncing stopped"})
}

// GetSyncingStatus godoc
// @Summary     Get background sync status
// @Tags        sync
// @Produce     json
// @Success     200   {object} dto.GetSyncStatusResponse "Current sync status"
// @Router      /api/v1/sync-status [get]
func (h *Handler) GetSyncingStatus(c *gin.Context) {
	c.JSON(http.StatusOK, h.sync.GetSyncStatus())
}
