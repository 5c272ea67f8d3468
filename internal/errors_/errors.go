package errors_

import "errors"

var (
	ErrStudentNotFound        = errors.New("student not found")
	ErrGoalNotFound           = errors.New("goal not found")
	ErrMilestoneNotFound      = errors.New("milestone not found")
	ErrAcademicRecordNotFound = errors.New("academic record not found")
	ErrNoPlatformsConfigured  = errors.New("no platform profiles configured for this student")
	ErrSyncAlreadyRunning     = errors.New("syncing is already on")
)
