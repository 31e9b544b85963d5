package model

import (
	"studio/shared/model"
)

const (
	TableName  = "course_cancellations"
	EntityName = "course_cancellation"

	FieldID     = "id"
	FieldStatus = "status"

	RequestedByAdmin = "admin"
)

type CancellationStatus string

const (
	CancellationStatusPending  CancellationStatus = "pending"
	CancellationStatusApproved CancellationStatus = "approved"
)

// CourseCancellation records a request to cancel a course. Approval is
// terminal and fires the cascade exactly once.
type CourseCancellation struct {
	ID          string             `db:"id"`
	CourseID    string             `db:"course_id"`
	Reason      string             `db:"reason"`
	RequestedBy string             `db:"requested_by"`
	Status      CancellationStatus `db:"status"`
	model.Metadata
}
