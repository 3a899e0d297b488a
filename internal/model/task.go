package model

import (
	"fmt"
	"time"
)

// TaskStatus enumerated codes. Persisted as tinyint; legal range 0-2.
type TaskStatus int

const (
	StatusPending TaskStatus = iota
	StatusInProgress
	StatusCompleted
)

func (s TaskStatus) String() string {
	switch s {
	case StatusPending:
		return "Pending"
	case StatusInProgress:
		return "InProgress"
	case StatusCompleted:
		return "Completed"
	}
	return fmt.Sprintf("TaskStatus(%d)", int(s))
}

// ParseTaskStatus interprets a raw code. Codes outside the enumerated set are rejected.
func ParseTaskStatus(code int) (TaskStatus, error) {
	if code < int(StatusPending) || code > int(StatusCompleted) {
		return 0, fmt.Errorf("invalid task status code: %d", code)
	}
	return TaskStatus(code), nil
}

// TaskPriority enumerated codes. Persisted as tinyint; legal range 0-2.
type TaskPriority int

const (
	PriorityLow TaskPriority = iota
	PriorityMedium
	PriorityHigh
)

func (p TaskPriority) String() string {
	switch p {
	case PriorityLow:
		return "Low"
	case PriorityMedium:
		return "Medium"
	case PriorityHigh:
		return "High"
	}
	return fmt.Sprintf("TaskPriority(%d)", int(p))
}

// ParseTaskPriority interprets a raw code. Codes outside the enumerated set are rejected.
func ParseTaskPriority(code int) (TaskPriority, error) {
	if code < int(PriorityLow) || code > int(PriorityHigh) {
		return 0, fmt.Errorf("invalid task priority code: %d", code)
	}
	return TaskPriority(code), nil
}

// Task entity.
//
// Table schema constraints (see migrations/0001_init.sql):
// - id: CHAR(36) uuid, primary key
// - user_id: CHAR(36), required, immutable after creation
// - status/priority: TINYINT with values 0-2
// - due_date nullable
//
// NOTE: keep field names and tags consistent with migrations.
type Task struct {
	ID          string       `gorm:"primaryKey;type:char(36);not null" json:"id"`
	Name        string       `gorm:"type:varchar(128);not null" json:"name"`
	Description string       `gorm:"type:varchar(1024);not null;default:''" json:"description"`
	DueDate     *time.Time   `gorm:"index" json:"dueDate,omitempty"`
	Status      TaskStatus   `gorm:"type:tinyint;not null;default:0" json:"status"`
	Priority    TaskPriority `gorm:"type:tinyint;not null;default:0" json:"priority"`
	UserID      string       `gorm:"type:char(36);not null;index" json:"userId"`
	CreatedAt   time.Time    `gorm:"not null" json:"createdAt"`
	UpdatedAt   time.Time    `gorm:"not null" json:"updatedAt"`
}

func (Task) TableName() string { return "tasks" }
