package events

import (
	"time"

	"github.com/AniketKagathara/Complaint-tracker-companion/internal/models"
	"github.com/google/uuid"
)

// EventType represents different types of complaint events
type EventType string

const (
	// Complaint events
	EventComplaintCreated       EventType = "complaint.created"
	EventComplaintStatusChanged EventType = "complaint.status_changed"

	// Category events
	EventCategoryCreated EventType = "category.created"
	EventCategoryDeleted EventType = "category.deleted"
)

// ComplaintEvent is the base event structure for all complaint events
type ComplaintEvent struct {
	ID        string                 `json:"id"`
	Type      EventType              `json:"type"`
	Timestamp time.Time              `json:"timestamp"`
	Source    string                 `json:"source"`
	Version   string                 `json:"version"`
	Data      interface{}            `json:"data"`
	Metadata  map[string]interface{} `json:"metadata,omitempty"`
}

// Complaint event payloads

type ComplaintCreatedEvent struct {
	ComplaintID string    `json:"complaint_id"`
	StudentID   string    `json:"student_id"`
	Title       string    `json:"title"`
	Category    string    `json:"category"`
	CreatedAt   time.Time `json:"created_at"`
}

type ComplaintStatusChangedEvent struct {
	ComplaintID string                 `json:"complaint_id"`
	StudentID   string                 `json:"student_id"`
	Title       string                 `json:"title"`
	OldStatus   models.ComplaintStatus `json:"old_status"`
	NewStatus   models.ComplaintStatus `json:"new_status"`
	ChangedBy   string                 `json:"changed_by"` // admin account id
	ChangedAt   time.Time              `json:"changed_at"`
}

// Category event payloads

type CategoryCreatedEvent struct {
	CategoryID string `json:"category_id"`
	Name       string `json:"name"`
	CreatedBy  string `json:"created_by"` // admin account id
}

type CategoryDeletedEvent struct {
	CategoryID string `json:"category_id"`
	Name       string `json:"name"`
	DeletedBy  string `json:"deleted_by"` // admin account id
}

// NewComplaintEvent wraps a payload in the envelope all consumers expect.
func NewComplaintEvent(eventType EventType, data interface{}) *ComplaintEvent {
	return &ComplaintEvent{
		ID:        uuid.NewString(),
		Type:      eventType,
		Timestamp: time.Now(),
		Source:    "complaint-tracker",
		Version:   "1.0",
		Data:      data,
	}
}
