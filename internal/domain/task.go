package domain

import (
	"encoding/json"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Task status codes. The Tarefa collection stores these as small string
// codes rather than words.
const (
	TaskStatusPending   = "1"
	TaskStatusCompleted = "2"
)

// Task priorities.
const (
	TaskPriorityLow    = 1
	TaskPriorityMedium = 2
	TaskPriorityHigh   = 3
)

// Task is a unit of work owned by exactly one user. Visibility is enforced
// by filtering on the session user, not by the store.
type Task struct {
	ID          primitive.ObjectID  `bson:"_id,omitempty" json:"id"`
	UserID      primitive.ObjectID  `bson:"idUsuario" json:"user_id"`
	Title       string              `bson:"titulo" json:"title"`
	Description string              `bson:"descricao,omitempty" json:"description"`
	Status      string              `bson:"status" json:"status"`
	Priority    int                 `bson:"prioridade" json:"priority"`
	StartDate   *time.Time          `bson:"data_inicio,omitempty" json:"start_date,omitempty"`
	EndDate     *time.Time          `bson:"data_termino,omitempty" json:"end_date,omitempty"`
	CampaignID  *primitive.ObjectID `bson:"idCampanha,omitempty" json:"campaign_id,omitempty"`
	CreatedAt   time.Time           `bson:"created_at" json:"created_at"`
	UpdatedAt   time.Time           `bson:"updated_at" json:"updated_at"`
}

// IsCompleted reports whether the task has been marked done.
func (t Task) IsCompleted() bool {
	return t.Status == TaskStatusCompleted
}

// PriorityText renders the numeric priority for display.
func (t Task) PriorityText() string {
	switch t.Priority {
	case TaskPriorityHigh:
		return "high"
	case TaskPriorityMedium:
		return "medium"
	default:
		return "low"
	}
}

// MarshalJSON adds the rendered priority next to the numeric code.
func (t Task) MarshalJSON() ([]byte, error) {
	type alias Task
	return json.Marshal(struct {
		alias
		PriorityText string `json:"priority_text"`
	}{alias(t), t.PriorityText()})
}

// TaskPatch describes a partial update. Nil fields are left untouched.
type TaskPatch struct {
	Title       *string
	Description *string
	Status      *string
	Priority    *int
	StartDate   *time.Time
	EndDate     *time.Time
	CampaignID  *primitive.ObjectID
}

// IsZero reports whether the patch carries no changes.
func (p TaskPatch) IsZero() bool {
	return p.Title == nil && p.Description == nil && p.Status == nil &&
		p.Priority == nil && p.StartDate == nil && p.EndDate == nil && p.CampaignID == nil
}
