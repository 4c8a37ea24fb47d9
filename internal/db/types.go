package db

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
)

// User represents an account with its consent state
type User struct {
	ID             uuid.UUID  `json:"id"`
	Name           string     `json:"name"`
	Email          string     `json:"email"`
	PasswordHash   string     `json:"-" db:"password_hash"` // Never serialize to JSON
	PasswordSet    bool       `json:"password_set" db:"password_set"`
	ConsentVersion *string    `json:"consent_version,omitempty"`
	ConsentAt      *time.Time `json:"consent_at,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}

// LikertResponse is one stored 1-5 answer
type LikertResponse struct {
	UserID    uuid.UUID `json:"user_id"`
	ItemID    string    `json:"item_id"`
	Value     int       `json:"value"`
	UpdatedAt time.Time `json:"updated_at"`
}

// EvidenceResponse is one stored free-text answer to an evidence prompt
type EvidenceResponse struct {
	UserID    uuid.UUID `json:"user_id"`
	PromptID  string    `json:"prompt_id"`
	Answer    string    `json:"answer"`
	UpdatedAt time.Time `json:"updated_at"`
}

// IkigaiItem is one worksheet entry with its in-circle rank
type IkigaiItem struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"user_id"`
	Circle    string    `json:"circle"`
	Text      string    `json:"text"`
	Rank      int       `json:"rank"`
	CreatedAt time.Time `json:"created_at"`
}

// UserChoice is the single per-user row holding the chosen zone and the
// overall assessment lifecycle
type UserChoice struct {
	UserID           uuid.UUID  `json:"user_id"`
	ChosenZone       *string    `json:"chosen_zone,omitempty"`
	ChosenFocus      *string    `json:"chosen_focus,omitempty"`
	AssessmentStatus string     `json:"assessment_status"`
	CompletedAt      *time.Time `json:"completed_at,omitempty"`
	UpdatedAt        time.Time  `json:"updated_at"`
}

// Plan90D is the single per-user 90-day plan row
type Plan90D struct {
	UserID          uuid.UUID   `json:"user_id"`
	CycleObjective  *string     `json:"cycle_objective,omitempty"`
	Checkpoint1Date *string     `json:"checkpoint1_date,omitempty"`
	Checkpoint2Date *string     `json:"checkpoint2_date,omitempty"`
	Checkpoint3Date *string     `json:"checkpoint3_date,omitempty"`
	Selected70      StringArray `json:"selected_70"`
	Selected20      StringArray `json:"selected_20"`
	Selected10      StringArray `json:"selected_10"`
	UpdatedAt       time.Time   `json:"updated_at"`
}

// StringArray handles JSONB string arrays
type StringArray []string

// Scan implements the Scanner interface for StringArray
func (a *StringArray) Scan(src interface{}) error {
	if src == nil {
		*a = []string{}
		return nil
	}
	var source []byte
	switch v := src.(type) {
	case []byte:
		source = v
	case string:
		source = []byte(v)
	default:
		return errors.New("failed to scan StringArray")
	}
	return json.Unmarshal(source, a)
}

// Value implements the Valuer interface for StringArray
func (a StringArray) Value() (driver.Value, error) {
	if a == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(a)
}
