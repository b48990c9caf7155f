package notification

import "time"

// MaxKept bounds the notification feed. Emitting past the cap evicts the
// oldest entries.
const MaxKept = 50

type Type string

const (
	TypeLead    Type = "lead"
	TypePatient Type = "patient"
	TypeSystem  Type = "system"
)

type Notification struct {
	ID        string    `json:"id"`
	Type      Type      `json:"type"`
	Title     string    `json:"title"`
	Message   string    `json:"message"`
	Link      string    `json:"link,omitempty"`
	Read      bool      `json:"read"`
	CreatedAt time.Time `json:"createdAt"`
}

func (n Notification) RecordID() string { return n.ID }
