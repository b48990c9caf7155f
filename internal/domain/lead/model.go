package lead

import "time"

type Type string

const (
	TypeAppointment Type = "appointment"
	TypeContact     Type = "contact"
)

type Status string

const (
	StatusNew       Status = "new"
	StatusContacted Status = "contacted"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
)

// Lead is a booking request or contact inquiry submitted through the
// public website.
type Lead struct {
	ID        string    `json:"id"`
	Type      Type      `json:"type"`
	Name      string    `json:"name"`
	Phone     string    `json:"phone"`
	Email     string    `json:"email,omitempty"`
	Service   string    `json:"service,omitempty"`
	Date      string    `json:"date,omitempty"`
	Time      string    `json:"time,omitempty"`
	Message   string    `json:"message"`
	Status    Status    `json:"status"`
	DoctorID  string    `json:"doctorId,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

func (l Lead) RecordID() string { return l.ID }

func (t Type) Valid() bool {
	return t == TypeAppointment || t == TypeContact
}

func (s Status) Valid() bool {
	switch s {
	case StatusNew, StatusContacted, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}
