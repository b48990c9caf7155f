package doctor

import "time"

type Doctor struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Speciality string    `json:"speciality"`
	Phone      string    `json:"phone"`
	Email      string    `json:"email"`
	OnDuty     bool      `json:"onDuty"`
	JoinedAt   time.Time `json:"joinedAt"`
}

func (d Doctor) RecordID() string { return d.ID }
