package patient

import "time"

// HistoryItem is one clinical visit entry. Date is a calendar day in
// YYYY-MM-DD form.
type HistoryItem struct {
	ID      string `json:"id"`
	Date    string `json:"date"`
	Service string `json:"service"`
	Notes   string `json:"notes"`
}

type Patient struct {
	ID        string        `json:"id"`
	Name      string        `json:"name"`
	Phone     string        `json:"phone"`
	Email     string        `json:"email,omitempty"`
	Address   string        `json:"address,omitempty"`
	Notes     string        `json:"notes"`
	History   []HistoryItem `json:"history"`
	CreatedAt time.Time     `json:"createdAt"`
}

func (p Patient) RecordID() string { return p.ID }

// LastVisit returns the most recent history entry, which by convention
// is the last element.
func (p Patient) LastVisit() (HistoryItem, bool) {
	if len(p.History) == 0 {
		return HistoryItem{}, false
	}
	return p.History[len(p.History)-1], true
}
