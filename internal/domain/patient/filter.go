package patient

import (
	"math"
	"strings"
	"time"
)

// RecencyWindow buckets patients by how long ago their last visit was.
type RecencyWindow string

const (
	RecencyAll    RecencyWindow = "all"
	Recency7Days  RecencyWindow = "7days"
	Recency30Days RecencyWindow = "30days"
	Recency90Days RecencyWindow = "90days"
)

// FilterParams narrow the admin patient roster.
//
// Query matches the name case-insensitively or the phone literally.
// MinVisits at or below zero is ignored. NoteKeyword matches the
// patient notes or any history entry notes, case-insensitively.
type FilterParams struct {
	Query       string
	MinVisits   int
	NoteKeyword string
	LastVisit   RecencyWindow
}

func Filter(patients []Patient, p FilterParams, now time.Time) []Patient {
	out := make([]Patient, 0, len(patients))
	for _, pt := range patients {
		if matchesFilter(pt, p, now) {
			out = append(out, pt)
		}
	}
	return out
}

func matchesFilter(pt Patient, p FilterParams, now time.Time) bool {
	if p.Query != "" {
		nameMatch := strings.Contains(strings.ToLower(pt.Name), strings.ToLower(p.Query))
		phoneMatch := strings.Contains(pt.Phone, p.Query)
		if !nameMatch && !phoneMatch {
			return false
		}
	}

	if p.MinVisits > 0 && len(pt.History) < p.MinVisits {
		return false
	}

	if p.NoteKeyword != "" {
		keyword := strings.ToLower(p.NoteKeyword)
		found := strings.Contains(strings.ToLower(pt.Notes), keyword)
		for _, h := range pt.History {
			if found {
				break
			}
			found = strings.Contains(strings.ToLower(h.Notes), keyword)
		}
		if !found {
			return false
		}
	}

	if p.LastVisit != "" && p.LastVisit != RecencyAll {
		last, ok := pt.LastVisit()
		if !ok {
			return false
		}
		visitDate, err := time.Parse("2006-01-02", last.Date)
		if err != nil {
			// An unreadable date cannot disqualify the patient.
			return true
		}
		days := int(math.Ceil(now.Sub(visitDate).Hours() / 24))
		switch p.LastVisit {
		case Recency7Days:
			return days <= 7
		case Recency30Days:
			return days <= 30
		case Recency90Days:
			return days <= 90
		}
	}
	return true
}
