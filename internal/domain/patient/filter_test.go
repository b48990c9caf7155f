package patient

import (
	"testing"
	"time"
)

var filterNow = time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC)

func daysAgo(n int) string {
	return filterNow.AddDate(0, 0, -n).Format("2006-01-02")
}

func samplePatients() []Patient {
	return []Patient{
		{
			ID: "1", Name: "Ravi Sharma", Phone: "9876543210", Notes: "allergic to penicillin",
			History: []HistoryItem{
				{ID: "h1", Date: daysAgo(95), Service: "Checkup", Notes: "baseline"},
				{ID: "h2", Date: daysAgo(5), Service: "Cleaning", Notes: "routine scaling"},
			},
		},
		{
			ID: "2", Name: "Sunita Patil", Phone: "9123456780", Notes: "",
			History: []HistoryItem{
				{ID: "h3", Date: daysAgo(45), Service: "Root Canal", Notes: "follow up needed"},
			},
		},
		{
			ID: "3", Name: "Amit Deshmukh", Phone: "9000011111", Notes: "new patient",
			History: []HistoryItem{},
		},
	}
}

func TestFilter_NoParamsKeepsAll(t *testing.T) {
	got := Filter(samplePatients(), FilterParams{LastVisit: RecencyAll}, filterNow)
	if len(got) != 3 {
		t.Fatalf("expected 3 patients, got %d", len(got))
	}
}

func TestFilter_QueryByNameOrPhone(t *testing.T) {
	got := Filter(samplePatients(), FilterParams{Query: "ravi"}, filterNow)
	if len(got) != 1 || got[0].ID != "1" {
		t.Errorf("expected patient 1 by name, got %v", got)
	}

	got = Filter(samplePatients(), FilterParams{Query: "912345"}, filterNow)
	if len(got) != 1 || got[0].ID != "2" {
		t.Errorf("expected patient 2 by phone, got %v", got)
	}
}

func TestFilter_MinVisits(t *testing.T) {
	got := Filter(samplePatients(), FilterParams{MinVisits: 2}, filterNow)
	if len(got) != 1 || got[0].ID != "1" {
		t.Errorf("expected only patient 1 with 2+ visits, got %v", got)
	}

	got = Filter(samplePatients(), FilterParams{MinVisits: 0}, filterNow)
	if len(got) != 3 {
		t.Errorf("expected min visits 0 to be ignored, got %d", len(got))
	}
}

func TestFilter_NoteKeywordSearchesPatientAndHistory(t *testing.T) {
	got := Filter(samplePatients(), FilterParams{NoteKeyword: "PENICILLIN"}, filterNow)
	if len(got) != 1 || got[0].ID != "1" {
		t.Errorf("expected patient 1 by patient notes, got %v", got)
	}

	got = Filter(samplePatients(), FilterParams{NoteKeyword: "follow up"}, filterNow)
	if len(got) != 1 || got[0].ID != "2" {
		t.Errorf("expected patient 2 by history notes, got %v", got)
	}

	got = Filter(samplePatients(), FilterParams{NoteKeyword: "implant"}, filterNow)
	if len(got) != 0 {
		t.Errorf("expected no matches, got %d", len(got))
	}

	// A keyword miss empties the result even when the identity search hits.
	got = Filter(samplePatients(), FilterParams{Query: "Ravi", NoteKeyword: "implant"}, filterNow)
	if len(got) != 0 {
		t.Errorf("expected keyword miss to exclude identity matches, got %d", len(got))
	}
}

func TestFilter_LastVisitWindows(t *testing.T) {
	got := Filter(samplePatients(), FilterParams{LastVisit: Recency7Days}, filterNow)
	if len(got) != 1 || got[0].ID != "1" {
		t.Errorf("expected patient 1 within 7 days, got %v", got)
	}

	got = Filter(samplePatients(), FilterParams{LastVisit: Recency30Days}, filterNow)
	if len(got) != 1 || got[0].ID != "1" {
		t.Errorf("expected only patient 1 within 30 days, got %v", got)
	}

	got = Filter(samplePatients(), FilterParams{LastVisit: Recency90Days}, filterNow)
	if len(got) != 2 {
		t.Errorf("expected patients 1 and 2 within 90 days, got %d", len(got))
	}
}

func TestFilter_EmptyHistoryExcludedFromRecency(t *testing.T) {
	got := Filter(samplePatients(), FilterParams{LastVisit: Recency90Days}, filterNow)
	for _, p := range got {
		if p.ID == "3" {
			t.Error("expected patient without history to be excluded")
		}
	}
}

func TestFilter_RecencyUsesLastHistoryEntry(t *testing.T) {
	// Patient 1's first entry is 95 days old but the last is 5 days old.
	got := Filter(samplePatients(), FilterParams{Query: "Ravi", LastVisit: Recency7Days}, filterNow)
	if len(got) != 1 {
		t.Errorf("expected last entry to drive recency, got %d matches", len(got))
	}
}

func TestFilter_UnparsableDateKept(t *testing.T) {
	patients := []Patient{{
		ID: "x", Name: "n", Phone: "9",
		History: []HistoryItem{{ID: "h", Date: "not-a-date", Service: "s"}},
	}}
	got := Filter(patients, FilterParams{LastVisit: Recency7Days}, filterNow)
	if len(got) != 1 {
		t.Errorf("expected patient with unreadable date to be kept, got %d", len(got))
	}
}
