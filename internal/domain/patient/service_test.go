package patient

import (
	"context"
	"errors"
	"testing"

	"github.com/clipsdental/clinic/internal/domain/lead"
	"github.com/clipsdental/clinic/internal/domain/notification"
	"github.com/clipsdental/clinic/internal/platform/kvstore"
)

type fakeNotifier struct {
	titles   []string
	messages []string
}

func (f *fakeNotifier) Emit(_ context.Context, _ notification.Type, title, message string) (notification.Notification, error) {
	f.titles = append(f.titles, title)
	f.messages = append(f.messages, message)
	return notification.Notification{}, nil
}

func testService(t *testing.T) (*Service, *fakeNotifier) {
	t.Helper()
	svc := NewService(NewKVRepo(kvstore.NewMemoryStore()))
	n := &fakeNotifier{}
	svc.SetNotifier(n)
	return svc, n
}

func TestCreate_EmitsRegistration(t *testing.T) {
	svc, n := testService(t)

	p := &Patient{Name: "Ravi Sharma", Phone: "9876543210"}
	if err := svc.Create(context.Background(), p); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if p.ID == "" {
		t.Error("expected generated id")
	}
	if p.History == nil {
		t.Error("expected history initialized to empty slice")
	}
	if len(n.titles) != 1 || n.titles[0] != "New Patient Registered" {
		t.Errorf("expected registration notification, got %v", n.titles)
	}
	if n.messages[0] != "Ravi Sharma has been added to the database." {
		t.Errorf("unexpected message: %s", n.messages[0])
	}
}

func TestCreate_Validation(t *testing.T) {
	svc, _ := testService(t)
	ctx := context.Background()

	if err := svc.Create(ctx, &Patient{Phone: "9"}); err == nil {
		t.Error("expected error for missing name")
	}
	if err := svc.Create(ctx, &Patient{Name: "x"}); err == nil {
		t.Error("expected error for missing phone")
	}
}

func TestUpdate_SignificantChangeNotifies(t *testing.T) {
	cases := []struct {
		name        string
		mutate      func(*Patient)
		wantsNotify bool
	}{
		{"history grows", func(p *Patient) {
			p.History = append(p.History, HistoryItem{Date: "2026-08-01", Service: "Cleaning"})
		}, true},
		{"history shrinks", func(p *Patient) {
			p.History = p.History[:0]
		}, true},
		{"notes change", func(p *Patient) {
			p.Notes = "allergic to penicillin"
		}, true},
		{"phone change only", func(p *Patient) {
			p.Phone = "9000000000"
		}, false},
		{"name change only", func(p *Patient) {
			p.Name = "Renamed"
		}, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			svc, n := testService(t)
			ctx := context.Background()

			p := &Patient{
				Name:    "Ravi",
				Phone:   "9876543210",
				Notes:   "initial",
				History: []HistoryItem{{ID: "h1", Date: "2026-07-01", Service: "Checkup"}},
			}
			if err := svc.Create(ctx, p); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			n.titles = nil

			updated := *p
			updated.History = append([]HistoryItem{}, p.History...)
			tc.mutate(&updated)

			if _, err := svc.Update(ctx, p.ID, updated); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			notified := len(n.titles) > 0
			if notified != tc.wantsNotify {
				t.Errorf("notified=%v, want %v (titles %v)", notified, tc.wantsNotify, n.titles)
			}
			if notified && n.titles[0] != "Patient Record Updated" {
				t.Errorf("unexpected title: %s", n.titles[0])
			}
		})
	}
}

func TestUpdate_PreservesIdentity(t *testing.T) {
	svc, _ := testService(t)
	ctx := context.Background()

	p := &Patient{Name: "Ravi", Phone: "9"}
	if err := svc.Create(ctx, p); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	updated, err := svc.Update(ctx, p.ID, Patient{ID: "other", Name: "Ravi", Phone: "9"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.ID != p.ID {
		t.Errorf("expected id preserved, got %s", updated.ID)
	}
	if !updated.CreatedAt.Equal(p.CreatedAt) {
		t.Error("expected createdAt preserved")
	}
}

func TestAddVisit(t *testing.T) {
	svc, n := testService(t)
	ctx := context.Background()

	p := &Patient{Name: "Ravi", Phone: "9"}
	if err := svc.Create(ctx, p); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	n.titles = nil

	updated, err := svc.AddVisit(ctx, p.ID, HistoryItem{Service: "Scaling", Notes: "routine"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(updated.History) != 1 {
		t.Fatalf("expected 1 visit, got %d", len(updated.History))
	}
	if updated.History[0].ID == "" || updated.History[0].Date == "" {
		t.Error("expected visit id and date to be filled in")
	}
	if len(n.titles) != 1 || n.titles[0] != "Patient Record Updated" {
		t.Errorf("expected clinical-change notification, got %v", n.titles)
	}

	if _, err := svc.AddVisit(ctx, p.ID, HistoryItem{}); err == nil {
		t.Error("expected error for visit without service")
	}
}

func TestDelete(t *testing.T) {
	svc, _ := testService(t)
	ctx := context.Background()

	p := &Patient{Name: "Ravi", Phone: "9"}
	if err := svc.Create(ctx, p); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := svc.Delete(ctx, p.ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := svc.Get(ctx, p.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestRegisterFromLead_WithService(t *testing.T) {
	svc, n := testService(t)
	ctx := context.Background()

	l := lead.Lead{
		ID:      "lead-1",
		Type:    lead.TypeAppointment,
		Name:    "Ravi",
		Phone:   "9876543210",
		Email:   "ravi@example.com",
		Service: "Teeth Whitening",
		Date:    "2026-09-01",
		Message: "please call back",
	}

	id, err := svc.RegisterFromLead(ctx, l)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	p, err := svc.Get(ctx, id)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.Notes != "please call back" {
		t.Errorf("expected lead message as notes, got %q", p.Notes)
	}
	if len(p.History) != 1 {
		t.Fatalf("expected 1 seeded visit, got %d", len(p.History))
	}
	h := p.History[0]
	if h.Service != "Teeth Whitening" || h.Date != "2026-09-01" {
		t.Errorf("unexpected seeded visit: %+v", h)
	}
	if h.Notes != "Converted from lead request." {
		t.Errorf("unexpected visit notes: %q", h.Notes)
	}
	if len(n.titles) != 1 || n.titles[0] != "New Patient Registered" {
		t.Errorf("expected registration notification, got %v", n.titles)
	}
}

func TestRegisterFromLead_WithoutService(t *testing.T) {
	svc, _ := testService(t)

	l := lead.Lead{ID: "lead-2", Type: lead.TypeContact, Name: "Sunita", Phone: "9", Message: "hi"}
	id, err := svc.RegisterFromLead(context.Background(), l)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	p, _ := svc.Get(context.Background(), id)
	if len(p.History) != 0 {
		t.Errorf("expected no seeded visit without a service, got %d", len(p.History))
	}
}

func TestRegisterFromLead_DefaultsVisitDate(t *testing.T) {
	svc, _ := testService(t)

	l := lead.Lead{ID: "lead-3", Type: lead.TypeAppointment, Name: "R", Phone: "9", Service: "Cleaning"}
	id, err := svc.RegisterFromLead(context.Background(), l)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	p, _ := svc.Get(context.Background(), id)
	if len(p.History) != 1 || p.History[0].Date == "" {
		t.Errorf("expected visit dated today, got %+v", p.History)
	}
}
