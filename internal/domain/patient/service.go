package patient

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/clipsdental/clinic/internal/domain/lead"
	"github.com/clipsdental/clinic/internal/domain/notification"
)

var ErrNotFound = errors.New("patient: not found")

// Notifier posts admin console notifications. Emission failures never
// block patient writes.
type Notifier interface {
	Emit(ctx context.Context, typ notification.Type, title, message string) (notification.Notification, error)
}

type Service struct {
	repo     Repository
	notifier Notifier
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// SetNotifier attaches notification emission. Optional.
func (s *Service) SetNotifier(n Notifier) {
	s.notifier = n
}

func (s *Service) Create(ctx context.Context, p *Patient) error {
	if p.Name == "" {
		return fmt.Errorf("patient name is required")
	}
	if p.Phone == "" {
		return fmt.Errorf("patient phone is required")
	}

	p.ID = uuid.NewString()
	p.CreatedAt = time.Now()
	if p.History == nil {
		p.History = []HistoryItem{}
	}
	for i := range p.History {
		if p.History[i].ID == "" {
			p.History[i].ID = uuid.NewString()
		}
	}

	if err := s.repo.Upsert(ctx, *p); err != nil {
		return fmt.Errorf("create patient: %w", err)
	}

	if s.notifier != nil {
		_, _ = s.notifier.Emit(ctx, notification.TypePatient, "New Patient Registered",
			fmt.Sprintf("%s has been added to the database.", p.Name))
	}
	return nil
}

func (s *Service) List(ctx context.Context) ([]Patient, error) {
	return s.repo.List(ctx)
}

func (s *Service) Get(ctx context.Context, id string) (Patient, error) {
	p, found, err := s.repo.Get(ctx, id)
	if err != nil {
		return Patient{}, err
	}
	if !found {
		return Patient{}, ErrNotFound
	}
	return p, nil
}

// Update replaces a patient record. A clinical change, meaning the
// visit history grew or shrank or the notes text changed, raises a
// "Patient Record Updated" notification. Demographic edits stay quiet.
func (s *Service) Update(ctx context.Context, id string, updated Patient) (Patient, error) {
	current, err := s.Get(ctx, id)
	if err != nil {
		return Patient{}, err
	}
	if updated.Name == "" {
		return Patient{}, fmt.Errorf("patient name is required")
	}

	updated.ID = current.ID
	updated.CreatedAt = current.CreatedAt
	if updated.History == nil {
		updated.History = []HistoryItem{}
	}
	for i := range updated.History {
		if updated.History[i].ID == "" {
			updated.History[i].ID = uuid.NewString()
		}
	}

	significant := len(current.History) != len(updated.History) || current.Notes != updated.Notes

	if err := s.repo.Upsert(ctx, updated); err != nil {
		return Patient{}, fmt.Errorf("update patient: %w", err)
	}

	if significant && s.notifier != nil {
		_, _ = s.notifier.Emit(ctx, notification.TypePatient, "Patient Record Updated",
			fmt.Sprintf("Clinical data for %s has been modified.", updated.Name))
	}
	return updated, nil
}

// AddVisit appends a history entry to an existing patient.
func (s *Service) AddVisit(ctx context.Context, id string, visit HistoryItem) (Patient, error) {
	current, err := s.Get(ctx, id)
	if err != nil {
		return Patient{}, err
	}
	if visit.Service == "" {
		return Patient{}, fmt.Errorf("visit service is required")
	}
	if visit.ID == "" {
		visit.ID = uuid.NewString()
	}
	if visit.Date == "" {
		visit.Date = time.Now().Format("2006-01-02")
	}

	current.History = append(current.History, visit)
	return s.Update(ctx, id, current)
}

func (s *Service) Delete(ctx context.Context, id string) error {
	if _, err := s.Get(ctx, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}

// RegisterFromLead seeds a patient record from a converted lead. The
// lead's message becomes the initial notes, and a lead that named a
// service gets one history entry dated to the requested appointment.
func (s *Service) RegisterFromLead(ctx context.Context, l lead.Lead) (string, error) {
	p := &Patient{
		Name:    l.Name,
		Phone:   l.Phone,
		Email:   l.Email,
		Notes:   l.Message,
		History: []HistoryItem{},
	}
	if l.Service != "" {
		date := l.Date
		if date == "" {
			date = time.Now().Format("2006-01-02")
		}
		p.History = append(p.History, HistoryItem{
			ID:      uuid.NewString(),
			Date:    date,
			Service: l.Service,
			Notes:   "Converted from lead request.",
		})
	}
	if err := s.Create(ctx, p); err != nil {
		return "", err
	}
	return p.ID, nil
}
