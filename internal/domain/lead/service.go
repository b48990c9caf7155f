package lead

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/clipsdental/clinic/internal/domain/notification"
)

var ErrNotFound = errors.New("lead: not found")

// Notifier posts admin console notifications. Emission failures never
// block lead processing.
type Notifier interface {
	Emit(ctx context.Context, typ notification.Type, title, message string) (notification.Notification, error)
}

// PatientRegistrar creates a patient record from a converted lead. The
// patient domain provides the implementation; wiring happens in main.
type PatientRegistrar interface {
	RegisterFromLead(ctx context.Context, l Lead) (string, error)
}

type Service struct {
	repo      Repository
	notifier  Notifier
	registrar PatientRegistrar
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// SetNotifier attaches notification emission. Optional.
func (s *Service) SetNotifier(n Notifier) {
	s.notifier = n
}

// SetRegistrar attaches the patient registrar used by Convert.
func (s *Service) SetRegistrar(r PatientRegistrar) {
	s.registrar = r
}

// Create validates and stores a new lead, then notifies the admin
// console.
func (s *Service) Create(ctx context.Context, l *Lead) error {
	if l.Name == "" {
		return fmt.Errorf("lead name is required")
	}
	if l.Phone == "" {
		return fmt.Errorf("lead phone is required")
	}
	if !l.Type.Valid() {
		return fmt.Errorf("invalid lead type: %s", l.Type)
	}
	if l.Type == TypeAppointment && l.Service == "" {
		return fmt.Errorf("appointment requests require a service")
	}
	if l.Type == TypeContact && l.Message == "" {
		return fmt.Errorf("contact inquiries require a message")
	}

	l.ID = uuid.NewString()
	l.Status = StatusNew
	l.CreatedAt = time.Now()

	if err := s.repo.Insert(ctx, *l); err != nil {
		return fmt.Errorf("create lead: %w", err)
	}

	if s.notifier != nil {
		title := "New Contact Inquiry"
		if l.Type == TypeAppointment {
			title = "New Booking Request"
		}
		subject := l.Service
		if subject == "" {
			subject = "a general query"
		}
		_, _ = s.notifier.Emit(ctx, notification.TypeLead, title,
			fmt.Sprintf("%s has reached out regarding %s.", l.Name, subject))
	}
	return nil
}

func (s *Service) List(ctx context.Context) ([]Lead, error) {
	return s.repo.List(ctx)
}

func (s *Service) Get(ctx context.Context, id string) (Lead, error) {
	l, found, err := s.repo.Get(ctx, id)
	if err != nil {
		return Lead{}, err
	}
	if !found {
		return Lead{}, ErrNotFound
	}
	return l, nil
}

// Update replaces a lead's mutable fields. ID and CreatedAt are kept
// from the stored record.
func (s *Service) Update(ctx context.Context, id string, updated Lead) (Lead, error) {
	current, err := s.Get(ctx, id)
	if err != nil {
		return Lead{}, err
	}
	if updated.Status != "" && !updated.Status.Valid() {
		return Lead{}, fmt.Errorf("invalid lead status: %s", updated.Status)
	}
	if updated.Type != "" && !updated.Type.Valid() {
		return Lead{}, fmt.Errorf("invalid lead type: %s", updated.Type)
	}

	updated.ID = current.ID
	updated.CreatedAt = current.CreatedAt
	if updated.Status == "" {
		updated.Status = current.Status
	}
	if updated.Type == "" {
		updated.Type = current.Type
	}
	if err := s.repo.Update(ctx, updated); err != nil {
		return Lead{}, fmt.Errorf("update lead: %w", err)
	}
	return updated, nil
}

func (s *Service) UpdateStatus(ctx context.Context, id string, status Status) (Lead, error) {
	if !status.Valid() {
		return Lead{}, fmt.Errorf("invalid lead status: %s", status)
	}
	current, err := s.Get(ctx, id)
	if err != nil {
		return Lead{}, err
	}
	current.Status = status
	if err := s.repo.Update(ctx, current); err != nil {
		return Lead{}, fmt.Errorf("update lead status: %w", err)
	}
	return current, nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	if _, err := s.Get(ctx, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}

// Convert registers the lead as a patient and then marks the lead
// completed. The two writes are sequential; a failure after the patient
// is created leaves the lead untouched for a retry.
func (s *Service) Convert(ctx context.Context, id string) (string, error) {
	if s.registrar == nil {
		return "", fmt.Errorf("patient registration is not configured")
	}
	l, err := s.Get(ctx, id)
	if err != nil {
		return "", err
	}

	patientID, err := s.registrar.RegisterFromLead(ctx, l)
	if err != nil {
		return "", fmt.Errorf("convert lead: %w", err)
	}

	l.Status = StatusCompleted
	if err := s.repo.Update(ctx, l); err != nil {
		return "", fmt.Errorf("mark lead completed: %w", err)
	}
	return patientID, nil
}
