package doctor

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

var ErrNotFound = errors.New("doctor: not found")

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) List(ctx context.Context) ([]Doctor, error) {
	return s.repo.List(ctx)
}

func (s *Service) Get(ctx context.Context, id string) (Doctor, error) {
	d, found, err := s.repo.Get(ctx, id)
	if err != nil {
		return Doctor{}, err
	}
	if !found {
		return Doctor{}, ErrNotFound
	}
	return d, nil
}

// Save creates or updates a doctor. A record without an id gets one
// generated along with its joining date.
func (s *Service) Save(ctx context.Context, d *Doctor) error {
	if d.Name == "" {
		return fmt.Errorf("doctor name is required")
	}
	if d.ID == "" {
		d.ID = uuid.NewString()
		d.JoinedAt = time.Now()
	}
	if err := s.repo.Upsert(ctx, *d); err != nil {
		return fmt.Errorf("save doctor: %w", err)
	}
	return nil
}

// SetDuty toggles the on-duty flag.
func (s *Service) SetDuty(ctx context.Context, id string, onDuty bool) (Doctor, error) {
	d, err := s.Get(ctx, id)
	if err != nil {
		return Doctor{}, err
	}
	d.OnDuty = onDuty
	if err := s.repo.Upsert(ctx, d); err != nil {
		return Doctor{}, fmt.Errorf("set duty: %w", err)
	}
	return d, nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	if _, err := s.Get(ctx, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}
