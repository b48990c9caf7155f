package notification

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Emit records a new notification at the head of the feed.
func (s *Service) Emit(ctx context.Context, typ Type, title, message string) (Notification, error) {
	n := Notification{
		ID:        uuid.NewString(),
		Type:      typ,
		Title:     title,
		Message:   message,
		Read:      false,
		CreatedAt: time.Now(),
	}
	if err := s.repo.Insert(ctx, n); err != nil {
		return Notification{}, fmt.Errorf("emit notification: %w", err)
	}
	return n, nil
}

func (s *Service) List(ctx context.Context) ([]Notification, error) {
	return s.repo.List(ctx)
}

// MarkRead flags a single notification as read. Unknown ids are a no-op.
func (s *Service) MarkRead(ctx context.Context, id string) error {
	items, err := s.repo.List(ctx)
	if err != nil {
		return err
	}
	changed := false
	for i := range items {
		if items[i].ID == id && !items[i].Read {
			items[i].Read = true
			changed = true
		}
	}
	if !changed {
		return nil
	}
	return s.repo.Replace(ctx, items)
}

func (s *Service) MarkAllRead(ctx context.Context) error {
	items, err := s.repo.List(ctx)
	if err != nil {
		return err
	}
	changed := false
	for i := range items {
		if !items[i].Read {
			items[i].Read = true
			changed = true
		}
	}
	if !changed {
		return nil
	}
	return s.repo.Replace(ctx, items)
}

func (s *Service) Clear(ctx context.Context) error {
	return s.repo.Replace(ctx, []Notification{})
}
