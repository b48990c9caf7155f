package content

import (
	"context"
	"fmt"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// GetContent returns the published copy, falling back to the defaults
// until an admin has saved an edit.
func (s *Service) GetContent(ctx context.Context) (WebsiteContent, error) {
	c, found, err := s.repo.GetContent(ctx)
	if err != nil {
		return WebsiteContent{}, err
	}
	if !found {
		return DefaultWebsiteContent(), nil
	}
	return c, nil
}

// UpdateContent replaces the whole document.
func (s *Service) UpdateContent(ctx context.Context, c WebsiteContent) error {
	if c.Home.Hero.Headline == "" {
		return fmt.Errorf("hero headline is required")
	}
	return s.repo.PutContent(ctx, c)
}

func (s *Service) GetSettings(ctx context.Context) (ClinicSettings, error) {
	st, found, err := s.repo.GetSettings(ctx)
	if err != nil {
		return ClinicSettings{}, err
	}
	if !found {
		return DefaultSettings(), nil
	}
	return st, nil
}

func (s *Service) UpdateSettings(ctx context.Context, st ClinicSettings) error {
	if st.Name == "" {
		return fmt.Errorf("clinic name is required")
	}
	if st.Phone == "" {
		return fmt.Errorf("clinic phone is required")
	}
	return s.repo.PutSettings(ctx, st)
}
