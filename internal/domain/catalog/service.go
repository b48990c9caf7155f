package catalog

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
)

var ErrNotFound = errors.New("catalog: not found")

type Service struct {
	treatments   TreatmentRepository
	gallery      GalleryRepository
	testimonials TestimonialRepository
}

func NewService(treatments TreatmentRepository, gallery GalleryRepository, testimonials TestimonialRepository) *Service {
	return &Service{
		treatments:   treatments,
		gallery:      gallery,
		testimonials: testimonials,
	}
}

// Seed installs the default catalog on any collection that is still
// empty.
func (s *Service) Seed(ctx context.Context) error {
	if err := s.treatments.Seed(ctx); err != nil {
		return fmt.Errorf("seed treatments: %w", err)
	}
	if err := s.gallery.Seed(ctx); err != nil {
		return fmt.Errorf("seed gallery: %w", err)
	}
	if err := s.testimonials.Seed(ctx); err != nil {
		return fmt.Errorf("seed testimonials: %w", err)
	}
	return nil
}

// -- Treatments --

func (s *Service) ListTreatments(ctx context.Context) ([]Treatment, error) {
	return s.treatments.List(ctx)
}

func (s *Service) GetTreatment(ctx context.Context, id string) (Treatment, error) {
	t, found, err := s.treatments.Get(ctx, id)
	if err != nil {
		return Treatment{}, err
	}
	if !found {
		return Treatment{}, ErrNotFound
	}
	return t, nil
}

// SaveTreatment creates or updates a treatment. New treatments get a
// generated id.
func (s *Service) SaveTreatment(ctx context.Context, t *Treatment) error {
	if t.Title == "" {
		return fmt.Errorf("treatment title is required")
	}
	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	if t.Benefits == nil {
		t.Benefits = []string{}
	}
	return s.treatments.Upsert(ctx, *t)
}

func (s *Service) DeleteTreatment(ctx context.Context, id string) error {
	if _, err := s.GetTreatment(ctx, id); err != nil {
		return err
	}
	return s.treatments.Delete(ctx, id)
}

// -- Gallery --

func (s *Service) ListGallery(ctx context.Context) ([]GalleryItem, error) {
	return s.gallery.List(ctx)
}

func (s *Service) AddGalleryItem(ctx context.Context, g *GalleryItem) error {
	if g.URL == "" {
		return fmt.Errorf("gallery item url is required")
	}
	if !g.Category.Valid() {
		return fmt.Errorf("invalid gallery category: %s", g.Category)
	}
	g.ID = uuid.NewString()
	return s.gallery.Upsert(ctx, *g)
}

func (s *Service) DeleteGalleryItem(ctx context.Context, id string) error {
	_, found, err := s.gallery.Get(ctx, id)
	if err != nil {
		return err
	}
	if !found {
		return ErrNotFound
	}
	return s.gallery.Delete(ctx, id)
}

// -- Testimonials --

func (s *Service) ListTestimonials(ctx context.Context) ([]Testimonial, error) {
	return s.testimonials.List(ctx)
}

func (s *Service) SaveTestimonial(ctx context.Context, t *Testimonial) error {
	if t.Name == "" || t.Text == "" {
		return fmt.Errorf("testimonial name and text are required")
	}
	if t.Rating < 1 || t.Rating > 5 {
		return fmt.Errorf("testimonial rating must be between 1 and 5")
	}
	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	return s.testimonials.Upsert(ctx, *t)
}

func (s *Service) DeleteTestimonial(ctx context.Context, id string) error {
	_, found, err := s.testimonials.Get(ctx, id)
	if err != nil {
		return err
	}
	if !found {
		return ErrNotFound
	}
	return s.testimonials.Delete(ctx, id)
}
