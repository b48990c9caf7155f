package catalog

import (
	"context"

	"github.com/clipsdental/clinic/internal/platform/kvstore"
)

type TreatmentRepository interface {
	List(ctx context.Context) ([]Treatment, error)
	Get(ctx context.Context, id string) (Treatment, bool, error)
	Upsert(ctx context.Context, t Treatment) error
	Delete(ctx context.Context, id string) error
	Seed(ctx context.Context) error
}

type GalleryRepository interface {
	List(ctx context.Context) ([]GalleryItem, error)
	Get(ctx context.Context, id string) (GalleryItem, bool, error)
	Upsert(ctx context.Context, g GalleryItem) error
	Delete(ctx context.Context, id string) error
	Seed(ctx context.Context) error
}

type TestimonialRepository interface {
	List(ctx context.Context) ([]Testimonial, error)
	Get(ctx context.Context, id string) (Testimonial, bool, error)
	Upsert(ctx context.Context, t Testimonial) error
	Delete(ctx context.Context, id string) error
	Seed(ctx context.Context) error
}

const (
	treatmentsKey   = "services"
	galleryKey      = "gallery"
	testimonialsKey = "testimonials"
)

type kvTreatmentRepo struct {
	coll *kvstore.Collection[Treatment]
}

func NewKVTreatmentRepo(store kvstore.Store) TreatmentRepository {
	return &kvTreatmentRepo{coll: kvstore.NewCollection[Treatment](store, treatmentsKey)}
}

func (r *kvTreatmentRepo) List(ctx context.Context) ([]Treatment, error) {
	return r.coll.List(ctx)
}

func (r *kvTreatmentRepo) Get(ctx context.Context, id string) (Treatment, bool, error) {
	return r.coll.Get(ctx, id)
}

func (r *kvTreatmentRepo) Upsert(ctx context.Context, t Treatment) error {
	return r.coll.Upsert(ctx, t)
}

func (r *kvTreatmentRepo) Delete(ctx context.Context, id string) error {
	return r.coll.Delete(ctx, id)
}

func (r *kvTreatmentRepo) Seed(ctx context.Context) error {
	return r.coll.SeedIfEmpty(ctx, defaultTreatments())
}

type kvGalleryRepo struct {
	coll *kvstore.Collection[GalleryItem]
}

func NewKVGalleryRepo(store kvstore.Store) GalleryRepository {
	return &kvGalleryRepo{coll: kvstore.NewCollection[GalleryItem](store, galleryKey)}
}

func (r *kvGalleryRepo) List(ctx context.Context) ([]GalleryItem, error) {
	return r.coll.List(ctx)
}

func (r *kvGalleryRepo) Get(ctx context.Context, id string) (GalleryItem, bool, error) {
	return r.coll.Get(ctx, id)
}

func (r *kvGalleryRepo) Upsert(ctx context.Context, g GalleryItem) error {
	return r.coll.Upsert(ctx, g)
}

func (r *kvGalleryRepo) Delete(ctx context.Context, id string) error {
	return r.coll.Delete(ctx, id)
}

func (r *kvGalleryRepo) Seed(ctx context.Context) error {
	return r.coll.SeedIfEmpty(ctx, defaultGallery())
}

type kvTestimonialRepo struct {
	coll *kvstore.Collection[Testimonial]
}

func NewKVTestimonialRepo(store kvstore.Store) TestimonialRepository {
	return &kvTestimonialRepo{coll: kvstore.NewCollection[Testimonial](store, testimonialsKey)}
}

func (r *kvTestimonialRepo) List(ctx context.Context) ([]Testimonial, error) {
	return r.coll.List(ctx)
}

func (r *kvTestimonialRepo) Get(ctx context.Context, id string) (Testimonial, bool, error) {
	return r.coll.Get(ctx, id)
}

func (r *kvTestimonialRepo) Upsert(ctx context.Context, t Testimonial) error {
	return r.coll.Upsert(ctx, t)
}

func (r *kvTestimonialRepo) Delete(ctx context.Context, id string) error {
	return r.coll.Delete(ctx, id)
}

func (r *kvTestimonialRepo) Seed(ctx context.Context) error {
	return r.coll.SeedIfEmpty(ctx, defaultTestimonials())
}
