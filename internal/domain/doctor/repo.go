package doctor

import (
	"context"
	"time"

	"github.com/clipsdental/clinic/internal/platform/kvstore"
)

type Repository interface {
	List(ctx context.Context) ([]Doctor, error)
	Get(ctx context.Context, id string) (Doctor, bool, error)
	Upsert(ctx context.Context, d Doctor) error
	Delete(ctx context.Context, id string) error
	Seed(ctx context.Context) error
}

const storeKey = "doctors"

type kvRepo struct {
	coll *kvstore.Collection[Doctor]
}

func NewKVRepo(store kvstore.Store) Repository {
	return &kvRepo{coll: kvstore.NewCollection[Doctor](store, storeKey)}
}

func (r *kvRepo) List(ctx context.Context) ([]Doctor, error) {
	return r.coll.List(ctx)
}

func (r *kvRepo) Get(ctx context.Context, id string) (Doctor, bool, error) {
	return r.coll.Get(ctx, id)
}

func (r *kvRepo) Upsert(ctx context.Context, d Doctor) error {
	return r.coll.Upsert(ctx, d)
}

func (r *kvRepo) Delete(ctx context.Context, id string) error {
	return r.coll.Delete(ctx, id)
}

// Seed installs the founding doctor on a fresh store.
func (r *kvRepo) Seed(ctx context.Context) error {
	return r.coll.SeedIfEmpty(ctx, []Doctor{{
		ID:         "dr-sameer",
		Name:       "Dr. Sameer Patil",
		Speciality: "MDS - Endodontist",
		Phone:      "+91 77748 46801",
		Email:      "sameer@clipsdental.in",
		OnDuty:     true,
		JoinedAt:   time.Now(),
	}})
}
