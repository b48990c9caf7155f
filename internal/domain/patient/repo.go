package patient

import (
	"context"

	"github.com/clipsdental/clinic/internal/platform/kvstore"
)

type Repository interface {
	List(ctx context.Context) ([]Patient, error)
	Get(ctx context.Context, id string) (Patient, bool, error)
	Upsert(ctx context.Context, p Patient) error
	Delete(ctx context.Context, id string) error
}

const storeKey = "patients"

type kvRepo struct {
	coll *kvstore.Collection[Patient]
}

func NewKVRepo(store kvstore.Store) Repository {
	return &kvRepo{coll: kvstore.NewCollection[Patient](store, storeKey)}
}

func (r *kvRepo) List(ctx context.Context) ([]Patient, error) {
	return r.coll.List(ctx)
}

func (r *kvRepo) Get(ctx context.Context, id string) (Patient, bool, error) {
	return r.coll.Get(ctx, id)
}

func (r *kvRepo) Upsert(ctx context.Context, p Patient) error {
	return r.coll.Upsert(ctx, p)
}

func (r *kvRepo) Delete(ctx context.Context, id string) error {
	return r.coll.Delete(ctx, id)
}
