package lead

import (
	"context"

	"github.com/clipsdental/clinic/internal/platform/kvstore"
)

type Repository interface {
	List(ctx context.Context) ([]Lead, error)
	Get(ctx context.Context, id string) (Lead, bool, error)
	Insert(ctx context.Context, l Lead) error
	Update(ctx context.Context, l Lead) error
	Delete(ctx context.Context, id string) error
}

const storeKey = "leads"

type kvRepo struct {
	coll *kvstore.Collection[Lead]
}

func NewKVRepo(store kvstore.Store) Repository {
	return &kvRepo{coll: kvstore.NewCollection[Lead](store, storeKey)}
}

func (r *kvRepo) List(ctx context.Context) ([]Lead, error) {
	return r.coll.List(ctx)
}

func (r *kvRepo) Get(ctx context.Context, id string) (Lead, bool, error) {
	return r.coll.Get(ctx, id)
}

// Insert prepends so listings default to newest-first.
func (r *kvRepo) Insert(ctx context.Context, l Lead) error {
	return r.coll.Prepend(ctx, l, 0)
}

func (r *kvRepo) Update(ctx context.Context, l Lead) error {
	return r.coll.Upsert(ctx, l)
}

func (r *kvRepo) Delete(ctx context.Context, id string) error {
	return r.coll.Delete(ctx, id)
}
