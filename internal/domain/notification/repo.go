package notification

import (
	"context"

	"github.com/clipsdental/clinic/internal/platform/kvstore"
)

type Repository interface {
	List(ctx context.Context) ([]Notification, error)
	Insert(ctx context.Context, n Notification) error
	Replace(ctx context.Context, items []Notification) error
}

const storeKey = "notifications"

type kvRepo struct {
	coll *kvstore.Collection[Notification]
}

func NewKVRepo(store kvstore.Store) Repository {
	return &kvRepo{coll: kvstore.NewCollection[Notification](store, storeKey)}
}

func (r *kvRepo) List(ctx context.Context) ([]Notification, error) {
	return r.coll.List(ctx)
}

// Insert prepends so the feed stays newest-first, evicting beyond MaxKept.
func (r *kvRepo) Insert(ctx context.Context, n Notification) error {
	return r.coll.Prepend(ctx, n, MaxKept)
}

func (r *kvRepo) Replace(ctx context.Context, items []Notification) error {
	return r.coll.Replace(ctx, items)
}
