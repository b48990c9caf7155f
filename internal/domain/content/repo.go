package content

import (
	"context"
	"errors"

	"github.com/clipsdental/clinic/internal/platform/kvstore"
)

type Repository interface {
	GetContent(ctx context.Context) (WebsiteContent, bool, error)
	PutContent(ctx context.Context, c WebsiteContent) error
	GetSettings(ctx context.Context) (ClinicSettings, bool, error)
	PutSettings(ctx context.Context, s ClinicSettings) error
}

const (
	contentKey  = "website-content"
	settingsKey = "settings"
)

type kvRepo struct {
	store kvstore.Store
}

func NewKVRepo(store kvstore.Store) Repository {
	return &kvRepo{store: store}
}

func (r *kvRepo) GetContent(ctx context.Context) (WebsiteContent, bool, error) {
	var c WebsiteContent
	err := r.store.Read(ctx, contentKey, &c)
	if errors.Is(err, kvstore.ErrNotFound) {
		return WebsiteContent{}, false, nil
	}
	if err != nil {
		return WebsiteContent{}, false, err
	}
	return c, true, nil
}

func (r *kvRepo) PutContent(ctx context.Context, c WebsiteContent) error {
	return r.store.Write(ctx, contentKey, c)
}

func (r *kvRepo) GetSettings(ctx context.Context) (ClinicSettings, bool, error) {
	var s ClinicSettings
	err := r.store.Read(ctx, settingsKey, &s)
	if errors.Is(err, kvstore.ErrNotFound) {
		return ClinicSettings{}, false, nil
	}
	if err != nil {
		return ClinicSettings{}, false, err
	}
	return s, true, nil
}

func (r *kvRepo) PutSettings(ctx context.Context, s ClinicSettings) error {
	return r.store.Write(ctx, settingsKey, s)
}
