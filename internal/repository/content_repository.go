package repository

import (
	"context"
	"time"

	"portfolio/internal/model"
	"portfolio/internal/store"
)

// ContentRepository persists the single page content document.
type ContentRepository interface {
	Get(ctx context.Context) (*model.Content, error)
	Update(ctx context.Context, update model.ContentUpdate) (*model.Content, error)
	SetCV(ctx context.Context, cv model.CVInfo) (*model.Content, error)
}

type contentRepository struct {
	store store.Store
}

// NewContentRepository builds a store-backed repository.
func NewContentRepository(s store.Store) ContentRepository {
	return &contentRepository{store: s}
}

// Get returns the content document, seeding the default on first use.
func (r *contentRepository) Get(ctx context.Context) (*model.Content, error) {
	var content model.Content
	found, err := r.store.Read(ctx, store.CollectionContent, &content)
	if err != nil {
		return nil, err
	}
	if !found {
		content = model.DefaultContent()
		if err := r.store.Replace(ctx, store.CollectionContent, content); err != nil {
			return nil, err
		}
	}
	return &content, nil
}

func (r *contentRepository) Update(ctx context.Context, update model.ContentUpdate) (*model.Content, error) {
	content, err := r.Get(ctx)
	if err != nil {
		return nil, err
	}
	update.Apply(content)
	content.UpdatedAt = time.Now()
	if err := r.store.Replace(ctx, store.CollectionContent, content); err != nil {
		return nil, err
	}
	return content, nil
}

func (r *contentRepository) SetCV(ctx context.Context, cv model.CVInfo) (*model.Content, error) {
	content, err := r.Get(ctx)
	if err != nil {
		return nil, err
	}
	content.CV = cv
	content.UpdatedAt = time.Now()
	if err := r.store.Replace(ctx, store.CollectionContent, content); err != nil {
		return nil, err
	}
	return content, nil
}
