package repository

import (
	"context"

	"portfolio/internal/errors"
	"portfolio/internal/model"
	"portfolio/internal/store"
)

// ProjectRepository defines persistence operations for projects.
type ProjectRepository interface {
	List(ctx context.Context) ([]model.Project, error)
	FindByID(ctx context.Context, id string) (*model.Project, error)
	Create(ctx context.Context, project *model.Project) error
	// Update applies mutate to the stored project and writes the collection back.
	Update(ctx context.Context, id string, mutate func(*model.Project)) (*model.Project, error)
	Delete(ctx context.Context, id string) error
}

type projectRepository struct {
	store store.Store
}

// NewProjectRepository builds a store-backed repository.
func NewProjectRepository(s store.Store) ProjectRepository {
	return &projectRepository{store: s}
}

func (r *projectRepository) List(ctx context.Context) ([]model.Project, error) {
	var projects []model.Project
	found, err := r.store.Read(ctx, store.CollectionProjects, &projects)
	if err != nil {
		return nil, err
	}
	if !found {
		return []model.Project{}, nil
	}
	return projects, nil
}

func (r *projectRepository) FindByID(ctx context.Context, id string) (*model.Project, error) {
	projects, err := r.List(ctx)
	if err != nil {
		return nil, err
	}
	for i := range projects {
		if projects[i].ID == id {
			return &projects[i], nil
		}
	}
	return nil, errors.ErrProjectNotFound
}

func (r *projectRepository) Create(ctx context.Context, project *model.Project) error {
	projects, err := r.List(ctx)
	if err != nil {
		return err
	}
	projects = append(projects, *project)
	return r.store.Replace(ctx, store.CollectionProjects, projects)
}

func (r *projectRepository) Update(ctx context.Context, id string, mutate func(*model.Project)) (*model.Project, error) {
	projects, err := r.List(ctx)
	if err != nil {
		return nil, err
	}
	for i := range projects {
		if projects[i].ID == id {
			mutate(&projects[i])
			if err := r.store.Replace(ctx, store.CollectionProjects, projects); err != nil {
				return nil, err
			}
			return &projects[i], nil
		}
	}
	return nil, errors.ErrProjectNotFound
}

func (r *projectRepository) Delete(ctx context.Context, id string) error {
	projects, err := r.List(ctx)
	if err != nil {
		return err
	}
	kept := projects[:0]
	removed := false
	for _, p := range projects {
		if p.ID == id {
			removed = true
			continue
		}
		kept = append(kept, p)
	}
	if !removed {
		return errors.ErrProjectNotFound
	}
	return r.store.Replace(ctx, store.CollectionProjects, kept)
}
