package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"portfolio/internal/cache"
	"portfolio/internal/model"
	"portfolio/internal/repository"
)

const (
	publicProjectsCacheKey = "public:projects"
	publicCacheTTL         = 5 * time.Minute
)

// FileRemover deletes a stored upload and its derived preview.
type FileRemover interface {
	Remove(ctx context.Context, filename string) error
}

// ProjectService handles project CRUD and the public project views.
type ProjectService interface {
	ListPublic(ctx context.Context) ([]model.PublicProject, error)
	GetPublic(ctx context.Context, id string) (*model.PublicProjectDetail, error)
	List(ctx context.Context) ([]model.Project, error)
	Create(ctx context.Context, project *model.Project) (*model.Project, error)
	Update(ctx context.Context, id string, update model.ProjectUpdate) (*model.Project, error)
	Delete(ctx context.Context, id string) error
}

type projectService struct {
	repo  repository.ProjectRepository
	files FileRemover
	cache *cache.Client
}

// NewProjectService creates a new project service.
func NewProjectService(repo repository.ProjectRepository, files FileRemover, cache *cache.Client) ProjectService {
	return &projectService{
		repo:  repo,
		files: files,
		cache: cache,
	}
}

// ListPublic returns the public listing shape, cached.
func (s *projectService) ListPublic(ctx context.Context) ([]model.PublicProject, error) {
	if data, _ := s.cache.Get(ctx, publicProjectsCacheKey); data != nil {
		var cached []model.PublicProject
		if err := json.Unmarshal(data, &cached); err == nil {
			return cached, nil
		}
	}

	projects, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	public := make([]model.PublicProject, 0, len(projects))
	for i := range projects {
		public = append(public, projects[i].Public())
	}

	if payload, err := json.Marshal(public); err == nil {
		_ = s.cache.Set(ctx, publicProjectsCacheKey, payload, publicCacheTTL)
	}
	return public, nil
}

// GetPublic returns a single project with media reduced to watermarked previews.
func (s *projectService) GetPublic(ctx context.Context, id string) (*model.PublicProjectDetail, error) {
	project, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	detail := project.PublicDetail()
	return &detail, nil
}

func (s *projectService) List(ctx context.Context) ([]model.Project, error) {
	return s.repo.List(ctx)
}

func (s *projectService) Create(ctx context.Context, project *model.Project) (*model.Project, error) {
	now := time.Now()
	project.ID = uuid.NewString()
	project.CreatedAt = now
	project.UpdatedAt = now
	if project.Tags == nil {
		project.Tags = []string{}
	}
	if project.Media == nil {
		project.Media = []model.MediaFile{}
	}

	if err := s.repo.Create(ctx, project); err != nil {
		return nil, fmt.Errorf("create project: %w", err)
	}
	_ = s.cache.Delete(ctx, publicProjectsCacheKey)
	return project, nil
}

func (s *projectService) Update(ctx context.Context, id string, update model.ProjectUpdate) (*model.Project, error) {
	project, err := s.repo.Update(ctx, id, func(p *model.Project) {
		update.Apply(p)
		p.UpdatedAt = time.Now()
	})
	if err != nil {
		return nil, err
	}
	_ = s.cache.Delete(ctx, publicProjectsCacheKey)
	return project, nil
}

// Delete removes the project and cascades to its uploaded files. A file that
// is already gone does not abort the deletion.
func (s *projectService) Delete(ctx context.Context, id string) error {
	project, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}

	for _, media := range project.Media {
		if err := s.files.Remove(ctx, media.Filename); err != nil {
			log.Printf("delete media %s: %v", media.Filename, err)
		}
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	_ = s.cache.Delete(ctx, publicProjectsCacheKey)
	return nil
}
