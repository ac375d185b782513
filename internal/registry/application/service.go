package registry

import (
	"context"

	"github.com/nbrandt/folio/internal/cachemanager"
	"github.com/nbrandt/folio/internal/log"
	domain "github.com/nbrandt/folio/internal/registry/domain"
)

const cacheKey = "projects"

// Loader produces the validated project list. The default is
// LoadProjects over the configured registry path; tests and the CLI
// inject substitutes.
type Loader func(ctx context.Context) ([]domain.Project, error)

// Service serves the cached project registry. The first accessor call
// runs the loader; the result is retained for the life of the process
// with no invalidation or reload (a fresh process re-reads the file).
// Load failures are not cached, so a later call retries.
type Service struct {
	cache *cachemanager.ReadThroughCache[string, []domain.Project, struct{}]
}

// NewService creates a registry service around loader.
func NewService(loader Loader) *Service {
	manager := cachemanager.NewInMemoryCacheManager[string, []domain.Project](
		"project-registry", cachemanager.NoExpiration, cachemanager.DefaultCleanupInterval,
	)
	return &Service{
		cache: cachemanager.NewReadThroughCache[string, []domain.Project, struct{}](
			manager,
			func(ctx context.Context, _ struct{}) ([]domain.Project, error) {
				projects, err := loader(ctx)
				if err != nil {
					log.ErrorErr(log.CatRegistry, "registry load failed", err)
					return nil, err
				}
				log.Info(log.CatRegistry, "registry loaded", "projects", len(projects))
				return projects, nil
			},
			false,
		),
	}
}

// NewFileService creates a registry service loading from path with the
// given placeholder bases.
func NewFileService(path string, bases map[string]string) *Service {
	return NewService(func(ctx context.Context) ([]domain.Project, error) {
		return LoadProjects(path, bases)
	})
}

// Load forces the registry into the cache, returning the full list.
// Idempotent; every accessor goes through the same cached load.
func (s *Service) Load(ctx context.Context) ([]domain.Project, error) {
	return s.cache.Get(ctx, cacheKey, struct{}{}, cachemanager.NoExpiration)
}

// All returns the full project list in file order.
func (s *Service) All(ctx context.Context) ([]domain.Project, error) {
	return s.Load(ctx)
}

// BySlug returns the project with the given slug. A missing slug is
// reported through the bool, never as an error.
func (s *Service) BySlug(ctx context.Context, slug string) (domain.Project, bool, error) {
	projects, err := s.Load(ctx)
	if err != nil {
		return domain.Project{}, false, err
	}
	for _, p := range projects {
		if p.Slug == slug {
			return p, true, nil
		}
	}
	return domain.Project{}, false, nil
}

// Featured returns the projects with featured status, file order
// preserved.
func (s *Service) Featured(ctx context.Context) ([]domain.Project, error) {
	projects, err := s.Load(ctx)
	if err != nil {
		return nil, err
	}
	featured := make([]domain.Project, 0)
	for _, p := range projects {
		if p.Status == domain.StatusFeatured {
			featured = append(featured, p)
		}
	}
	return featured, nil
}
