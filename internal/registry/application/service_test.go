package registry

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	domain "github.com/nbrandt/folio/internal/registry/domain"
)

func testProjects() []domain.Project {
	return []domain.Project{
		{Slug: "alpha", Title: "Alpha", Summary: "First test project.", Tags: []string{"go"}, Status: domain.StatusFeatured},
		{Slug: "beta", Title: "Beta", Summary: "Second test project.", Tags: []string{"go"}, Status: domain.StatusActive},
		{Slug: "gamma", Title: "Gamma", Summary: "Third test project.", Tags: []string{"go"}, Status: domain.StatusFeatured},
	}
}

// countingLoader wraps a fixed result and counts invocations.
func countingLoader(projects []domain.Project, err error) (Loader, *int) {
	calls := 0
	return func(ctx context.Context) ([]domain.Project, error) {
		calls++
		if err != nil {
			return nil, err
		}
		return projects, nil
	}, &calls
}

func TestService_All_PreservesOrder(t *testing.T) {
	loader, _ := countingLoader(testProjects(), nil)
	service := NewService(loader)

	all, err := service.All(context.Background())
	require.NoError(t, err)
	require.Len(t, all, 3)
	require.Equal(t, "alpha", all[0].Slug)
	require.Equal(t, "beta", all[1].Slug)
	require.Equal(t, "gamma", all[2].Slug)
}

func TestService_LoadsExactlyOnce(t *testing.T) {
	loader, calls := countingLoader(testProjects(), nil)
	service := NewService(loader)
	ctx := context.Background()

	_, err := service.All(ctx)
	require.NoError(t, err)

	_, _, err = service.BySlug(ctx, "beta")
	require.NoError(t, err)

	first, err := service.Featured(ctx)
	require.NoError(t, err)
	second, err := service.Featured(ctx)
	require.NoError(t, err)

	require.Equal(t, first, second, "featured accessor is idempotent")
	require.Equal(t, 1, *calls, "loader must run exactly once across accessors")
}

func TestService_BySlug(t *testing.T) {
	loader, _ := countingLoader(testProjects(), nil)
	service := NewService(loader)
	ctx := context.Background()

	p, found, err := service.BySlug(ctx, "beta")
	require.NoError(t, err)
	require.True(t, found)
	require.Equal(t, "Beta", p.Title)

	_, found, err = service.BySlug(ctx, "does-not-exist")
	require.NoError(t, err, "unknown slug is not an error")
	require.False(t, found)
}

func TestService_Featured_SubsequenceInOrder(t *testing.T) {
	loader, _ := countingLoader(testProjects(), nil)
	service := NewService(loader)

	featured, err := service.Featured(context.Background())
	require.NoError(t, err)
	require.Len(t, featured, 2)
	require.Equal(t, "alpha", featured[0].Slug)
	require.Equal(t, "gamma", featured[1].Slug)
}

func TestService_LoadErrorNotCached(t *testing.T) {
	loadErr := errors.New("boom")
	loader, calls := countingLoader(nil, loadErr)
	service := NewService(loader)
	ctx := context.Background()

	_, err := service.All(ctx)
	require.ErrorIs(t, err, loadErr)

	_, err = service.All(ctx)
	require.ErrorIs(t, err, loadErr)
	require.Equal(t, 2, *calls, "failed loads are retried, not cached")
}

func TestNewFileService_ReadsFileOnce(t *testing.T) {
	path := filepath.Join(t.TempDir(), "projects.yaml")
	require.NoError(t, os.WriteFile(path, []byte(minimalProject), 0o644))

	service := NewFileService(path, testBases)
	ctx := context.Background()

	all, err := service.All(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)

	// Registry is read once per process: a file change after the first
	// load is invisible until restart.
	require.NoError(t, os.WriteFile(path, []byte("[]\n"), 0o644))

	again, err := service.All(ctx)
	require.NoError(t, err)
	require.Len(t, again, 1)
}
