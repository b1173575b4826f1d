package catalog

import (
	"context"
	"testing"
	"time"

	"github.com/sHubh-blip/hd-booking/models"
	"github.com/sHubh-blip/hd-booking/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ---------- Fakes ----------

type fakeExperienceRepo struct {
	experiences  []models.Experience
	getAllCalls  int
	getByIDCalls int
}

func (f *fakeExperienceRepo) GetAll() ([]models.Experience, error) {
	f.getAllCalls++
	return f.experiences, nil
}

func (f *fakeExperienceRepo) GetByID(id string) (*models.Experience, error) {
	f.getByIDCalls++
	for i := range f.experiences {
		if f.experiences[i].ID == id {
			return &f.experiences[i], nil
		}
	}
	return nil, nil
}

func (f *fakeExperienceRepo) Insert(*models.Experience) error { return nil }
func (f *fakeExperienceRepo) DeleteAll() error                { return nil }

type fakeCache struct {
	entries map[string]string
}

func newFakeCache() *fakeCache {
	return &fakeCache{entries: make(map[string]string)}
}

func (f *fakeCache) Get(_ context.Context, key string) (string, error) {
	val, ok := f.entries[key]
	if !ok {
		return "", ErrCacheMiss
	}
	return val, nil
}

func (f *fakeCache) Set(_ context.Context, key, value string, _ time.Duration) error {
	f.entries[key] = value
	return nil
}

func (f *fakeCache) Del(_ context.Context, keys ...string) error {
	for _, key := range keys {
		delete(f.entries, key)
	}
	return nil
}

// ---------- Tests ----------

func newTestCatalog() (*DefaultCatalogService, *fakeExperienceRepo, *fakeCache) {
	repo := &fakeExperienceRepo{
		experiences: []models.Experience{
			{ID: "exp-1", Title: "Kayaking", Location: "Udupi", Price: 999},
			{ID: "exp-2", Title: "Coffee Trail", Location: "Coorg", Price: 1299},
		},
	}
	cache := newFakeCache()
	return &DefaultCatalogService{Repo: repo, Cache: cache}, repo, cache
}

func TestListExperiencesCaches(t *testing.T) {
	svc, repo, _ := newTestCatalog()

	first, err := svc.ListExperiences()
	require.NoError(t, err)
	assert.Len(t, first, 2)
	assert.Equal(t, 1, repo.getAllCalls)

	second, err := svc.ListExperiences()
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.Equal(t, 1, repo.getAllCalls, "second read served from cache")
}

func TestGetExperienceCaches(t *testing.T) {
	svc, repo, _ := newTestCatalog()

	exp, err := svc.GetExperience("exp-1")
	require.NoError(t, err)
	assert.Equal(t, "Kayaking", exp.Title)
	assert.Equal(t, 1, repo.getByIDCalls)

	again, err := svc.GetExperience("exp-1")
	require.NoError(t, err)
	assert.Equal(t, exp.ID, again.ID)
	assert.Equal(t, 1, repo.getByIDCalls)
}

func TestGetExperienceNotFound(t *testing.T) {
	svc, _, _ := newTestCatalog()

	_, err := svc.GetExperience("missing")
	assert.ErrorIs(t, err, ErrExperienceNotFound)
}

func TestInvalidateExperienceDropsCachedEntries(t *testing.T) {
	svc, repo, cache := newTestCatalog()

	_, err := svc.ListExperiences()
	require.NoError(t, err)
	_, err = svc.GetExperience("exp-1")
	require.NoError(t, err)

	svc.InvalidateExperience("exp-1")
	_, listCached := cache.entries[utils.CatalogListCacheKey]
	_, idCached := cache.entries[utils.CatalogCachePrefix+"exp-1"]
	assert.False(t, listCached)
	assert.False(t, idCached)

	_, err = svc.ListExperiences()
	require.NoError(t, err)
	assert.Equal(t, 2, repo.getAllCalls, "list re-read after invalidation")
}

func TestCorruptCacheEntryFallsThrough(t *testing.T) {
	svc, repo, cache := newTestCatalog()
	cache.entries[utils.CatalogListCacheKey] = "{not json"

	experiences, err := svc.ListExperiences()
	require.NoError(t, err)
	assert.Len(t, experiences, 2)
	assert.Equal(t, 1, repo.getAllCalls)
}
