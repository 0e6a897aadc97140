package catalog

import "context"

const (
	cacheKeyOverview = "overview"
	cacheKeyNames    = "names"
	cacheKeyCurrent  = "current:"
)

// Service serves best-seller data out of the TTL cache, falling back to the
// upstream fetcher on a miss. Fetch failures surface immediately; stale data
// is never served in their place.
type Service struct {
	fetcher Fetcher
	cache   *Cache
}

func NewService(fetcher Fetcher, cache *Cache) *Service {
	return &Service{fetcher: fetcher, cache: cache}
}

// Overview returns the full list-overview snapshot.
func (s *Service) Overview(ctx context.Context) (Overview, error) {
	if v, ok := s.cache.Get(cacheKeyOverview); ok {
		return v.(Overview), nil
	}
	overview, err := s.fetcher.Overview(ctx)
	if err != nil {
		return Overview{}, err
	}
	s.cache.Set(cacheKeyOverview, overview)
	return overview, nil
}

// ListNames returns the names of every published list.
func (s *Service) ListNames(ctx context.Context) ([]ListName, error) {
	if v, ok := s.cache.Get(cacheKeyNames); ok {
		return v.([]ListName), nil
	}
	names, err := s.fetcher.ListNames(ctx)
	if err != nil {
		return nil, err
	}
	s.cache.Set(cacheKeyNames, names)
	return names, nil
}

// CurrentList returns the current snapshot of one named list. Each list key
// gets its own independently TTL'd cache entry.
func (s *Service) CurrentList(ctx context.Context, encodedKey string) (List, error) {
	key := cacheKeyCurrent + encodedKey
	if v, ok := s.cache.Get(key); ok {
		return v.(List), nil
	}
	list, err := s.fetcher.CurrentList(ctx, encodedKey)
	if err != nil {
		return List{}, err
	}
	s.cache.Set(key, list)
	return list, nil
}

// Search runs the query against the cached overview, refreshing it first if
// the cache entry is missing or stale.
func (s *Service) Search(ctx context.Context, query string) ([]Book, error) {
	overview, err := s.Overview(ctx)
	if err != nil {
		return nil, err
	}
	return Search(query, overview)
}
