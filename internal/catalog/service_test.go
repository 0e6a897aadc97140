package catalog

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeClock drives the cache's injectable clock so TTL behavior is tested
// without sleeps.
type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.now = c.now.Add(d)
}

func newTestService(t *testing.T) (*Service, *MockFetcher, *fakeClock) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)
	fetcher := NewMockFetcher(ctrl)
	clock := &fakeClock{now: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)}
	service := NewService(fetcher, NewCache(DefaultTTL, clock.Now))
	return service, fetcher, clock
}

func TestService_OverviewCachedWithinTTL(t *testing.T) {
	service, fetcher, clock := newTestService(t)
	overview := Overview{Lists: []List{{ListName: "Hardcover Fiction"}}}

	// Exactly one upstream fetch for two calls inside the TTL window.
	fetcher.EXPECT().Overview(gomock.Any()).Return(overview, nil).Times(1)

	first, err := service.Overview(context.Background())
	require.NoError(t, err)
	assert.Equal(t, overview, first)

	clock.Advance(4 * time.Minute)

	second, err := service.Overview(context.Background())
	require.NoError(t, err)
	assert.Equal(t, overview, second)
}

func TestService_OverviewRefetchedAfterExpiry(t *testing.T) {
	service, fetcher, clock := newTestService(t)
	stale := Overview{Lists: []List{{ListName: "Old"}}}
	fresh := Overview{Lists: []List{{ListName: "New"}}}

	gomock.InOrder(
		fetcher.EXPECT().Overview(gomock.Any()).Return(stale, nil),
		fetcher.EXPECT().Overview(gomock.Any()).Return(fresh, nil),
	)

	_, err := service.Overview(context.Background())
	require.NoError(t, err)

	clock.Advance(DefaultTTL)

	got, err := service.Overview(context.Background())
	require.NoError(t, err)
	assert.Equal(t, fresh, got, "expired entry must be replaced wholesale")
}

func TestService_FailedFetchIsNotCached(t *testing.T) {
	service, fetcher, _ := newTestService(t)
	overview := Overview{Lists: []List{{ListName: "Fiction"}}}

	gomock.InOrder(
		fetcher.EXPECT().Overview(gomock.Any()).Return(Overview{}, ErrUpstream),
		fetcher.EXPECT().Overview(gomock.Any()).Return(overview, nil),
	)

	_, err := service.Overview(context.Background())
	assert.ErrorIs(t, err, ErrUpstream)

	got, err := service.Overview(context.Background())
	require.NoError(t, err)
	assert.Equal(t, overview, got)
}

func TestService_CurrentListCachedPerKey(t *testing.T) {
	service, fetcher, clock := newTestService(t)
	fiction := List{ListName: "Hardcover Fiction"}
	advice := List{ListName: "Advice"}

	fetcher.EXPECT().CurrentList(gomock.Any(), "hardcover-fiction").Return(fiction, nil).Times(1)
	fetcher.EXPECT().CurrentList(gomock.Any(), "advice").Return(advice, nil).Times(1)

	got, err := service.CurrentList(context.Background(), "hardcover-fiction")
	require.NoError(t, err)
	assert.Equal(t, fiction, got)

	// A different key is an independent entry and triggers its own fetch.
	got, err = service.CurrentList(context.Background(), "advice")
	require.NoError(t, err)
	assert.Equal(t, advice, got)

	clock.Advance(time.Minute)

	got, err = service.CurrentList(context.Background(), "hardcover-fiction")
	require.NoError(t, err)
	assert.Equal(t, fiction, got)
}

func TestService_ListNamesCached(t *testing.T) {
	service, fetcher, _ := newTestService(t)
	names := []ListName{{DisplayName: "Hardcover Fiction", ListNameEncoded: "hardcover-fiction"}}

	fetcher.EXPECT().ListNames(gomock.Any()).Return(names, nil).Times(1)

	for i := 0; i < 3; i++ {
		got, err := service.ListNames(context.Background())
		require.NoError(t, err)
		assert.Equal(t, names, got)
	}
}

func TestService_SearchUsesCachedOverview(t *testing.T) {
	service, fetcher, _ := newTestService(t)
	overview := Overview{Lists: []List{
		{ListName: "Hardcover Fiction", Books: []Book{
			{Title: "Harbor Town", Author: "Mei Lin", PrimaryISBN13: "1"},
		}},
	}}

	fetcher.EXPECT().Overview(gomock.Any()).Return(overview, nil).Times(1)

	results, err := service.Search(context.Background(), "harbor")
	require.NoError(t, err)
	require.Len(t, results, 1)

	// Second query hits the cache.
	results, err = service.Search(context.Background(), "mei lin")
	require.NoError(t, err)
	require.Len(t, results, 1)
}

func TestService_SearchPropagatesFetchError(t *testing.T) {
	service, fetcher, _ := newTestService(t)

	fetcher.EXPECT().Overview(gomock.Any()).Return(Overview{}, errors.New("boom"))

	_, err := service.Search(context.Background(), "harbor")
	assert.Error(t, err)
}
