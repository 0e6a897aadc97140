package catalog_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bookradar/internal/catalog"
	"bookradar/internal/testutil"
)

func newTestHandler(t *testing.T) (*catalog.HTTPHandler, *catalog.MockFetcher) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)
	fetcher := catalog.NewMockFetcher(ctrl)
	service := catalog.NewService(fetcher, catalog.NewCache(catalog.DefaultTTL, nil))
	return catalog.NewHTTPHandler(service), fetcher
}

func TestHTTPHandler_Search(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		handler, fetcher := newTestHandler(t)
		fetcher.EXPECT().Overview(gomock.Any()).Return(testutil.TestOverview, nil)

		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/api/books/search?q=harbor", nil)

		handler.Search(w, r)

		assert.Equal(t, http.StatusOK, w.Code)

		var body struct {
			Results []catalog.Book `json:"results"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		require.Len(t, body.Results, 1)
		assert.Equal(t, "9780000000003", body.Results[0].PrimaryISBN13)
	})

	t.Run("duplicate across lists collapses", func(t *testing.T) {
		handler, fetcher := newTestHandler(t)
		fetcher.EXPECT().Overview(gomock.Any()).Return(testutil.TestOverview, nil)

		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/api/books/search?q=silent+sea", nil)

		handler.Search(w, r)

		assert.Equal(t, http.StatusOK, w.Code)

		var body struct {
			Results []catalog.Book `json:"results"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		require.Len(t, body.Results, 1)
		assert.Equal(t, "9780000000001", body.Results[0].PrimaryISBN13)
	})

	t.Run("blank query", func(t *testing.T) {
		handler, _ := newTestHandler(t)

		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/api/books/search?q=++", nil)

		handler.Search(w, r)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("upstream failure", func(t *testing.T) {
		handler, fetcher := newTestHandler(t)
		fetcher.EXPECT().Overview(gomock.Any()).Return(catalog.Overview{}, catalog.ErrUpstream)

		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/api/books/search?q=harbor", nil)

		handler.Search(w, r)

		assert.Equal(t, http.StatusBadGateway, w.Code)
	})
}

func TestHTTPHandler_ListNames(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		handler, fetcher := newTestHandler(t)
		names := []catalog.ListName{{DisplayName: "Hardcover Fiction", ListNameEncoded: "hardcover-fiction"}}
		fetcher.EXPECT().ListNames(gomock.Any()).Return(names, nil)

		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/api/books/list-names", nil)

		handler.ListNames(w, r)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"results":[{"display_name":"Hardcover Fiction","list_name_encoded":"hardcover-fiction"}]}`, w.Body.String())
	})

	t.Run("upstream failure", func(t *testing.T) {
		handler, fetcher := newTestHandler(t)
		fetcher.EXPECT().ListNames(gomock.Any()).Return(nil, catalog.ErrUpstream)

		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/api/books/list-names", nil)

		handler.ListNames(w, r)

		assert.Equal(t, http.StatusBadGateway, w.Code)
	})
}

func TestHTTPHandler_CurrentList(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		handler, fetcher := newTestHandler(t)
		list := catalog.List{ListName: "Hardcover Fiction", ListNameEncoded: "hardcover-fiction"}
		fetcher.EXPECT().CurrentList(gomock.Any(), "hardcover-fiction").Return(list, nil)

		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/api/books/current/hardcover-fiction", nil)
		r.SetPathValue("name", "hardcover-fiction")

		handler.CurrentList(w, r)

		assert.Equal(t, http.StatusOK, w.Code)

		var body struct {
			Results catalog.List `json:"results"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, "Hardcover Fiction", body.Results.ListName)
	})

	t.Run("upstream failure", func(t *testing.T) {
		handler, fetcher := newTestHandler(t)
		fetcher.EXPECT().CurrentList(gomock.Any(), "advice").Return(catalog.List{}, catalog.ErrUpstream)

		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/api/books/current/advice", nil)
		r.SetPathValue("name", "advice")

		handler.CurrentList(w, r)

		assert.Equal(t, http.StatusBadGateway, w.Code)
	})
}
