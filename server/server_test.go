package server

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ksym/mikanz/pkg/logger"
	"github.com/ksym/mikanz/pkg/media"
	"github.com/ksym/mikanz/pkg/pagination"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubManager struct {
	calendarErr error
	cleared     bool
}

func (s *stubManager) GetCalendar(_ context.Context) ([]media.CalendarDay, error) {
	if s.calendarErr != nil {
		return nil, s.calendarErr
	}
	return []media.CalendarDay{{Weekday: 0, Items: []media.Series{{ID: "3141", Name: "Show"}}}}, nil
}

func (s *stubManager) SearchSeries(_ context.Context, keyword string) ([]media.Series, error) {
	return []media.Series{{ID: "3141", Name: keyword}}, nil
}

func (s *stubManager) GetSeries(_ context.Context, id string) (*media.Series, error) {
	return &media.Series{ID: id, Name: "Show"}, nil
}

func (s *stubManager) ListEpisodes(_ context.Context, id string, params pagination.Params) ([]media.Episode, pagination.Meta, error) {
	return []media.Episode{{Title: "one", Number: "01"}}, params.BuildMeta(1), nil
}

func (s *stubManager) ClearSeenCache() {
	s.cleared = true
}

func newTestServer(t *testing.T, m MediaManager) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(New(logger.Get(), m).Router())
	t.Cleanup(srv.Close)
	return srv
}

func doGet(t *testing.T, url string) (*http.Response, GenericResponse) {
	t.Helper()
	res, err := http.Get(url)
	require.NoError(t, err)
	t.Cleanup(func() { res.Body.Close() })

	var body GenericResponse
	require.NoError(t, json.NewDecoder(res.Body).Decode(&body))
	return res, body
}

func TestHealthz(t *testing.T) {
	srv := newTestServer(t, &stubManager{})

	res, body := doGet(t, srv.URL+"/healthz")
	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Equal(t, "ok", body.Response)
}

func TestGetCalendar(t *testing.T) {
	srv := newTestServer(t, &stubManager{})

	res, body := doGet(t, srv.URL+"/api/v1/calendar")
	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Nil(t, body.Error)
	assert.NotNil(t, body.Response)
}

func TestGetCalendar_UpstreamFailure(t *testing.T) {
	srv := newTestServer(t, &stubManager{calendarErr: fmt.Errorf("tracker is down")})

	res, body := doGet(t, srv.URL+"/api/v1/calendar")
	assert.Equal(t, http.StatusBadGateway, res.StatusCode)
	require.NotNil(t, body.Error)
	assert.Equal(t, "tracker is down", *body.Error)
}

func TestSearchSeries_EmptyQuery(t *testing.T) {
	srv := newTestServer(t, &stubManager{})

	res, err := http.Get(srv.URL + "/api/v1/search")
	require.NoError(t, err)
	defer res.Body.Close()
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
}

func TestListEpisodes_InvalidPage(t *testing.T) {
	srv := newTestServer(t, &stubManager{})

	res, err := http.Get(srv.URL + "/api/v1/series/3141/episodes?page=-1")
	require.NoError(t, err)
	defer res.Body.Close()
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
}

func TestClearCache(t *testing.T) {
	m := &stubManager{}
	srv := newTestServer(t, m)

	res, err := http.Post(srv.URL+"/api/v1/cache/clear", "application/json", nil)
	require.NoError(t, err)
	defer res.Body.Close()

	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.True(t, m.cleared)
}
