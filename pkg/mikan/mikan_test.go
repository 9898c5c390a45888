package mikan

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	t.Run("empty base url", func(t *testing.T) {
		_, err := New("")
		assert.Error(t, err)
	})

	t.Run("default image base", func(t *testing.T) {
		c, err := New(DefaultBaseURL)
		require.NoError(t, err)
		assert.Equal(t, DefaultImageBaseURL, c.imageBaseURL.String())
	})
}

func TestClient_Calendar(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		b, err := os.ReadFile("testdata/calendar.html")
		require.NoError(t, err)
		w.Write(b)
	}))
	defer srv.Close()

	c, err := New(srv.URL)
	require.NoError(t, err)

	days, err := c.Calendar(context.Background())
	require.NoError(t, err)
	require.Len(t, days, 4)
	assert.Equal(t, 0, days[0].Weekday)
}

func TestClient_SeriesDetail(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/Home/Bangumi/3344", r.URL.Path)
		b, err := os.ReadFile("testdata/bangumi.html")
		require.NoError(t, err)
		w.Write(b)
	}))
	defer srv.Close()

	c, err := New(srv.URL)
	require.NoError(t, err)

	detail, err := c.SeriesDetail(context.Background(), "3344")
	require.NoError(t, err)
	assert.Equal(t, "400602", detail.SubjectID)
}

func TestClient_Search(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/Home/Search", r.URL.Path)
		assert.Equal(t, "frieren", r.URL.Query().Get("searchstr"))
		b, err := os.ReadFile("testdata/search.html")
		require.NoError(t, err)
		w.Write(b)
	}))
	defer srv.Close()

	c, err := New(srv.URL)
	require.NoError(t, err)

	items, err := c.Search(context.Background(), "frieren")
	require.NoError(t, err)
	assert.Len(t, items, 2)
}

func TestClient_FetchFailures(t *testing.T) {
	t.Run("non-2xx is an error, not an empty result", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "gone", http.StatusBadGateway)
		}))
		defer srv.Close()

		c, err := New(srv.URL)
		require.NoError(t, err)

		_, err = c.Calendar(context.Background())
		assert.Error(t, err)
	})

	t.Run("timeout surfaces as an error", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			<-r.Context().Done()
		}))
		defer srv.Close()

		c, err := New(srv.URL)
		require.NoError(t, err)

		ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
		defer cancel()

		_, err = c.Search(ctx, "frieren")
		assert.Error(t, err)
	})

	t.Run("client timeout bounds a hung fetch without a caller deadline", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			<-r.Context().Done()
		}))
		defer srv.Close()

		c, err := New(srv.URL, WithRequestTimeout(20*time.Millisecond))
		require.NoError(t, err)

		_, err = c.Calendar(context.Background())
		assert.ErrorIs(t, err, context.DeadlineExceeded)
	})
}
