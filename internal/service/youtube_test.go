package service

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"PT1H5M30S", "1:05:30"},
		{"PT5M0S", "05:00"},
		{"PT45S", "00:45"},
		{"PT12M", "12:00"},
		{"PT2H", "2:00:00"},
		{"", "Unknown"},
		{"P1D", "Unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatDuration(tt.in))
		})
	}
}

func newYouTubeTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "yt-key", r.URL.Query().Get("key"))
		w.Header().Set("Content-Type", "application/json")
		switch {
		case strings.HasSuffix(r.URL.Path, "/search"):
			assert.Equal(t, "go tutorial", r.URL.Query().Get("q"))
			assert.Equal(t, "video", r.URL.Query().Get("type"))
			assert.Equal(t, "strict", r.URL.Query().Get("safeSearch"))
			_, _ = w.Write([]byte(`{"items":[{"id":{"kind":"youtube#video","videoId":"a1"}},{"id":{"kind":"youtube#video","videoId":"b2"}}]}`))
		case strings.HasSuffix(r.URL.Path, "/videos"):
			_, _ = w.Write([]byte(`{"items":[{
				"id":"a1",
				"snippet":{"title":"Go Crash Course","channelTitle":"Gophers","description":"Learn Go","publishedAt":"2024-05-01T00:00:00Z",
				           "thumbnails":{"medium":{"url":"https://img/a1.jpg"}}},
				"contentDetails":{"duration":"PT1H5M30S"},
				"statistics":{"viewCount":"1200"}
			}]}`))
		default:
			http.NotFound(w, r)
		}
	}))
}

func TestYouTubeClient(t *testing.T) {
	srv := newYouTubeTestServer(t)
	defer srv.Close()

	ctx := context.Background()
	c, err := NewYouTubeClient(ctx, "yt-key", srv.URL+"/")
	require.NoError(t, err)

	ids, err := c.SearchVideoIDs(ctx, "go tutorial")
	require.NoError(t, err)
	assert.Equal(t, []string{"a1", "b2"}, ids)

	videos, err := c.VideoDetails(ctx, ids)
	require.NoError(t, err)
	require.Len(t, videos, 1)
	v := videos[0]
	assert.Equal(t, "a1", v.VideoID)
	assert.Equal(t, "Go Crash Course", v.Title)
	assert.Equal(t, "Gophers", v.ChannelTitle)
	assert.Equal(t, "1:05:30", v.Duration)
	assert.Equal(t, int64(1200), v.ViewCount)
	assert.Equal(t, "https://img/a1.jpg", v.Thumbnail)
	assert.Equal(t, "Learn Go...", v.Description)
}

func TestYouTubeClientRequiresKey(t *testing.T) {
	_, err := NewYouTubeClient(context.Background(), "", "")
	assert.Error(t, err)
}
