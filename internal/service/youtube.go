package service

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/yourusername/careerradar-api/internal/model"
	"google.golang.org/api/option"
	"google.golang.org/api/youtube/v3"
)

// YouTubeClient wraps the YouTube Data API v3 search and videos endpoints.
type YouTubeClient struct {
	svc *youtube.Service
}

// NewYouTubeClient builds a key-authenticated client. endpoint overrides the
// API base URL and is only set in tests or behind a proxy.
func NewYouTubeClient(ctx context.Context, apiKey, endpoint string) (*YouTubeClient, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("YouTube API key is required")
	}

	opts := []option.ClientOption{option.WithAPIKey(apiKey)}
	if endpoint != "" {
		opts = append(opts, option.WithEndpoint(endpoint))
	}

	svc, err := youtube.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("creating YouTube service: %w", err)
	}
	return &YouTubeClient{svc: svc}, nil
}

// SearchVideoIDs returns up to five medium-length, safe-search video ids for a query.
func (c *YouTubeClient) SearchVideoIDs(ctx context.Context, query string) ([]string, error) {
	log.Info().
		Str("query", query).
		Msg("Searching YouTube")

	resp, err := c.svc.Search.List([]string{"snippet"}).
		Q(query).
		Type("video").
		MaxResults(5).
		Order("relevance").
		SafeSearch("strict").
		VideoDuration("medium").
		Context(ctx).
		Do()
	if err != nil {
		return nil, fmt.Errorf("youtube search: %w", err)
	}

	ids := make([]string, 0, len(resp.Items))
	for _, item := range resp.Items {
		if item.Id != nil && item.Id.VideoId != "" {
			ids = append(ids, item.Id.VideoId)
		}
	}

	log.Info().
		Int("results", len(ids)).
		Str("query", query).
		Msg("YouTube search complete")

	return ids, nil
}

// VideoDetails loads statistics, duration and snippet for the given ids.
func (c *YouTubeClient) VideoDetails(ctx context.Context, ids []string) ([]model.Video, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	resp, err := c.svc.Videos.List([]string{"statistics", "contentDetails", "snippet"}).
		Id(ids...).
		Context(ctx).
		Do()
	if err != nil {
		return nil, fmt.Errorf("youtube videos: %w", err)
	}

	videos := make([]model.Video, 0, len(resp.Items))
	for _, v := range resp.Items {
		video := model.Video{VideoID: v.Id}
		if s := v.Snippet; s != nil {
			video.Title = s.Title
			video.ChannelTitle = s.ChannelTitle
			video.Description = truncateUTF8(s.Description, 150) + "..."
			video.PublishedAt = s.PublishedAt
			if t := s.Thumbnails; t != nil {
				switch {
				case t.Medium != nil:
					video.Thumbnail = t.Medium.Url
				case t.Default != nil:
					video.Thumbnail = t.Default.Url
				}
			}
		}
		if v.ContentDetails != nil {
			video.Duration = FormatDuration(v.ContentDetails.Duration)
		} else {
			video.Duration = FormatDuration("")
		}
		if v.Statistics != nil {
			video.ViewCount = int64(v.Statistics.ViewCount)
		}
		videos = append(videos, video)
	}
	return videos, nil
}

var isoDurationRe = regexp.MustCompile(`PT(?:(\d+)H)?(?:(\d+)M)?(?:(\d+)S)?`)

// FormatDuration renders an ISO-8601 video duration as [h:]mm:ss,
// e.g. PT1H5M30S -> 1:05:30 and PT5M0S -> 05:00.
func FormatDuration(d string) string {
	m := isoDurationRe.FindStringSubmatch(d)
	if m == nil {
		return "Unknown"
	}
	pad := func(s string) string {
		if len(s) >= 2 {
			return s
		}
		return strings.Repeat("0", 2-len(s)) + s
	}

	var b strings.Builder
	if m[1] != "" {
		b.WriteString(m[1])
		b.WriteByte(':')
	}
	b.WriteString(pad(m[2]))
	b.WriteByte(':')
	b.WriteString(pad(m[3]))
	return b.String()
}
