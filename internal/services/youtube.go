// YouTube Data API v3 [VideoService] implementation
//
// Resolves a playlist to its newest item via the playlistItems endpoint.
// The API returns items in the playlist's own insertion order, so a single
// page of one result is the most recently added video.
package services

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/desertthunder/lecx/internal/models"
	"github.com/desertthunder/lecx/internal/shared"
)

const defaultYTBaseURL string = "https://www.googleapis.com/youtube/v3"

// ytPlaylistItemsResponse mirrors the subset of the playlistItems schema we
// consume.
type ytPlaylistItemsResponse struct {
	Items []struct {
		Snippet struct {
			Title      string `json:"title"`
			ResourceID struct {
				VideoID string `json:"videoId"`
			} `json:"resourceId"`
		} `json:"snippet"`
	} `json:"items"`
	Error *struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

// YouTubeService implements [VideoService] over the YouTube Data API v3.
type YouTubeService struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// NewYouTubeService creates a new YouTube Data API service instance.
func NewYouTubeService(baseURL, apiKey string, client *http.Client) *YouTubeService {
	if baseURL == "" {
		baseURL = defaultYTBaseURL
	}
	if client == nil {
		client = http.DefaultClient
	}

	return &YouTubeService{
		baseURL:    baseURL,
		apiKey:     apiKey,
		httpClient: client,
	}
}

// Name returns the service name.
func (y *YouTubeService) Name() string {
	return "YouTube"
}

// LatestVideo queries playlistItems for the single most recently added item.
//
// One request per invocation; failures surface upward without retry.
func (y *YouTubeService) LatestVideo(ctx context.Context, playlistID string) (*models.VideoRef, error) {
	params := url.Values{}
	params.Set("part", "snippet")
	params.Set("playlistId", playlistID)
	params.Set("maxResults", "1")
	params.Set("key", y.apiKey)

	apiURL := y.baseURL + "/playlistItems?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, apiURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := y.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: request failed: %v", shared.ErrLookupFailed, err)
	}
	defer resp.Body.Close()

	var result ytPlaylistItemsResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", shared.ErrLookupFailed, err)
	}

	if resp.StatusCode == http.StatusNotFound {
		detail := ""
		if result.Error != nil {
			detail = result.Error.Message
		}
		return nil, fmt.Errorf("%w: %s: %s", shared.ErrPlaylistNotFound, playlistID, detail)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		if result.Error != nil && result.Error.Message != "" {
			return nil, fmt.Errorf("%w: youtube API error (status %d): %s", shared.ErrLookupFailed, resp.StatusCode, result.Error.Message)
		}
		return nil, fmt.Errorf("%w: youtube API error: status %d", shared.ErrLookupFailed, resp.StatusCode)
	}

	if len(result.Items) == 0 {
		return nil, fmt.Errorf("%w: %s", shared.ErrPlaylistEmpty, playlistID)
	}

	snippet := result.Items[0].Snippet
	return &models.VideoRef{
		VideoID: snippet.ResourceID.VideoID,
		Title:   snippet.Title,
		URL:     shared.WatchURL(snippet.ResourceID.VideoID),
	}, nil
}
