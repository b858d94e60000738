// Copyright (c) 2026 Inkdex. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package news

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// HTTPFetcher pulls the news blurb straight off the comic's reader page.
// The page layout is stable enough that a bounded marker scan beats a full
// HTML parse here.
type HTTPFetcher struct {
	client  *http.Client
	baseURL string
}

// NewHTTPFetcher builds a fetcher against the reader site's base URL, e.g.
// "https://www.questionablecontent.net".
func NewHTTPFetcher(baseURL string) *HTTPFetcher {
	return &HTTPFetcher{
		client:  &http.Client{Timeout: 30 * time.Second},
		baseURL: strings.TrimRight(baseURL, "/"),
	}
}

const (
	newsOpenMarker  = `<div id="news"`
	newsCloseMarker = `</div>`
)

func (fetcher *HTTPFetcher) FetchNews(ctx context.Context, comicID int) (string, error) {
	url := fmt.Sprintf("%s/view.php?comic=%d", fetcher.baseURL, comicID)

	request, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", err
	}

	response, err := fetcher.client.Do(request)
	if err != nil {
		return "", err
	}
	defer response.Body.Close()

	if response.StatusCode != http.StatusOK {
		return "", fmt.Errorf("fetch news for comic %d: unexpected status %d", comicID, response.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(response.Body, 4<<20))
	if err != nil {
		return "", err
	}

	return extractNews(string(body), comicID)
}

func extractNews(page string, comicID int) (string, error) {
	start := strings.Index(page, newsOpenMarker)
	if start == -1 {
		return "", fmt.Errorf("fetch news for comic %d: news block not found", comicID)
	}

	// Skip past the opening tag itself.
	tagEnd := strings.Index(page[start:], ">")
	if tagEnd == -1 {
		return "", fmt.Errorf("fetch news for comic %d: malformed news block", comicID)
	}
	content := page[start+tagEnd+1:]

	end := strings.Index(content, newsCloseMarker)
	if end == -1 {
		return "", fmt.Errorf("fetch news for comic %d: unterminated news block", comicID)
	}

	return strings.TrimSpace(content[:end]), nil
}
