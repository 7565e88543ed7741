package opentdb

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
)

// CategoryReader reads the category list through a file cache.
type CategoryReader struct {
	baseURL    string
	httpClient *resty.Client
	cache      *CategoryCache
	now        func() time.Time
}

func NewCategoryReader(baseURL string, timeout time.Duration, cacheDirectory string) *CategoryReader {
	client := resty.New()
	if timeout > 0 {
		client.SetTimeout(timeout)
	}
	return &CategoryReader{
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		httpClient: client,
		cache:      NewCategoryCache(cacheDirectory),
		now:        time.Now,
	}
}

// Categories returns the cached list, fetching it on a cache miss.
func (r *CategoryReader) Categories(ctx context.Context) ([]Category, error) {
	categories, ok, err := r.cache.read()
	if err != nil {
		slog.Default().Warn("failed to read the category cache, fetching again",
			"error", err,
		)
	}
	if ok {
		return categories, nil
	}
	return r.Refresh(ctx)
}

// Refresh fetches the list and overwrites the cache.
func (r *CategoryReader) Refresh(ctx context.Context) ([]Category, error) {
	categories, err := r.lookupAPI(ctx)
	if err != nil {
		return nil, fmt.Errorf("r.lookupAPI > %w", err)
	}
	if err := r.cache.write(categories, r.now()); err != nil {
		return categories, fmt.Errorf("r.cache.write > %w", err)
	}
	return categories, nil
}

func (r *CategoryReader) lookupAPI(ctx context.Context) ([]Category, error) {
	res, err := r.httpClient.R().
		SetContext(ctx).
		Get(r.baseURL + "/api_category.php")
	if err != nil {
		return nil, fmt.Errorf("client.R.Get > %w", err)
	}
	if res.StatusCode() != http.StatusOK {
		return nil, fmt.Errorf("status code: %d, body: %s", res.StatusCode(), string(res.Body()))
	}

	var body categoriesResponse
	if err := json.Unmarshal(res.Body(), &body); err != nil {
		return nil, fmt.Errorf("json.Unmarshal > %w", err)
	}
	return body.TriviaCategories, nil
}
