// Package search holds the request and result types shared by repository
// search clients.
package search

import (
	"context"
	"encoding/json"
)

const (
	DefaultBaseURL   = "https://api.github.com"
	RepositoriesPath = "/search/repositories"
)

const (
	DefaultPage    = 1
	DefaultPerPage = 10
)

type Client interface {
	Search(ctx context.Context, req SearchRequest) (*SearchResult, error)
	Trending(ctx context.Context, req TrendingRequest) (*SearchResult, error)
}

// SearchRequest - Query уходит как есть, без разбора квалификаторов.
// Нулевые Page/PerPage заменяются на DefaultPage/DefaultPerPage.
type SearchRequest struct {
	Query   string
	Page    int
	PerPage int
}

// Normalize returns a copy of r with zero paging fields set to their defaults.
func (r SearchRequest) Normalize() SearchRequest {
	if r.Page == 0 {
		r.Page = DefaultPage
	}
	if r.PerPage == 0 {
		r.PerPage = DefaultPerPage
	}
	return r
}

type TrendingRequest struct {
	Language  string
	Timeframe Timeframe
}

type SearchResult struct {
	Items             []json.RawMessage `json:"items"`
	TotalCount        int               `json:"total_count"`
	IncompleteResults bool              `json:"incomplete_results"`
}

// NewSearchResult builds a result from a decoded upstream payload.
// Missing fields come back as empty items, zero count and false.
func NewSearchResult(items []json.RawMessage, totalCount *int, incomplete *bool) *SearchResult {
	res := &SearchResult{
		Items: items,
	}
	if res.Items == nil {
		res.Items = []json.RawMessage{}
	}
	if totalCount != nil {
		res.TotalCount = *totalCount
	}
	if incomplete != nil {
		res.IncompleteResults = *incomplete
	}
	return res
}
