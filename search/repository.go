package search

import (
	"encoding/json"
	"fmt"
	"time"
)

// Repository - типизированный взгляд на элемент items.
// Сами items не меняются, это только удобный декодер для вызывающего кода.
type Repository struct {
	ID              int64     `json:"id"`
	Name            string    `json:"name"`
	FullName        string    `json:"full_name"`
	HTMLURL         string    `json:"html_url"`
	Description     string    `json:"description"`
	Language        string    `json:"language"`
	StargazersCount int       `json:"stargazers_count"`
	ForksCount      int       `json:"forks_count"`
	OpenIssuesCount int       `json:"open_issues_count"`
	CreatedAt       time.Time `json:"created_at"`
	Owner           struct {
		Login string `json:"login"`
	} `json:"owner"`
}

func (r *SearchResult) Repositories() ([]Repository, error) {
	repos := make([]Repository, 0, len(r.Items))
	for i, raw := range r.Items {
		var repo Repository
		if err := json.Unmarshal(raw, &repo); err != nil {
			return nil, fmt.Errorf("decode item %d: %w", i, err)
		}
		repos = append(repos, repo)
	}
	return repos, nil
}
