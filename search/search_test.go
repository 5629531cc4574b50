package search

import (
	"encoding/json"
	"testing"
)

func TestSearchRequest_Normalize(t *testing.T) {
	tests := []struct {
		name string
		req  SearchRequest
		want SearchRequest
	}{
		{"zero paging", SearchRequest{Query: "q"}, SearchRequest{Query: "q", Page: 1, PerPage: 10}},
		{"explicit paging", SearchRequest{Query: "q", Page: 3, PerPage: 50}, SearchRequest{Query: "q", Page: 3, PerPage: 50}},
		{"only page", SearchRequest{Page: 2}, SearchRequest{Page: 2, PerPage: 10}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.req.Normalize(); got != tt.want {
				t.Errorf("Normalize() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestNewSearchResult_Defaults(t *testing.T) {
	res := NewSearchResult(nil, nil, nil)

	if res.Items == nil || len(res.Items) != 0 {
		t.Errorf("Items = %v, want empty non-nil slice", res.Items)
	}
	if res.TotalCount != 0 {
		t.Errorf("TotalCount = %d, want 0", res.TotalCount)
	}
	if res.IncompleteResults {
		t.Error("IncompleteResults = true, want false")
	}

	out, err := json.Marshal(res)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	if string(out) != `{"items":[],"total_count":0,"incomplete_results":false}` {
		t.Errorf("Marshal() = %s", out)
	}
}

func TestNewSearchResult_PassThrough(t *testing.T) {
	items := []json.RawMessage{json.RawMessage(`{"id":1,"extra":{"nested":true}}`)}
	total := 42
	incomplete := true

	res := NewSearchResult(items, &total, &incomplete)

	if len(res.Items) != 1 || string(res.Items[0]) != `{"id":1,"extra":{"nested":true}}` {
		t.Errorf("Items = %s, want the upstream item unchanged", res.Items)
	}
	if res.TotalCount != 42 {
		t.Errorf("TotalCount = %d, want 42", res.TotalCount)
	}
	if !res.IncompleteResults {
		t.Error("IncompleteResults = false, want true")
	}
}
