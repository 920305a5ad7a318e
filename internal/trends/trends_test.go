package trends

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"kpicollector/internal/collect"
	"kpicollector/internal/dataset"
)

// newTrendsServer returns a mock trends backend resolving the given keywords.
func newTrendsServer(t *testing.T, keywords ...string) (*httptest.Server, *[]string) {
	t.Helper()
	known := make(map[string]bool, len(keywords))
	for _, k := range keywords {
		known[k] = true
	}
	var requests []string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests = append(requests, r.URL.Path+"?"+r.URL.RawQuery)
		w.Header().Set("Content-Type", "application/json")

		switch {
		case r.URL.Path == "/v1/resolve":
			q := r.URL.Query().Get("q")
			if !known[q] {
				w.WriteHeader(http.StatusNotFound)
				return
			}
			fmt.Fprintf(w, `{"keyword": %q}`, q)

		case strings.HasPrefix(r.URL.Path, "/v1/interest/"):
			json.NewEncoder(w).Encode(dataset.Frame{
				Columns: append([]string{"bucket"}, keywords...),
				Rows:    [][]any{append([]any{"2024-01"}, make([]any, len(keywords))...)},
			})

		case strings.HasPrefix(r.URL.Path, "/v1/keyword/"):
			parts := strings.Split(strings.TrimPrefix(r.URL.Path, "/v1/keyword/"), "/")
			if len(parts) != 2 {
				w.WriteHeader(http.StatusBadRequest)
				return
			}
			fmt.Fprintf(w, `{"keyword": %q, "attribute": %q, "top": ["a", "b"]}`, parts[0], parts[1])

		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))

	return server, &requests
}

func newTestBuilder(t *testing.T, server *httptest.Server, keywords ...string) *Builder {
	t.Helper()
	client := NewClient(server.URL, Options{})
	builder, err := NewBuilder(context.Background(), client, keywords)
	if err != nil {
		t.Fatalf("NewBuilder() returned unexpected error: %v", err)
	}
	return builder
}

func TestNewClient_Defaults(t *testing.T) {
	client := NewClient("http://localhost", Options{})
	if client.opts.Timeframe != "today 5-y" {
		t.Errorf("Timeframe = %q, want %q", client.opts.Timeframe, "today 5-y")
	}
	if client.opts.Language != "en-US" {
		t.Errorf("Language = %q, want %q", client.opts.Language, "en-US")
	}
}

func TestNewBuilder_UnknownKeyword(t *testing.T) {
	server, _ := newTrendsServer(t, "Corona")
	defer server.Close()

	client := NewClient(server.URL, Options{})
	_, err := NewBuilder(context.Background(), client, []string{"Corona", ""})
	if collect.KindOf(err) != collect.KindUnknownSubject {
		t.Errorf("NewBuilder() error kind = %q, want %q", collect.KindOf(err), collect.KindUnknownSubject)
	}
}

func TestBuilder_InterestOverTime(t *testing.T) {
	server, _ := newTrendsServer(t, "Corona", "S&P 500")
	defer server.Close()

	builder := newTestBuilder(t, server, "Corona", "S&P 500")
	if err := builder.Get(context.Background(), OpInterestOverTime); err != nil {
		t.Fatalf("Get(get_interest_over_time) returned unexpected error: %v", err)
	}

	product := builder.Collect()
	frame, ok := product[OpInterestOverTime].(*dataset.Frame)
	if !ok {
		t.Fatalf("result has type %T, want *dataset.Frame", product[OpInterestOverTime])
	}
	if frame.NumCols() != 3 {
		t.Errorf("interest frame has %d columns, want 3", frame.NumCols())
	}
}

func TestBuilder_InterestByRegionResolution(t *testing.T) {
	server, requests := newTrendsServer(t, "Corona")
	defer server.Close()

	builder := newTestBuilder(t, server, "Corona")

	t.Run("default resolution", func(t *testing.T) {
		if err := builder.Get(context.Background(), OpInterestByRegion); err != nil {
			t.Fatalf("Get() returned unexpected error: %v", err)
		}
		last := (*requests)[len(*requests)-1]
		if !strings.Contains(last, "resolution=COUNTRY") {
			t.Errorf("request %q does not carry the default resolution", last)
		}
	})

	t.Run("explicit resolution", func(t *testing.T) {
		if err := builder.GetInterestByRegion(context.Background(), "CITY"); err != nil {
			t.Fatalf("GetInterestByRegion() returned unexpected error: %v", err)
		}
		last := (*requests)[len(*requests)-1]
		if !strings.Contains(last, "resolution=CITY") {
			t.Errorf("request %q does not carry the explicit resolution", last)
		}
	})
}

func TestBuilder_RelatedQueriesFanOut(t *testing.T) {
	server, _ := newTrendsServer(t, "Corona", "Hope")
	defer server.Close()

	builder := newTestBuilder(t, server, "Corona", "Hope")
	if err := builder.Get(context.Background(), OpRelatedQueries); err != nil {
		t.Fatalf("Get(get_related_queries) returned unexpected error: %v", err)
	}

	product := builder.Collect()
	queries, ok := product[OpRelatedQueries].(map[string]any)
	if !ok {
		t.Fatalf("result has type %T, want map[string]any", product[OpRelatedQueries])
	}
	for _, keyword := range []string{"Corona", "Hope"} {
		if _, ok := queries[keyword]; !ok {
			t.Errorf("related queries missing sub-result for %q", keyword)
		}
	}
}

func TestBuilder_ReusableAcrossBatches(t *testing.T) {
	server, _ := newTrendsServer(t, "Corona")
	defer server.Close()

	builder := newTestBuilder(t, server, "Corona")
	ctx := context.Background()

	// First batch
	if err := builder.Get(ctx, OpRelatedTopics); err != nil {
		t.Fatalf("Get() returned unexpected error: %v", err)
	}
	first := builder.Collect()
	if len(first) != 1 {
		t.Fatalf("first batch has %d entries, want 1", len(first))
	}

	// Second batch on the same builder starts clean
	if err := builder.Get(ctx, OpSuggestions); err != nil {
		t.Fatalf("Get() returned unexpected error: %v", err)
	}
	second := builder.Collect()
	if len(second) != 1 {
		t.Fatalf("second batch has %d entries, want 1", len(second))
	}
	if _, ok := second[OpRelatedTopics]; ok {
		t.Error("second batch leaked an entry from the first batch")
	}
}

func TestCollector_NamedFinds(t *testing.T) {
	server, _ := newTrendsServer(t, "Corona")
	defer server.Close()

	c := NewCollector()
	ctx := context.Background()

	if err := c.FindInterestOverTime(ctx); collect.KindOf(err) != collect.KindNoBuilder {
		t.Errorf("unconfigured FindInterestOverTime() error kind = %q, want %q",
			collect.KindOf(err), collect.KindNoBuilder)
	}

	c.SetBuilder(newTestBuilder(t, server, "Corona"))

	if err := c.FindInterestOverTime(ctx); err != nil {
		t.Fatalf("FindInterestOverTime() returned unexpected error: %v", err)
	}
	if err := c.FindInterestByRegion(ctx, ""); err != nil {
		t.Fatalf("FindInterestByRegion() returned unexpected error: %v", err)
	}
	if err := c.FindRelatedQueries(ctx); err != nil {
		t.Fatalf("FindRelatedQueries() returned unexpected error: %v", err)
	}

	product, err := c.Collect()
	if err != nil {
		t.Fatalf("Collect() returned unexpected error: %v", err)
	}
	if len(product) != 3 {
		t.Errorf("Collect() returned %d entries, want 3", len(product))
	}
}
