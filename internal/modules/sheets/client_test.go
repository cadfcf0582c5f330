package sheets

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func newTestClient(handler http.HandlerFunc) (*Client, *httptest.Server) {
	server := httptest.NewServer(handler)
	client := NewClientWithBaseURL("sheet-123", "test-key", server.URL, server.Client())
	return client, server
}

func TestSheetNames(t *testing.T) {
	client, server := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		if !strings.Contains(r.URL.Path, "/spreadsheets/sheet-123") {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		w.Write([]byte(`{"sheets":[
			{"properties":{"title":"Electronics"}},
			{"properties":{"title":"Accessories"}},
			{"properties":{"title":"Clearance"}}
		]}`))
	})
	defer server.Close()

	names, err := client.SheetNames(context.Background())
	if err != nil {
		t.Fatalf("SheetNames returned error: %v", err)
	}
	want := []string{"Electronics", "Accessories", "Clearance"}
	if len(names) != len(want) {
		t.Fatalf("expected %d names, got %d", len(want), len(names))
	}
	for i := range want {
		if names[i] != want[i] {
			t.Errorf("name[%d]: expected %q, got %q", i, want[i], names[i])
		}
	}
}

func TestSheetNames_SourceUnavailable(t *testing.T) {
	t.Run("auth failure", func(t *testing.T) {
		client, server := newTestClient(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, `{"error":{"status":"PERMISSION_DENIED"}}`, http.StatusForbidden)
		})
		defer server.Close()

		_, err := client.SheetNames(context.Background())
		if !errors.Is(err, ErrSourceUnavailable) {
			t.Fatalf("expected ErrSourceUnavailable, got %v", err)
		}
	})

	t.Run("server unreachable", func(t *testing.T) {
		client, server := newTestClient(func(w http.ResponseWriter, r *http.Request) {})
		server.Close()

		_, err := client.SheetNames(context.Background())
		if !errors.Is(err, ErrSourceUnavailable) {
			t.Fatalf("expected ErrSourceUnavailable, got %v", err)
		}
	})
}

func TestFetchProducts_RowMapping(t *testing.T) {
	client, server := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		if !strings.Contains(r.URL.EscapedPath(), "A2:H") {
			t.Errorf("expected data range starting at row 2, got %s", r.URL.EscapedPath())
		}
		w.Write([]byte(`{"values":[
			["P9","Name","url","img1","img2","100","80","In Stock"]
		]}`))
	})
	defer server.Close()

	products, err := client.FetchProducts(context.Background(), "Electronics")
	if err != nil {
		t.Fatalf("FetchProducts returned error: %v", err)
	}
	if len(products) != 1 {
		t.Fatalf("expected 1 product, got %d", len(products))
	}

	got := products[0]
	want := Product{
		ID:            "P9",
		Name:          "Name",
		URL:           "url",
		ImageURL1:     "img1",
		ImageURL2:     "img2",
		OriginalPrice: 100,
		Price:         80,
		StockStatus:   "In Stock",
		Description:   "Name",
	}
	if got != want {
		t.Errorf("mapped product mismatch:\n got %+v\nwant %+v", got, want)
	}
}

func TestFetchProducts_MalformedCells(t *testing.T) {
	client, server := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"values":[
			["P1","Widget","","","","not-a-number","also-bad"],
			["P2"]
		]}`))
	})
	defer server.Close()

	products, err := client.FetchProducts(context.Background(), "Electronics")
	if err != nil {
		t.Fatalf("FetchProducts returned error: %v", err)
	}
	if len(products) != 2 {
		t.Fatalf("malformed rows must not be dropped; expected 2 products, got %d", len(products))
	}

	if products[0].OriginalPrice != 0 || products[0].Price != 0 {
		t.Errorf("unparseable prices should default to 0, got %v / %v",
			products[0].OriginalPrice, products[0].Price)
	}
	if products[1].Name != "" || products[1].StockStatus != "" {
		t.Errorf("missing string cells should default to empty, got %+v", products[1])
	}
	if products[1].ID != "P2" {
		t.Errorf("expected id P2, got %q", products[1].ID)
	}
}

func TestFetchProducts_EmptyTabIsNotAnError(t *testing.T) {
	client, server := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"range":"Empty!A2:H","majorDimension":"ROWS"}`))
	})
	defer server.Close()

	products, err := client.FetchProducts(context.Background(), "Empty")
	if err != nil {
		t.Fatalf("empty tab should not error, got %v", err)
	}
	if len(products) != 0 {
		t.Fatalf("expected 0 products, got %d", len(products))
	}
}

func TestFetchProducts_CategoryNotFound(t *testing.T) {
	client, server := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":{"status":"INVALID_ARGUMENT","message":"Unable to parse range"}}`,
			http.StatusBadRequest)
	})
	defer server.Close()

	_, err := client.FetchProducts(context.Background(), "NoSuchTab")
	if !errors.Is(err, ErrCategoryNotFound) {
		t.Fatalf("expected ErrCategoryNotFound, got %v", err)
	}
	if errors.Is(err, ErrSourceUnavailable) {
		t.Fatal("a missing tab must be distinguishable from an unavailable source")
	}
}

func TestFetchProducts_SourceUnavailable(t *testing.T) {
	client, server := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "quota exceeded", http.StatusTooManyRequests)
	})
	defer server.Close()

	_, err := client.FetchProducts(context.Background(), "Electronics")
	if !errors.Is(err, ErrSourceUnavailable) {
		t.Fatalf("expected ErrSourceUnavailable, got %v", err)
	}
}
