package metrics

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/DeepakJD1226/Consultancy/internal/database"
)

func TestHandlerExposesStoreAndRequestMetrics(t *testing.T) {
	db := database.Open()
	if err := database.Seed(context.Background(), db); err != nil {
		t.Fatalf("seed: %v", err)
	}
	m := New(db)
	m.ObserveRequest(http.MethodGet, "/api/customers", http.StatusOK, 15*time.Millisecond)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	body, _ := io.ReadAll(rec.Body)
	text := string(body)

	for _, want := range []string{
		`rktextiles_store_records{collection="customers"} 3`,
		`rktextiles_store_records{collection="bills"} 2`,
		`rktextiles_inventory_low_stock_items 2`,
		`rktextiles_http_requests_total{method="GET",route="/api/customers",status="200"} 1`,
		`rktextiles_http_request_duration_seconds_count{method="GET",route="/api/customers"} 1`,
	} {
		if !strings.Contains(text, want) {
			t.Fatalf("expected exposition to contain %q", want)
		}
	}
}
