// Product Recommendation System - Content-Based Retail Recommendations
// Copyright 2026 Pranjal0798
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/Pranjal0798/product-recommendation-system

package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/rs/zerolog"

	"github.com/Pranjal0798/product-recommendation-system/internal/dataset"
	"github.com/Pranjal0798/product-recommendation-system/internal/models"
	"github.com/Pranjal0798/product-recommendation-system/internal/recommend"
)

const sampleCSV = `CustomerID,Item,Category,Price,Rating
1,Blouse,Clothing,53,3.1
1,Sweater,Clothing,64,3.1
2,Jeans,Clothing,60,3.0
3,Blouse,Clothing,53,3.1
3,Sweater,Clothing,64,3.1
3,Jeans,Clothing,60,3.0
`

// envelope mirrors models.APIResponse with a raw data payload.
type envelope struct {
	Status   string           `json:"status"`
	Data     json.RawMessage  `json:"data"`
	Metadata models.Metadata  `json:"metadata"`
	Error    *models.APIError `json:"error"`
}

type testServer struct {
	manager *dataset.Manager
	handler http.Handler
}

func newTestServer(t *testing.T, path string, load bool, cfg *ChiMiddlewareConfig) *testServer {
	t.Helper()

	engine, err := recommend.NewEngine(nil, zerolog.Nop())
	if err != nil {
		t.Fatalf("NewEngine: %v", err)
	}
	manager, err := dataset.NewManager(dataset.Options{Path: path, CacheSize: 64, CacheTTL: time.Minute}, engine, zerolog.Nop())
	if err != nil {
		t.Fatalf("NewManager: %v", err)
	}
	if load {
		if _, err := manager.LoadReader(context.Background(), strings.NewReader(sampleCSV), "sample.csv"); err != nil {
			t.Fatalf("LoadReader: %v", err)
		}
	}

	if cfg == nil {
		cfg = DefaultChiMiddlewareConfig()
		cfg.RateLimitDisabled = true
	}
	router := NewRouter(NewHandler(manager, "test"), cfg)
	return &testServer{manager: manager, handler: router.SetupChi()}
}

func (s *testServer) do(t *testing.T, method, target string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()
	req := httptest.NewRequest(method, target, nil)
	rec := httptest.NewRecorder()
	s.handler.ServeHTTP(rec, req)

	var env envelope
	if strings.HasPrefix(rec.Header().Get("Content-Type"), "application/json") {
		if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
			t.Fatalf("decode %s %s: %v (body %q)", method, target, err, rec.Body.String())
		}
	}
	return rec, env
}

func decodeData(t *testing.T, env envelope, v interface{}) {
	t.Helper()
	if err := json.Unmarshal(env.Data, v); err != nil {
		t.Fatalf("decode data: %v", err)
	}
}

func TestHealthLive(t *testing.T) {
	s := newTestServer(t, "", false, nil)

	rec, env := s.do(t, http.MethodGet, "/api/v1/health/live")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if env.Status != models.StatusSuccess {
		t.Errorf("status field = %q, want success", env.Status)
	}
}

func TestHealthReady(t *testing.T) {
	t.Run("not loaded", func(t *testing.T) {
		s := newTestServer(t, "", false, nil)
		rec, env := s.do(t, http.MethodGet, "/api/v1/health/ready")
		if rec.Code != http.StatusServiceUnavailable {
			t.Fatalf("status = %d, want 503", rec.Code)
		}
		var health models.HealthStatus
		decodeData(t, env, &health)
		if health.Ready {
			t.Error("Ready should be false before load")
		}
	})

	t.Run("loaded", func(t *testing.T) {
		s := newTestServer(t, "", true, nil)
		rec, env := s.do(t, http.MethodGet, "/api/v1/health/ready")
		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200", rec.Code)
		}
		var health models.HealthStatus
		decodeData(t, env, &health)
		if !health.Ready || health.Generation != 1 || health.Products != 3 {
			t.Errorf("health = %+v, want ready generation 1 with 3 products", health)
		}
	})
}

func TestListCustomers(t *testing.T) {
	s := newTestServer(t, "", true, nil)

	tests := []struct {
		name    string
		target  string
		wantIDs []string
	}{
		{"all", "/api/v1/customers", []string{"1", "2", "3"}},
		{"trailing slash", "/api/v1/customers/", []string{"1", "2", "3"}},
		{"search by id", "/api/v1/customers?search=2", []string{"2"}},
		{"search by label", "/api/v1/customers?search=CUSTOMER%203", []string{"3"}},
		{"no match", "/api/v1/customers?search=nobody", []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, env := s.do(t, http.MethodGet, tt.target)
			if rec.Code != http.StatusOK {
				t.Fatalf("status = %d, want 200", rec.Code)
			}
			var list models.CustomerList
			decodeData(t, env, &list)

			ids := make([]string, 0, len(list.Customers))
			for _, c := range list.Customers {
				ids = append(ids, c.ID)
			}
			if strings.Join(ids, ",") != strings.Join(tt.wantIDs, ",") {
				t.Errorf("ids = %v, want %v", ids, tt.wantIDs)
			}
			if list.Total != len(tt.wantIDs) {
				t.Errorf("total = %d, want %d", list.Total, len(tt.wantIDs))
			}
		})
	}
}

func TestListCustomers_SearchTooLong(t *testing.T) {
	s := newTestServer(t, "", true, nil)

	rec, env := s.do(t, http.MethodGet, "/api/v1/customers?search="+strings.Repeat("x", 101))
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
	if env.Error == nil || env.Error.Code != models.ErrCodeValidation {
		t.Errorf("error = %+v, want VALIDATION_ERROR", env.Error)
	}
}

func TestPurchaseHistory(t *testing.T) {
	s := newTestServer(t, "", true, nil)

	rec, env := s.do(t, http.MethodGet, "/api/v1/customers/1/purchases")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	var history models.PurchaseHistory
	decodeData(t, env, &history)

	if history.Customer.ID != "1" || history.Customer.PurchaseCount != 2 {
		t.Errorf("customer = %+v", history.Customer)
	}
	if len(history.Products) != 2 || history.Products[0].ID != "blouse_clothing" || history.Products[1].ID != "sweater_clothing" {
		t.Errorf("products = %+v, want blouse then sweater", history.Products)
	}
}

func TestRecommendations(t *testing.T) {
	s := newTestServer(t, "", true, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/customers/1/recommendations", nil)
	req.Header.Set("X-Request-ID", "test-req-1")
	rec := httptest.NewRecorder()
	s.handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200 (body %s)", rec.Code, rec.Body.String())
	}
	if got := rec.Header().Get("X-Request-ID"); got != "test-req-1" {
		t.Errorf("X-Request-ID = %q, want test-req-1", got)
	}
	if rec.Header().Get("ETag") == "" {
		t.Error("ETag header missing")
	}

	var env envelope
	if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if env.Metadata.RequestID != "test-req-1" {
		t.Errorf("metadata.request_id = %q, want test-req-1", env.Metadata.RequestID)
	}

	var list models.RecommendationList
	decodeData(t, env, &list)
	if len(list.Recommendations) != 1 {
		t.Fatalf("recommendations = %d, want 1", len(list.Recommendations))
	}
	top := list.Recommendations[0]
	if top.Rank != 1 || top.Product.ID != "jeans_clothing" {
		t.Errorf("top = %+v, want jeans at rank 1", top)
	}
	if top.Score != 10 {
		t.Errorf("score = %v, want 10", top.Score)
	}
	if list.HistorySize != 2 || list.Generation != 1 {
		t.Errorf("history_size = %d generation = %d", list.HistorySize, list.Generation)
	}

	// second call is served from the cache
	_, env = s.do(t, http.MethodGet, "/api/v1/customers/1/recommendations")
	if !env.Metadata.Cached {
		t.Error("second request should be cached")
	}
}

func TestRecommendations_Errors(t *testing.T) {
	s := newTestServer(t, "", true, nil)

	tests := []struct {
		name       string
		target     string
		wantStatus int
		wantCode   string
		wantMsg    string
	}{
		{"unknown customer", "/api/v1/customers/404/recommendations", http.StatusNotFound, models.ErrCodeCustomerNotFound, "Customer 404 not found"},
		{"bought everything", "/api/v1/customers/3/recommendations", http.StatusUnprocessableEntity, models.ErrCodeNoCandidates, "Customer has purchased all available products!"},
		{"non-integer limit", "/api/v1/customers/1/recommendations?limit=ten", http.StatusBadRequest, models.ErrCodeValidation, ""},
		{"negative limit", "/api/v1/customers/1/recommendations?limit=-1", http.StatusBadRequest, models.ErrCodeValidation, ""},
		{"limit too large", "/api/v1/customers/1/recommendations?limit=5000", http.StatusBadRequest, models.ErrCodeValidation, ""},
		{"unknown purchases", "/api/v1/customers/404/purchases", http.StatusNotFound, models.ErrCodeCustomerNotFound, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, env := s.do(t, http.MethodGet, tt.target)
			if rec.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d", rec.Code, tt.wantStatus)
			}
			if env.Status != models.StatusError || env.Error == nil {
				t.Fatalf("expected error envelope, got %+v", env)
			}
			if env.Error.Code != tt.wantCode {
				t.Errorf("code = %q, want %q", env.Error.Code, tt.wantCode)
			}
			if tt.wantMsg != "" && env.Error.Message != tt.wantMsg {
				t.Errorf("message = %q, want %q", env.Error.Message, tt.wantMsg)
			}
		})
	}
}

func TestCustomerIDReservedCharacters(t *testing.T) {
	s := newTestServer(t, "", false, nil)
	const data = `Customer ID,Item Purchased,Category,Purchase Amount (USD),Review Rating
A/1,Blouse,Clothing,53,3.1
x%y,Jeans,Clothing,60,3.0
B 2,Sweater,Clothing,64,3.1
`
	if _, err := s.manager.LoadReader(context.Background(), strings.NewReader(data), "reserved.csv"); err != nil {
		t.Fatalf("LoadReader: %v", err)
	}

	_, env := s.do(t, http.MethodGet, "/api/v1/customers")
	var list models.CustomerList
	decodeData(t, env, &list)

	if list.Total != 3 {
		t.Fatalf("total = %d, want 3", list.Total)
	}
	for _, c := range list.Customers {
		t.Run(c.ID, func(t *testing.T) {
			base := "/api/v1/customers/" + url.PathEscape(c.ID)

			rec, env := s.do(t, http.MethodGet, base+"/purchases")
			if rec.Code != http.StatusOK {
				t.Fatalf("purchases status = %d, want 200 (body %s)", rec.Code, rec.Body.String())
			}
			var history models.PurchaseHistory
			decodeData(t, env, &history)
			if history.Customer.ID != c.ID || len(history.Products) != 1 {
				t.Errorf("history = %+v, want customer %q with 1 product", history, c.ID)
			}

			rec, env = s.do(t, http.MethodGet, base+"/recommendations")
			if rec.Code != http.StatusOK {
				t.Fatalf("recommendations status = %d, want 200 (body %s)", rec.Code, rec.Body.String())
			}
			var recs models.RecommendationList
			decodeData(t, env, &recs)
			if recs.Customer.ID != c.ID || len(recs.Recommendations) != 2 {
				t.Errorf("recommendations = %+v, want 2 for %q", recs, c.ID)
			}
		})
	}

	rec, env := s.do(t, http.MethodGet, "/api/v1/customers/"+url.PathEscape("A/2")+"/purchases")
	if rec.Code != http.StatusNotFound || env.Error == nil || env.Error.Message != "Customer A/2 not found" {
		t.Errorf("unknown escaped id: status = %d error = %+v", rec.Code, env.Error)
	}
}

func TestNotLoaded(t *testing.T) {
	s := newTestServer(t, "", false, nil)

	for _, target := range []string{
		"/api/v1/customers",
		"/api/v1/customers/1/purchases",
		"/api/v1/customers/1/recommendations",
		"/api/v1/stats",
	} {
		t.Run(target, func(t *testing.T) {
			rec, env := s.do(t, http.MethodGet, target)
			if rec.Code != http.StatusServiceUnavailable {
				t.Fatalf("status = %d, want 503", rec.Code)
			}
			if env.Error == nil || env.Error.Code != models.ErrCodeDatasetNotLoaded {
				t.Errorf("error = %+v, want DATASET_NOT_LOADED", env.Error)
			}
		})
	}
}

func TestStats(t *testing.T) {
	s := newTestServer(t, "", true, nil)

	rec, env := s.do(t, http.MethodGet, "/api/v1/stats")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	var stats models.DatasetStats
	decodeData(t, env, &stats)

	if stats.Source != "sample.csv" || stats.Generation != 1 {
		t.Errorf("source/generation = %q/%d", stats.Source, stats.Generation)
	}
	if stats.UniqueProducts != 3 || stats.TotalCustomers != 3 || stats.TotalPurchases != 6 {
		t.Errorf("counts = %d/%d/%d, want 3/3/6", stats.UniqueProducts, stats.TotalCustomers, stats.TotalPurchases)
	}
	if len(stats.FeatureKeywords) == 0 {
		t.Error("feature keywords should list the default vocabulary")
	}
}

func TestReloadDataset(t *testing.T) {
	path := filepath.Join(t.TempDir(), "purchases.csv")
	if err := os.WriteFile(path, []byte(sampleCSV+"4,Boots,Footwear,90,4.5\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	s := newTestServer(t, path, true, nil)

	rec, env := s.do(t, http.MethodPost, "/api/v1/dataset/reload")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200 (body %s)", rec.Code, rec.Body.String())
	}
	var stats models.DatasetStats
	decodeData(t, env, &stats)
	if stats.Generation != 2 || stats.UniqueProducts != 4 {
		t.Errorf("generation/products = %d/%d, want 2/4", stats.Generation, stats.UniqueProducts)
	}

	rec, _ = s.do(t, http.MethodGet, "/api/v1/dataset/reload")
	if rec.Code != http.StatusMethodNotAllowed {
		t.Errorf("GET reload status = %d, want 405", rec.Code)
	}
}

func TestReloadDataset_MissingFileKeepsSnapshot(t *testing.T) {
	s := newTestServer(t, filepath.Join(t.TempDir(), "gone.csv"), true, nil)

	rec, env := s.do(t, http.MethodPost, "/api/v1/dataset/reload")
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", rec.Code)
	}
	if env.Error == nil || env.Error.Code != models.ErrCodeIngestion {
		t.Errorf("error = %+v, want INGESTION_ERROR", env.Error)
	}

	rec, _ = s.do(t, http.MethodGet, "/api/v1/health/ready")
	if rec.Code != http.StatusOK {
		t.Errorf("ready status = %d, want 200 after failed reload", rec.Code)
	}
}

func TestUnknownRoute(t *testing.T) {
	s := newTestServer(t, "", true, nil)

	rec, env := s.do(t, http.MethodGet, "/api/v1/nope")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
	if env.Error == nil || env.Error.Code != models.ErrCodeNotFound {
		t.Errorf("error = %+v, want NOT_FOUND", env.Error)
	}
}
