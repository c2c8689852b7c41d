// Product Recommendation System - Content-Based Retail Recommendations
// Copyright 2026 Pranjal0798
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/Pranjal0798/product-recommendation-system

package api

import (
	"context"
	"net/http"
	"time"

	"github.com/Pranjal0798/product-recommendation-system/internal/catalog"
	"github.com/Pranjal0798/product-recommendation-system/internal/dataset"
	"github.com/Pranjal0798/product-recommendation-system/internal/logging"
	"github.com/Pranjal0798/product-recommendation-system/internal/models"
	"github.com/Pranjal0798/product-recommendation-system/internal/recommend"
	"github.com/Pranjal0798/product-recommendation-system/internal/validation"
)

// CustomerSearchRequest holds the customer list query.
type CustomerSearchRequest struct {
	Search string `query:"search" validate:"max=100"`
}

// CustomerRequest identifies one customer by path parameter.
type CustomerRequest struct {
	CustomerID string `json:"customer_id" validate:"required,customerid"`
}

// RecommendationRequest holds the recommendation query.
type RecommendationRequest struct {
	CustomerID string `json:"customer_id" validate:"required,customerid"`
	Limit      int    `query:"limit" validate:"omitempty,min=1,max=1000"`
}

// ListCustomers handles GET /api/v1/customers?search=
// Returns customers whose ID or name contains the search term.
func (h *Handler) ListCustomers(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	req := CustomerSearchRequest{Search: r.URL.Query().Get("search")}
	if apiErr := validateRequest(&req); apiErr != nil {
		respondValidationError(w, apiErr)
		return
	}

	customers, err := h.data.ListCustomers(req.Search)
	if err != nil {
		respondDatasetError(w, err, "")
		return
	}

	out := make([]models.CustomerSummary, 0, len(customers))
	for _, c := range customers {
		out = append(out, toCustomerSummary(c))
	}

	respondSuccess(w, r, models.CustomerList{
		Search:    req.Search,
		Total:     len(out),
		Customers: out,
	}, start)
}

// PurchaseHistory handles GET /api/v1/customers/{customerID}/purchases
// Returns the customer's purchased products in catalog order.
func (h *Handler) PurchaseHistory(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	id, ok := customerIDParam(r)
	if !ok {
		respondError(w, http.StatusBadRequest, validation.ErrorCode, "customer ID is not a valid path segment", nil)
		return
	}
	req := CustomerRequest{CustomerID: id}
	if apiErr := validateRequest(&req); apiErr != nil {
		respondValidationError(w, apiErr)
		return
	}

	customer, products, err := h.data.PurchaseHistory(req.CustomerID)
	if err != nil {
		respondDatasetError(w, err, req.CustomerID)
		return
	}

	out := make([]models.Product, 0, len(products))
	for _, p := range products {
		out = append(out, toProduct(p))
	}

	respondSuccess(w, r, models.PurchaseHistory{
		Customer: toCustomerSummary(customer),
		Products: out,
	}, start)
}

// Recommendations handles GET /api/v1/customers/{customerID}/recommendations?limit=
// Returns unpurchased products ranked by similarity to the purchase history.
func (h *Handler) Recommendations(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	limit, ok := parseIntQuery(r, "limit")
	if !ok {
		respondError(w, http.StatusBadRequest, validation.ErrorCode, "limit must be an integer", nil)
		return
	}
	id, ok := customerIDParam(r)
	if !ok {
		respondError(w, http.StatusBadRequest, validation.ErrorCode, "customer ID is not a valid path segment", nil)
		return
	}
	req := RecommendationRequest{CustomerID: id, Limit: limit}
	if apiErr := validateRequest(&req); apiErr != nil {
		respondValidationError(w, apiErr)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), recommendTimeout)
	defer cancel()

	res, err := h.data.Recommendations(ctx, req.CustomerID, req.Limit)
	if err != nil {
		respondDatasetError(w, err, req.CustomerID)
		return
	}

	logging.Ctx(ctx).Debug().
		Str("customer_id", sanitizeLogValue(req.CustomerID)).
		Int("count", len(res.Items)).
		Bool("cache_hit", res.Metadata.CacheHit).
		Msg("recommendations served")

	resp := models.NewSuccess(toRecommendationList(res), start)
	resp.Metadata.Cached = res.Metadata.CacheHit
	resp.Metadata.RequestID = res.Metadata.RequestID
	respondJSON(w, http.StatusOK, &resp)
}

func toCustomerSummary(c dataset.CustomerSummary) models.CustomerSummary {
	return models.CustomerSummary{ID: c.ID, Name: c.Label, PurchaseCount: c.PurchaseCount}
}

func toProduct(p *catalog.Product) models.Product {
	features := []string(p.Features)
	if features == nil {
		features = []string{}
	}
	return models.Product{
		ID:       string(p.Key),
		Name:     p.Name,
		Category: p.Category,
		Brand:    p.Brand,
		Price:    p.Price,
		Rating:   p.Rating,
		Features: features,
		Color:    p.Color,
		Size:     p.Size,
		Season:   p.Season,
	}
}

func toBreakdown(b recommend.Breakdown) models.ScoreBreakdown {
	return models.ScoreBreakdown{
		Features: b.Features,
		Category: b.Category,
		Brand:    b.Brand,
		Price:    b.Price,
		Rating:   b.Rating,
	}
}

func toRecommendationList(res *dataset.Result) models.RecommendationList {
	items := make([]models.Recommendation, 0, len(res.Items))
	for i, item := range res.Items {
		items = append(items, models.Recommendation{
			Rank:           i + 1,
			Product:        toProduct(item.Product),
			Score:          item.Score,
			Breakdown:      toBreakdown(item.Breakdown),
			SharedFeatures: item.SharedFeatures,
		})
	}
	return models.RecommendationList{
		Customer:        toCustomerSummary(res.Customer),
		Recommendations: items,
		TotalCandidates: res.TotalCandidates,
		HistorySize:     res.Metadata.HistorySize,
		Generation:      res.Generation,
	}
}
