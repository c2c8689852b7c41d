// Product Recommendation System - Content-Based Retail Recommendations
// Copyright 2026 Pranjal0798
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/Pranjal0798/product-recommendation-system

// Package validation validates API request structs with
// go-playground/validator and converts failures into VALIDATION_ERROR
// responses.
//
// Besides the built-in tags it registers customerid, which accepts printable
// identifiers up to MaxCustomerIDLength.
//
//	type RecommendationsRequest struct {
//	    CustomerID string `query:"customer_id" validate:"customerid"`
//	    Limit      int    `query:"limit" validate:"gte=0,lte=1000"`
//	}
package validation
