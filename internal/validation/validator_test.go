// Product Recommendation System - Content-Based Retail Recommendations
// Copyright 2026 Pranjal0798
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/Pranjal0798/product-recommendation-system

package validation

import (
	"strings"
	"testing"
)

type recommendationsRequest struct {
	CustomerID string `query:"customer_id" validate:"customerid"`
	Limit      int    `query:"limit" validate:"gte=0,lte=1000"`
}

type searchRequest struct {
	Search string `json:"search" validate:"max=100"`
	Sort   string `json:"sort" validate:"omitempty,oneof=id name"`
}

func TestGetValidator_Singleton(t *testing.T) {
	if GetValidator() != GetValidator() {
		t.Error("GetValidator should return the same instance")
	}
}

func TestValidateStruct_Valid(t *testing.T) {
	if err := ValidateStruct(&recommendationsRequest{CustomerID: "C0001", Limit: 10}); err != nil {
		t.Errorf("ValidateStruct() = %v, want nil", err)
	}
	if err := ValidateStruct(&searchRequest{}); err != nil {
		t.Errorf("ValidateStruct() = %v, want nil", err)
	}
}

func TestValidateStruct_CustomerID(t *testing.T) {
	tests := []struct {
		name string
		id   string
		ok   bool
	}{
		{"numeric", "42", true},
		{"generated", "C0042", true},
		{"with spaces", "Customer 7", true},
		{"empty", "", false},
		{"slash", "a/b", true},
		{"backslash", `a\b`, true},
		{"control char", "a\x00b", false},
		{"too long", strings.Repeat("x", MaxCustomerIDLength+1), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateStruct(&recommendationsRequest{CustomerID: tt.id})
			if tt.ok && err != nil {
				t.Errorf("ValidateStruct() = %v, want nil", err)
			}
			if !tt.ok && err == nil {
				t.Error("ValidateStruct() = nil, want error")
			}
		})
	}
}

func TestValidateStruct_FieldNamesFromTags(t *testing.T) {
	err := ValidateStruct(&recommendationsRequest{CustomerID: "C1", Limit: 5000})
	if err == nil {
		t.Fatal("expected error")
	}
	if len(err.Fields) != 1 {
		t.Fatalf("len(Fields) = %d, want 1", len(err.Fields))
	}
	if err.Fields[0].Field != "limit" {
		t.Errorf("Field = %q, want limit", err.Fields[0].Field)
	}
	if err.Fields[0].Message != "limit must be less than or equal to 1000" {
		t.Errorf("Message = %q", err.Fields[0].Message)
	}
}

func TestRequestValidationError_ToAPIError(t *testing.T) {
	t.Run("single", func(t *testing.T) {
		err := ValidateStruct(&searchRequest{Search: strings.Repeat("s", 101)})
		apiErr := err.ToAPIError()
		if apiErr.Code != ErrorCode {
			t.Errorf("Code = %q, want %q", apiErr.Code, ErrorCode)
		}
		if apiErr.Message != "search must be at most 100 characters" {
			t.Errorf("Message = %q", apiErr.Message)
		}
		if apiErr.Details["field"] != "search" {
			t.Errorf("Details = %v", apiErr.Details)
		}
	})

	t.Run("multiple", func(t *testing.T) {
		err := ValidateStruct(&recommendationsRequest{CustomerID: "", Limit: -1})
		apiErr := err.ToAPIError()
		if !strings.Contains(apiErr.Message, "customer_id") || !strings.Contains(apiErr.Message, "limit") {
			t.Errorf("Message = %q, want both fields", apiErr.Message)
		}
		if _, ok := apiErr.Details["fields"]; !ok {
			t.Errorf("Details missing fields: %v", apiErr.Details)
		}
	})

	t.Run("empty", func(t *testing.T) {
		apiErr := (&RequestValidationError{}).ToAPIError()
		if apiErr.Message != "Validation failed" {
			t.Errorf("Message = %q", apiErr.Message)
		}
	})
}

func TestValidateStruct_OneOf(t *testing.T) {
	err := ValidateStruct(&searchRequest{Sort: "price"})
	if err == nil {
		t.Fatal("expected error")
	}
	if err.Fields[0].Message != "sort must be one of: id name" {
		t.Errorf("Message = %q", err.Fields[0].Message)
	}
}
