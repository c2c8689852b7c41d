// Product Recommendation System - Content-Based Retail Recommendations
// Copyright 2026 Pranjal0798
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/Pranjal0798/product-recommendation-system

package models

import (
	"encoding/json"
	"strings"
	"testing"
	"time"
)

func TestNewSuccess(t *testing.T) {
	start := time.Now().Add(-25 * time.Millisecond)
	resp := NewSuccess(CustomerList{Total: 1}, start)

	if resp.Status != StatusSuccess {
		t.Errorf("Status = %q, want success", resp.Status)
	}
	if resp.Error != nil {
		t.Errorf("Error = %+v, want nil", resp.Error)
	}
	if resp.Metadata.QueryTimeMS < 25 {
		t.Errorf("QueryTimeMS = %d, want >= 25", resp.Metadata.QueryTimeMS)
	}
	if resp.Metadata.Timestamp.IsZero() {
		t.Error("Timestamp not set")
	}
}

func TestNewError(t *testing.T) {
	resp := NewError(ErrCodeCustomerNotFound, "Customer C9 not found", map[string]interface{}{"customer_id": "C9"})

	if resp.Status != StatusError {
		t.Errorf("Status = %q, want error", resp.Status)
	}
	if resp.Error == nil || resp.Error.Code != ErrCodeCustomerNotFound {
		t.Fatalf("Error = %+v", resp.Error)
	}

	body, err := json.Marshal(resp)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(body), `"data":null`) {
		t.Errorf("error envelope should carry null data: %s", body)
	}
	if strings.Contains(string(body), "query_time_ms") {
		t.Errorf("zero query time should be omitted: %s", body)
	}
}
