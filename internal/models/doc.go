// Product Recommendation System - Content-Based Retail Recommendations
// Copyright 2026 Pranjal0798
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/Pranjal0798/product-recommendation-system

/*
Package models defines the JSON shapes served by the HTTP API.

Every endpoint answers with an APIResponse envelope. Data carries one of the
payload types in this package; failures carry an APIError whose Code is one
of the ErrCode constants.

The package has no internal dependencies. Conversion from catalog and
recommend types happens in the api package.
*/
package models
