// Product Recommendation System - Content-Based Retail Recommendations
// Copyright 2026 Pranjal0798
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/Pranjal0798/product-recommendation-system

package catalog

import "slices"

// Catalog is an immutable snapshot of products and customer histories.
type Catalog struct {
	products      []*Product
	productIndex  map[ProductKey]int
	customers     []*Customer
	customerIndex map[string]*Customer

	rows        int
	ignoredRows int
	purchases   int
}

// Stats summarizes a catalog.
type Stats struct {
	Products    int `json:"unique_products"`
	Customers   int `json:"total_customers"`
	Purchases   int `json:"total_purchases"`
	Rows        int `json:"rows_processed"`
	IgnoredRows int `json:"rows_ignored"`
}

func newCatalog() *Catalog {
	return &Catalog{
		productIndex:  make(map[ProductKey]int),
		customerIndex: make(map[string]*Customer),
	}
}

func (c *Catalog) addProduct(p *Product) {
	c.productIndex[p.Key] = len(c.products)
	c.products = append(c.products, p)
}

func (c *Catalog) addCustomer(cust *Customer) {
	c.customerIndex[cust.ID] = cust
	c.customers = append(c.customers, cust)
}

// Products returns all products in first-seen order. The slice is a copy;
// the products themselves must not be modified.
func (c *Catalog) Products() []*Product {
	return slices.Clone(c.products)
}

// Product returns the product with the given key.
func (c *Catalog) Product(key ProductKey) (*Product, bool) {
	i, ok := c.productIndex[key]
	if !ok {
		return nil, false
	}
	return c.products[i], true
}

// Customers returns all customers in first-seen order.
func (c *Catalog) Customers() []*Customer {
	return slices.Clone(c.customers)
}

// Customer returns the customer with the given identifier.
func (c *Catalog) Customer(id string) (*Customer, bool) {
	cust, ok := c.customerIndex[id]
	return cust, ok
}

// PurchasedProducts returns the customer's purchases in catalog order.
func (c *Catalog) PurchasedProducts(cust *Customer) []*Product {
	out := make([]*Product, 0, len(cust.Purchases))
	for _, p := range c.products {
		if cust.HasPurchased(p.Key) {
			out = append(out, p)
		}
	}
	return out
}

// Len returns the number of products.
func (c *Catalog) Len() int {
	return len(c.products)
}

// Stats returns counts for the catalog.
func (c *Catalog) Stats() Stats {
	return Stats{
		Products:    len(c.products),
		Customers:   len(c.customers),
		Purchases:   c.purchases,
		Rows:        c.rows,
		IgnoredRows: c.ignoredRows,
	}
}
