// Product Recommendation System - Content-Based Retail Recommendations
// Copyright 2026 Pranjal0798
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/Pranjal0798/product-recommendation-system

package cache

import (
	"slices"
	"strings"
	"sync"
	"testing"
)

func TestAhoCorasick_Matches(t *testing.T) {
	t.Parallel()

	ac := NewAhoCorasick([]string{"he", "she", "his", "hers"})

	got := ac.Matches("ushers")
	want := []string{"he", "she", "hers"}
	if !slices.Equal(got, want) {
		t.Errorf("Matches(ushers) = %v, want %v", got, want)
	}
}

func TestAhoCorasick_Table(t *testing.T) {
	t.Parallel()

	vocab := []string{"wireless", "less", "cotton", "sport", "running"}
	ac := NewAhoCorasick(vocab)

	tests := []struct {
		name string
		text string
		want []string
	}{
		{"overlapping suffix", "Wireless Earbuds", []string{"wireless", "less"}},
		{"case insensitive", "COTTON Tee", []string{"cotton"}},
		{"inside word", "Sportswear Running Shoes", []string{"sport", "running"}},
		{"repeated occurrence reported once", "cotton cotton cotton", []string{"cotton"}},
		{"no match", "Ceramic Mug", nil},
		{"empty text", "", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := ac.Matches(tt.text)
			if !slices.Equal(got, tt.want) {
				t.Errorf("Matches(%q) = %v, want %v", tt.text, got, tt.want)
			}
		})
	}
}

func TestAhoCorasick_PatternNormalization(t *testing.T) {
	t.Parallel()

	ac := NewAhoCorasick([]string{"Denim", "", "denim", "SILK"})

	if got, want := ac.Patterns(), []string{"denim", "silk"}; !slices.Equal(got, want) {
		t.Errorf("Patterns() = %v, want %v", got, want)
	}

	// Patterns returns a copy
	p := ac.Patterns()
	p[0] = "changed"
	if ac.Patterns()[0] != "denim" {
		t.Error("Patterns() exposed internal slice")
	}
}

func TestAhoCorasick_NoPatterns(t *testing.T) {
	t.Parallel()

	ac := NewAhoCorasick(nil)
	if got := ac.Matches("anything"); got != nil {
		t.Errorf("Matches with no patterns = %v, want nil", got)
	}
	if ac.Contains("anything") {
		t.Error("Contains with no patterns should be false")
	}
}

func TestAhoCorasick_Contains(t *testing.T) {
	t.Parallel()

	ac := NewAhoCorasick([]string{"bluetooth", "waterproof"})

	if !ac.Contains("Portable Bluetooth Speaker") {
		t.Error("expected match for bluetooth")
	}
	if !ac.Contains("WATERPROOF jacket") {
		t.Error("expected case-insensitive match")
	}
	if ac.Contains("Desk Lamp") {
		t.Error("unexpected match")
	}
}

func TestAhoCorasick_MatchesAgreesWithNaive(t *testing.T) {
	t.Parallel()

	vocab := []string{"a", "ab", "bab", "bc", "bca", "c", "caa"}
	ac := NewAhoCorasick(vocab)

	for _, text := range []string{"abccab", "bcabab", "aaaa", "cbcbca", "xyz"} {
		var want []string
		for _, p := range vocab {
			if strings.Contains(text, p) {
				want = append(want, p)
			}
		}
		if got := ac.Matches(text); !slices.Equal(got, want) {
			t.Errorf("Matches(%q) = %v, want %v", text, got, want)
		}
	}
}

func TestAhoCorasick_Concurrent(t *testing.T) {
	t.Parallel()

	ac := NewAhoCorasick([]string{"smart", "digital", "portable"})

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				if got := ac.Matches("Smart Digital Watch"); len(got) != 2 {
					t.Errorf("Matches = %v, want 2 patterns", got)
					return
				}
			}
		}()
	}
	wg.Wait()
}

func BenchmarkAhoCorasick_Matches(b *testing.B) {
	ac := NewAhoCorasick([]string{
		"wireless", "bluetooth", "smart", "digital", "portable", "waterproof",
		"cotton", "leather", "denim", "silk", "wool", "running", "casual",
	})
	text := "Premium Wireless Bluetooth Running Headphones Electronics"

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		ac.Matches(text)
	}
}

func BenchmarkNaiveKeywordMatch(b *testing.B) {
	vocab := []string{
		"wireless", "bluetooth", "smart", "digital", "portable", "waterproof",
		"cotton", "leather", "denim", "silk", "wool", "running", "casual",
	}
	text := strings.ToLower("Premium Wireless Bluetooth Running Headphones Electronics")

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		for _, v := range vocab {
			_ = strings.Contains(text, v)
		}
	}
}
