// Product Recommendation System - Content-Based Retail Recommendations
// Copyright 2026 Pranjal0798
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/Pranjal0798/product-recommendation-system

package catalog

import (
	"slices"
	"strings"

	"github.com/Pranjal0798/product-recommendation-system/internal/cache"
)

// DefaultVocabulary lists the descriptive keywords searched for in product
// names and categories. Entries are matched as lowercase substrings.
var DefaultVocabulary = []string{
	// function
	"wireless", "bluetooth", "smart", "digital", "portable", "waterproof",
	// material
	"cotton", "leather", "denim", "silk", "wool",
	// style
	"running", "casual", "formal", "sport", "athletic", "vintage", "modern",
	"classic", "comfortable", "lightweight", "premium",
}

// FeatureSet is a sorted, duplicate-free list of lowercase tags.
type FeatureSet []string

// NewFeatureSet sorts and deduplicates tags, dropping empty entries.
func NewFeatureSet(tags ...string) FeatureSet {
	out := make([]string, 0, len(tags))
	for _, t := range tags {
		if t != "" {
			out = append(out, t)
		}
	}
	slices.Sort(out)
	return FeatureSet(slices.Compact(out))
}

// Contains reports whether tag is in the set.
func (fs FeatureSet) Contains(tag string) bool {
	_, found := slices.BinarySearch(fs, tag)
	return found
}

// Intersect returns the number of tags shared with other.
func (fs FeatureSet) Intersect(other FeatureSet) int {
	i, j, n := 0, 0, 0
	for i < len(fs) && j < len(other) {
		switch {
		case fs[i] == other[j]:
			n++
			i++
			j++
		case fs[i] < other[j]:
			i++
		default:
			j++
		}
	}
	return n
}

// FeatureExtractor derives feature tags for a product. It is safe for
// concurrent use.
type FeatureExtractor struct {
	vocabulary []string
	matcher    *cache.AhoCorasick
}

// NewFeatureExtractor creates an extractor. A nil or empty vocabulary selects
// DefaultVocabulary.
func NewFeatureExtractor(vocabulary []string) *FeatureExtractor {
	if len(vocabulary) == 0 {
		vocabulary = DefaultVocabulary
	}
	vocab := make([]string, 0, len(vocabulary))
	for _, term := range vocabulary {
		term = strings.ToLower(strings.TrimSpace(term))
		if term != "" {
			vocab = append(vocab, term)
		}
	}
	return &FeatureExtractor{vocabulary: vocab, matcher: cache.NewAhoCorasick(vocab)}
}

// Vocabulary returns a copy of the keyword list in use.
func (e *FeatureExtractor) Vocabulary() []string {
	return slices.Clone(e.vocabulary)
}

// Extract builds the tag set for one product. Empty attributes contribute
// nothing.
func (e *FeatureExtractor) Extract(name, category, color, size, season string) FeatureSet {
	tags := make([]string, 0, 8)

	tags = append(tags, whitespaceRun.ReplaceAllString(strings.ToLower(category), "-"))
	if color != "" {
		tags = append(tags, strings.ToLower(color))
	}
	if size != "" {
		tags = append(tags, "size-"+strings.ToLower(size))
	}
	if season != "" {
		tags = append(tags, strings.ToLower(season))
	}

	tags = append(tags, e.matcher.Matches(name+" "+category)...)

	return NewFeatureSet(tags...)
}
