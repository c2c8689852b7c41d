// Product Recommendation System - Content-Based Retail Recommendations
// Copyright 2026 Pranjal0798
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/Pranjal0798/product-recommendation-system

package cache

import (
	"strings"
)

// AhoCorasick finds every occurrence of a fixed set of patterns in a text in
// a single pass, O(n + z) for text length n and z matches.
//
// The automaton is built once by NewAhoCorasick and never modified, so it is
// safe for concurrent use without locking. Matching is case-insensitive.
//
//	ac := NewAhoCorasick([]string{"wireless", "less", "smart"})
//	ac.Matches("Wireless Headphones") // ["wireless", "less"]
type AhoCorasick struct {
	root     *acNode
	patterns []string
}

// acNode represents a node in the Aho-Corasick automaton.
type acNode struct {
	children map[rune]*acNode
	failure  *acNode
	output   []int // indices of patterns ending here, including via failure links
}

func newACNode() *acNode {
	return &acNode{children: make(map[rune]*acNode)}
}

// NewAhoCorasick builds an automaton for patterns. Patterns are lowercased;
// empty and duplicate patterns are dropped.
func NewAhoCorasick(patterns []string) *AhoCorasick {
	ac := &AhoCorasick{root: newACNode()}

	seen := make(map[string]struct{}, len(patterns))
	for _, p := range patterns {
		p = strings.ToLower(p)
		if p == "" {
			continue
		}
		if _, dup := seen[p]; dup {
			continue
		}
		seen[p] = struct{}{}
		ac.insert(len(ac.patterns), p)
		ac.patterns = append(ac.patterns, p)
	}

	ac.buildFailureLinks()
	return ac
}

func (ac *AhoCorasick) insert(index int, pattern string) {
	node := ac.root
	for _, ch := range pattern {
		next := node.children[ch]
		if next == nil {
			next = newACNode()
			node.children[ch] = next
		}
		node = next
	}
	node.output = append(node.output, index)
}

// buildFailureLinks wires each node to its longest proper suffix in the trie,
// breadth first so parents are linked before children.
func (ac *AhoCorasick) buildFailureLinks() {
	queue := make([]*acNode, 0, len(ac.root.children))
	for _, child := range ac.root.children {
		child.failure = ac.root
		queue = append(queue, child)
	}

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		for ch, child := range current.children {
			queue = append(queue, child)

			fail := current.failure
			for fail != nil && fail.children[ch] == nil {
				fail = fail.failure
			}
			if fail == nil {
				child.failure = ac.root
				continue
			}
			child.failure = fail.children[ch]
			child.output = append(child.output, child.failure.output...)
		}
	}
}

// Matches returns each pattern found in text, once, in the order patterns
// were given.
func (ac *AhoCorasick) Matches(text string) []string {
	if len(ac.patterns) == 0 || text == "" {
		return nil
	}

	found := make([]bool, len(ac.patterns))
	count := 0
	node := ac.root

	for _, ch := range strings.ToLower(text) {
		for node != ac.root && node.children[ch] == nil {
			node = node.failure
		}
		if next := node.children[ch]; next != nil {
			node = next
		}
		for _, idx := range node.output {
			if !found[idx] {
				found[idx] = true
				count++
			}
		}
		if count == len(ac.patterns) {
			break
		}
	}

	if count == 0 {
		return nil
	}
	out := make([]string, 0, count)
	for i, ok := range found {
		if ok {
			out = append(out, ac.patterns[i])
		}
	}
	return out
}

// Contains reports whether any pattern occurs in text.
func (ac *AhoCorasick) Contains(text string) bool {
	node := ac.root
	for _, ch := range strings.ToLower(text) {
		for node != ac.root && node.children[ch] == nil {
			node = node.failure
		}
		if next := node.children[ch]; next != nil {
			node = next
		}
		if len(node.output) > 0 {
			return true
		}
	}
	return false
}

// Patterns returns the distinct patterns in insertion order.
func (ac *AhoCorasick) Patterns() []string {
	out := make([]string, len(ac.patterns))
	copy(out, ac.patterns)
	return out
}
