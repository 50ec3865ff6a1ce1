// Copyright (c) 2026 Bookly. All rights reserved.

package slug_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tidol/bookly/pkg/slug"
)

/*
TestSlug_From verifies the slugification pipeline across character classes.
*/
func TestSlug_From(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"simple_title", "The Winter Crown", "the-winter-crown"},
		{"accents_stripped", "Château Noir", "chateau-noir"},
		{"punctuation_collapsed", "Hello, World!!", "hello-world"},
		{"leading_trailing_trimmed", "  --Edge Case--  ", "edge-case"},
		{"digits_preserved", "Book 2: Reborn", "book-2-reborn"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, slug.From(tt.input))
		})
	}
}
