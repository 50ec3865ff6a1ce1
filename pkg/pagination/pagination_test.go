// Copyright (c) 2026 Bookly. All rights reserved.

package pagination_test

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tidol/bookly/pkg/pagination"
)

/*
TestPagination_FromRequest verifies query parsing and clamping behavior.
*/
func TestPagination_FromRequest(t *testing.T) {
	tests := []struct {
		name      string
		url       string
		wantPage  int
		wantLimit int
	}{
		{"defaults", "/books", 1, 20},
		{"explicit", "/books?page=3&limit=50", 3, 50},
		{"negative_page_clamped", "/books?page=-1", 1, 20},
		{"excessive_limit_clamped", "/books?limit=9999", 1, 20},
		{"garbage_ignored", "/books?page=abc&limit=xyz", 1, 20},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			request := httptest.NewRequest("GET", tt.url, nil)
			params := pagination.FromRequest(request)

			assert.Equal(t, tt.wantPage, params.Page)
			assert.Equal(t, tt.wantLimit, params.Limit)
		})
	}
}

/*
TestPagination_Offset verifies the SQL offset derivation.
*/
func TestPagination_Offset(t *testing.T) {
	assert.Equal(t, 0, pagination.Params{Page: 1, Limit: 20}.Offset())
	assert.Equal(t, 40, pagination.Params{Page: 3, Limit: 20}.Offset())
	assert.Equal(t, 0, pagination.Params{Page: 0, Limit: 20}.Offset())
}

/*
TestPagination_NewMeta verifies total-page calculation.
*/
func TestPagination_NewMeta(t *testing.T) {
	meta := pagination.NewMeta(2, 20, 45)

	assert.Equal(t, 2, meta.Page)
	assert.Equal(t, 45, meta.Total)
	assert.Equal(t, 3, meta.TotalPages)

	assert.Equal(t, 0, pagination.NewMeta(1, 0, 10).TotalPages)
}
