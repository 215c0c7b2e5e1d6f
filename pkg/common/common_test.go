package common

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	pkgerrors "grapheditor/pkg/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractPaginationParams(t *testing.T) {
	tests := []struct {
		name  string
		query string
		want  PaginationParams
	}{
		{name: "defaults", query: "", want: PaginationParams{Page: 1, PageSize: 20, Order: "desc"}},
		{name: "explicit", query: "page=3&page_size=5&sort=active&order=asc", want: PaginationParams{Page: 3, PageSize: 5, Sort: "active", Order: "asc"}},
		{name: "capped page size", query: "page_size=1000", want: PaginationParams{Page: 1, PageSize: MaxPageSize, Order: "desc"}},
		{name: "garbage ignored", query: "page=-1&page_size=x&order=sideways", want: PaginationParams{Page: 1, PageSize: 20, Order: "desc"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodGet, "/sessions?"+tt.query, nil)
			assert.Equal(t, tt.want, ExtractPaginationParams(r))
		})
	}
}

func TestBuildPaginationMeta(t *testing.T) {
	meta := BuildPaginationMeta(2, 10, 25)
	assert.Equal(t, 3, meta.TotalPages)
	assert.True(t, meta.HasNext)
	assert.True(t, meta.HasPrev)

	assert.Equal(t, 0, CalculateTotalPages(5, 0))
}

func TestParseJSONBody(t *testing.T) {
	type body struct {
		Name string `json:"name"`
	}

	var b body
	r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name":"x"}`))
	require.NoError(t, ParseJSONBody(httptest.NewRecorder(), r, &b))
	assert.Equal(t, "x", b.Name)

	r = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(""))
	assert.NoError(t, ParseJSONBody(httptest.NewRecorder(), r, &b))

	r = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"other":1}`))
	assert.True(t, pkgerrors.IsValidation(ParseJSONBody(httptest.NewRecorder(), r, &b)))
}

func TestRespondJSON(t *testing.T) {
	rec := httptest.NewRecorder()
	RespondJSON(rec, http.StatusCreated, map[string]string{"id": "1"})

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.JSONEq(t, `{"success":true,"data":{"id":"1"}}`, rec.Body.String())
}
