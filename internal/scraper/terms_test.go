package scraper

import (
	"context"
	"net/http"
	"strings"
	"testing"

	"github.com/pfrederiksen/au-courses/internal/course"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListTerms(t *testing.T) {
	page := loadFixture(t, "calendar_page.html")

	s := newTestScraper(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Empty(t, r.URL.Query().Get("term"), "term list must be fetched without a term")
		assert.Equal(t, "campus=BRA", r.URL.RawQuery)
		w.Write([]byte(page)) // nolint:errcheck
	}, Options{})

	terms, err := s.ListTerms(context.Background(), "BRA")
	require.NoError(t, err)

	assert.Equal(t, []course.Term{
		{Code: "202609", Name: "Fall 2026"},
		{Code: "202701", Name: "Winter 2027"},
		{Code: "202705", Name: "Spring/Summer 2027"},
	}, terms)
}

func TestListTerms_MissingSelector(t *testing.T) {
	page := loadFixture(t, "calendar_no_terms.html")

	s := newTestScraper(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(page)) // nolint:errcheck
	}, Options{})

	terms, err := s.ListTerms(context.Background(), "TIM")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrPageShape)
	assert.Nil(t, terms)
	assert.Contains(t, err.Error(), "TIM")
}

func TestParseTerms(t *testing.T) {
	tests := []struct {
		name    string
		html    string
		want    []course.Term
		wantErr bool
	}{
		{
			name: "empty selector",
			html: `<select name="term"></select>`,
			want: []course.Term{},
		},
		{
			name: "option without value uses text",
			html: `<select name="term"><option> Fall 2026 </option></select>`,
			want: []course.Term{{Code: "Fall 2026", Name: "Fall 2026"}},
		},
		{
			name: "first control wins",
			html: `<select name="term"><option value="1">One</option></select>
			       <select name="term"><option value="2">Two</option></select>`,
			want: []course.Term{{Code: "1", Name: "One"}},
		},
		{
			name:    "no control",
			html:    `<select name="campus"><option value="SSM">SSM</option></select>`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			terms, err := parseTerms(strings.NewReader(tt.html))
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrPageShape)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, terms)
		})
	}
}
