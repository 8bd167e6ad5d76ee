package domain_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mverstraete/tripdash/internal/domain"
)

// ---- profile ----

func TestDefaultProfile(t *testing.T) {
	now := time.Date(2026, 3, 14, 15, 9, 26, 0, time.Local)
	p := domain.DefaultProfile(now)

	want := time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "", p.Destination)
	assert.Equal(t, want, p.StartDate)
	assert.Equal(t, want, p.EndDate)
	assert.Equal(t, 0, p.Budget)
	assert.Equal(t, 1, p.Travelers)
	assert.Equal(t, []string{}, p.Interests)
}

// ---- tags ----

func TestSplitTags(t *testing.T) {
	tests := []struct {
		in   string
		want []string
	}{
		{"outdoor,cheap", []string{"outdoor", "cheap"}},
		{" outdoor , cheap ", []string{"outdoor", "cheap"}},
		{"solo", []string{"solo"}},
		{"a,,b", []string{"a", "b"}},
		{",  ,", []string{}},
		{"", []string{}},
	}
	for _, tt := range tests {
		got := domain.SplitTags(tt.in)
		require.NotNil(t, got, "input %q", tt.in)
		assert.Equal(t, tt.want, got, "input %q", tt.in)
	}
}

// ---- categories ----

func TestNormalizeCategory(t *testing.T) {
	assert.Equal(t, domain.CategoryOther, domain.NormalizeCategory(""))
	assert.Equal(t, domain.CategoryFood, domain.NormalizeCategory(domain.CategoryFood))
	// unknown values pass through untouched
	assert.Equal(t, "Mystery", domain.NormalizeCategory("Mystery"))
}

func TestCategoriesCatalog(t *testing.T) {
	assert.Len(t, domain.Categories, 8)
	assert.Equal(t, domain.CategoryActivities, domain.Categories[0])
	assert.Equal(t, domain.CategoryOther, domain.Categories[len(domain.Categories)-1])
}

// ---- interests ----

func TestFilterInterests(t *testing.T) {
	got := domain.FilterInterests([]string{"Food", "Skydiving", "Museums", "Food"})
	assert.Equal(t, []string{"Food", "Museums"}, got)
}

func TestFilterInterests_Empty(t *testing.T) {
	got := domain.FilterInterests(nil)
	require.NotNil(t, got)
	assert.Empty(t, got)
}

func TestKnownInterest(t *testing.T) {
	for _, s := range domain.Interests {
		assert.True(t, domain.KnownInterest(s), s)
	}
	assert.False(t, domain.KnownInterest("food"))
	assert.False(t, domain.KnownInterest(""))
}

// ---- templates ----

func TestTemplates_ReturnsCopy(t *testing.T) {
	first := domain.Templates()
	require.Len(t, first, 6)
	assert.Equal(t, "City walking tour", first[0].Title)

	first[0].Title = "mutated"
	again := domain.Templates()
	assert.Equal(t, "City walking tour", again[0].Title)
}
