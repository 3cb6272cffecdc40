package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/zanaya/ZNY-BookingService/internal/domain"
)

func TestCalculate(t *testing.T) {
	tests := []struct {
		name     string
		draft    *domain.BookingDraft
		expected Quote
	}{
		{
			name:     "empty draft",
			draft:    domain.NewBookingDraft(),
			expected: Quote{KitSubtotal: 0, ServicesSubtotal: 0, GrandTotal: 0},
		},
		{
			name: "kit items only",
			draft: &domain.BookingDraft{
				SelectedKitItems: []domain.KitItem{
					{ID: "a", Price: 500, Required: true},
					{ID: "b", Price: 300},
				},
			},
			expected: Quote{KitSubtotal: 800, ServicesSubtotal: 0, GrandTotal: 800},
		},
		{
			name: "services only",
			draft: &domain.BookingDraft{
				SelectedServices: []domain.Service{
					{ID: "s1", Price: 2500},
					{ID: "s2", Price: 1800},
				},
			},
			expected: Quote{KitSubtotal: 0, ServicesSubtotal: 4300, GrandTotal: 4300},
		},
		{
			name: "kit and services combined",
			draft: &domain.BookingDraft{
				SelectedKitItems: []domain.KitItem{
					{ID: "a", Price: 500, Required: true},
					{ID: "b", Price: 300},
				},
				SelectedServices: []domain.Service{
					{ID: "s1", Price: 2500},
				},
			},
			expected: Quote{KitSubtotal: 800, ServicesSubtotal: 2500, GrandTotal: 3300},
		},
		{
			name: "zero-priced items count as zero",
			draft: &domain.BookingDraft{
				SelectedKitItems: []domain.KitItem{{ID: "free", Price: 0}},
				SelectedServices: []domain.Service{{ID: "s", Price: 0}},
			},
			expected: Quote{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Calculate(tt.draft)
			assert.Equal(t, tt.expected, got)
			assert.Equal(t, got.KitSubtotal+got.ServicesSubtotal, got.GrandTotal)
		})
	}
}

func TestCalculateDoesNotMutateDraft(t *testing.T) {
	draft := &domain.BookingDraft{
		SelectedKitItems: []domain.KitItem{{ID: "a", Price: 100}},
		SelectedServices: []domain.Service{{ID: "s", Price: 200}},
	}

	_ = Calculate(draft)

	assert.Len(t, draft.SelectedKitItems, 1)
	assert.Len(t, draft.SelectedServices, 1)
	assert.Equal(t, 100, draft.SelectedKitItems[0].Price)
}
