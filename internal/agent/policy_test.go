package agent

import (
	"testing"

	"github.com/Safa30/Lab-2-CSE366/internal/model"
)

func TestOrderingPolicyPrecedence(t *testing.T) {
	t.Parallel()

	policy := OrderingPolicy{BaseOrder: 15, RestockQuantity: 10}

	cases := []struct {
		name          string
		percept       model.Percept
		reference     float64
		priceDiscount bool
		lowStock      bool
		want          int
	}{
		{
			// Restock wins over the discount when both signals fire.
			name:          "discount and low stock",
			percept:       model.Percept{Price: 500, Stock: 5},
			reference:     600,
			priceDiscount: true,
			lowStock:      true,
			want:          10,
		},
		{
			// ratio (600-450)/600 = 0.25, floor(15 * 1.25) = 18.
			name:          "discount only scales the base order",
			percept:       model.Percept{Price: 450, Stock: 40},
			reference:     600,
			priceDiscount: true,
			lowStock:      false,
			want:          18,
		},
		{
			// ratio 0.5, floor(15 * 1.5) = 22.
			name:          "deeper discount scales further",
			percept:       model.Percept{Price: 300, Stock: 40},
			reference:     600,
			priceDiscount: true,
			lowStock:      false,
			want:          22,
		},
		{
			name:          "low stock only",
			percept:       model.Percept{Price: 700, Stock: 2},
			reference:     600,
			priceDiscount: false,
			lowStock:      true,
			want:          10,
		},
		{
			name:          "no signal",
			percept:       model.Percept{Price: 610, Stock: 40},
			reference:     600,
			priceDiscount: false,
			lowStock:      false,
			want:          0,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got := policy.Decide(tc.percept, tc.reference, tc.priceDiscount, tc.lowStock)
			if got != tc.want {
				t.Fatalf("Decide = %d, want %d", got, tc.want)
			}
		})
	}
}
