package go_vendra

import (
	"context"
	"errors"
	"math"
	"sort"

	"github.com/vendralabs/go-vendra/cart"
	"github.com/vendralabs/go-vendra/internal/utils"
	"github.com/vendralabs/go-vendra/log"
)

// ShippingOptimizer applies the lowest-priced shipping option to every
// supplier's line items in a cart.
//
// It never fails for individual items: per-item update errors accumulate in
// the result, and only the initial group fetch can abort the pass (without
// group data there is nothing to optimize).
type ShippingOptimizer struct {
	carts  *CartService
	logger log.Logger
}

// NewShippingOptimizer builds an optimizer over the given cart facade.
// A nil logger discards warnings.
func NewShippingOptimizer(carts *CartService, logger log.Logger) *ShippingOptimizer {
	if logger == nil {
		logger = log.NopLogger{}
	}
	return &ShippingOptimizer{carts: carts, logger: logger}
}

// ItemFailure records one line item that could not be updated.
type ItemFailure struct {
	ItemID  string
	Message string
}

// OptimizeResult tallies one optimization pass.
//
// SkippedSuppliers lists suppliers that published no shipping options; their
// items are left untouched and the pass still succeeds.
type OptimizeResult struct {
	UpdatedCount     int
	Failures         []ItemFailure
	SkippedSuppliers []string
}

// Optimize fetches the supplier shipping groups of the cart and applies the
// cheapest option of each group to that group's line items.
//
// Items already carrying the cheapest option id are skipped without a network
// call, so a second pass over an optimized cart issues zero updates.
func (o *ShippingOptimizer) Optimize(ctx context.Context, cartID string) (*OptimizeResult, error) {
	if o == nil || o.carts == nil {
		return nil, errors.New("optimizer is not initialized")
	}

	groups, err := o.carts.LineItemsBySupplier(ctx, cartID)
	if err != nil {
		return nil, err
	}

	res := &OptimizeResult{}
	for _, g := range groups {
		cheapest, ok := cheapestShipping(g.AvailableShippings)
		if !ok {
			o.logger.Warnf("shipping optimizer: supplier %q (%s) has no shipping options, skipping", g.Supplier.Name, g.Supplier.ID)
			res.SkippedSuppliers = append(res.SkippedSuppliers, g.Supplier.ID)
			continue
		}

		for _, item := range g.LineItems {
			if item.ShippingOptionID != nil && *item.ShippingOptionID == cheapest.ShippingOptionID {
				continue
			}
			upd := cart.ItemUpdate{ShippingOptionID: utils.Ref(cheapest.ShippingOptionID)}
			if _, err := o.carts.UpdateItem(ctx, cartID, item.ItemID, upd); err != nil {
				res.Failures = append(res.Failures, ItemFailure{ItemID: item.ItemID, Message: err.Error()})
				continue
			}
			res.UpdatedCount++
		}
	}
	return res, nil
}

// cheapestShipping picks the lowest-priced option.
//
// The sort is stable and unpriced options weigh +Inf, so ties resolve to
// source order and an unpriced option wins only when nothing is priced.
func cheapestShipping(options []cart.ShippingOption) (cart.ShippingOption, bool) {
	if len(options) == 0 {
		return cart.ShippingOption{}, false
	}
	sorted := make([]cart.ShippingOption, len(options))
	copy(sorted, options)
	sort.SliceStable(sorted, func(i, j int) bool {
		return shippingAmount(sorted[i]) < shippingAmount(sorted[j])
	})
	return sorted[0], true
}

func shippingAmount(o cart.ShippingOption) float64 {
	if o.Price.Amount == nil {
		return math.Inf(1)
	}
	return *o.Price.Amount
}
