package checkout

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/La-Mediterranee/Server/internal/core"
	"github.com/La-Mediterranee/Server/internal/payment"
)

// Currency is the shop's charge currency, in minor units (cents).
const Currency = "eur"

// IntentCreator is the slice of the payment processor the checkout
// flow needs. Service depends ONLY on this interface.
type IntentCreator interface {
	CreateIntent(ctx context.Context, amount int64, currency string) (*payment.Intent, error)
}

type Options struct {
	// MultiplyQuantity controls whether each line's unit price (menu
	// item or grocery, plus its topping surcharges) is multiplied by
	// the line quantity. The composition root enables it; turning it
	// off reproduces the historical per-line behavior.
	MultiplyQuantity bool
}

type Service struct {
	prices      core.PriceReader
	intents     IntentCreator
	multiplyQty bool
}

func NewService(prices core.PriceReader, intents IntentCreator, opts Options) *Service {
	return &Service{
		prices:      prices,
		intents:     intents,
		multiplyQty: opts.MultiplyQuantity,
	}
}

// --------------------------------------------------
// CALCULATE CHARGE
// --------------------------------------------------

// CalculateCharge recomputes the authoritative total for a cart in
// minor currency units. Prices come exclusively from the catalog: one
// batched read per category plus one for the referenced topping
// groups, all three issued concurrently. A cart ID without a catalog
// record fails the whole charge.
func (s *Service) CalculateCharge(ctx context.Context, items []CartItem) (int64, error) {
	if len(items) == 0 {
		return 0, nil
	}

	if err := validateItems(items); err != nil {
		return 0, err
	}

	menuitems, groceries := Partition(items)

	groceryIDs := collectIDs(groceries)
	menuitemIDs := collectIDs(menuitems)
	toppingIDs := collectToppingIDs(menuitems)

	var (
		groceryPrices  map[string]core.PriceRecord
		menuitemPrices map[string]core.PriceRecord
		toppingPrices  map[string]core.ToppingPrices
	)

	g, gctx := errgroup.WithContext(ctx)

	if len(groceryIDs) > 0 {
		g.Go(func() error {
			var err error
			groceryPrices, err = s.prices.GetGroceryPrices(gctx, groceryIDs)
			return err
		})
	}

	if len(menuitemIDs) > 0 {
		g.Go(func() error {
			var err error
			menuitemPrices, err = s.prices.GetMenuItemPrices(gctx, menuitemIDs)
			return err
		})
	}

	if len(toppingIDs) > 0 {
		g.Go(func() error {
			var err error
			toppingPrices, err = s.prices.GetToppingPrices(gctx, toppingIDs)
			return err
		})
	}

	if err := g.Wait(); err != nil {
		return 0, err
	}

	var total int64

	for _, item := range groceries {
		rec, ok := groceryPrices[item.ID]
		if !ok {
			return 0, &MissingRecordError{Kind: "grocery", ID: item.ID}
		}
		total += rec.Price * s.qty(item)
	}

	for _, item := range menuitems {
		rec, ok := menuitemPrices[item.ID]
		if !ok {
			return 0, &MissingRecordError{Kind: "menuitem", ID: item.ID}
		}

		// salesPrice overrides price
		unit := rec.Price
		if rec.SalesPrice != nil {
			unit = *rec.SalesPrice
		}

		for _, sel := range item.SelectedToppings {
			group, ok := toppingPrices[sel.ToppingID]
			if !ok {
				return 0, &MissingRecordError{Kind: "topping", ID: sel.ToppingID}
			}
			for _, optionID := range sel.ToppingOptionID {
				price, ok := group.Options[optionID]
				if !ok {
					return 0, &MissingRecordError{Kind: "topping option", ID: optionID}
				}
				unit += price
			}
		}

		total += unit * s.qty(item)
	}

	return total, nil
}

// --------------------------------------------------
// CREATE PAYMENT INTENT
// --------------------------------------------------

// CreatePaymentIntent recomputes the cart total and hands it to the
// payment processor. The processor is never called with a non-positive
// amount, and a pricing failure is never papered over with a fallback.
func (s *Service) CreatePaymentIntent(ctx context.Context, items []CartItem) (*payment.Intent, error) {
	amount, err := s.CalculateCharge(ctx, items)
	if err != nil {
		return nil, err
	}

	if amount <= 0 {
		return nil, ErrInvalidAmount
	}

	return s.intents.CreateIntent(ctx, amount, Currency)
}

// --------------------------------------------------
// HELPERS
// --------------------------------------------------

func (s *Service) qty(item CartItem) int64 {
	if s.multiplyQty {
		return int64(item.Quantity)
	}
	return 1
}

func validateItems(items []CartItem) error {
	for i, item := range items {
		switch {
		case item.ID == "":
			return &MalformedItemError{Index: i, Reason: "missing ID"}
		case !item.CategoryType.Valid():
			return &MalformedItemError{Index: i, Reason: "unknown categoryType"}
		case item.Quantity <= 0:
			return &MalformedItemError{Index: i, Reason: "quantity must be positive"}
		}
	}
	return nil
}

func collectIDs(items []CartItem) []string {
	seen := make(map[string]struct{}, len(items))
	ids := make([]string, 0, len(items))
	for _, item := range items {
		if _, ok := seen[item.ID]; ok {
			continue
		}
		seen[item.ID] = struct{}{}
		ids = append(ids, item.ID)
	}
	return ids
}

func collectToppingIDs(menuitems []CartItem) []string {
	seen := make(map[string]struct{})
	var ids []string
	for _, item := range menuitems {
		for _, sel := range item.SelectedToppings {
			if _, ok := seen[sel.ToppingID]; ok {
				continue
			}
			seen[sel.ToppingID] = struct{}{}
			ids = append(ids, sel.ToppingID)
		}
	}
	return ids
}
