package domain

import (
	"strings"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

// Total digits of the NUMERIC(p,2) columns holding amounts (prices, weights)
// and dealer ratings.
const (
	AmountPrecision = 10
	RatingPrecision = 3
)

// Fixed2 parses s and rounds it half away from zero to two fractional digits.
// Values that would not fit a NUMERIC(precision,2) column are rejected.
func Fixed2(s string, precision int) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return decimal.Zero, errors.Errorf("invalid decimal %q", s)
	}
	// Exponent bounds keep Round from expanding inputs like "1e999999".
	if e := d.Exponent(); e > int32(precision) || e < -32 {
		return decimal.Zero, errors.Errorf("decimal %q out of range", s)
	}
	d = d.Round(2)
	if d.Abs().GreaterThanOrEqual(decimal.New(1, int32(precision-2))) {
		return decimal.Zero, errors.Errorf("decimal %q exceeds %d digits", s, precision)
	}
	return d, nil
}

// Decimal2 normalises an amount to two fractional digits ("499" -> "499.00").
func Decimal2(s string) (string, error) {
	d, err := Fixed2(s, AmountPrecision)
	if err != nil {
		return "", err
	}
	return d.StringFixed(2), nil
}

// Rating2 normalises a dealer rating ("4.5" -> "4.50").
func Rating2(s string) (string, error) {
	d, err := Fixed2(s, RatingPrecision)
	if err != nil {
		return "", err
	}
	return d.StringFixed(2), nil
}

func decimalPtr(s *string, norm func(string) (string, error)) (*string, error) {
	if s == nil {
		return nil, nil
	}
	d, err := norm(*s)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

// Normalize fills create-time defaults that do not depend on the store.
func (in *NewCategory) Normalize() error {
	if in.PriceUnit == "" {
		in.PriceUnit = "kg"
	}
	p, err := decimalPtr(in.CurrentPrice, Decimal2)
	in.CurrentPrice = p
	return err
}

func (in *NewDealer) Normalize() error {
	r, err := decimalPtr(in.Rating, Rating2)
	in.Rating = r
	return err
}

func (in *NewProduct) Normalize() error {
	p, err := Decimal2(in.Price)
	if err != nil {
		return err
	}
	in.Price = p
	return nil
}

func (in *NewBooking) Normalize() error {
	w, err := decimalPtr(in.EstimatedWeight, Decimal2)
	in.EstimatedWeight = w
	return err
}

func (in *NewCartItem) Normalize() {
	if in.Quantity <= 0 {
		in.Quantity = 1
	}
}
