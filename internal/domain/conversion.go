package domain

import (
	"errors"
	"math"

	"github.com/samber/lo"
)

var (
	// ErrInvalidInput is returned by ConversionInput.Validate for negative or non-finite values.
	ErrInvalidInput = errors.New("value must be a finite non-negative number")
	// ErrPriceOverflow is returned when a finite input derives a price outside float64 range.
	ErrPriceOverflow = errors.New("derived price is out of range")
)

// ConversionInput is the price the user entered together with the asset it belongs to.
type ConversionInput struct {
	Asset AssetKind
	Value float64
}

// Validate checks the asset is known and the value is finite and non-negative.
func (in ConversionInput) Validate() error {
	if !in.Asset.Valid() {
		return ErrUnknownAsset
	}
	if !isFinite(in.Value) || in.Value < 0 {
		return ErrInvalidInput
	}
	return nil
}

// ConversionResult holds the three derived prices in USD.
// Gold and silver are per troy ounce, bitcoin per whole coin.
type ConversionResult struct {
	GoldPrice    float64 `json:"gold"`
	SilverPrice  float64 `json:"silver"`
	BitcoinPrice float64 `json:"btc"`
}

// IsFinite reports whether all three prices are finite numbers.
func (r ConversionResult) IsFinite() bool {
	return isFinite(r.GoldPrice) && isFinite(r.SilverPrice) && isFinite(r.BitcoinPrice)
}

func isFinite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}

// Price returns the price of the given asset kind, or 0 for an unknown kind.
func (r ConversionResult) Price(k AssetKind) float64 {
	switch k {
	case GoldOunce:
		return r.GoldPrice
	case SilverOunce:
		return r.SilverPrice
	case BitcoinUnit:
		return r.BitcoinPrice
	}
	return 0
}

// Formatted returns the result with every price rendered by FormatUSD.
func (r ConversionResult) Formatted() FormattedResult {
	return FormattedResult{
		GoldPrice:    FormatUSD(r.GoldPrice),
		SilverPrice:  FormatUSD(r.SilverPrice),
		BitcoinPrice: FormatUSD(r.BitcoinPrice),
	}
}

// FormattedResult mirrors ConversionResult with display strings.
type FormattedResult struct {
	GoldPrice    string `json:"gold"`
	SilverPrice  string `json:"silver"`
	BitcoinPrice string `json:"btc"`
}

// PriceCard is one asset's price as shown on the result page.
type PriceCard struct {
	AssetInfo
	Caption string `json:"caption"`
	Price   string `json:"price"`
	IsInput bool   `json:"isInput"`
}

// Cards lays out a result as one card per asset in display order,
// flagging the card of the asset the user typed.
func Cards(r ConversionResult, input AssetKind) []PriceCard {
	return lo.Map(allAssetKinds, func(k AssetKind, _ int) PriceCard {
		return PriceCard{
			AssetInfo: k.Info(),
			Caption:   k.UnitCaption(),
			Price:     FormatUSD(r.Price(k)),
			IsInput:   k == input,
		}
	})
}
