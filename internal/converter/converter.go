// Package converter derives gold, silver and bitcoin prices from one another
// using fixed linear models.
package converter

import (
	"math"

	"github.com/mtlprog/gold2btc/internal/domain"
)

// Model coefficients. The three branches of Convert are independent fits and
// are not inverses of each other.
const (
	goldIntercept    = 1784.21
	goldPerBitcoin   = -0.000007
	silverIntercept  = 23.14
	silverPerBitcoin = -0.000015
	bitcoinDivisor   = 0.000007
	silverPerGold    = 0.0135
	silverOffset     = 0.51
)

// Convert treats value as the price of asset and derives the other two prices.
// Every returned price, including the echoed input, is floored at zero.
// An unknown asset yields the zero result.
func Convert(asset domain.AssetKind, value float64) domain.ConversionResult {
	var gold, silver, btc float64

	// Products are converted to float64 explicitly so they are never fused
	// into a multiply-add; results must match the reference numbers exactly.
	switch asset {
	case domain.BitcoinUnit:
		btc = floor(value)
		gold = float64(goldPerBitcoin*value) + goldIntercept
		silver = float64(silverPerBitcoin*value) + silverIntercept
	case domain.GoldOunce:
		gold = floor(value)
		btc = bitcoinFromGold(value)
		silver = float64(silverPerGold*value) - silverOffset
	case domain.SilverOunce:
		silver = floor(value)
		gold = floor((value + silverOffset) / silverPerGold)
		btc = bitcoinFromGold(gold)
	default:
		return domain.ConversionResult{}
	}

	return domain.ConversionResult{
		GoldPrice:    floor(gold),
		SilverPrice:  floor(silver),
		BitcoinPrice: floor(btc),
	}
}

// ConvertInput validates in and converts it. A finite input whose derived
// prices overflow float64 returns domain.ErrPriceOverflow and no result.
func ConvertInput(in domain.ConversionInput) (domain.ConversionResult, error) {
	if err := in.Validate(); err != nil {
		return domain.ConversionResult{}, err
	}
	result := Convert(in.Asset, in.Value)
	if !result.IsFinite() {
		return domain.ConversionResult{}, domain.ErrPriceOverflow
	}
	return result, nil
}

func bitcoinFromGold(gold float64) float64 {
	return (goldIntercept - gold) / bitcoinDivisor
}

func floor(x float64) float64 {
	return math.Max(0, x)
}
