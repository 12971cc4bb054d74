package domain

import (
	"errors"
	"strings"

	"github.com/samber/lo"
)

// AssetKind selects one of the three priced assets.
type AssetKind string

const (
	GoldOunce   AssetKind = "gold"
	SilverOunce AssetKind = "silver"
	BitcoinUnit AssetKind = "btc"
)

// ErrUnknownAsset is returned when an asset name does not match any AssetKind.
var ErrUnknownAsset = errors.New("unknown asset")

// allAssetKinds is kept unexported to prevent external mutation.
var allAssetKinds = []AssetKind{BitcoinUnit, GoldOunce, SilverOunce}

var assetAliases = map[string]AssetKind{
	"bitcoin": BitcoinUnit,
	"xbt":     BitcoinUnit,
	"xau":     GoldOunce,
	"xag":     SilverOunce,
}

// AllAssetKinds returns every asset kind in display order.
func AllAssetKinds() []AssetKind {
	return append([]AssetKind(nil), allAssetKinds...)
}

// ParseAssetKind maps a wire name (or a ticker alias) to an AssetKind.
func ParseAssetKind(s string) (AssetKind, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	if k, ok := lo.Find(allAssetKinds, func(k AssetKind) bool { return string(k) == name }); ok {
		return k, nil
	}
	if k, ok := assetAliases[name]; ok {
		return k, nil
	}
	return "", ErrUnknownAsset
}

// Valid reports whether k is one of the known asset kinds.
func (k AssetKind) Valid() bool {
	return lo.Contains(allAssetKinds, k)
}

// IsMetal returns true for the ounce-denominated assets.
func (k AssetKind) IsMetal() bool {
	return k == GoldOunce || k == SilverOunce
}

// Label returns the human-readable asset name.
func (k AssetKind) Label() string {
	switch k {
	case GoldOunce:
		return "Gold"
	case SilverOunce:
		return "Silver"
	case BitcoinUnit:
		return "Bitcoin"
	}
	return ""
}

// Ticker returns the market symbol.
func (k AssetKind) Ticker() string {
	switch k {
	case GoldOunce:
		return "XAU"
	case SilverOunce:
		return "XAG"
	case BitcoinUnit:
		return "BTC"
	}
	return ""
}

// Unit returns the quote unit: "USD/oz" for metals, "USD" for bitcoin.
func (k AssetKind) Unit() string {
	if k.IsMetal() {
		return "USD/oz"
	}
	if k == BitcoinUnit {
		return "USD"
	}
	return ""
}

// UnitCaption is the long form of Unit shown under a price.
func (k AssetKind) UnitCaption() string {
	if k.IsMetal() {
		return "USD per oz"
	}
	if k == BitcoinUnit {
		return "USD per BTC"
	}
	return ""
}

// Icon describes how an asset is drawn: a glyph name and a colour class.
type Icon struct {
	Name  string `json:"name"`
	Color string `json:"color"`
}

// Icon returns the display icon for the asset.
func (k AssetKind) Icon() Icon {
	switch k {
	case GoldOunce:
		return Icon{Name: "coins", Color: "yellow"}
	case SilverOunce:
		return Icon{Name: "coins", Color: "gray"}
	case BitcoinUnit:
		return Icon{Name: "trending-up", Color: "orange"}
	}
	return Icon{}
}

// AssetInfo is the display metadata of one asset kind.
type AssetInfo struct {
	Kind   AssetKind `json:"kind"`
	Label  string    `json:"label"`
	Ticker string    `json:"ticker"`
	Unit   string    `json:"unit"`
	Icon   Icon      `json:"icon"`
}

// Info collects the display metadata of k.
func (k AssetKind) Info() AssetInfo {
	return AssetInfo{
		Kind:   k,
		Label:  k.Label(),
		Ticker: k.Ticker(),
		Unit:   k.Unit(),
		Icon:   k.Icon(),
	}
}
