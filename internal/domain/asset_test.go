package domain

import (
	"errors"
	"testing"
)

func TestParseAssetKind(t *testing.T) {
	tests := []struct {
		input   string
		want    AssetKind
		wantErr bool
	}{
		{"gold", GoldOunce, false},
		{"silver", SilverOunce, false},
		{"btc", BitcoinUnit, false},
		{"  BTC ", BitcoinUnit, false},
		{"Bitcoin", BitcoinUnit, false},
		{"xau", GoldOunce, false},
		{"XAG", SilverOunce, false},
		{"", "", true},
		{"platinum", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseAssetKind(tt.input)
			if tt.wantErr {
				if !errors.Is(err, ErrUnknownAsset) {
					t.Errorf("ParseAssetKind(%q) error = %v, want ErrUnknownAsset", tt.input, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseAssetKind(%q) unexpected error: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ParseAssetKind(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestAllAssetKindsOrderAndCopy(t *testing.T) {
	kinds := AllAssetKinds()
	want := []AssetKind{BitcoinUnit, GoldOunce, SilverOunce}
	if len(kinds) != len(want) {
		t.Fatalf("len = %d, want %d", len(kinds), len(want))
	}
	for i := range want {
		if kinds[i] != want[i] {
			t.Errorf("kinds[%d] = %q, want %q", i, kinds[i], want[i])
		}
	}

	kinds[0] = "mutated"
	if AllAssetKinds()[0] != BitcoinUnit {
		t.Error("AllAssetKinds returned a shared slice")
	}
}

func TestAssetDisplayMetadata(t *testing.T) {
	tests := []struct {
		kind    AssetKind
		label   string
		unit    string
		caption string
		icon    Icon
	}{
		{GoldOunce, "Gold", "USD/oz", "USD per oz", Icon{Name: "coins", Color: "yellow"}},
		{SilverOunce, "Silver", "USD/oz", "USD per oz", Icon{Name: "coins", Color: "gray"}},
		{BitcoinUnit, "Bitcoin", "USD", "USD per BTC", Icon{Name: "trending-up", Color: "orange"}},
		{AssetKind("other"), "", "", "", Icon{}},
	}

	for _, tt := range tests {
		t.Run(string(tt.kind), func(t *testing.T) {
			if got := tt.kind.Label(); got != tt.label {
				t.Errorf("Label() = %q, want %q", got, tt.label)
			}
			if got := tt.kind.Unit(); got != tt.unit {
				t.Errorf("Unit() = %q, want %q", got, tt.unit)
			}
			if got := tt.kind.UnitCaption(); got != tt.caption {
				t.Errorf("UnitCaption() = %q, want %q", got, tt.caption)
			}
			if got := tt.kind.Icon(); got != tt.icon {
				t.Errorf("Icon() = %+v, want %+v", got, tt.icon)
			}
		})
	}
}

func TestAssetKindValid(t *testing.T) {
	for _, k := range AllAssetKinds() {
		if !k.Valid() {
			t.Errorf("%q.Valid() = false, want true", k)
		}
	}
	if AssetKind("eth").Valid() {
		t.Error(`"eth".Valid() = true, want false`)
	}
}
