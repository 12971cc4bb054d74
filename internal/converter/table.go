package converter

import (
	"errors"
	"fmt"
	"math"

	"github.com/samber/lo"

	"github.com/mtlprog/gold2btc/internal/domain"
)

// DefaultMaxTableRows bounds the size of a generated table.
const DefaultMaxTableRows = 1000

// rangeTolerance absorbs float drift when the last step lands just past "to".
const rangeTolerance = 1e-9

// ErrInvalidRange is returned for a table range that is empty, inverted or too large.
var ErrInvalidRange = errors.New("invalid table range")

// TableRow pairs an input price with the prices derived from it.
type TableRow struct {
	Input  float64
	Result domain.ConversionResult
}

// Table converts every value from "from" to "to" (inclusive) in increments of step.
// maxRows <= 0 means DefaultMaxTableRows.
func Table(asset domain.AssetKind, from, to, step float64, maxRows int) ([]TableRow, error) {
	if !asset.Valid() {
		return nil, domain.ErrUnknownAsset
	}
	if maxRows <= 0 {
		maxRows = DefaultMaxTableRows
	}
	if !isFinite(from) || !isFinite(to) || !isFinite(step) {
		return nil, fmt.Errorf("%w: bounds must be finite", ErrInvalidRange)
	}
	if from < 0 {
		return nil, fmt.Errorf("%w: from must be non-negative", ErrInvalidRange)
	}
	if to < from {
		return nil, fmt.Errorf("%w: to must not be below from", ErrInvalidRange)
	}
	if step <= 0 {
		return nil, fmt.Errorf("%w: step must be positive", ErrInvalidRange)
	}

	steps := math.Floor((to-from)/step + rangeTolerance)
	if steps+1 > float64(maxRows) {
		return nil, fmt.Errorf("%w: %.0f rows exceeds limit of %d", ErrInvalidRange, steps+1, maxRows)
	}

	// Inputs are from+i*step rather than accumulated, and never pass "to".
	inputs := lo.Times(int(steps)+1, func(i int) float64 {
		return min(from+float64(i)*step, to)
	})

	rows := make([]TableRow, 0, len(inputs))
	for _, v := range inputs {
		result, err := ConvertInput(domain.ConversionInput{Asset: asset, Value: v})
		if err != nil {
			return nil, fmt.Errorf("%w: input %g: %w", ErrInvalidRange, v, err)
		}
		rows = append(rows, TableRow{Input: v, Result: result})
	}
	return rows, nil
}

func isFinite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}
