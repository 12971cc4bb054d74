package api

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/samber/lo"

	"github.com/mtlprog/gold2btc/internal/converter"
	"github.com/mtlprog/gold2btc/internal/domain"
	"github.com/mtlprog/gold2btc/internal/export"
)

// Handler provides HTTP endpoints for the conversion API.
type Handler struct {
	maxTableRows int
}

// NewHandler creates a new API handler.
func NewHandler(maxTableRows int) *Handler {
	return &Handler{maxTableRows: maxTableRows}
}

// ConvertResponse is the body of GET /api/v1/convert.
type ConvertResponse struct {
	Asset     domain.AssetKind        `json:"asset"`
	Input     float64                 `json:"input"`
	Result    domain.ConversionResult `json:"result"`
	Formatted domain.FormattedResult  `json:"formatted"`
}

// Convert handles GET /api/v1/convert.
func (h *Handler) Convert(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	asset, err := domain.ParseAssetKind(q.Get("asset"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "asset must be one of btc, gold, silver")
		return
	}
	value, err := domain.ParseAmount(q.Get("value"))
	if err != nil {
		writeError(w, http.StatusBadRequest, amountErrorMessage(err))
		return
	}

	result, err := converter.ConvertInput(domain.ConversionInput{Asset: asset, Value: value})
	if err != nil {
		writeError(w, http.StatusBadRequest, amountErrorMessage(err))
		return
	}
	writeJSON(w, http.StatusOK, ConvertResponse{
		Asset:     asset,
		Input:     value,
		Result:    result,
		Formatted: result.Formatted(),
	})
}

// ListAssets handles GET /api/v1/assets.
func (h *Handler) ListAssets(w http.ResponseWriter, r *http.Request) {
	infos := lo.Map(domain.AllAssetKinds(), func(k domain.AssetKind, _ int) domain.AssetInfo {
		return k.Info()
	})
	writeJSON(w, http.StatusOK, infos)
}

// ExportTable handles GET /api/v1/table.xlsx.
func (h *Handler) ExportTable(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	asset, err := domain.ParseAssetKind(q.Get("asset"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "asset must be one of btc, gold, silver")
		return
	}

	bounds := make(map[string]float64, 3)
	for _, key := range []string{"from", "to", "step"} {
		v, err := domain.ParseAmount(q.Get(key))
		if err != nil {
			writeError(w, http.StatusBadRequest, key+": "+amountErrorMessage(err))
			return
		}
		bounds[key] = v
	}

	rows, err := converter.Table(asset, bounds["from"], bounds["to"], bounds["step"], h.maxTableRows)
	if err != nil {
		if errors.Is(err, converter.ErrInvalidRange) {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		slog.Error("failed to build conversion table", "asset", asset, "error", err)
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}

	var buf bytes.Buffer
	if err := export.WriteTable(&buf, asset, rows); err != nil {
		slog.Error("failed to write workbook", "asset", asset, "rows", len(rows), "error", err)
		writeError(w, http.StatusInternalServerError, "failed to build workbook")
		return
	}

	w.Header().Set("Content-Type", export.ContentType)
	w.Header().Set("Content-Disposition", `attachment; filename="`+string(asset)+`-table.xlsx"`)
	w.Header().Set("Content-Length", strconv.Itoa(buf.Len()))
	w.WriteHeader(http.StatusOK)
	if _, err := buf.WriteTo(w); err != nil {
		slog.Warn("failed to write workbook response", "error", err)
	}
}

func amountErrorMessage(err error) string {
	switch {
	case errors.Is(err, domain.ErrEmptyAmount):
		return "value is required"
	case errors.Is(err, domain.ErrNegativeAmount):
		return "value must not be negative"
	case errors.Is(err, domain.ErrPriceOverflow):
		return "value is too large to convert"
	default:
		return "value must be a number"
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	data, err := json.Marshal(v)
	if err != nil {
		slog.Error("failed to marshal JSON response", "error", err)
		http.Error(w, `{"error":"internal error"}`, http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := w.Write(data); err != nil {
		slog.Warn("failed to write HTTP response body", "error", err)
		return
	}
	_, _ = w.Write([]byte("\n"))
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
