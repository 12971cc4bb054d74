package api

import (
	"bytes"
	"html/template"
	"log/slog"
	"net/http"

	"github.com/samber/lo"

	"github.com/mtlprog/gold2btc/internal/converter"
	"github.com/mtlprog/gold2btc/internal/domain"
	"github.com/mtlprog/gold2btc/internal/static"
)

var indexTemplate = template.Must(template.New("index").Parse(static.IndexTemplate))

// PageHandler renders the HTML calculator form.
type PageHandler struct {
	tmpl *template.Template
}

// NewPageHandler creates a PageHandler using the embedded template.
func NewPageHandler() *PageHandler {
	return &PageHandler{tmpl: indexTemplate}
}

type pageData struct {
	Assets   []domain.AssetInfo
	Selected domain.AssetKind
	Unit     string
	Value    string
	Error    string
	Cards    []domain.PriceCard
}

// Index handles GET /. Bitcoin is selected when no asset is given.
// Empty or invalid input renders the form without results.
func (p *PageHandler) Index(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	selected := domain.BitcoinUnit
	if s := q.Get("asset"); s != "" {
		if k, err := domain.ParseAssetKind(s); err == nil {
			selected = k
		}
	}

	data := pageData{
		Assets: lo.Map(domain.AllAssetKinds(), func(k domain.AssetKind, _ int) domain.AssetInfo {
			return k.Info()
		}),
		Selected: selected,
		Unit:     selected.Unit(),
		Value:    q.Get("value"),
	}

	result, err := parseAndConvert(selected, data.Value)
	switch {
	case err == nil:
		data.Cards = domain.Cards(result, selected)
	case data.Value != "":
		data.Error = amountErrorMessage(err)
	}

	var buf bytes.Buffer
	if err := p.tmpl.Execute(&buf, data); err != nil {
		slog.Error("failed to render index page", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if _, err := buf.WriteTo(w); err != nil {
		slog.Warn("failed to write HTML response", "error", err)
	}
}

func parseAndConvert(asset domain.AssetKind, text string) (domain.ConversionResult, error) {
	value, err := domain.ParseAmount(text)
	if err != nil {
		return domain.ConversionResult{}, err
	}
	return converter.ConvertInput(domain.ConversionInput{Asset: asset, Value: value})
}
