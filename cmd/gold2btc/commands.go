package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"text/tabwriter"

	"github.com/urfave/cli/v2"

	"github.com/mtlprog/gold2btc/internal/api"
	"github.com/mtlprog/gold2btc/internal/config"
	"github.com/mtlprog/gold2btc/internal/converter"
	"github.com/mtlprog/gold2btc/internal/domain"
	"github.com/mtlprog/gold2btc/internal/export"
)

func assetFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "asset",
		Aliases: []string{"a"},
		Value:   string(domain.BitcoinUnit),
		Usage:   "asset whose price is given: btc, gold or silver",
	}
}

func serveCommand() *cli.Command {
	return &cli.Command{
		Name:  "serve",
		Usage: "run the HTTP server",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "port", Usage: "listen port (overrides HTTP_PORT)"},
		},
		Action: func(c *cli.Context) error {
			cfg := config.Load()
			if p := c.String("port"); p != "" {
				cfg.HTTPPort = p
			}
			return serve(c.Context, cfg)
		},
	}
}

func serve(ctx context.Context, cfg config.Config) error {
	srv := api.NewServer(cfg)

	errCh := make(chan error, 1)
	go func() {
		slog.Info("HTTP server listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("HTTP server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	slog.Info("Shutting down...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("HTTP server shutdown: %w", err)
	}
	slog.Info("Shutdown complete")
	return nil
}

func convertCommand() *cli.Command {
	return &cli.Command{
		Name:      "convert",
		Usage:     "derive the other two prices from one asset price",
		ArgsUsage: "<price>",
		Flags:     []cli.Flag{assetFlag()},
		Action: func(c *cli.Context) error {
			asset, err := domain.ParseAssetKind(c.String("asset"))
			if err != nil {
				return cli.Exit(fmt.Sprintf("%v: %q", err, c.String("asset")), 2)
			}
			value, err := domain.ParseAmount(c.Args().First())
			if err != nil {
				return cli.Exit(fmt.Sprintf("invalid price: %v", err), 2)
			}
			result, err := converter.ConvertInput(domain.ConversionInput{Asset: asset, Value: value})
			if err != nil {
				return cli.Exit(fmt.Sprintf("cannot convert %g: %v", value, err), 2)
			}
			return printCards(c.App.Writer, domain.Cards(result, asset))
		},
	}
}

func tableCommand() *cli.Command {
	return &cli.Command{
		Name:  "table",
		Usage: "convert a range of prices, optionally into an .xlsx workbook",
		Flags: []cli.Flag{
			assetFlag(),
			&cli.StringFlag{Name: "from", Value: "0", Usage: "first input price"},
			&cli.StringFlag{Name: "to", Required: true, Usage: "last input price"},
			&cli.StringFlag{Name: "step", Required: true, Usage: "increment between rows"},
			&cli.StringFlag{Name: "out", Aliases: []string{"o"}, Usage: "write an .xlsx workbook to this path"},
		},
		Action: func(c *cli.Context) error {
			asset, err := domain.ParseAssetKind(c.String("asset"))
			if err != nil {
				return cli.Exit(fmt.Sprintf("%v: %q", err, c.String("asset")), 2)
			}

			var bounds [3]float64
			for i, name := range []string{"from", "to", "step"} {
				v, err := domain.ParseAmount(c.String(name))
				if err != nil {
					return cli.Exit(fmt.Sprintf("invalid --%s: %v", name, err), 2)
				}
				bounds[i] = v
			}

			rows, err := converter.Table(asset, bounds[0], bounds[1], bounds[2], config.Load().MaxTableRows)
			if err != nil {
				return cli.Exit(err.Error(), 2)
			}

			out := c.String("out")
			if out == "" {
				return printTable(c.App.Writer, asset, rows)
			}
			return writeWorkbook(out, asset, rows)
		},
	}
}

func writeWorkbook(path string, asset domain.AssetKind, rows []converter.TableRow) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	if err := export.WriteTable(f, asset, rows); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("closing %s: %w", path, err)
	}
	slog.Info("workbook written", "path", path, "rows", len(rows))
	return nil
}

func printCards(w io.Writer, cards []domain.PriceCard) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)
	for _, card := range cards {
		marker := ""
		if card.IsInput {
			marker = "(input)"
		}
		fmt.Fprintf(tw, "%s\t$%s\t%s\t%s\t\n", card.Label, card.Price, card.Caption, marker)
	}
	return tw.Flush()
}

func printTable(w io.Writer, asset domain.AssetKind, rows []converter.TableRow) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintf(tw, "%s\tGold\tSilver\tBitcoin\t\n", asset.Label())
	for _, r := range rows {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t\n",
			domain.FormatUSD(r.Input),
			domain.FormatUSD(r.Result.GoldPrice),
			domain.FormatUSD(r.Result.SilverPrice),
			domain.FormatUSD(r.Result.BitcoinPrice),
		)
	}
	return tw.Flush()
}
