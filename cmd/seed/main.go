package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/jhoicas/stock-api/internal/seed"
	"github.com/jhoicas/stock-api/pkg/logger"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		cfg      seed.Config
		total    int
		seedVal  int64
		logLevel string
	)
	cmd := &cobra.Command{
		Use:          "seed",
		Short:        "Genera registros de demostración y los sube en lotes a /api/add",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if total <= 0 {
				return fmt.Errorf("--total debe ser mayor que 0")
			}
			log := logger.New(logger.Config{Env: "development", Level: logLevel, Output: cmd.ErrOrStderr()})

			items := seed.NewGenerator(seedVal).Items(total)
			batches := (total + cfg.BatchSize - 1) / max(cfg.BatchSize, 1)
			log.Info().
				Int("items", total).
				Int("batches", batches).
				Str("url", cfg.URL).
				Msg("iniciando carga de inventario")

			start := time.Now()
			res, err := seed.NewUploader(cfg, log).Upload(cmd.Context(), items)
			printSummary(cmd, res, time.Since(start))
			if err != nil {
				log.Error().Err(err).Msg("carga interrumpida")
				return err
			}
			return nil
		},
	}

	f := cmd.Flags()
	f.StringVar(&cfg.URL, "url", "http://127.0.0.1:5000/api/add", "endpoint de alta")
	f.IntVar(&total, "total", 2000, "número de registros a generar")
	f.IntVar(&cfg.BatchSize, "batch-size", 100, "registros por petición")
	f.IntVar(&cfg.Retries, "retries", 3, "reintentos por lote ante errores de transporte")
	f.DurationVar(&cfg.RetryDelay, "retry-delay", 3*time.Second, "espera fija entre reintentos")
	f.DurationVar(&cfg.Pause, "pause", time.Second, "espera entre lotes")
	f.DurationVar(&cfg.Timeout, "timeout", 30*time.Second, "timeout por petición")
	f.Int64Var(&seedVal, "seed", 0, "semilla aleatoria (0 = según la hora)")
	f.StringVar(&logLevel, "log-level", "info", "trace, debug, info, warn, error")
	return cmd
}

func printSummary(cmd *cobra.Command, res seed.Result, elapsed time.Duration) {
	t := table.NewWriter()
	t.SetOutputMirror(cmd.OutOrStdout())
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"Lotes", "OK", "Fallidos", "Registros subidos", "Registros fallidos", "Reintentos", "Duración"})
	t.AppendRow(table.Row{
		res.Batches, res.BatchesOK, res.BatchesFailed,
		res.ItemsUploaded, res.ItemsFailed, res.Retries,
		elapsed.Round(time.Millisecond).String(),
	})
	t.Render()
}
