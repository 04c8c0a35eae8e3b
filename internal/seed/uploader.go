package seed

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/jhoicas/stock-api/internal/application/dto"
	"github.com/jhoicas/stock-api/pkg/logger"
)

// Config parámetros de subida.
type Config struct {
	URL        string
	BatchSize  int
	Retries    int           // reintentos tras un error de transporte (intentos = 1 + Retries)
	RetryDelay time.Duration // espera fija entre reintentos
	Pause      time.Duration // espera entre lotes
	Timeout    time.Duration
}

// Result contadores de una subida.
type Result struct {
	Batches       int
	BatchesOK     int
	BatchesFailed int
	ItemsUploaded int
	ItemsFailed   int
	Retries       int
}

// Uploader envía lotes con resty. Solo reintenta errores de transporte; una respuesta
// distinta de 201 se registra y el lote se da por fallido.
type Uploader struct {
	client *resty.Client
	cfg    Config
	log    *logger.Logger
}

// NewUploader construye el cliente.
func NewUploader(cfg Config, log *logger.Logger) *Uploader {
	if cfg.BatchSize <= 0 {
		cfg.BatchSize = 100
	}
	if cfg.Retries < 0 {
		cfg.Retries = 0
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 30 * time.Second
	}
	if log == nil {
		log = logger.Nop()
	}
	client := resty.New().
		SetHeader("Content-Type", "application/json").
		SetTimeout(cfg.Timeout)
	return &Uploader{client: client, cfg: cfg, log: log}
}

// Upload parte items en lotes de BatchSize y los envía en orden.
// Solo devuelve error si se cancela ctx; los lotes fallidos quedan en Result.
func (u *Uploader) Upload(ctx context.Context, items []dto.CreateStockRecordRequest) (Result, error) {
	var res Result
	total := (len(items) + u.cfg.BatchSize - 1) / u.cfg.BatchSize
	for b := 0; b < total; b++ {
		start := b * u.cfg.BatchSize
		end := start + u.cfg.BatchSize
		if end > len(items) {
			end = len(items)
		}
		batch := items[start:end]
		res.Batches++

		u.log.Info().
			Int("batch", b+1).
			Int("of", total).
			Int("from", start+1).
			Int("to", end).
			Msg("enviando lote")

		ok, retries, err := u.sendBatch(ctx, batch)
		res.Retries += retries
		if err != nil {
			return res, err
		}
		if ok {
			res.BatchesOK++
			res.ItemsUploaded += len(batch)
		} else {
			res.BatchesFailed++
			res.ItemsFailed += len(batch)
		}

		if b < total-1 && u.cfg.Pause > 0 {
			if err := sleep(ctx, u.cfg.Pause); err != nil {
				return res, err
			}
		}
	}
	return res, nil
}

func (u *Uploader) sendBatch(ctx context.Context, batch []dto.CreateStockRecordRequest) (ok bool, retries int, err error) {
	for attempt := 0; ; attempt++ {
		resp, reqErr := u.client.R().
			SetContext(ctx).
			SetBody(batch).
			Post(u.cfg.URL)
		if reqErr == nil {
			if resp.StatusCode() == http.StatusCreated {
				u.log.Info().Int("items", len(batch)).Msg("lote subido")
				return true, attempt, nil
			}
			u.log.Warn().
				Int("status", resp.StatusCode()).
				Str("body", truncate(resp.String(), 300)).
				Msg("lote rechazado")
			return false, attempt, nil
		}
		if ctx.Err() != nil {
			return false, attempt, ctx.Err()
		}
		if attempt >= u.cfg.Retries {
			u.log.Error().Err(reqErr).Int("attempts", attempt+1).Msg("lote descartado tras agotar reintentos")
			return false, attempt, nil
		}
		u.log.Warn().Err(reqErr).
			Str("retry", fmt.Sprintf("%d/%d", attempt+1, u.cfg.Retries)).
			Dur("delay", u.cfg.RetryDelay).
			Msg("error de transporte, reintentando")
		if err := sleep(ctx, u.cfg.RetryDelay); err != nil {
			return false, attempt, err
		}
	}
}

func sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
