package seed_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/stock-api/internal/application/dto"
	"github.com/jhoicas/stock-api/internal/seed"
)

func testConfig(url string) seed.Config {
	return seed.Config{URL: url, BatchSize: 4, Retries: 2, RetryDelay: time.Millisecond, Timeout: 2 * time.Second}
}

func TestUpload_LotesCreados(t *testing.T) {
	var calls int32
	var sizes []int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		var batch []dto.CreateStockRecordRequest
		if err := json.NewDecoder(r.Body).Decode(&batch); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		sizes = append(sizes, len(batch))
		w.WriteHeader(http.StatusCreated)
	}))
	defer srv.Close()

	items := seed.NewGenerator(1).Items(10)
	res, err := seed.NewUploader(testConfig(srv.URL), nil).Upload(context.Background(), items)
	require.NoError(t, err)

	assert.Equal(t, int32(3), atomic.LoadInt32(&calls))
	assert.Equal(t, []int{4, 4, 2}, sizes)
	assert.Equal(t, seed.Result{Batches: 3, BatchesOK: 3, ItemsUploaded: 10}, res)
}

func TestUpload_RespuestaNo201NoSeReintenta(t *testing.T) {
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.WriteHeader(http.StatusConflict)
		_, _ = w.Write([]byte(`{"code":"DUPLICATE"}`))
	}))
	defer srv.Close()

	res, err := seed.NewUploader(testConfig(srv.URL), nil).Upload(context.Background(), seed.NewGenerator(1).Items(3))
	require.NoError(t, err)

	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
	assert.Equal(t, 1, res.BatchesFailed)
	assert.Equal(t, 3, res.ItemsFailed)
	assert.Zero(t, res.Retries)
}

func TestUpload_ErrorDeTransporteReintentaConTope(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close() // conexión rechazada

	res, err := seed.NewUploader(testConfig(url), nil).Upload(context.Background(), seed.NewGenerator(1).Items(5))
	require.NoError(t, err)

	assert.Equal(t, 2, res.BatchesFailed)
	assert.Equal(t, 5, res.ItemsFailed)
	assert.Equal(t, 4, res.Retries, "2 reintentos por lote")
}

func TestUpload_Cancelado(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	cfg := testConfig(srv.URL)
	_, err := seed.NewUploader(cfg, nil).Upload(ctx, seed.NewGenerator(1).Items(5))
	assert.ErrorIs(t, err, context.Canceled)
}
