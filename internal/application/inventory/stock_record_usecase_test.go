package inventory_test

import (
	"context"
	"encoding/json"
	"fmt"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/stock-api/internal/application/dto"
	"github.com/jhoicas/stock-api/internal/application/inventory"
	"github.com/jhoicas/stock-api/internal/domain"
	"github.com/jhoicas/stock-api/internal/infrastructure/memory"
)

func newUseCase() (*inventory.StockRecordUseCase, *memory.Store) {
	s := memory.New()
	return inventory.NewStockRecordUseCase(s, s), s
}

func req(code string, inward, outward int64) dto.CreateStockRecordRequest {
	return dto.CreateStockRecordRequest{
		ItemCode:   code,
		InwardQty:  decimal.NewFromInt(inward),
		OutwardQty: decimal.NewFromInt(outward),
	}
}

func TestCreate_CalculaDerivados(t *testing.T) {
	uc, _ := newUseCase()
	in := req("A1", 100, 60)
	in.InwardUnitPrice = decimal.RequireFromString("0.1")
	in.OutwardUnitPrice = decimal.RequireFromString("0.3")
	in.InwardDate = "2024-01-15"

	out, err := uc.Create(context.Background(), in)
	require.NoError(t, err)

	assert.NotZero(t, out.ID)
	assert.Equal(t, 10.0, out.InwardTotalPrice)
	assert.Equal(t, 18.0, out.OutwardTotalPrice)
	assert.Equal(t, 40.0, out.BalanceStockQty)
	assert.Equal(t, "Critical", out.AlarmStatus)
	require.NotNil(t, out.InwardDate)
	assert.Equal(t, "2024-01-15", *out.InwardDate)
}

func TestCreate_Duplicado(t *testing.T) {
	ctx := context.Background()
	uc, s := newUseCase()

	_, err := uc.Create(ctx, req("A1", 10, 0))
	require.NoError(t, err)
	_, err = uc.Create(ctx, req("A1", 20, 0))

	assert.ErrorIs(t, err, domain.ErrDuplicate)
	assert.Equal(t, 1, s.Len())
}

func TestCreate_SinItemCode(t *testing.T) {
	uc, s := newUseCase()

	_, err := uc.Create(context.Background(), req("  ", 10, 0))

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Equal(t, 0, s.Len())
}

func TestCreateBatch_TodoONada(t *testing.T) {
	ctx := context.Background()
	uc, s := newUseCase()
	_, err := uc.Create(ctx, req("EXISTE", 1, 0))
	require.NoError(t, err)

	_, err = uc.CreateBatch(ctx, []dto.CreateStockRecordRequest{req("B1", 1, 0), req("", 1, 0)})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Equal(t, 1, s.Len())

	// El choque ocurre dentro de la transacción, después de insertar B1.
	_, err = uc.CreateBatch(ctx, []dto.CreateStockRecordRequest{req("B1", 1, 0), req("EXISTE", 1, 0)})
	assert.ErrorIs(t, err, domain.ErrDuplicate)
	assert.Equal(t, 1, s.Len())

	n, err := uc.CreateBatch(ctx, []dto.CreateStockRecordRequest{req("B1", 1, 0), req("B2", 1, 0)})
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	assert.Equal(t, 3, s.Len())
}

func TestCreateBatch_Vacio(t *testing.T) {
	uc, _ := newUseCase()
	_, err := uc.CreateBatch(context.Background(), nil)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestGetByID_NoExiste(t *testing.T) {
	uc, _ := newUseCase()
	_, err := uc.GetByID(context.Background(), 42)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestUpdate_Parcial(t *testing.T) {
	ctx := context.Background()
	uc, _ := newUseCase()
	in := req("A1", 100, 10)
	in.ItemDescription = "Steel Bolt"
	in.VehicleNumber = "MH12AA1001"
	created, err := uc.Create(ctx, in)
	require.NoError(t, err)

	var upd dto.UpdateStockRecordRequest
	require.NoError(t, json.Unmarshal([]byte(`{"outward_qty":"25","vehicle_number":null}`), &upd))

	out, err := uc.Update(ctx, created.ID, upd)
	require.NoError(t, err)

	assert.Equal(t, 75.0, out.BalanceStockQty)
	assert.Equal(t, "Low Stock", out.AlarmStatus)
	require.NotNil(t, out.ItemDescription)
	assert.Equal(t, "Steel Bolt", *out.ItemDescription)
	assert.Nil(t, out.VehicleNumber)

	stored, err := uc.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, out, stored)
}

func TestUpdate_Errores(t *testing.T) {
	ctx := context.Background()
	uc, _ := newUseCase()
	a, err := uc.Create(ctx, req("A1", 10, 0))
	require.NoError(t, err)
	_, err = uc.Create(ctx, req("A2", 10, 0))
	require.NoError(t, err)

	_, err = uc.Update(ctx, 999, dto.UpdateStockRecordRequest{})
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = uc.Update(ctx, a.ID, dto.UpdateStockRecordRequest{ItemCode: dto.Some("A2")})
	assert.ErrorIs(t, err, domain.ErrDuplicate)

	_, err = uc.Update(ctx, a.ID, dto.UpdateStockRecordRequest{ItemCode: dto.Some("")})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.Update(ctx, a.ID, dto.UpdateStockRecordRequest{InwardDate: dto.Some("ayer")})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	got, err := uc.GetByID(ctx, a.ID)
	require.NoError(t, err)
	assert.Equal(t, "A1", got.ItemCode, "un update fallido no deja cambios")
}

func TestDelete(t *testing.T) {
	ctx := context.Background()
	uc, s := newUseCase()
	a, err := uc.Create(ctx, req("A1", 10, 0))
	require.NoError(t, err)

	_, err = uc.Delete(ctx, 999)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Equal(t, 1, s.Len())

	code, err := uc.Delete(ctx, a.ID)
	require.NoError(t, err)
	assert.Equal(t, "A1", code)
	assert.Equal(t, 0, s.Len())
}

func TestList_EstadoBajoPaginado(t *testing.T) {
	ctx := context.Background()
	uc, _ := newUseCase()
	for i := 0; i < 5; i++ {
		_, err := uc.Create(ctx, req(fmt.Sprintf("L%d", i), 100, 25))
		require.NoError(t, err)
	}
	_, err := uc.Create(ctx, req("N1", 100, 0))
	require.NoError(t, err)

	out, err := uc.List(ctx, dto.InventoryQuery{PageRequest: dto.PageRequest{Page: 1, Limit: 2}, Status: " LOW "})
	require.NoError(t, err)

	assert.Len(t, out.Items, 2)
	assert.Equal(t, 5, out.TotalItems)
	assert.Equal(t, 3, out.TotalPages)

	last, err := uc.List(ctx, dto.InventoryQuery{PageRequest: dto.PageRequest{Page: 3, Limit: 2}, Status: "low"})
	require.NoError(t, err)
	assert.Len(t, last.Items, 1)
}

func TestList_BusquedaCastATexto(t *testing.T) {
	ctx := context.Background()
	uc, _ := newUseCase()
	a := req("A1", 1, 0)
	a.ItemDescription = "Steel Bolt"
	b := req("A2", 1, 0)
	b.PONumber = "bolt-9001"
	c := req("A3", 1, 0)
	c.ItemDescription = "Washer"
	for _, in := range []dto.CreateStockRecordRequest{a, b, c} {
		_, err := uc.Create(ctx, in)
		require.NoError(t, err)
	}

	out, err := uc.List(ctx, dto.InventoryQuery{Search: "BOLT"})
	require.NoError(t, err)
	assert.Equal(t, 2, out.TotalItems)

	out, err = uc.List(ctx, dto.InventoryQuery{Search: "9001"})
	require.NoError(t, err)
	assert.Equal(t, 1, out.TotalItems)
}

func TestList_EstadoInvalido(t *testing.T) {
	uc, _ := newUseCase()
	_, err := uc.List(context.Background(), dto.InventoryQuery{Status: "urgent"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
