package dto_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/stock-api/internal/application/dto"
)

func TestUpdateStockRecordRequest_Presencia(t *testing.T) {
	var in dto.UpdateStockRecordRequest
	body := `{"item_description":"Steel Bolt","uom":null,"outward_qty":"12.5","inward_qty":7}`
	require.NoError(t, json.Unmarshal([]byte(body), &in))

	assert.True(t, in.ItemDescription.Set)
	assert.False(t, in.ItemDescription.Null)
	assert.Equal(t, "Steel Bolt", in.ItemDescription.Value)

	assert.True(t, in.UOM.Set)
	assert.True(t, in.UOM.Null, "null explícito se distingue de ausente")

	assert.False(t, in.ItemCode.Set, "campo ausente no se marca")
	assert.False(t, in.PONumber.Set)

	assert.Equal(t, "12.5", in.OutwardQty.Value.String())
	assert.Equal(t, "7", in.InwardQty.Value.String())
}

func TestOptional_TipoIncorrecto(t *testing.T) {
	var in dto.UpdateStockRecordRequest
	err := json.Unmarshal([]byte(`{"inward_qty":"abc"}`), &in)
	assert.Error(t, err)
}

func TestOptional_Marshal(t *testing.T) {
	b, err := json.Marshal(struct {
		A dto.Optional[string] `json:"a"`
		B dto.Optional[string] `json:"b"`
	}{A: dto.Some("x")})
	require.NoError(t, err)
	assert.JSONEq(t, `{"a":"x","b":null}`, string(b))
}

func TestPageRequest_DefaultPageYOffset(t *testing.T) {
	p := dto.PageRequest{Page: 0, Limit: -3}
	p.DefaultPage(500)
	assert.Equal(t, 1, p.Page)
	assert.Equal(t, 50, p.Limit)

	p = dto.PageRequest{Page: 3, Limit: 10000}
	p.DefaultPage(500)
	assert.Equal(t, 500, p.Limit)
	assert.Equal(t, 1000, p.Offset())
}

func TestTotalPages_Redondeo(t *testing.T) {
	assert.Equal(t, 3, dto.TotalPages(5, 2))
	assert.Equal(t, 1, dto.TotalPages(2, 2))
	assert.Equal(t, 0, dto.TotalPages(0, 50))
}

func TestStockRecordRequests_NumeroEnCampoDeTexto(t *testing.T) {
	var create dto.CreateStockRecordRequest
	require.NoError(t, json.Unmarshal([]byte(`{"item_code":1001,"po_number":12345,"inward_qty":3,"uom":"Nos"}`), &create))
	assert.Equal(t, "1001", create.ItemCode)
	assert.Equal(t, "12345", create.PONumber)
	assert.Equal(t, "Nos", create.UOM)
	assert.Equal(t, "3", create.InwardQty.String(), "las cantidades siguen siendo numéricas")

	var update dto.UpdateStockRecordRequest
	require.NoError(t, json.Unmarshal([]byte(`{"vehicle_number":-7.5,"po_number":null}`), &update))
	assert.Equal(t, dto.Some("-7.5"), update.VehicleNumber)
	assert.True(t, update.PONumber.Set)
	assert.True(t, update.PONumber.Null)

	var lote []dto.CreateStockRecordRequest
	require.NoError(t, json.Unmarshal([]byte(`[{"item_code":"A","eway_bill_number":7001}]`), &lote))
	require.Len(t, lote, 1)
	assert.Equal(t, "7001", lote[0].EwayBillNumber)

	assert.Error(t, json.Unmarshal([]byte(`{"item_code":true}`), &create), "los booleanos no se convierten")
}
