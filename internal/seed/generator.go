// Package seed genera registros de demostración y los sube en lotes a POST /api/add.
package seed

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/stock-api/internal/application/dto"
	"github.com/jhoicas/stock-api/internal/domain/entity"
)

// Generator produce registros deterministas para una semilla dada.
type Generator struct {
	rnd  *rand.Rand
	base time.Time
}

// NewGenerator crea un generador. seed 0 usa la hora actual.
func NewGenerator(seed int64) *Generator {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Generator{
		rnd:  rand.New(rand.NewSource(seed)),
		base: time.Date(2025, 11, 1, 0, 0, 0, 0, time.UTC),
	}
}

// Item genera el registro número index (1-indexado).
//
// Entrada entre base y base+15 días, salida 1..6 días después. inward_qty 20..500,
// outward_qty 0..max(inward-1,1), precio de entrada 25..90 y de salida con margen 5..25 %.
func (g *Generator) Item(index int) dto.CreateStockRecordRequest {
	inward := g.base.AddDate(0, 0, g.rnd.Intn(16))
	outward := inward.AddDate(0, 0, 1+g.rnd.Intn(6))

	inwardQty := 20 + g.rnd.Intn(481)
	maxOut := inwardQty - 1
	if maxOut < 1 {
		maxOut = 1
	}
	outwardQty := g.rnd.Intn(maxOut + 1)

	inPrice := decimal.NewFromFloat(25 + g.rnd.Float64()*65).Round(2)
	margin := decimal.NewFromFloat(1.05 + g.rnd.Float64()*0.20)
	outPrice := inPrice.Mul(margin).Round(2)

	return dto.CreateStockRecordRequest{
		ItemCode:         fmt.Sprintf("ITM%05d", index),
		ItemDescription:  fmt.Sprintf("Widget %c%d", 'A'+rune(index%26), index),
		InwardInvoiceNo:  fmt.Sprintf("INV%d", 1000+index),
		InwardDate:       inward.Format(entity.DateLayout),
		UOM:              "Nos",
		InwardQty:        decimal.NewFromInt(int64(inwardQty)),
		InwardUnitPrice:  inPrice,
		OutwardQty:       decimal.NewFromInt(int64(outwardQty)),
		OutwardUnitPrice: outPrice,
		OutwardInvoiceNo: fmt.Sprintf("OUT%d", 2000+index),
		OutwardDate:      outward.Format(entity.DateLayout),
		EwayBillNumber:   fmt.Sprintf("EWB%d", 7000+index),
		VehicleNumber:    fmt.Sprintf("MH12AA%d", 1000+index),
		PONumber:         fmt.Sprintf("PO%d", 9000+index),
	}
}

// Items genera los registros 1..total.
func (g *Generator) Items(total int) []dto.CreateStockRecordRequest {
	out := make([]dto.CreateStockRecordRequest, 0, total)
	for i := 1; i <= total; i++ {
		out = append(out, g.Item(i))
	}
	return out
}
