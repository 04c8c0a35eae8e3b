// Package analytics contiene los casos de uso de métricas del dashboard.
package analytics

import (
	"context"
	"fmt"

	"github.com/jhoicas/stock-api/internal/application/dto"
	domaininv "github.com/jhoicas/stock-api/internal/domain/inventory"
	"github.com/jhoicas/stock-api/internal/domain/repository"
)

// DashboardUseCase genera los contadores del dashboard recorriendo todos los registros (sin paginar).
type DashboardUseCase struct {
	repo repository.StockRecordRepository
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(repo repository.StockRecordRepository) *DashboardUseCase {
	return &DashboardUseCase{repo: repo}
}

// GetMetrics cuenta por alarm_status persistido y suma inward_total_price.
// Ver domaininv.Summarize para la clasificación laxa.
func (uc *DashboardUseCase) GetMetrics(ctx context.Context) (*dto.DashboardMetricsResponse, error) {
	records, err := uc.repo.ListAll(ctx, repository.StockRecordFilter{})
	if err != nil {
		return nil, fmt.Errorf("dashboard: listar registros: %w", err)
	}
	t := domaininv.Summarize(records)
	return ToMetricsResponse(t), nil
}

// ToMetricsResponse convierte el resumen de dominio a DTO.
func ToMetricsResponse(t domaininv.Tally) *dto.DashboardMetricsResponse {
	return &dto.DashboardMetricsResponse{
		TotalItems:    t.TotalItems,
		NormalStock:   t.NormalStock,
		LowStock:      t.LowStock,
		CriticalStock: t.CriticalStock,
		TotalValue:    t.TotalValue.InexactFloat64(),
	}
}
