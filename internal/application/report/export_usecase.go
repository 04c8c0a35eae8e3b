// Package report exporta el inventario a XLSX y el informe de stock bajo a PDF.
package report

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jhoicas/stock-api/internal/domain/entity"
	domaininv "github.com/jhoicas/stock-api/internal/domain/inventory"
	"github.com/jhoicas/stock-api/internal/domain/repository"
)

// Export archivo generado listo para descargar.
type Export struct {
	Filename    string
	ContentType string
	Data        []byte
}

// Tipos MIME de las exportaciones.
const (
	ContentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	ContentTypePDF  = "application/pdf"
)

// ExportUseCase arma los informes con los mismos filtros que el listado, sin paginar.
type ExportUseCase struct {
	repo     repository.StockRecordRepository
	pdf      PDFGenerator
	workbook WorkbookGenerator
	now      func() time.Time
}

// NewExportUseCase construye el caso de uso inyectando los generadores.
func NewExportUseCase(repo repository.StockRecordRepository, pdf PDFGenerator, workbook WorkbookGenerator) *ExportUseCase {
	return &ExportUseCase{repo: repo, pdf: pdf, workbook: workbook, now: time.Now}
}

// InventoryWorkbook exporta todos los registros filtrados a XLSX (hoja de datos + hoja de resumen).
func (uc *ExportUseCase) InventoryWorkbook(ctx context.Context, statusBucket, search string) (*Export, error) {
	rep, err := uc.load(ctx, "Inventario", statusBucket, search, nil)
	if err != nil {
		return nil, err
	}
	data, err := uc.workbook.GenerateInventoryWorkbook(ctx, *rep)
	if err != nil {
		return nil, fmt.Errorf("export: generar xlsx: %w", err)
	}
	return &Export{
		Filename:    fmt.Sprintf("inventory-%s.xlsx", rep.GeneratedAt.Format("20060102-150405")),
		ContentType: ContentTypeXLSX,
		Data:        data,
	}, nil
}

// LowStockPDF exporta los registros cuya alarma recalculada es Critical o Low Stock.
func (uc *ExportUseCase) LowStockPDF(ctx context.Context, statusBucket, search string) (*Export, error) {
	onlyAlarms := func(r *entity.StockRecord) bool { return r.AlarmStatus != entity.AlarmNormal }
	rep, err := uc.load(ctx, "Informe de stock bajo", statusBucket, search, onlyAlarms)
	if err != nil {
		return nil, err
	}
	data, err := uc.pdf.GenerateStockReportPDF(ctx, *rep)
	if err != nil {
		return nil, fmt.Errorf("export: generar pdf: %w", err)
	}
	return &Export{
		Filename:    fmt.Sprintf("low-stock-%s.pdf", rep.GeneratedAt.Format("20060102-150405")),
		ContentType: ContentTypePDF,
		Data:        data,
	}, nil
}

func (uc *ExportUseCase) load(ctx context.Context, title, statusBucket, search string, keep func(*entity.StockRecord) bool) (*StockReport, error) {
	status, err := domaininv.AlarmStatusForBucket(statusBucket)
	if err != nil {
		return nil, err
	}
	records, err := uc.repo.ListAll(ctx, repository.StockRecordFilter{
		AlarmStatus: status,
		Search:      strings.TrimSpace(search),
	})
	if err != nil {
		return nil, fmt.Errorf("export: listar registros: %w", err)
	}
	out := records[:0]
	for _, r := range records {
		domaininv.ComputeDerived(r)
		if keep == nil || keep(r) {
			out = append(out, r)
		}
	}
	return &StockReport{
		Title:       title,
		GeneratedAt: uc.now(),
		Records:     out,
		Summary:     domaininv.Summarize(out),
	}, nil
}
