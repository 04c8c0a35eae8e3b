package inventory

import (
	"fmt"
	"strings"

	"github.com/jhoicas/stock-api/internal/domain"
	"github.com/jhoicas/stock-api/internal/domain/entity"
)

// Buckets de estado aceptados por el filtro del listado.
const (
	BucketNormal   = "normal"
	BucketLow      = "low"
	BucketCritical = "critical"
)

var bucketStatus = map[string]string{
	BucketNormal:   entity.AlarmNormal,
	BucketLow:      entity.AlarmLowStock,
	BucketCritical: entity.AlarmCritical,
}

// AlarmStatusForBucket traduce el bucket del query string al alarm_status exacto.
// Vacío significa "sin filtro" y devuelve "". Un valor desconocido es ErrInvalidInput.
func AlarmStatusForBucket(bucket string) (string, error) {
	b := strings.ToLower(strings.TrimSpace(bucket))
	if b == "" {
		return "", nil
	}
	status, ok := bucketStatus[b]
	if !ok {
		return "", fmt.Errorf("%w: status debe ser normal, low o critical", domain.ErrInvalidInput)
	}
	return status, nil
}
