package inventory_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/stock-api/internal/domain"
	"github.com/jhoicas/stock-api/internal/domain/entity"
	"github.com/jhoicas/stock-api/internal/domain/inventory"
)

func TestAlarmStatusForBucket(t *testing.T) {
	for bucket, want := range map[string]string{
		"normal":      entity.AlarmNormal,
		"low":         entity.AlarmLowStock,
		"critical":    entity.AlarmCritical,
		" Critical ":  entity.AlarmCritical,
		"":            "",
	} {
		got, err := inventory.AlarmStatusForBucket(bucket)
		require.NoError(t, err, bucket)
		assert.Equal(t, want, got, bucket)
	}
}

func TestAlarmStatusForBucket_Desconocido(t *testing.T) {
	_, err := inventory.AlarmStatusForBucket("low stock")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
