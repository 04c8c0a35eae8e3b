package postgres

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/stock-api/internal/domain/repository"
)

func TestWhereClause_SinFiltros(t *testing.T) {
	where, args := whereClause(repository.StockRecordFilter{Search: "   "})
	assert.Empty(t, where)
	assert.Empty(t, args)
}

func TestWhereClause_EstadoYBusqueda(t *testing.T) {
	where, args := whereClause(repository.StockRecordFilter{AlarmStatus: "Low Stock", Search: " bolt "})

	require.Len(t, args, 2)
	assert.Equal(t, "Low Stock", args[0])
	assert.Equal(t, "%bolt%", args[1])
	assert.True(t, strings.HasPrefix(where, " WHERE alarm_status = $1 AND ("))
	assert.Equal(t, len(searchColumns), strings.Count(where, "ILIKE $2"), "todas las columnas comparten el placeholder")
	assert.Contains(t, where, "CAST(po_number AS TEXT) ILIKE $2")
	assert.Contains(t, where, "CAST(inward_date AS TEXT) ILIKE $2")
	assert.NotContains(t, where, "CAST(id AS TEXT)")
}

func TestWhereClause_EscapaComodines(t *testing.T) {
	_, args := whereClause(repository.StockRecordFilter{Search: `50%_off\`})
	require.Len(t, args, 1)
	assert.Equal(t, `%50\%\_off\\%`, args[0])
}

func TestListQuery_Placeholders(t *testing.T) {
	selectSQL, selectArgs, countSQL, countArgs := listQuery(repository.StockRecordFilter{
		AlarmStatus: "Critical", Limit: 2, Offset: 4,
	})

	assert.Equal(t, "SELECT COUNT(*) FROM stock_items WHERE alarm_status = $1", countSQL)
	assert.Equal(t, []any{"Critical"}, countArgs)
	assert.True(t, strings.HasSuffix(selectSQL, "WHERE alarm_status = $1 ORDER BY id DESC LIMIT $2 OFFSET $3"))
	assert.Equal(t, []any{"Critical", 2, 4}, selectArgs)
}

func TestListAllQuery_SinLimit(t *testing.T) {
	sql, args := listAllQuery(repository.StockRecordFilter{Limit: 10})
	assert.True(t, strings.HasSuffix(sql, "FROM stock_items ORDER BY id DESC"))
	assert.Empty(t, args)
}
