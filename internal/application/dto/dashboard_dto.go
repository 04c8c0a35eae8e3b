package dto

// DashboardMetricsResponse respuesta de GET /api/dashboard-metrics.
type DashboardMetricsResponse struct {
	TotalItems    int     `json:"total_items"`
	NormalStock   int     `json:"normal_stock"`
	LowStock      int     `json:"low_stock"`
	CriticalStock int     `json:"critical_stock"`
	TotalValue    float64 `json:"total_value"` // suma de inward_total_price redondeada a 2 decimales
}
