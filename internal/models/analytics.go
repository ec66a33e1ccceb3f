package models

import "time"

// AnalyticsReport is the snapshot behind the dashboard's analytics tab.
// It is computed from the full working set and cached, not stored.
type AnalyticsReport struct {
	GeneratedAt time.Time        `json:"generated_at"`
	Inventory   InventoryMetrics `json:"inventory"`
	Sales       SalesMetrics     `json:"sales"`
	Orders      OrderMetrics     `json:"orders"`
	Suppliers   SupplierMetrics  `json:"suppliers"`
	TopProducts []ProductRevenue `json:"top_products"`
}

type InventoryMetrics struct {
	TotalProducts       int     `json:"total_products"`
	TotalStockUnits     int     `json:"total_stock_units"`
	LowStockCount       int     `json:"low_stock_count"`
	TotalInventoryValue float64 `json:"total_inventory_value"`
}

type SalesMetrics struct {
	TotalUnitsSold       int     `json:"total_units_sold"`
	TotalRevenue         float64 `json:"total_revenue"`
	AvgRevenuePerProduct float64 `json:"avg_revenue_per_product"`
}

type OrderMetrics struct {
	TotalOrders     int     `json:"total_orders"`
	PendingOrders   int     `json:"pending_orders"`
	DeliveredOrders int     `json:"delivered_orders"`
	OverdueOrders   int     `json:"overdue_orders"`
	TotalOrderValue float64 `json:"total_order_value"`
}

type SupplierMetrics struct {
	TotalSuppliers  int     `json:"total_suppliers"`
	ActiveSuppliers int     `json:"active_suppliers"`
	AverageRating   float64 `json:"average_rating"`
}

type ProductRevenue struct {
	Name    string  `json:"name"`
	Revenue float64 `json:"revenue"`
}
