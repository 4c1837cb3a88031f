package model

// DashboardSummary is the Gateway's precomputed aggregate for the
// dashboard header. Charts and breakdowns are consumed as-is.
type DashboardSummary struct {
	TotalSales        float64         `json:"total_sales"`
	TotalOrders       int             `json:"total_orders"`
	NetProfit         float64         `json:"net_profit"`
	TotalReturns      int             `json:"total_returns"`
	TopSales          []TopSale       `json:"top_sales"`
	LowStockProducts  []Product       `json:"low_stock_products"`
	SalesChartData    []SalesPoint    `json:"sales_chart_data"`
	CategoryChartData []CategoryCount `json:"category_chart_data"`
}

// TopSale is one row of the dashboard's best-sellers list.
type TopSale struct {
	ProductName string  `json:"product_name"`
	Quantity    int     `json:"quantity"`
	Amount      float64 `json:"amount"`
}

// SalesPoint is one day of the sales chart.
type SalesPoint struct {
	Date  string  `json:"date"`
	Total float64 `json:"total"`
}

// CategoryCount is one slice of the category breakdown.
type CategoryCount struct {
	Category string `json:"category"`
	Count    int    `json:"count"`
}
