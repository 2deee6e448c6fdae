package models

// LowStockItem is one entry of the low-stock alert list.
type LowStockItem struct {
	ID        int    `json:"id"`
	Name      string `json:"name"`
	Category  string `json:"category"`
	Stock     int    `json:"stock"`
	Threshold int    `json:"threshold"`
}

// FastMovingItem ranks a product by units sold over the trailing 30 days.
type FastMovingItem struct {
	ProductID int     `json:"product_id"`
	Name      string  `json:"name"`
	Category  string  `json:"category"`
	TotalSold int     `json:"total_sold"`
	AvgPerDay float64 `json:"avg_per_day"`
}

// PeriodSales aggregates revenue and item count over one reporting window.
type PeriodSales struct {
	Revenue   float64 `json:"revenue"`
	ItemsSold int     `json:"items_sold"`
}

// SalesSummary is the backend's headline aggregate. The month window exists
// in the payload even though the dashboard cards only surface today/week.
type SalesSummary struct {
	Today         PeriodSales `json:"today"`
	Week          PeriodSales `json:"week"`
	Month         PeriodSales `json:"month"`
	TotalProducts int         `json:"total_products"`
	StockValue    float64     `json:"stock_value"`
}

// RevenuePoint is one day of the revenue trend series.
type RevenuePoint struct {
	Date    string  `json:"date"`
	Revenue float64 `json:"revenue"`
}

// ForecastPoint is one predicted day of the demand forecast.
type ForecastPoint struct {
	Day      int     `json:"day"`
	Quantity float64 `json:"quantity"`
}

// Forecast is the 30-day demand prediction for a single product.
type Forecast struct {
	ProductID       int             `json:"product_id"`
	ForecastDays    int             `json:"forecast_days"`
	PredictedDemand []ForecastPoint `json:"predicted_demand"`
	TotalPredicted  float64         `json:"total_predicted"`
}
