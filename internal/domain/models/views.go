package models

// ProductRow is one render-ready line of the catalog table.
type ProductRow struct {
	ID        int    `json:"id"`
	Name      string `json:"name"`
	Category  string `json:"category"`
	Price     string `json:"price"`
	Stock     int    `json:"stock"`
	Threshold int    `json:"threshold"`
	LowStock  bool   `json:"low_stock"`
}

// CatalogView is everything the products page needs in one payload.
type CatalogView struct {
	Rows    []ProductRow `json:"rows"`
	CanEdit bool         `json:"can_edit"`
}

// TransactionRow is one formatted line of the recent-transactions table.
type TransactionRow struct {
	ID          int    `json:"id"`
	Timestamp   string `json:"timestamp"`
	ProductName string `json:"product_name"`
	ChangeType  string `json:"change_type"`
	Quantity    int    `json:"quantity"`
}

// ProductOption labels a product for the transaction dialog dropdown.
type ProductOption struct {
	ID    int    `json:"id"`
	Label string `json:"label"`
}

// InventoryView bundles the transaction log with the dialog's product options.
type InventoryView struct {
	Transactions []TransactionRow `json:"transactions"`
	Products     []ProductOption  `json:"products"`
}

// StatCard is one headline figure on the dashboard.
type StatCard struct {
	Label   string `json:"label"`
	Value   string `json:"value"`
	Caption string `json:"caption"`
}

// LowStockPanel lists below-threshold products with the empty-state message
// already resolved.
type LowStockPanel struct {
	Items   []LowStockItem `json:"items"`
	Message string         `json:"message,omitempty"`
}

// DashboardView is the combined payload of the landing page. Panels resolve
// independently; Notices collects the panels that failed to load.
type DashboardView struct {
	Cards        []StatCard       `json:"cards"`
	RevenueTrend []RevenuePoint   `json:"revenue_trend"`
	LowStock     LowStockPanel    `json:"low_stock"`
	FastMoving   []FastMovingItem `json:"fast_moving"`
	Notices      []string         `json:"notices,omitempty"`
}

// AnalyticsPageView backs the dedicated analytics page.
type AnalyticsPageView struct {
	FastMoving []FastMovingItem `json:"fast_moving"`
	LowStock   LowStockPanel    `json:"low_stock"`
	Products   []ProductOption  `json:"products"`
	Notices    []string         `json:"notices,omitempty"`
}

// ForecastView is the current output of the forecast selection state machine.
// Exactly one of Forecast or Notice is meaningful when a product is selected.
type ForecastView struct {
	ProductID int       `json:"product_id,omitempty"`
	Forecast  *Forecast `json:"forecast,omitempty"`
	Notice    string    `json:"notice,omitempty"`
}
