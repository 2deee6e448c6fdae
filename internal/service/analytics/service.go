package analytics

import (
	"context"
	"fmt"
	"sync"

	"go.uber.org/zap"

	"github.com/stockdesk/dashboard/internal/domain/models"
	"github.com/stockdesk/dashboard/pkg/clients/backend"
)

const (
	// trendDays is the revenue-trend window shown on the dashboard.
	trendDays = 30

	// dashboardLowStockLimit caps the dashboard's low-stock panel; the
	// analytics page lists everything.
	dashboardLowStockLimit = 5

	wellStockedMessage = "All products are well-stocked!"
)

// Service is the controller behind the dashboard and analytics pages. It
// fans out the aggregate fetches and holds the forecast selection state.
type Service struct {
	api      backend.API
	selector *ForecastSelector
	logger   *zap.Logger
}

// NewService wires an analytics view controller.
func NewService(api backend.API, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		api:      api,
		selector: NewForecastSelector(),
		logger:   logger,
	}
}

// Dashboard fetches the four landing-page aggregates in parallel. Panels
// resolve independently: a failed fetch zero-values its panel and adds a
// notice, the rest still render.
func (s *Service) Dashboard(ctx context.Context, sess *models.Session) *models.DashboardView {
	var (
		summary    *models.SalesSummary
		lowStock   []models.LowStockItem
		fastMoving []models.FastMovingItem
		trend      []models.RevenuePoint

		summaryErr, lowStockErr, fastMovingErr, trendErr error
	)

	var wg sync.WaitGroup
	wg.Add(4)
	go func() {
		defer wg.Done()
		summary, summaryErr = s.api.SalesSummary(ctx, sess.Token)
	}()
	go func() {
		defer wg.Done()
		lowStock, lowStockErr = s.api.LowStock(ctx, sess.Token)
	}()
	go func() {
		defer wg.Done()
		fastMoving, fastMovingErr = s.api.FastMoving(ctx, sess.Token)
	}()
	go func() {
		defer wg.Done()
		trend, trendErr = s.api.RevenueTrend(ctx, sess.Token, trendDays)
	}()
	wg.Wait()

	view := &models.DashboardView{
		Cards:        buildStatCards(summary),
		RevenueTrend: trend,
		FastMoving:   fastMoving,
		LowStock:     buildLowStockPanel(lowStock, dashboardLowStockLimit),
	}

	view.Notices = s.collectNotices(map[string]error{
		"sales summary": summaryErr,
		"low stock":     lowStockErr,
		"fast moving":   fastMovingErr,
		"revenue trend": trendErr,
	})

	return view
}

// AnalyticsPage fetches the analytics-page aggregates plus the product
// options that feed the forecast dropdown, with the same per-panel
// resolution as the dashboard.
func (s *Service) AnalyticsPage(ctx context.Context, sess *models.Session) *models.AnalyticsPageView {
	var (
		lowStock   []models.LowStockItem
		fastMoving []models.FastMovingItem
		products   []models.Product

		lowStockErr, fastMovingErr, productsErr error
	)

	var wg sync.WaitGroup
	wg.Add(3)
	go func() {
		defer wg.Done()
		lowStock, lowStockErr = s.api.LowStock(ctx, sess.Token)
	}()
	go func() {
		defer wg.Done()
		fastMoving, fastMovingErr = s.api.FastMoving(ctx, sess.Token)
	}()
	go func() {
		defer wg.Done()
		products, productsErr = s.api.ListProducts(ctx, sess.Token)
	}()
	wg.Wait()

	options := make([]models.ProductOption, 0, len(products))
	for _, p := range products {
		options = append(options, models.ProductOption{ID: p.ID, Label: p.Name})
	}

	view := &models.AnalyticsPageView{
		FastMoving: fastMoving,
		LowStock:   buildLowStockPanel(lowStock, 0),
		Products:   options,
	}

	view.Notices = s.collectNotices(map[string]error{
		"low stock":   lowStockErr,
		"fast moving": fastMovingErr,
		"products":    productsErr,
	})

	return view
}

// SelectForecast runs one turn of the forecast state machine: record the
// selection, fetch, and apply the result unless a newer selection has
// superseded it. Transport failures leave the prior state untouched.
func (s *Service) SelectForecast(ctx context.Context, sess *models.Session, productID int) (*models.ForecastView, error) {
	generation := s.selector.Select(productID)

	result, err := s.api.Forecast(ctx, sess.Token, productID)
	if err != nil {
		return nil, err
	}

	if !s.selector.Apply(generation, result) {
		s.logger.Debug("discarded stale forecast response", zap.Int("product_id", productID))
	}

	view := s.selector.View()
	return &view, nil
}

// ForecastState exposes the current selection without triggering a fetch.
func (s *Service) ForecastState() models.ForecastView {
	return s.selector.View()
}

func (s *Service) collectNotices(failures map[string]error) []string {
	var notices []string
	for panel, err := range failures {
		if err == nil {
			continue
		}
		s.logger.Warn("panel fetch failed", zap.String("panel", panel), zap.Error(err))
		notices = append(notices, fmt.Sprintf("Failed to load %s", panel))
	}
	return notices
}

// buildStatCards formats the headline figures. A nil summary (first run, or
// a failed fetch) falls back to zero values rather than blanking the page.
func buildStatCards(summary *models.SalesSummary) []models.StatCard {
	if summary == nil {
		summary = &models.SalesSummary{}
	}

	return []models.StatCard{
		{
			Label:   "Total Products",
			Value:   fmt.Sprintf("%d", summary.TotalProducts),
			Caption: "Active inventory items",
		},
		{
			Label:   "Today's Sales",
			Value:   fmt.Sprintf("$%.2f", summary.Today.Revenue),
			Caption: fmt.Sprintf("%d items sold", summary.Today.ItemsSold),
		},
		{
			Label:   "This Week",
			Value:   fmt.Sprintf("$%.2f", summary.Week.Revenue),
			Caption: fmt.Sprintf("%d items sold", summary.Week.ItemsSold),
		},
		{
			Label:   "Stock Value",
			Value:   fmt.Sprintf("$%.2f", summary.StockValue),
			Caption: "Total inventory value",
		},
	}
}

// buildLowStockPanel shapes the alert list. limit zero means show all.
func buildLowStockPanel(items []models.LowStockItem, limit int) models.LowStockPanel {
	if len(items) == 0 {
		return models.LowStockPanel{Message: wellStockedMessage}
	}
	if limit > 0 && len(items) > limit {
		items = items[:limit]
	}
	return models.LowStockPanel{Items: items}
}
