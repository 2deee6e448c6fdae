package digest

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/stockdesk/dashboard/internal/repository/sheets"
	"github.com/stockdesk/dashboard/pkg/clients/backend"
)

const (
	dateLayout    = "2006-01-02"
	snapshotRange = "Digest!A:E"
)

// Service assembles the scheduled low-stock digest. It reads through the
// same API client the views use, authenticated with a dedicated service
// token, and optionally appends each snapshot to a spreadsheet.
type Service struct {
	api      backend.API
	exporter sheets.Exporter
	token    string
	logger   *zap.Logger
}

// NewService wires a digest service. exporter may be nil to skip the export.
func NewService(api backend.API, exporter sheets.Exporter, token string, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{api: api, exporter: exporter, token: token, logger: logger}
}

// Run produces one digest: current low-stock list plus the sales summary.
func (s *Service) Run(ctx context.Context, now time.Time) error {
	lowStock, err := s.api.LowStock(ctx, s.token)
	if err != nil {
		return fmt.Errorf("load low stock: %w", err)
	}

	summary, err := s.api.SalesSummary(ctx, s.token)
	if err != nil {
		return fmt.Errorf("load sales summary: %w", err)
	}

	names := make([]string, 0, len(lowStock))
	for _, item := range lowStock {
		names = append(names, fmt.Sprintf("%s (%d/%d)", item.Name, item.Stock, item.Threshold))
	}

	s.logger.Info("low stock digest",
		zap.Int("low_stock_count", len(lowStock)),
		zap.Strings("items", names),
		zap.Float64("today_revenue", summary.Today.Revenue),
		zap.Float64("stock_value", summary.StockValue))

	if s.exporter == nil {
		return nil
	}

	row := []interface{}{
		now.Format(dateLayout),
		len(lowStock),
		strings.Join(names, ", "),
		summary.Today.Revenue,
		summary.StockValue,
	}
	if err := s.exporter.AppendRow(ctx, snapshotRange, row); err != nil {
		return fmt.Errorf("export digest: %w", err)
	}

	return nil
}
