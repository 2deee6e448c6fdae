package inventory

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"sync"

	"go.uber.org/zap"

	"github.com/stockdesk/dashboard/internal/domain/models"
	"github.com/stockdesk/dashboard/pkg/clients/backend"
)

const (
	// recentLogLimit bounds the transaction table to the newest entries.
	recentLogLimit = 50

	timestampLayout = "Jan 02, 2006 15:04"
)

// Service is the controller behind the inventory page: the recent
// transaction log plus the purchase/sale dialog.
type Service struct {
	api    backend.API
	logger *zap.Logger
}

// NewService wires an inventory view controller.
func NewService(api backend.API, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{api: api, logger: logger}
}

// View fetches products and recent logs concurrently and resolves log
// entries to display names. Both fetches must succeed: rendering the table
// without the catalog would show placeholder names for every row.
func (s *Service) View(ctx context.Context, sess *models.Session) (*models.InventoryView, error) {
	var (
		products    []models.Product
		logs        []models.InventoryLog
		productsErr error
		logsErr     error
	)

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		products, productsErr = s.api.ListProducts(ctx, sess.Token)
	}()
	go func() {
		defer wg.Done()
		logs, logsErr = s.api.InventoryLogs(ctx, sess.Token, recentLogLimit)
	}()
	wg.Wait()

	if productsErr != nil {
		return nil, fmt.Errorf("load products: %w", productsErr)
	}
	if logsErr != nil {
		return nil, fmt.Errorf("load inventory logs: %w", logsErr)
	}

	names := make(map[int]string, len(products))
	options := make([]models.ProductOption, 0, len(products))
	for _, p := range products {
		names[p.ID] = p.Name
		options = append(options, models.ProductOption{
			ID:    p.ID,
			Label: fmt.Sprintf("%s (Stock: %d)", p.Name, p.Stock),
		})
	}

	rows := make([]models.TransactionRow, 0, len(logs))
	for _, entry := range logs {
		rows = append(rows, models.TransactionRow{
			ID:          entry.ID,
			Timestamp:   entry.Timestamp.Format(timestampLayout),
			ProductName: resolveName(names, entry.ProductID),
			ChangeType:  string(entry.ChangeType),
			Quantity:    entry.Quantity,
		})
	}

	return &models.InventoryView{
		Transactions: rows,
		Products:     options,
	}, nil
}

// Log validates the dialog inputs and posts exactly one transaction to the
// endpoint matching its kind. Sale quantity is not checked against stock
// here; the backend owns that rule and its rejection surfaces unchanged.
func (s *Service) Log(ctx context.Context, sess *models.Session, form models.TransactionForm) error {
	if !form.Kind.Valid() {
		return fmt.Errorf("unknown transaction kind %q", form.Kind)
	}

	productID, err := strconv.Atoi(strings.TrimSpace(form.ProductID))
	if err != nil || productID <= 0 {
		return errors.New("a product must be selected")
	}

	quantity, err := strconv.Atoi(strings.TrimSpace(form.Quantity))
	if err != nil || quantity <= 0 {
		return errors.New("quantity must be a positive integer")
	}

	payload := models.TransactionPayload{ProductID: productID, Quantity: quantity}

	if form.Kind == models.ChangePurchase {
		err = s.api.LogPurchase(ctx, sess.Token, payload)
	} else {
		err = s.api.LogSale(ctx, sess.Token, payload)
	}
	if err != nil {
		return err
	}

	s.logger.Info("transaction logged",
		zap.String("kind", string(form.Kind)),
		zap.Int("product_id", productID),
		zap.Int("quantity", quantity))

	return nil
}

// resolveName falls back to a placeholder when the product is absent from
// the loaded catalog, e.g. it was deleted after the log entry was written.
func resolveName(names map[int]string, productID int) string {
	if name, ok := names[productID]; ok {
		return name
	}
	return fmt.Sprintf("Product #%d", productID)
}
