package analytics

import (
	"sync"

	"github.com/stockdesk/dashboard/internal/domain/models"
	"github.com/stockdesk/dashboard/pkg/clients/backend"
)

// ForecastSelector serializes forecast selection. Each Select bumps a
// generation counter; a fetched result is applied only while its generation
// is still current, so rapid re-selection always settles on the product the
// user picked last, whatever order the responses arrive in.
type ForecastSelector struct {
	mu         sync.Mutex
	generation uint64
	view       models.ForecastView
}

// NewForecastSelector starts in the no-product-selected state.
func NewForecastSelector() *ForecastSelector {
	return &ForecastSelector{}
}

// Select records the product the user picked and returns the generation the
// eventual result must present to be applied. The prior chart stays on
// screen until that result lands.
func (f *ForecastSelector) Select(productID int) uint64 {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.generation++
	f.view.ProductID = productID
	return f.generation
}

// Apply installs a fetched result if its generation is still current. An
// unavailable result clears the chart and keeps the backend's notice
// verbatim. Returns false when the result was stale and discarded.
func (f *ForecastSelector) Apply(generation uint64, result *backend.ForecastResult) bool {
	f.mu.Lock()
	defer f.mu.Unlock()

	if generation != f.generation {
		return false
	}

	if result.Unavailable {
		f.view.Forecast = nil
		f.view.Notice = result.Notice
		return true
	}

	f.view.Forecast = result.Forecast
	f.view.Notice = ""
	return true
}

// View returns a copy of the current selection state.
func (f *ForecastSelector) View() models.ForecastView {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.view
}
