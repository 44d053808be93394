package browser

import (
	"context"

	"github.com/tabqr/tabqr/internal/model"
)

// TabQuerier defines the interface for looking up the active browser tab.
type TabQuerier interface {
	// ActiveTab returns the most recently focused page tab, or an error
	// when no browser is reachable or no page tab exists.
	ActiveTab(ctx context.Context) (*model.Tab, error)
}
