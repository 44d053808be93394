package browser

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/chromedp/cdproto/target"
	"github.com/chromedp/chromedp"

	"github.com/tabqr/tabqr/internal/model"
)

// queryTimeout bounds one DevTools exchange. The endpoint either answers
// quickly or the browser is gone; without a deadline a half-open websocket
// would park the window in its loading state forever.
const queryTimeout = 15 * time.Second

// pageTargetType is the CDP target type for a regular tab
const pageTargetType = "page"

// ErrNoActiveTab is returned when the browser reports no page-type target
var ErrNoActiveTab = errors.New("no active page tab found")

// Client queries a running Chromium-family browser over the DevTools
// protocol. The browser must be started with --remote-debugging-port.
type Client struct {
	devtoolsURL string
}

// NewClient creates a tab-query client for the given DevTools endpoint,
// e.g. http://127.0.0.1:9222.
func NewClient(devtoolsURL string) *Client {
	return &Client{devtoolsURL: devtoolsURL}
}

// ActiveTab connects to the browser, lists its targets, and returns the
// active tab. The DevTools endpoint reports the most recently focused page
// first, so the first page-type target with a URL is the active one.
func (c *Client) ActiveTab(ctx context.Context) (*model.Tab, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	allocCtx, allocCancel := chromedp.NewRemoteAllocator(ctx, c.devtoolsURL)
	defer allocCancel()

	browserCtx, browserCancel := chromedp.NewContext(allocCtx)
	defer browserCancel()

	infos, err := chromedp.Targets(browserCtx)
	if err != nil {
		return nil, fmt.Errorf("query browser targets at %s: %w", c.devtoolsURL, err)
	}

	log.Printf("DevTools endpoint %s reported %d targets", c.devtoolsURL, len(infos))

	tab := pickActiveTab(infos)
	if tab == nil {
		return nil, ErrNoActiveTab
	}
	return tab, nil
}

// pickActiveTab selects the first page-type target carrying a URL.
// Extensions, service workers, and devtools windows all appear in the
// target list and must be skipped.
func pickActiveTab(infos []*target.Info) *model.Tab {
	for _, ti := range infos {
		if ti == nil || ti.Type != pageTargetType || ti.URL == "" {
			continue
		}
		return &model.Tab{
			TargetID: string(ti.TargetID),
			URL:      ti.URL,
			Title:    ti.Title,
		}
	}
	return nil
}
