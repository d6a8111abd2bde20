// Package browser is the boundary to the browser-automation collaborator.
// Scrapers depend only on the Page interface; the chromedp implementation
// lives behind it so extraction logic stays testable without a browser.
package browser

import (
	"context"
	"fmt"
	"time"
)

// Page is the minimal capability surface the scrapers need from a rendered
// page. Selectors are CSS. Implementations must honor the deadline of the
// passed context so no single wait can stall a run indefinitely.
type Page interface {
	// Navigate loads url and waits for the DOM content to be ready.
	Navigate(ctx context.Context, url string) error
	// WaitVisible blocks until the first element matching sel is visible.
	WaitVisible(ctx context.Context, sel string) error
	// Text returns the visible inner text of the first element matching sel.
	Text(ctx context.Context, sel string) (string, error)
	// OuterHTML returns the outer HTML of the first element matching sel.
	OuterHTML(ctx context.Context, sel string) (string, error)
	// Attribute returns the named attribute of the first element matching
	// sel; ok is false when the attribute is absent.
	Attribute(ctx context.Context, sel, name string) (value string, ok bool, err error)
	// Click clicks the first visible element matching sel.
	Click(ctx context.Context, sel string) error
	// Evaluate runs a JavaScript expression in page context, decoding the
	// result into out when out is non-nil. Used for sibling traversal the
	// selector capability cannot express.
	Evaluate(ctx context.Context, expr string, out any) error
	// Location returns the page's current URL.
	Location(ctx context.Context) (string, error)
}

// NavigationError is an unrecoverable failure to load a page; it is
// surfaced to the caller since no meaningful partial aggregate exists.
type NavigationError struct {
	URL   string
	Cause error
}

func (e *NavigationError) Error() string {
	return fmt.Sprintf("navigation to %s failed: %v", e.URL, e.Cause)
}

func (e *NavigationError) Unwrap() error {
	return e.Cause
}

// Pause waits for d or until ctx is done, whichever comes first. The page
// has no render-complete signal for lazily loaded sections, so fixed pauses
// after scrolling are part of the scraping protocol.
func Pause(ctx context.Context, d time.Duration) {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
	case <-t.C:
	}
}

// ScrollToHalf scrolls to the middle of the page to trigger lazy rendering.
func ScrollToHalf(ctx context.Context, p Page) error {
	return p.Evaluate(ctx, "window.scrollTo(0, Math.ceil(document.body.scrollHeight/2))", nil)
}

// ScrollToBottom scrolls to the bottom of the page.
func ScrollToBottom(ctx context.Context, p Page) error {
	return p.Evaluate(ctx, "window.scrollTo(0, document.body.scrollHeight)", nil)
}
