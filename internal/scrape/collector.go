package scrape

import (
	"context"
	"errors"

	"github.com/jonathan/linkedin-scraper/internal/dedup"
)

// State is the paginated list collector's position in its lifecycle.
type State string

const (
	// StateAwaitingList means the list container has not been located yet.
	StateAwaitingList State = "awaiting_list"
	// StateLoadingPage means the collector is advancing to the next page.
	StateLoadingPage State = "loading_page"
	// StateExtracting means the collector is walking visible entries.
	StateExtracting State = "extracting"
	// StateExhausted is terminal: no advance control was found or clickable.
	StateExhausted State = "exhausted"
	// StateBudgetReached is terminal: the caller's page budget was used up.
	StateBudgetReached State = "budget_reached"
)

// ErrNoBudget is returned when a collector is run without a positive page
// budget. The budget is the safety valve that bounds the pagination loop;
// running without one is a caller bug, not a degraded mode.
var ErrNoBudget = errors.New("collector requires a positive page budget")

// Item is one entry extracted from a visible list page. URL is the entry's
// canonical identity for deduplication.
type Item[T any] struct {
	URL   string
	Value T
}

// Source abstracts the page being paginated: waiting for the list, reading
// the currently visible entries, and advancing to the next page.
type Source[T any] interface {
	// LoadList blocks until the list container is present. An error means
	// the list never appeared; the collector treats that as exhaustion with
	// zero entries, matching the absent-section contract.
	LoadList(ctx context.Context) error
	// Entries extracts all currently visible entries.
	Entries(ctx context.Context) ([]Item[T], error)
	// Advance moves to the next page (click "next"/"show more"). It returns
	// false when no advance control is found or clickable within its wait.
	Advance(ctx context.Context) (bool, error)
}

// Result carries the collected entries and the terminal state that ended
// the run. Both terminal states are successes; partial results on
// exhaustion are expected, not an error.
type Result[T any] struct {
	Entries []T
	State   State
	Pages   int
}

// Collector accumulates unique entries across pages up to a page budget.
// The seen-set lives for one collector, i.e. one scrape call.
type Collector[T any] struct {
	budget int
	seen   *dedup.Seen
}

// NewCollector creates a collector with the given page budget. The same
// collector may be fed pre-seen URLs via Seen before running, so entries
// already extracted from another page path are not stored twice.
func NewCollector[T any](budget int) *Collector[T] {
	return &Collector[T]{budget: budget, seen: dedup.NewSeen()}
}

// Seen returns the collector's dedup set.
func (c *Collector[T]) Seen() *dedup.Seen {
	return c.seen
}

// Run drives the state machine: AwaitingList -> LoadingPage -> Extracting
// -> (LoadingPage | Exhausted | BudgetReached). Context cancellation stops
// the loop and returns what was gathered so far.
func (c *Collector[T]) Run(ctx context.Context, src Source[T]) (Result[T], error) {
	result := Result[T]{State: StateAwaitingList}
	if c.budget <= 0 {
		return result, ErrNoBudget
	}

	result.State = StateLoadingPage
	if err := src.LoadList(ctx); err != nil {
		result.State = StateExhausted
		return result, nil
	}

	for {
		result.State = StateExtracting
		items, err := src.Entries(ctx)
		if err != nil {
			result.State = StateExhausted
			return result, err
		}
		for _, item := range items {
			if c.seen.Add(item.URL) {
				result.Entries = append(result.Entries, item.Value)
			}
		}
		result.Pages++

		if result.Pages >= c.budget {
			result.State = StateBudgetReached
			return result, nil
		}
		if ctx.Err() != nil {
			result.State = StateExhausted
			return result, nil
		}

		result.State = StateLoadingPage
		advanced, err := src.Advance(ctx)
		if err != nil || !advanced {
			result.State = StateExhausted
			return result, nil
		}
	}
}
