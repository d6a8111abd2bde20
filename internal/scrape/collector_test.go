package scrape

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeSource serves a fixed sequence of pages.
type fakeSource struct {
	pages       [][]Item[string]
	current     int
	loadErr     error
	entriesErr  error
	advanceErr  error
	loadCalls   int
	advanceAsks int
}

func (f *fakeSource) LoadList(context.Context) error {
	f.loadCalls++
	return f.loadErr
}

func (f *fakeSource) Entries(context.Context) ([]Item[string], error) {
	if f.entriesErr != nil {
		return nil, f.entriesErr
	}
	if f.current >= len(f.pages) {
		return nil, nil
	}
	return f.pages[f.current], nil
}

func (f *fakeSource) Advance(context.Context) (bool, error) {
	f.advanceAsks++
	if f.advanceErr != nil {
		return false, f.advanceErr
	}
	if f.current+1 >= len(f.pages) {
		return false, nil
	}
	f.current++
	return true, nil
}

func item(url string) Item[string] {
	return Item[string]{URL: url, Value: url}
}

func TestCollector_BudgetReached(t *testing.T) {
	src := &fakeSource{pages: [][]Item[string]{
		{item("https://www.linkedin.com/in/a"), item("https://www.linkedin.com/in/b")},
		{item("https://www.linkedin.com/in/c")},
		{item("https://www.linkedin.com/in/d")},
		{item("https://www.linkedin.com/in/e")},
		{item("https://www.linkedin.com/in/f")},
	}}

	result, err := NewCollector[string](2).Run(context.Background(), src)
	require.NoError(t, err)

	assert.Equal(t, StateBudgetReached, result.State, "budget must win over exhaustion")
	assert.Equal(t, 2, result.Pages)
	assert.Len(t, result.Entries, 3, "exactly the first two pages' entries")
}

func TestCollector_Exhausted(t *testing.T) {
	src := &fakeSource{pages: [][]Item[string]{
		{item("https://www.linkedin.com/in/a")},
		{item("https://www.linkedin.com/in/b")},
	}}

	result, err := NewCollector[string](10).Run(context.Background(), src)
	require.NoError(t, err)

	assert.Equal(t, StateExhausted, result.State)
	assert.Equal(t, 2, result.Pages)
	assert.Len(t, result.Entries, 2)
}

func TestCollector_DeduplicatesAcrossPages(t *testing.T) {
	// The same person appears on page one and, with tracking params, on
	// page two.
	src := &fakeSource{pages: [][]Item[string]{
		{item("https://www.linkedin.com/in/jane-doe")},
		{item("https://www.linkedin.com/in/jane-doe?trk=page2"), item("https://www.linkedin.com/in/other")},
	}}

	result, err := NewCollector[string](5).Run(context.Background(), src)
	require.NoError(t, err)
	assert.Len(t, result.Entries, 2)
}

func TestCollector_PreSeededSeen(t *testing.T) {
	// An entry already extracted from a sidebar must not be stored again
	// when the "show all" modal serves it with a different query string.
	src := &fakeSource{pages: [][]Item[string]{
		{item("https://www.linkedin.com/in/jane-doe?origin=modal")},
	}}

	c := NewCollector[string](1)
	c.Seen().Add("https://www.linkedin.com/in/jane-doe/")

	result, err := c.Run(context.Background(), src)
	require.NoError(t, err)
	assert.Empty(t, result.Entries)
}

func TestCollector_NoBudget(t *testing.T) {
	_, err := NewCollector[string](0).Run(context.Background(), &fakeSource{})
	assert.ErrorIs(t, err, ErrNoBudget)
}

func TestCollector_ListNeverAppears(t *testing.T) {
	src := &fakeSource{loadErr: errors.New("timeout waiting for list")}

	result, err := NewCollector[string](3).Run(context.Background(), src)
	require.NoError(t, err, "absent list is zero results, not an error")
	assert.Equal(t, StateExhausted, result.State)
	assert.Empty(t, result.Entries)
}

func TestCollector_EntriesErrorReturnsPartial(t *testing.T) {
	src := &fakeSource{entriesErr: errors.New("page went away")}

	result, err := NewCollector[string](3).Run(context.Background(), src)
	assert.Error(t, err)
	assert.Equal(t, StateExhausted, result.State)
}

func TestCollector_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	src := &fakeSource{pages: [][]Item[string]{
		{item("https://www.linkedin.com/in/a")},
		{item("https://www.linkedin.com/in/b")},
	}}

	result, err := NewCollector[string](5).Run(ctx, src)
	require.NoError(t, err)
	assert.Equal(t, StateExhausted, result.State)
	assert.Len(t, result.Entries, 1, "cancellation keeps what was gathered")
}
