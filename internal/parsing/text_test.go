package parsing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCleanText(t *testing.T) {
	assert.Equal(t, "Software Engineer · Acme", CleanText("  Software   Engineer ·· Acme "))
	assert.Empty(t, CleanText(""))
}

func TestCleanSingleString_ExactPair(t *testing.T) {
	assert.Equal(t, "Manager", CleanSingleString("Manager\nManager"))
}

func TestCleanSingleString_MultipleLines(t *testing.T) {
	got := CleanSingleString("Senior Engineer\nSenior Engineer\nAcme Corp")
	assert.Equal(t, "Senior Engineer Acme Corp", got)
}

func TestCleanSingleString_ShortInput(t *testing.T) {
	assert.Equal(t, "ab", CleanSingleString(" ab "))
}

func TestCollapseDuplicates_ExactLines(t *testing.T) {
	got := CollapseDuplicates("Built data pipelines\nBuilt data pipelines")
	assert.Equal(t, "Built data pipelines", got)
}

func TestCollapseDuplicates_CoveredLine(t *testing.T) {
	// The last line repeats the content of the bullet lines; it is the
	// flattened duplicate the page renders for screen readers.
	text := "- Designed the ingestion layer for customer events\n" +
		"- Migrated the reporting stack to a new warehouse\n" +
		"Designed the ingestion layer for customer events Migrated the reporting stack to a new warehouse"
	got := CollapseDuplicates(text)
	assert.NotContains(t, got, "events Migrated")
}

func TestCollapseDuplicates_Empty(t *testing.T) {
	assert.Empty(t, CollapseDuplicates(""))
}

func TestIsNearDuplicate_SimilarLine(t *testing.T) {
	existing := []string{"Responsible for building the core payment platform"}
	assert.True(t, IsNearDuplicate("Responsible for building the core payments platform", existing))
}

func TestIsNearDuplicate_TruncatedRendering(t *testing.T) {
	// The page renders a truncated preview and the full text through
	// different DOM paths; the longer line must be caught as a duplicate.
	existing := []string{"Led a team of five engineers shipping the mobile app"}
	line := "Led a team of five engineers shipping the mobile app across two release trains in 2023"
	assert.True(t, IsNearDuplicate(line, existing))
}

func TestIsNearDuplicate_DistinctContent(t *testing.T) {
	existing := []string{"Led a team of five engineers shipping the mobile app"}
	assert.False(t, IsNearDuplicate("Maintained the on-call rotation and incident tooling", existing))
}

func TestIsNearDuplicate_ShortLinesIgnored(t *testing.T) {
	assert.False(t, IsNearDuplicate("Java", []string{"Java"}))
	assert.False(t, IsNearDuplicate("", []string{"anything at all, long enough"}))
	assert.False(t, IsNearDuplicate("a perfectly long line of text", nil))
}
