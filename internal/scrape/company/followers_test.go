package company

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const followersFixture = `
<div role="dialog">
  <ul>
    <li>
      <a href="https://www.linkedin.com/in/jane-doe?miniProfile=x">
        <div>Jane Doe</div>
        <div>· 3rd degree connection</div>
        <div>Staff Engineer building distributed systems at Globex</div>
      </a>
      <button>Follow</button>
    </li>
    <li>
      <a href="/in/max-power/">
        <div>Max Power</div>
        <div>SRE · platform reliability and on-call tooling</div>
      </a>
    </li>
    <li>
      <div>People you may know</div>
    </li>
    <li>
      <a href="https://www.linkedin.com/in/anon/">
        <div>· 2nd degree connection</div>
      </a>
    </li>
  </ul>
</div>`

func TestExtractFollowers(t *testing.T) {
	doc := parseFixture(t, followersFixture)

	items := ExtractFollowers(doc)
	require.Len(t, items, 2)

	assert.Equal(t, "Jane Doe", items[0].Value.Name)
	assert.Equal(t, "Staff Engineer building distributed systems at Globex", items[0].Value.Headline)
	assert.Equal(t, "https://www.linkedin.com/in/jane-doe", items[0].Value.LinkedInURL)
	assert.Equal(t, items[0].Value.LinkedInURL, items[0].URL)

	assert.Equal(t, "Max Power", items[1].Value.Name)
	assert.Equal(t, "SRE · platform reliability and on-call tooling", items[1].Value.Headline)
	assert.Equal(t, "https://www.linkedin.com/in/max-power", items[1].Value.LinkedInURL)
}

func TestExtractFollowers_SkipsRowsWithoutNames(t *testing.T) {
	// Rows whose only texts are degree annotations carry nothing usable.
	doc := parseFixture(t, `
<div role="dialog">
  <ul>
    <li>
      <a href="https://www.linkedin.com/in/anon/">
        <div>2nd degree connection</div>
      </a>
    </li>
    <li><div>Upsell card</div></li>
  </ul>
</div>`)

	assert.Empty(t, ExtractFollowers(doc))
}

func TestExtractFollowers_LongTextIsNotAName(t *testing.T) {
	// A headline-length first line must not be mistaken for the name.
	doc := parseFixture(t, `
<div role="dialog">
  <ul>
    <li>
      <a href="https://www.linkedin.com/in/jo/">
        <div>Principal engineer focused on search infrastructure and ranking</div>
        <div>Jo Smith</div>
      </a>
    </li>
  </ul>
</div>`)

	items := ExtractFollowers(doc)
	require.Len(t, items, 1)
	assert.Equal(t, "Jo Smith", items[0].Value.Name)
	assert.Equal(t, "Principal engineer focused on search infrastructure and ranking", items[0].Value.Headline)
}
