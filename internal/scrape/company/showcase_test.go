package company

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const affiliatedFixture = `
<main>
  <section>
    <div>
      <h3>Affiliated pages</h3>
      <ul>
        <li>
          <a href="https://www.linkedin.com/showcase/globex-cloud/?trk=aff"><img/></a>
          <a href="https://www.linkedin.com/showcase/globex-cloud/?trk=aff">Globex Cloud
Software Development
Showcase page
2,340 followers</a>
        </li>
        <li>
          <a href="https://www.linkedin.com/company/globex-labs/"><img/></a>
          <a href="https://www.linkedin.com/company/globex-labs/">Globex Labs
Research Services
45,001 followers</a>
        </li>
        <li>
          <a href="https://www.linkedin.com/company/empty/"><img/></a>
          <a href="https://www.linkedin.com/company/empty/"></a>
        </li>
      </ul>
    </div>
  </section>
</main>`

func TestExtractAffiliatedPages(t *testing.T) {
	doc := parseFixture(t, affiliatedFixture)

	showcase, affiliated := ExtractAffiliatedPages(doc)
	require.Len(t, showcase, 1)
	require.Len(t, affiliated, 1)

	assert.Equal(t, "Globex Cloud", showcase[0].Name)
	assert.Equal(t, "https://www.linkedin.com/showcase/globex-cloud", showcase[0].LinkedInURL)
	assert.Equal(t, "2,340 followers", showcase[0].Followers)

	assert.Equal(t, "Globex Labs", affiliated[0].Name)
	assert.Equal(t, "https://www.linkedin.com/company/globex-labs", affiliated[0].LinkedInURL)
	assert.Equal(t, "45,001 followers", affiliated[0].Followers)
}

func TestExtractAffiliatedPages_NoSection(t *testing.T) {
	doc := parseFixture(t, `<main><h3>Locations</h3><ul><li>Springfield</li></ul></main>`)
	showcase, affiliated := ExtractAffiliatedPages(doc)
	assert.Empty(t, showcase)
	assert.Empty(t, affiliated)
}
