package person

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const educationFixture = `
<main>
  <div class="pvs-list__container">
    <ul>
      <li class="pvs-list__paged-list-item">
        <div data-view-name="profile-component-entity">
          <div><a href="https://www.linkedin.com/school/example-university/"><img/></a></div>
          <div>
            <div>
              <div>
                <div><span aria-hidden="true">University of Example</span></div>
                <span><span aria-hidden="true">BSc Computer Science</span></span>
                <span><span aria-hidden="true">2016 - 2020</span></span>
              </div>
            </div>
            <div>
              <ul>
                <li><span aria-hidden="true">Skills: Java · Python</span></li>
              </ul>
            </div>
          </div>
        </div>
      </li>
      <li class="pvs-list__paged-list-item">
        <div data-view-name="profile-component-entity">
          <div><a href="/school/night-school"><img/></a></div>
          <div>
            <div>
              <div>
                <div><span aria-hidden="true">Night School</span></div>
                <span><span aria-hidden="true">2021 - Present</span></span>
                <span><span aria-hidden="true">Certificate, Data Engineering</span></span>
              </div>
            </div>
          </div>
        </div>
      </li>
    </ul>
  </div>
</main>`

func TestExtractEducations(t *testing.T) {
	doc := parseFixture(t, educationFixture)

	educations := ExtractEducations(doc)
	require.Len(t, educations, 2)

	first := educations[0]
	assert.Equal(t, "University of Example", first.InstitutionName)
	assert.Equal(t, "https://www.linkedin.com/school/example-university", first.LinkedInURL)
	assert.Equal(t, "BSc Computer Science", first.Degree)
	assert.Equal(t, "2016", first.FromDate)
	assert.Equal(t, "2020", first.ToDate)
	assert.Equal(t, []string{"Java", "Python"}, first.Skills)

	// Degree and dates appear in either order; the date regex decides.
	second := educations[1]
	assert.Equal(t, "Night School", second.InstitutionName)
	assert.Equal(t, "Certificate, Data Engineering", second.Degree)
	assert.Equal(t, "2021", second.FromDate)
	assert.Equal(t, "Present", second.ToDate)
}

func TestExtractEducations_NoContainer(t *testing.T) {
	doc := parseFixture(t, `<main></main>`)
	assert.Empty(t, ExtractEducations(doc))
}
