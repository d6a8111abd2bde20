package dedup

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSeen_AddReportsNew(t *testing.T) {
	s := NewSeen()
	assert.True(t, s.Add("https://www.linkedin.com/in/jane-doe"))
	assert.False(t, s.Add("https://www.linkedin.com/in/jane-doe"))
	assert.Equal(t, 1, s.Len())
}

func TestSeen_CanonicalVariantsCollapse(t *testing.T) {
	s := NewSeen()
	assert.True(t, s.Add("https://www.linkedin.com/in/jane-doe/?trk=sidebar"))
	assert.False(t, s.Add("https://www.linkedin.com/in/Jane-Doe?miniProfileUrn=xyz"))
	assert.False(t, s.Add("/in/jane-doe/"))
	assert.Equal(t, 1, s.Len())
}

func TestSeen_Contains(t *testing.T) {
	s := NewSeen()
	s.Add("https://www.linkedin.com/company/acme")
	assert.True(t, s.Contains("https://www.linkedin.com/company/acme/?viewAsMember=true"))
	assert.False(t, s.Contains("https://www.linkedin.com/company/other"))
}

func TestSeen_EmptyURLIgnored(t *testing.T) {
	s := NewSeen()
	assert.False(t, s.Add(""))
	assert.Zero(t, s.Len())
}
