package storage

import (
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var objectPathPattern = regexp.MustCompile(`^facility-photos/42/\d+-[a-z0-9]{8}\.jpg$`)

func TestObjectPath_Format(t *testing.T) {
	p := ObjectPath(CategoryFacilityPhotos, 42, "kitchen.jpg")
	assert.Regexp(t, objectPathPattern, p)
}

func TestObjectPath_MissingExtensionFallsBack(t *testing.T) {
	p := ObjectPath(CategoryBusinessLogos, 7, "logo")
	assert.True(t, strings.HasPrefix(p, "business-logos/7/"))
	assert.True(t, strings.HasSuffix(p, ".bin"))
}

func TestObjectPath_Unique(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 200; i++ {
		p := ObjectPath(CategoryTeamMembers, 42, "photo.png")
		require.False(t, seen[p], "duplicate path %s", p)
		seen[p] = true
	}
}
