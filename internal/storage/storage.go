package storage

import (
	"context"
	"crypto/rand"
	"fmt"
	"io"
	"path"
	"strings"
	"time"
)

// Store uploads binary objects to the hosted bucket and returns their public URL.
type Store interface {
	Upload(ctx context.Context, objectPath, contentType string, r io.Reader) (string, error)
}

// Upload categories, one folder per asset kind.
const (
	CategoryBusinessLogos  = "business-logos"
	CategoryOwnerPhotos    = "owner-photos"
	CategoryTeamMembers    = "team-members"
	CategoryFacilityPhotos = "facility-photos"
	CategoryLabReports     = "lab-reports"
)

const suffixAlphabet = "abcdefghijklmnopqrstuvwxyz0123456789"

// ObjectPath builds "{category}/{businessId}/{timestamp}-{rand}.{ext}".
// The timestamp plus random suffix keeps concurrent uploads for the same
// business and category from colliding.
func ObjectPath(category string, businessID int64, filename string) string {
	ext := strings.TrimPrefix(path.Ext(filename), ".")
	if ext == "" {
		ext = "bin"
	}
	name := fmt.Sprintf("%d-%s.%s", time.Now().UnixMilli(), randomSuffix(8), ext)
	return fmt.Sprintf("%s/%d/%s", category, businessID, name)
}

func randomSuffix(n int) string {
	b := make([]byte, n)
	if _, err := rand.Read(b); err != nil {
		// crypto/rand failing means the platform is broken; fall back to time.
		return fmt.Sprintf("%08x", time.Now().UnixNano())[:n]
	}
	for i := range b {
		b[i] = suffixAlphabet[int(b[i])%len(suffixAlphabet)]
	}
	return string(b)
}
