// Package testutil starts the MongoDB container integration tests share and
// hands each test its own database.
package testutil

import (
	"strings"

	"github.com/google/uuid"
)

const (
	// maxDBNameLength is MongoDB's limit on database names, in bytes.
	maxDBNameLength = 63
	dbNameSuffixLen = 8
)

// SanitizeDBName turns a test name into a database name unique to this run.
// Characters MongoDB forbids in names become underscores and a random suffix
// keeps parallel subtests with similar names apart.
func SanitizeDBName(testName string) string {
	name := strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
			return r
		default:
			return '_'
		}
	}, testName)

	if limit := maxDBNameLength - dbNameSuffixLen - 1; len(name) > limit {
		name = name[:limit]
	}
	return name + "_" + uuid.NewString()[:dbNameSuffixLen]
}
