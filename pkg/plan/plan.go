package plan

import (
	"fmt"
	"regexp"
	"time"
)

// Operation represents a planned rename of one file within its directory.
type Operation struct {
	OldName string
	NewName string
}

var reDatePrefix = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}\s`)

// DatePrefixed reports whether filename already starts with a YYYY-MM-DD
// date followed by whitespace.
func DatePrefixed(filename string) bool {
	return reDatePrefix.MatchString(filename)
}

// NewName builds the prefixed filename for a file created at createdAt.
//
// The result is "YYYY-MM-DD <filename>": zero-padded calendar date, one
// space, then the original name including its extension.
func NewName(filename string, createdAt time.Time) string {
	return fmt.Sprintf("%s %s", createdAt.Format("2006-01-02"), filename)
}
