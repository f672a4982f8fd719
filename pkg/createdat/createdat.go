package createdat

import (
	"time"

	"github.com/djherbis/times"
)

// Source describes which file-system attribute supplied the creation-like
// timestamp.
//
// The fallback order is:
//  1. birthtime
//  2. ctime
//  3. mtime
type Source string

const (
	SourceBirthTime  Source = "birthtime"
	SourceChangeTime Source = "ctime"
	SourceMtime      Source = "mtime"
)

// Result contains a file's effective creation timestamp and the attribute it
// was derived from.
type Result struct {
	CreatedAt time.Time
	Source    Source
}

// Effective returns the effective creation timestamp for a path.
//
// The creation-like timestamp is taken from the first attribute the platform
// provides: birth time, change time, modification time. The effective
// timestamp is the earlier of that value and the modification time. On some
// file systems copying a file refreshes its creation time while the
// modification time keeps the original content date; taking the minimum
// favors the older, more likely original date.
func Effective(path string) (Result, error) {
	ts, err := times.Stat(path)
	if err != nil {
		return Result{}, err
	}

	mtime := ts.ModTime()

	creation := mtime
	source := SourceMtime
	switch {
	case ts.HasBirthTime():
		creation = ts.BirthTime()
		source = SourceBirthTime
	case ts.HasChangeTime():
		creation = ts.ChangeTime()
		source = SourceChangeTime
	}

	if mtime.Before(creation) {
		return Result{CreatedAt: mtime, Source: SourceMtime}, nil
	}
	return Result{CreatedAt: creation, Source: source}, nil
}
