package rename

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/quidome/media-renamer-go/pkg/createdat"
	"github.com/quidome/media-renamer-go/pkg/plan"
	"github.com/quidome/media-renamer-go/pkg/scan"
)

// ErrTargetExists is returned on a Result when the prefixed filename is
// already taken in the directory. Collisions are never auto-resolved with a
// suffix; the file is left untouched.
var ErrTargetExists = errors.New("target filename already exists")

// Outcome describes what happened to one media file during a run.
type Outcome string

const (
	OutcomeRenamed     Outcome = "renamed"
	OutcomeWouldRename Outcome = "would_rename"
	OutcomeSkipped     Outcome = "skipped"
	OutcomeFailed      Outcome = "failed"
)

// Result contains the outcome for one media file.
type Result struct {
	Name    string
	NewName string
	Outcome Outcome
	Source  createdat.Source
	Err     error
}

// Summary aggregates counters across one run.
type Summary struct {
	TotalMediaFiles int
	Renamed         int
	Skipped         int
	Errors          int
}

// Options configures a run.
type Options struct {
	// DryRun computes and reports the plan without touching the file system.
	DryRun bool

	// Scan selects the recognized media extensions.
	// The zero value means scan.DefaultOptions().
	Scan scan.Options
}

// Run processes the media files that are direct children of dir, prefixing
// each filename with its effective creation date.
//
// It returns one Result per media file, in name order. Per-file failures
// (unreadable metadata, target collisions, failed renames) are recorded on
// the Result and never abort the batch. The only returned error is a failure
// to list dir in the first place; in that case no file has been touched.
func Run(dir string, opts Options) ([]Result, error) {
	scanOpts := opts.Scan
	if len(scanOpts.PhotoExtensions) == 0 && len(scanOpts.VideoExtensions) == 0 {
		scanOpts = scan.DefaultOptions()
	}

	files, err := scan.List(dir, scanOpts)
	if err != nil {
		return nil, err
	}

	results := make([]Result, 0, len(files))

	for _, name := range files {
		result := Result{Name: name}

		if plan.DatePrefixed(name) {
			result.Outcome = OutcomeSkipped
			results = append(results, result)
			continue
		}

		created, err := createdat.Effective(filepath.Join(dir, name))
		if err != nil {
			result.Outcome = OutcomeFailed
			result.Err = fmt.Errorf("get date for %s: %w", name, err)
			results = append(results, result)
			continue
		}
		result.Source = created.Source

		newName := plan.NewName(name, created.CreatedAt)
		result.NewName = newName

		if _, err := os.Lstat(filepath.Join(dir, newName)); err == nil {
			result.Outcome = OutcomeFailed
			result.Err = fmt.Errorf("%w: %s", ErrTargetExists, newName)
			results = append(results, result)
			continue
		}

		if opts.DryRun {
			result.Outcome = OutcomeWouldRename
			results = append(results, result)
			continue
		}

		if err := os.Rename(filepath.Join(dir, name), filepath.Join(dir, newName)); err != nil {
			result.Outcome = OutcomeFailed
			result.Err = fmt.Errorf("rename %s: %w", name, err)
			results = append(results, result)
			continue
		}

		result.Outcome = OutcomeRenamed
		results = append(results, result)
	}

	return results, nil
}

// Summarize aggregates per-file results into run counters.
func Summarize(results []Result) Summary {
	s := Summary{TotalMediaFiles: len(results)}
	for _, r := range results {
		switch r.Outcome {
		case OutcomeRenamed:
			s.Renamed++
		case OutcomeSkipped:
			s.Skipped++
		case OutcomeFailed:
			s.Errors++
		}
	}
	return s
}
