package scan

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// ErrNotDirectory is returned when the scan target does not exist or is not
// a directory.
var ErrNotDirectory = errors.New("not a directory")

type Options struct {
	PhotoExtensions []string
	VideoExtensions []string
}

func DefaultOptions() Options {
	return Options{
		PhotoExtensions: []string{
			".jpg", ".jpeg", ".png", ".gif", ".bmp", ".tiff", ".tif",
			".webp", ".svg", ".raw", ".cr2", ".nef", ".arw", ".dng",
		},
		VideoExtensions: []string{
			".mp4", ".avi", ".mov", ".wmv", ".flv", ".webm", ".mkv",
			".m4v", ".3gp", ".mpg", ".mpeg", ".m2v", ".mts",
		},
	}
}

// IsMediaFile reports whether the filename's extension belongs to the
// recognized photo or video catalog. Matching is case-insensitive.
func IsMediaFile(filename string, opts Options) bool {
	photoExts := normalizeExts(opts.PhotoExtensions)
	videoExts := normalizeExts(opts.VideoExtensions)

	ext := strings.ToLower(filepath.Ext(filename))
	return photoExts[ext] || videoExts[ext]
}

// List returns the media files that are direct children of dir, sorted by
// name. Subdirectories and non-regular files are excluded; there is no
// recursion.
func List(dir string, opts Options) ([]string, error) {
	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		return nil, fmt.Errorf("%w: %s", ErrNotDirectory, dir)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read directory %s: %w", dir, err)
	}

	photoExts := normalizeExts(opts.PhotoExtensions)
	videoExts := normalizeExts(opts.VideoExtensions)

	var matches []string
	for _, entry := range entries {
		if !entry.Type().IsRegular() {
			continue
		}
		ext := strings.ToLower(filepath.Ext(entry.Name()))
		if !(photoExts[ext] || videoExts[ext]) {
			continue
		}
		matches = append(matches, entry.Name())
	}

	sort.Strings(matches)
	return matches, nil
}

func normalizeExts(exts []string) map[string]bool {
	m := make(map[string]bool, len(exts))
	for _, ext := range exts {
		e := strings.TrimSpace(strings.ToLower(ext))
		if e == "" {
			continue
		}
		if !strings.HasPrefix(e, ".") {
			e = "." + e
		}
		m[e] = true
	}
	return m
}
