package plan

import (
	"testing"
	"time"
)

func TestDatePrefixed(t *testing.T) {
	tests := []struct {
		name     string
		filename string
		want     bool
	}{
		{name: "space after date", filename: "2022-01-01 video.mp4", want: true},
		{name: "tab after date", filename: "2022-01-01\tvideo.mp4", want: true},
		{name: "no prefix", filename: "vacation.jpg", want: false},
		{name: "date without whitespace", filename: "2022-01-01video.mp4", want: false},
		{name: "unpadded date", filename: "2022-1-1 video.mp4", want: false},
		{name: "date in the middle", filename: "trip 2022-01-01 video.mp4", want: false},
		{name: "underscores instead of hyphens", filename: "2022_01_01 video.mp4", want: false},
		{name: "two digit year", filename: "22-01-01 video.mp4", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DatePrefixed(tt.filename); got != tt.want {
				t.Errorf("DatePrefixed(%q) = %v, want %v", tt.filename, got, tt.want)
			}
		})
	}
}

func TestNewName(t *testing.T) {
	tests := []struct {
		name      string
		filename  string
		createdAt time.Time
		want      string
	}{
		{
			name:      "plain filename",
			filename:  "vacation.jpg",
			createdAt: time.Date(2023, 3, 15, 10, 30, 0, 0, time.UTC),
			want:      "2023-03-15 vacation.jpg",
		},
		{
			name:      "single digit month and day are padded",
			filename:  "clip.mp4",
			createdAt: time.Date(2024, 5, 1, 23, 59, 59, 0, time.UTC),
			want:      "2024-05-01 clip.mp4",
		},
		{
			name:      "filename with spaces",
			filename:  "family reunion.mov",
			createdAt: time.Date(2021, 12, 31, 0, 0, 0, 0, time.UTC),
			want:      "2021-12-31 family reunion.mov",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NewName(tt.filename, tt.createdAt); got != tt.want {
				t.Errorf("NewName(%q) = %q, want %q", tt.filename, got, tt.want)
			}
		})
	}
}

func TestNewNameIsDatePrefixed(t *testing.T) {
	got := NewName("vacation.jpg", time.Date(2023, 3, 15, 0, 0, 0, 0, time.UTC))
	if !DatePrefixed(got) {
		t.Errorf("NewName result %q should satisfy DatePrefixed", got)
	}
}
