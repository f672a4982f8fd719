// Package createdat derives a media file's effective creation timestamp from
// file-system metadata.
//
// Platforms disagree on whether a true birth time exists; the attribution
// follows an ordered fallback chain (birth time, change time, modification
// time) and then takes the earlier of the creation-like timestamp and the
// modification time.
package createdat
