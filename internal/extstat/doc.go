// Package extstat provides file size statistics grouped by extension.
//
// It walks directory trees using fastwalk, sums file sizes per extension
// into an insertion-ordered report, and optionally converts the sums to
// binary units (B, KiB, MiB, ...).
package extstat
