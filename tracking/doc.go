// Package tracking collects per-run conversion statistics.
package tracking
