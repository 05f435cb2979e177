// Package diagnostic provides structured errors and warnings for config
// validation against the analyzed type graph.
//
// Key capabilities:
//   - Per-record, per-field attribution
//   - Stable snake_case codes for programmatic handling
//   - Collects every finding before generation is aborted
package diagnostic
