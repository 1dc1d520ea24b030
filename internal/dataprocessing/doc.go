// Package dataprocessing implements the reshaping pipeline that turns
// heterogeneous quarterly spreadsheet exports into normalized long-format
// records.
//
// # Architecture
//
// The pipeline is a chain of small, independently testable steps:
//
// 1. Parser: decodes one export (CSV with encoding fallback, or xlsx) into a SourceTable
// 2. Classifier: assigns region/period/type roles to source columns
// 3. Reshaper: melts the wide table into long records
// 4. Backfill: resolves a period for every record from measure names, identifier cells and the file's dominant year
// 5. Filter: restricts records to the configured reporting years
// 6. Aggregator: merges per-file results and fills categorical sentinels
//
// # Data Flow
//
//	export file → SourceTable → RoleSet → []Record → backfill/filter → master []Record
//
// Processing is strictly sequential and per-file failures are isolated:
// a file that cannot be processed is logged and skipped, never aborting
// the run.
package dataprocessing
