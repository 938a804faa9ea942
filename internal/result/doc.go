// Package result provides the competition-result record type along with
// date normalization and the merge/dedup logic used to maintain the
// persisted result collection.
//
// Records are identified by the (title, date, result, source) tuple after
// whitespace trimming. The persisted collection never contains two records
// with the same identity key, and previously persisted records always win
// over freshly scraped duplicates so that manual corrections survive
// re-scrapes.
package result
