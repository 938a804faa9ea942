// Package storage persists the deduplicated result collection as a
// pretty-printed JSON array and reads the hand-curated athlete profile.
// The result file is the system's only durable state: it is read once at
// the start of a run and fully rewritten at the end.
package storage
