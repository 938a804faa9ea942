// Package scraper provides HTTP fetching and HTML extraction for athlete
// profile pages.
//
// The three source sites expose no stable API and their markup shifts, so
// extraction runs two heuristic passes over each page: a structured pass
// over tables whose headers mention result-like keywords, and a fallback
// pass over loosely structured list blocks. The passes trade precision for
// recall; duplicate records produced by overlapping passes are absorbed by
// the merge step downstream.
package scraper
