package scraper

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/sweissman/mat-results/internal/result"
)

// multiSpace collapses runs of whitespace that the list pass treats as
// implicit field boundaries.
var multiSpace = regexp.MustCompile(`\s{2,}`)

// Extractor extracts result records from one source site's profile page.
// The two-pass heuristic is shared; the keyword and selector sets are the
// per-source knobs. They are guesses about live markup, not contracts, so
// they stay configurable rather than baked into the pass logic.
type Extractor struct {
	// Source is the origin tag stamped on every record.
	Source string
	// Link is the canonical profile URL stamped on every record.
	Link string
	// TableKeywords mark a table as a results table when any of them
	// appears in its combined header text (case-insensitive).
	TableKeywords []string
	// ListSelectors locate loosely structured result blocks for pass 2.
	ListSelectors []string
	// ItemSelector matches the child items within a result block.
	ItemSelector string
	// CellJoin separates extra table cells merged into the result field.
	CellJoin string
	// PartJoin separates extra text parts merged into the result field.
	PartJoin string
}

// Extract runs both heuristic passes over the document and concatenates
// their records. Malformed or empty markup yields zero records rather
// than an error; overlap between passes is resolved later by the merge.
func (e *Extractor) Extract(html string) []result.Record {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil
	}

	records := e.extractTables(doc)
	records = append(records, e.extractLists(doc)...)
	return records
}

// extractTables is pass 1: structured tables whose headers mention any of
// the source's keywords.
func (e *Extractor) extractTables(doc *goquery.Document) []result.Record {
	var records []result.Record

	doc.Find("table").Each(func(_ int, table *goquery.Selection) {
		var headers []string
		table.Find("th").Each(func(_ int, th *goquery.Selection) {
			headers = append(headers, strings.ToLower(th.Text()))
		})
		if !containsAny(strings.Join(headers, " "), e.TableKeywords) {
			return
		}

		table.Find("tbody tr").Each(func(_ int, tr *goquery.Selection) {
			var cells []string
			tr.Find("td").Each(func(_ int, td *goquery.Selection) {
				cells = append(cells, strings.TrimSpace(td.Text()))
			})

			rec := result.Record{Source: e.Source, Link: e.Link}
			if len(cells) >= 3 {
				rec.Date = cells[0]
				rec.Title = cells[1]
				rec.Result = strings.Join(cells[2:], e.CellJoin)
			} else {
				rec.Title = strings.Join(cells, e.CellJoin)
			}
			records = append(records, rec)
		})
	})

	return records
}

// extractLists is pass 2: unstructured list/row blocks. Each item's text
// is normalized so that runs of whitespace become pipe-separated fields,
// then split and mapped positionally onto the record.
func (e *Extractor) extractLists(doc *goquery.Document) []result.Record {
	var records []result.Record

	for _, selector := range e.ListSelectors {
		doc.Find(selector).Find(e.ItemSelector).Each(func(_ int, item *goquery.Selection) {
			text := multiSpace.ReplaceAllString(strings.TrimSpace(item.Text()), " | ")
			if text == "" {
				return
			}

			var parts []string
			for _, p := range strings.Split(text, "|") {
				if p = strings.TrimSpace(p); p != "" {
					parts = append(parts, p)
				}
			}
			if len(parts) == 0 {
				return
			}

			rec := result.Record{Source: e.Source, Link: e.Link}
			switch {
			case len(parts) >= 3:
				rec.Date = parts[0]
				rec.Title = parts[1]
				rec.Result = strings.Join(parts[2:], e.PartJoin)
			case len(parts) == 2:
				rec.Title = parts[0]
				rec.Result = parts[1]
			default:
				rec.Title = text
			}
			records = append(records, rec)
		})
	}

	return records
}

func containsAny(haystack string, needles []string) bool {
	for _, n := range needles {
		if strings.Contains(haystack, n) {
			return true
		}
	}
	return false
}
