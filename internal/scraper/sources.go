package scraper

import "github.com/sweissman/mat-results/internal/result"

// Flow builds the extractor for flowrestling profile pages.
func Flow(link string) *Extractor {
	return &Extractor{
		Source:        result.SourceFlow,
		Link:          link,
		TableKeywords: []string{"event", "result", "tournament"},
		ListSelectors: []string{".results", ".result-list", ".profile-results"},
		ItemSelector:  "li, .row",
		CellJoin:      " | ",
		PartJoin:      " - ",
	}
}

// Wrestling builds the extractor for wrestlingtournaments profile pages.
func Wrestling(link string) *Extractor {
	return &Extractor{
		Source:        result.SourceWrestling,
		Link:          link,
		TableKeywords: []string{"event", "place", "opponent"},
		ListSelectors: []string{".profileResults", ".results"},
		ItemSelector:  "li, tr",
		CellJoin:      " | ",
		PartJoin:      " - ",
	}
}

// Track builds the extractor for trackwrestling profile pages.
func Track(link string) *Extractor {
	return &Extractor{
		Source:        result.SourceTrack,
		Link:          link,
		TableKeywords: []string{"tournament", "place", "result"},
		ListSelectors: []string{".competition-history", ".results"},
		ItemSelector:  "li, tr",
		CellJoin:      " | ",
		PartJoin:      " - ",
	}
}
