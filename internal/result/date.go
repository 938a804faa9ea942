package result

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/araddon/dateparse"
)

// numericDatePattern matches loosely formatted numeric dates such as
// "3/4/24", "03-04-2024" or "3-4-24" (month, day, year).
var numericDatePattern = regexp.MustCompile(`(\d{1,2})[/-](\d{1,2})[/-](\d{2,4})`)

// NormalizeDate converts a heterogeneous date string into the canonical
// YYYY-MM-DD form. Unparseable input is returned trimmed and otherwise
// unchanged so that downstream sorting can treat it as date zero.
// NormalizeDate never fails; every input produces a string.
func NormalizeDate(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return ""
	}

	if t, err := dateparse.ParseIn(trimmed, time.UTC); err == nil {
		return t.UTC().Format("2006-01-02")
	}

	if m := numericDatePattern.FindStringSubmatch(trimmed); m != nil {
		month, _ := strconv.Atoi(m[1])
		day, _ := strconv.Atoi(m[2])
		year := m[3]
		if len(year) == 2 {
			year = "20" + year
		}
		return fmt.Sprintf("%s-%02d-%02d", year, month, day)
	}

	return trimmed
}

// SortValue returns a sortable timestamp (Unix milliseconds) for a date
// string. Unparseable or empty dates yield 0, which makes them sort as
// the earliest possible date.
func SortValue(date string) int64 {
	trimmed := strings.TrimSpace(date)
	if trimmed == "" {
		return 0
	}
	t, err := dateparse.ParseIn(trimmed, time.UTC)
	if err != nil {
		return 0
	}
	return t.UnixMilli()
}
