package goes

import(
	"fmt"
	"strconv"
	"strings"
	"time"
)

// The expression is lowercased before matching, so the ISO layout
// spells its T separator in lowercase.
var absoluteLayouts = []string{
	"2006-01-02t15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
}

// ParseTime turns a command-line time expression into a UTC instant.
// Accepted forms:
//   "now" / "latest"        the current time
//   "-12h" / "-30m"         relative to now
//   "2024-06-15"            that date at noon UTC
//   "2024-06-15 18:00"      with optional :SS, or ISO "T" separator
// `now` is passed in rather than read from the clock, so callers and
// tests agree on what "now" means.
func ParseTime(expr string, now time.Time) (time.Time, error) {
	expr = strings.ToLower(strings.TrimSpace(expr))

	if expr == "now" || expr == "latest" {
		return now.UTC(), nil
	}

	if strings.HasPrefix(expr, "-") && len(expr) > 2 {
		num, err := strconv.Atoi(expr[1 : len(expr)-1])
		if err != nil {
			return time.Time{}, fmt.Errorf("bad relative time '%s': %v", expr, err)
		}
		switch expr[len(expr)-1] {
		case 'h':
			return now.UTC().Add(-time.Duration(num) * time.Hour), nil
		case 'm':
			return now.UTC().Add(-time.Duration(num) * time.Minute), nil
		default:
			return time.Time{}, fmt.Errorf("unknown time unit in '%s', want h or m", expr)
		}
	}

	for _, layout := range absoluteLayouts {
		t, err := time.ParseInLocation(layout, expr, time.UTC)
		if err != nil {
			continue
		}
		if layout == "2006-01-02" {
			t = t.Add(12 * time.Hour) // date only: default to noon
		}
		return t, nil
	}

	return time.Time{}, fmt.Errorf("could not parse time '%s'", expr)
}
