package utils

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/MKhiriev/go-rest-facade/internal/optional"
)

// PathTimeLayout is the layout of time segments in REST paths,
// e.g. 2024-03-09_07:05:00. Times are rendered in local time.
const PathTimeLayout = "2006-01-02_15:04:05"

// Defaults applied when a limit or page segment is present but invalid.
const (
	DefaultLimit = 20
	DefaultPage  = 1
)

// PathQuery describes the optional trailing segments of a REST path.
// A field contributes a segment only when it is Some, whatever it holds.
type PathQuery struct {
	TimeFrom optional.Value[time.Time]
	TimeTo   optional.Value[time.Time]
	Read     optional.Value[bool]
	Limit    optional.Value[int]
	Page     optional.Value[int]
}

var now = time.Now

// BuildPath composes base/[first]/[from]/[to]/[read]/[limit]/[page].
//
// first is escaped with [EscapeComponent] and appended when non-empty. A
// zero TimeFrom renders as the Unix epoch and a zero TimeTo as the current
// time. A Limit below 1 becomes [DefaultLimit] and a Page below 1 becomes
// [DefaultPage]. When no segment applies base is returned unchanged.
//
// Example:
//
//	utils.BuildPath("/x", "7", utils.PathQuery{Limit: optional.Some(-3), Page: optional.Some(0)})
//	// "/x/7/20/1"
func BuildPath(base, first string, q PathQuery) string {
	var parts []string

	if first != "" {
		parts = append(parts, EscapeComponent(first))
	}
	if from, ok := q.TimeFrom.Get(); ok {
		parts = append(parts, FormatPathTime(orTime(from, time.Unix(0, 0))))
	}
	if to, ok := q.TimeTo.Get(); ok {
		parts = append(parts, FormatPathTime(orTime(to, now())))
	}
	if read, ok := q.Read.Get(); ok {
		parts = append(parts, strconv.FormatBool(read))
	}
	if limit, ok := q.Limit.Get(); ok {
		parts = append(parts, strconv.Itoa(atLeast(limit, 1, DefaultLimit)))
	}
	if page, ok := q.Page.Get(); ok {
		parts = append(parts, strconv.Itoa(atLeast(page, 1, DefaultPage)))
	}

	if len(parts) == 0 {
		return base
	}
	return base + "/" + strings.Join(parts, "/")
}

// FormatPathTime renders t with [PathTimeLayout] in local time.
func FormatPathTime(t time.Time) string {
	return t.Local().Format(PathTimeLayout)
}

var leadingInt = regexp.MustCompile(`^[+-]?\d+`)

// ClampInt parses the leading integer of s. A missing number or one below
// min yields def, so "12abc" is 12 and "abc" is def.
func ClampInt(s string, min, def int) int {
	digits := leadingInt.FindString(strings.TrimSpace(s))
	if digits == "" {
		return def
	}
	n, err := strconv.Atoi(digits)
	if err != nil {
		return def
	}
	return atLeast(n, min, def)
}

var timeLayouts = []string{
	PathTimeLayout,
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02",
}

// ParseTimeOr parses s as RFC 3339 or as one of the local layouts
// accepted on the command line. Empty or unparsable input yields fallback.
func ParseTimeOr(s string, fallback time.Time) time.Time {
	s = strings.TrimSpace(s)
	if s == "" {
		return fallback
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t
	}
	for _, layout := range timeLayouts {
		if t, err := time.ParseInLocation(layout, s, time.Local); err == nil {
			return t
		}
	}
	return fallback
}

func atLeast(n, min, def int) int {
	if n < min {
		return def
	}
	return n
}

func orTime(t, fallback time.Time) time.Time {
	if t.IsZero() {
		return fallback
	}
	return t
}
