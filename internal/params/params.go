// Package params turns untrusted query-string input into typed, bounded
// values. Malformed input is an expected case: validators report it through
// their ok result, never through an error or panic.
package params

import (
	"math"
	"net/url"
	"strconv"
	"time"

	"github.com/osutrack/stats-api/internal/models"
)

// Kind discriminates the shapes a query parameter can arrive in.
type Kind int

const (
	Absent Kind = iota
	Single
	Multiple
)

// Value is one raw query parameter: absent, a single string, or repeated.
// Validators pattern-match on the kind instead of coercing.
type Value struct {
	kind Kind
	one  string
	many []string
}

// FromQuery extracts the named parameter from parsed query values.
func FromQuery(q url.Values, key string) Value {
	vals, ok := q[key]
	switch {
	case !ok || len(vals) == 0:
		return Value{kind: Absent}
	case len(vals) == 1:
		return Value{kind: Single, one: vals[0]}
	default:
		return Value{kind: Multiple, many: vals}
	}
}

func (v Value) Kind() Kind { return v.kind }

// Raw returns the single string value. Only meaningful for Single.
func (v Value) Raw() string { return v.one }

// UserMode selects how the `user` parameter is interpreted.
type UserMode int

const (
	ByID UserMode = iota
	ByUsername
)

// ParseUserID applies the strict user-ID rule to a bare string: base-10
// integer literal, no decimals, no scientific notation, no surrounding
// garbage, value greater than zero.
func ParseUserID(s string) (int64, bool) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

// ValidateUser accepts a single strict base-10 integer literal greater than
// zero.
func ValidateUser(v Value) (int64, bool) {
	if v.kind != Single {
		return 0, false
	}
	return ParseUserID(v.one)
}

// ValidateMode accepts exactly the four literals "0".."3".
func ValidateMode(v Value) (models.GameMode, bool) {
	if v.kind != Single {
		return 0, false
	}
	switch v.one {
	case "0":
		return models.ModeOsu, true
	case "1":
		return models.ModeTaiko, true
	case "2":
		return models.ModeCtb, true
	case "3":
		return models.ModeMania, true
	}
	return 0, false
}

// ValidateLimit defaults to 100 when absent; otherwise the value must be an
// integer-valued number in (0, 10000].
func ValidateLimit(v Value) (int, bool) {
	if v.kind == Absent {
		return 100, true
	}
	if v.kind != Single {
		return 0, false
	}
	f, err := strconv.ParseFloat(v.one, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	if math.Trunc(f) != f || f <= 0 || f > 10000 {
		return 0, false
	}
	return int(f), true
}

// Accepted date layouts. Date-only values are interpreted as midnight UTC.
var dateLayouts = []string{time.RFC3339, "2006-01-02"}

// ValidateDate parses a single RFC3339 or YYYY-MM-DD value. Anything else,
// including an absent or repeated parameter, reports false; callers fall back
// to the open range sentinels.
func ValidateDate(v Value) (time.Time, bool) {
	if v.kind != Single {
		return time.Time{}, false
	}
	for _, layout := range dateLayouts {
		if t, err := time.ParseInLocation(layout, v.one, time.UTC); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// ValidateUserMode returns ByUsername only for the literal "username";
// anything else, absent included, means lookup by numeric ID.
func ValidateUserMode(v Value) UserMode {
	if v.kind == Single && v.one == "username" {
		return ByUsername
	}
	return ByID
}

// Sentinel range bounds used when from/to are absent or unparseable. The
// range is effectively unbounded for any data the tracker can hold.
var (
	RangeFrom = time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC)
	RangeTo   = time.Date(2800, 1, 1, 0, 0, 0, 0, time.UTC)
)

// DateOrDefault resolves an optional date parameter against a sentinel.
func DateOrDefault(v Value, fallback time.Time) time.Time {
	if t, ok := ValidateDate(v); ok {
		return t
	}
	return fallback
}
