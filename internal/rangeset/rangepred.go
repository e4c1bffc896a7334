package rangeset

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// NegInf and PosInf are the sentinel values the "-n" and "n-" grammar
// forms use for an open lower or upper bound. Data values are always
// positive (item grammar requires 1 ≤ n ≤ m), so 0 and −1 are safe to
// reserve.
const (
	NegInf = 0
	PosInf = -1
)

func rank(v int) int {
	switch v {
	case NegInf:
		return math.MinInt
	case PosInf:
		return math.MaxInt
	default:
		return v
	}
}

func rangeLess(a, b int) bool { return rank(a) < rank(b) }

func rangeBelow(a, b int) bool {
	ra, rb := rank(a), rank(b)
	switch {
	case ra == math.MaxInt || rb == math.MinInt:
		return false // +inf is below nothing; nothing is below -inf
	case ra == math.MinInt || rb == math.MaxInt:
		return ra < rb
	default:
		return ra+1 < rb
	}
}

// RangePred is a predicate over integers parsed from the grammar
// `item (',' item)*` where item is `n` (single value), `-n` (−∞ to n),
// `n-` (n to +∞), or `n-m` (closed interval, 1 ≤ n ≤ m).
type RangePred struct {
	set *IntervalSet
}

// ParseRangePred parses s into a RangePred.
func ParseRangePred(s string) (*RangePred, error) {
	set := NewIntervalSet(rangeLess, rangeBelow)
	s = strings.TrimSpace(s)
	if s == "" {
		return &RangePred{set: set}, nil
	}
	for _, raw := range strings.Split(s, ",") {
		item := strings.TrimSpace(raw)
		lo, hi, err := parseItem(item)
		if err != nil {
			return nil, err
		}
		set.Insert(lo, hi)
	}
	return &RangePred{set: set}, nil
}

func parseItem(item string) (lo, hi int, err error) {
	switch {
	case strings.HasPrefix(item, "-"):
		n, err := strconv.Atoi(item[1:])
		if err != nil || n < 1 {
			return 0, 0, fmt.Errorf("rangeset: invalid range item %q", item)
		}
		return NegInf, n, nil

	case strings.HasSuffix(item, "-"):
		n, err := strconv.Atoi(item[:len(item)-1])
		if err != nil || n < 1 {
			return 0, 0, fmt.Errorf("rangeset: invalid range item %q", item)
		}
		return n, PosInf, nil

	case strings.Contains(item, "-"):
		parts := strings.SplitN(item, "-", 2)
		n, err1 := strconv.Atoi(parts[0])
		m, err2 := strconv.Atoi(parts[1])
		if err1 != nil || err2 != nil || n < 1 || n > m {
			return 0, 0, fmt.Errorf("rangeset: invalid range item %q", item)
		}
		return n, m, nil

	default:
		n, err := strconv.Atoi(item)
		if err != nil || n < 1 {
			return 0, 0, fmt.Errorf("rangeset: invalid range item %q", item)
		}
		return n, n, nil
	}
}

// Contains reports whether v satisfies the predicate.
func (r *RangePred) Contains(v int) bool {
	return r.set.Contains(v)
}
