// Package ranges parses human-readable bounded intervals such as "1d..7d",
// "500MB.." or "..0.5GiB" into canonical Range values.
//
// Grammar, tried in order:
//
//	WHOLE = number unit (".." | "..=") number unit
//	LEFT  = number unit ".."
//	RIGHT = ".." number unit
//
// A missing side defaults to the domain minimum or maximum. Both ends are
// inclusive.
package ranges

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/docker/go-units"
	"github.com/organize-rs/organize-sub000/pkg/errors"
	unitconv "github.com/organize-rs/organize-sub000/pkg/units"
)

// Domain bounds in canonical units
const (
	SizeMin = 1.0
	SizeMax = 4e12

	TimeMin = 0.0
	// TimeMax is 30 years of 365.25 days
	TimeMax = 946728000.0
)

// Domain selects the unit family and default bounds of a range
type Domain int

const (
	DomainSize Domain = iota
	DomainTime
)

func (d Domain) String() string {
	if d == DomainTime {
		return "time"
	}
	return "size"
}

// Range is a closed interval in bytes or seconds
type Range struct {
	Low  float64 `json:"low"`
	High float64 `json:"high"`
}

// Contains reports whether low <= x <= high
func (r Range) Contains(x float64) bool {
	return r.Low <= x && x <= r.High
}

// String renders the interval in canonical units
func (r Range) String() string {
	return fmt.Sprintf("[%s, %s]", formatNumber(r.Low), formatNumber(r.High))
}

// HumanSize renders a size range with decimal unit suffixes
func (r Range) HumanSize() string {
	return fmt.Sprintf("%s..%s", units.HumanSize(r.Low), units.HumanSize(r.High))
}

// HumanDuration renders a time range in days
func (r Range) HumanDuration() string {
	return fmt.Sprintf("%sd..%sd", formatNumber(r.Low/unitconv.Day), formatNumber(r.High/unitconv.Day))
}

const number = `(\d+(?:\.\d+)?)`
const unit = `([A-Za-z]+)`

var (
	wholeForm = regexp.MustCompile(`^` + number + unit + `\.\.=?` + number + unit + `$`)
	leftForm  = regexp.MustCompile(`^` + number + unit + `\.\.$`)
	rightForm = regexp.MustCompile(`^\.\.` + number + unit + `$`)
)

// ParseSize parses a size range; each side is converted to bytes independently
func ParseSize(s string) (Range, error) {
	return Parse(s, DomainSize)
}

// ParseTime parses an elapsed-time range; WHOLE ranges need identical units
func ParseTime(s string) (Range, error) {
	return Parse(s, DomainTime)
}

// MustParseSize is like ParseSize but panics on error
func MustParseSize(s string) Range {
	r, err := ParseSize(s)
	if err != nil {
		panic(err)
	}
	return r
}

// MustParseTime is like ParseTime but panics on error
func MustParseTime(s string) Range {
	r, err := ParseTime(s)
	if err != nil {
		panic(err)
	}
	return r
}

// Parse parses s in the given domain
func Parse(s string, domain Domain) (Range, error) {
	input := strings.TrimSpace(s)
	lowest, highest, convert := domainOf(domain)

	if m := wholeForm.FindStringSubmatch(input); m != nil {
		left, err := parseNumber(m[1], s)
		if err != nil {
			return Range{}, err
		}
		right, err := parseNumber(m[3], s)
		if err != nil {
			return Range{}, err
		}

		if domain == DomainTime {
			if m[2] != m[4] {
				return Range{}, boundsError(s, "units differ: %s and %s", m[2], m[4])
			}
			if left >= right {
				return Range{}, boundsError(s, "left %s is not below right %s", m[1], m[3])
			}
		}

		low, err := convert(left, m[2])
		if err != nil {
			return Range{}, err
		}
		high, err := convert(right, m[4])
		if err != nil {
			return Range{}, err
		}
		if low >= high {
			return Range{}, boundsError(s, "left %s is not below right %s", formatNumber(low), formatNumber(high))
		}
		return Range{Low: low, High: high}, nil
	}

	if m := leftForm.FindStringSubmatch(input); m != nil {
		left, err := parseNumber(m[1], s)
		if err != nil {
			return Range{}, err
		}
		low, err := convert(left, m[2])
		if err != nil {
			return Range{}, err
		}
		if low >= highest {
			return Range{}, boundsError(s, "lower bound %s reaches the %s maximum", formatNumber(low), domain)
		}
		return Range{Low: low, High: highest}, nil
	}

	if m := rightForm.FindStringSubmatch(input); m != nil {
		right, err := parseNumber(m[1], s)
		if err != nil {
			return Range{}, err
		}
		high, err := convert(right, m[2])
		if err != nil {
			return Range{}, err
		}
		if high <= lowest {
			return Range{}, boundsError(s, "upper bound %s does not exceed the %s minimum", formatNumber(high), domain)
		}
		return Range{Low: lowest, High: high}, nil
	}

	return Range{}, errors.Newf(errors.ErrRangeParse, "invalid %s range %q", domain, s).
		WithDetail("input", s)
}

func domainOf(d Domain) (float64, float64, func(float64, string) (float64, error)) {
	if d == DomainTime {
		return TimeMin, TimeMax, unitconv.TimeToSeconds
	}
	return SizeMin, SizeMax, unitconv.SizeToBytes
}

func parseNumber(lit, input string) (float64, error) {
	v, err := strconv.ParseFloat(lit, 64)
	if err != nil {
		return 0, errors.Wrapf(err, errors.ErrRangeParse, "invalid number %q in range %q", lit, input).
			WithDetail("input", input)
	}
	return v, nil
}

func boundsError(input, format string, args ...interface{}) error {
	return errors.Newf(errors.ErrRangeBounds, "range %q: %s", input, fmt.Sprintf(format, args...)).
		WithDetail("input", input)
}

func formatNumber(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
