// Package units converts a magnitude and a unit token into canonical
// seconds or bytes.
package units

import (
	"regexp"
	"strings"

	goUnits "github.com/docker/go-units"
	"github.com/organize-rs/organize-sub000/pkg/errors"
)

// Seconds per time unit. A month is four weeks and a year is 52 weeks.
const (
	Second = 1.0
	Minute = 60 * Second
	Hour   = 60 * Minute
	Day    = 24 * Hour
	Week   = 7 * Day
	Month  = 4 * Week
	Year   = 52 * Week
)

var timeUnits = map[string]float64{
	"s":  Second,
	"m":  Minute,
	"h":  Hour,
	"d":  Day,
	"w":  Week,
	"mo": Month,
	"y":  Year,
}

// TimeUnits lists the accepted time tokens, smallest first
var TimeUnits = []string{"s", "m", "h", "d", "w", "mo", "y"}

// byteUnit accepts B plus the decimal and binary prefixes K through P
var byteUnit = regexp.MustCompile(`(?i)^([kmgtp]i?)?b$`)

// TimeToSeconds converts magnitude expressed in unit to seconds
func TimeToSeconds(magnitude float64, unit string) (float64, error) {
	factor, ok := timeUnits[strings.ToLower(unit)]
	if !ok {
		return 0, errors.Newf(errors.ErrUnitUnknown, "non-standard unit: %s", unit).
			WithDetail("unit", unit)
	}
	return magnitude * factor, nil
}

// SizeToBytes converts magnitude expressed in a byte unit to bytes.
// Tokens ending in "ib" use base 1024, all others base 1000.
func SizeToBytes(magnitude float64, unit string) (float64, error) {
	factor, err := BytesPerUnit(unit)
	if err != nil {
		return 0, err
	}
	return magnitude * factor, nil
}

// BytesPerUnit returns how many bytes one unit holds
func BytesPerUnit(unit string) (float64, error) {
	if !byteUnit.MatchString(unit) {
		return 0, errors.Newf(errors.ErrUnitUnknown, "non-standard unit: %s", unit).
			WithDetail("unit", unit)
	}

	var (
		n   int64
		err error
	)
	if strings.HasSuffix(strings.ToLower(unit), "ib") {
		n, err = goUnits.RAMInBytes("1" + unit)
	} else {
		n, err = goUnits.FromHumanSize("1" + unit)
	}
	if err != nil {
		return 0, errors.Wrapf(err, errors.ErrUnitUnknown, "non-standard unit: %s", unit).
			WithDetail("unit", unit)
	}
	return float64(n), nil
}

// IsTimeUnit reports whether unit is an accepted time token
func IsTimeUnit(unit string) bool {
	_, ok := timeUnits[strings.ToLower(unit)]
	return ok
}
