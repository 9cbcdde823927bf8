package ranges

import (
	"fmt"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/organize-rs/organize-sub000/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	kib = 1024.0
	mib = kib * 1024
	gib = mib * 1024
)

func TestParseSize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  Range
	}{
		{"left only binary", "5.0GiB..", Range{Low: 5 * gib, High: SizeMax}},
		{"right only binary", "..0.5GiB", Range{Low: SizeMin, High: 0.5 * gib}},
		{"whole mixed units", "1.5MiB..100.3MB", Range{Low: 1.5 * mib, High: 100.3 * 1000 * 1000}},
		{"whole inclusive marker", "1KB..=2KB", Range{Low: 1000, High: 2000}},
		{"left only decimal", "1KB..", Range{Low: 1000, High: SizeMax}},
		{"lower case units", "1kb..1mb", Range{Low: 1000, High: 1000 * 1000}},
		{"surrounding whitespace", "  500B..  ", Range{Low: 500, High: SizeMax}},
		{"bytes", "..500B", Range{Low: SizeMin, High: 500}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseSize(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseTime(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  Range
	}{
		{"whole days", "1d..7d", Range{Low: 86400, High: 7 * 86400}},
		{"left only", "2w..", Range{Low: 14 * 86400, High: TimeMax}},
		{"right only", "..12h", Range{Low: TimeMin, High: 12 * 3600}},
		{"months", "1mo..3mo", Range{Low: 28 * 86400, High: 84 * 86400}},
		{"inclusive marker", "1y..=2y", Range{Low: 364 * 86400, High: 728 * 86400}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseTime(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		domain Domain
		code   errors.ErrorCode
	}{
		{"mixed time units", "1w..7d", DomainTime, errors.ErrRangeBounds},
		{"inverted time", "7d..1d", DomainTime, errors.ErrRangeBounds},
		{"equal time bounds", "3d..3d", DomainTime, errors.ErrRangeBounds},
		{"inverted size", "2MB..1MB", DomainSize, errors.ErrRangeBounds},
		{"inverted size across units", "1MiB..1MB", DomainSize, errors.ErrRangeBounds},
		{"left beyond maximum", "5TB..", DomainSize, errors.ErrRangeBounds},
		{"right below minimum", "..0.5B", DomainSize, errors.ErrRangeBounds},
		{"empty", "", DomainSize, errors.ErrRangeParse},
		{"bare dots", "..", DomainSize, errors.ErrRangeParse},
		{"missing unit", "5..10", DomainSize, errors.ErrRangeParse},
		{"negative", "-1KB..", DomainSize, errors.ErrRangeParse},
		{"single value", "5KB", DomainSize, errors.ErrRangeParse},
		{"three dots", "1KB...2KB", DomainSize, errors.ErrRangeParse},
		{"unknown size unit", "1XB..", DomainSize, errors.ErrUnitUnknown},
		{"unknown time unit", "1fortnight..", DomainTime, errors.ErrUnitUnknown},
		{"time unit in size range", "1d..", DomainSize, errors.ErrUnitUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.input, tt.domain)
			require.Error(t, err)
			assert.True(t, errors.IsErrorCode(err, tt.code), "got %v", err)
		})
	}
}

func TestParse_ErrorNamesInput(t *testing.T) {
	_, err := ParseSize("garbage")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"garbage"`)
	assert.Equal(t, "garbage", errors.GetErrorDetails(err)["input"])
}

func TestMustParse(t *testing.T) {
	assert.NotPanics(t, func() { MustParseSize("1KB..") })
	assert.NotPanics(t, func() { MustParseTime("1d..") })
	assert.Panics(t, func() { MustParseSize("nope") })
	assert.Panics(t, func() { MustParseTime("1w..7d") })
}

func TestRangeString(t *testing.T) {
	assert.Equal(t, "[1000, 4000000000000]", Range{Low: 1000, High: SizeMax}.String())
	assert.Equal(t, "1d..7d", Range{Low: 86400, High: 7 * 86400}.HumanDuration())
	assert.Equal(t, "1kB..2kB", Range{Low: 1000, High: 2000}.HumanSize())
}

func TestContains_Property(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	properties.Property("contains matches the closed interval", prop.ForAll(
		func(low, width, x float64) bool {
			r := Range{Low: low, High: low + width}
			return r.Contains(x) == (r.Low <= x && x <= r.High)
		},
		gen.Float64Range(0, 1e9),
		gen.Float64Range(1, 1e9),
		gen.Float64Range(-1e9, 3e9),
	))

	properties.Property("bounds are always contained", prop.ForAll(
		func(low, width float64) bool {
			r := Range{Low: low, High: low + width}
			return r.Contains(r.Low) && r.Contains(r.High)
		},
		gen.Float64Range(0, 1e9),
		gen.Float64Range(1, 1e9),
	))

	properties.Property("parsed whole day ranges keep low below high", prop.ForAll(
		func(a, b int) bool {
			r, err := ParseTime(fmt.Sprintf("%dd..%dd", a, a+b))
			return err == nil && r.Low < r.High && r.Contains(float64(a)*86400)
		},
		gen.IntRange(0, 1000),
		gen.IntRange(1, 1000),
	))

	properties.TestingRun(t)
}
