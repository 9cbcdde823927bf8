package rules

import (
	"fmt"
	"testing"
	"time"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/organize-rs/organize-sub000/pkg/errors"
	"github.com/organize-rs/organize-sub000/pkg/filters"
	"github.com/organize-rs/organize-sub000/pkg/ranges"
	"github.com/organize-rs/organize-sub000/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var env = filters.Env{Now: time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)}

func entry(name string, size int64) types.Entry {
	return types.Entry{Path: "/tmp/x/" + name, Name: name, Type: types.File, Size: size}
}

// yes and no are predicates with fixed outcomes for any file entry
var (
	yes filters.Predicate = filters.AllItems{Consent: true}
	no  filters.Predicate = filters.NoFilter{}
)

func sizeAtLeast(n int) filters.Predicate {
	r := ranges.MustParseSize(fmt.Sprintf("%dB..", n))
	return filters.Size{Range: &r}
}

func TestQuantifierTable(t *testing.T) {
	preds := []filters.Predicate{yes, no, yes}

	tests := []struct {
		match Quantifier
		want  bool
	}{
		{All, false},
		{Any, true},
		{None, false},
	}

	for _, tt := range tests {
		for _, polarity := range []Polarity{Include, Exclude} {
			t.Run(fmt.Sprintf("%s/%s", tt.match, polarity), func(t *testing.T) {
				g := FilterGroup{Filters: preds, Match: tt.match, Results: polarity}
				got, err := g.Evaluate(entry("a", 1), env)
				require.NoError(t, err)
				assert.Equal(t, tt.want, got, "polarity does not change the outcome")
			})
		}
	}
}

func TestPartition(t *testing.T) {
	g := FilterGroup{Filters: []filters.Predicate{yes, no, sizeAtLeast(10)}}

	matched, notMatched, err := g.Partition(entry("a", 50), env)
	require.NoError(t, err)
	assert.Equal(t, []filters.Predicate{yes, sizeAtLeast(10)}, matched)
	assert.Equal(t, []filters.Predicate{no}, notMatched)
}

func TestPartition_Unimplemented(t *testing.T) {
	g := FilterGroup{Filters: []filters.Predicate{yes, filters.Unimplemented{Of: filters.KindRegex}}}

	_, _, err := g.Partition(entry("a", 1), env)
	assert.True(t, errors.IsErrorCode(err, errors.ErrNotImplemented))

	_, err = g.Evaluate(entry("a", 1), env)
	assert.True(t, errors.IsErrorCode(err, errors.ErrNotImplemented))
}

func TestEmptyGroups(t *testing.T) {
	for _, q := range []Quantifier{All, Any, None} {
		got, err := FilterGroup{Match: q}.Evaluate(entry("a", 1), env)
		require.NoError(t, err)
		assert.Equal(t, q != Any, got, q.String())
	}
}

func TestParseQuantifierAndPolarity(t *testing.T) {
	for in, want := range map[string]Quantifier{"": All, "all": All, "ANY": Any, " none ": None} {
		got, err := ParseQuantifier(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got)
	}
	_, err := ParseQuantifier("most")
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))

	for in, want := range map[string]Polarity{"": Include, "include": Include, "Exclude": Exclude} {
		got, err := ParsePolarity(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got)
	}
	_, err = ParsePolarity("maybe")
	assert.Error(t, err)
}

func TestGroupString(t *testing.T) {
	g := FilterGroup{Filters: []filters.Predicate{filters.NewExtension("pdf"), filters.Empty{}}, Match: Any, Results: Exclude}
	assert.Equal(t, "any[extension in [pdf]; empty] (exclude)", g.String())
}

func TestEvaluator_Stages(t *testing.T) {
	entries := []types.Entry{entry("a.pdf", 2000), entry("b.pdf", 500), entry("c.txt", 3000), entry("d.txt", 10)}
	pdf := filters.NewExtension("pdf")

	tests := []struct {
		name   string
		groups []FilterGroup
		want   []string
	}{
		{
			name: "no groups admit everything",
			want: []string{"a.pdf", "b.pdf", "c.txt", "d.txt"},
		},
		{
			name:   "all group",
			groups: []FilterGroup{{Match: All, Filters: []filters.Predicate{pdf, sizeAtLeast(1000)}}},
			want:   []string{"a.pdf"},
		},
		{
			name: "two all groups both required",
			groups: []FilterGroup{
				{Match: All, Filters: []filters.Predicate{sizeAtLeast(100)}},
				{Match: All, Filters: []filters.Predicate{pdf}},
			},
			want: []string{"a.pdf", "b.pdf"},
		},
		{
			name: "any groups need one",
			groups: []FilterGroup{
				{Match: Any, Filters: []filters.Predicate{no}},
				{Match: Any, Filters: []filters.Predicate{pdf}},
			},
			want: []string{"a.pdf", "b.pdf"},
		},
		{
			name: "ignore group drops entries it holds for",
			// none[pdf] holds for entries that are not pdfs
			groups: []FilterGroup{{Match: None, Filters: []filters.Predicate{pdf}}},
			want:   []string{"a.pdf", "b.pdf"},
		},
		{
			name: "stages compose",
			groups: []FilterGroup{
				{Match: None, Filters: []filters.Predicate{sizeAtLeast(1000)}},
				{Match: All, Filters: []filters.Predicate{yes}},
				{Match: Any, Filters: []filters.Predicate{pdf}},
			},
			want: []string{"a.pdf"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ev := NewEvaluator(tt.groups)
			got, err := ev.Admit(entries, env)
			require.NoError(t, err)

			var names []string
			for _, e := range got {
				names = append(names, e.Name)
			}
			assert.Equal(t, tt.want, names)

			for _, e := range entries {
				ok, err := ev.Matches(e, env)
				require.NoError(t, err)
				assert.Equal(t, contains(tt.want, e.Name), ok, e.Name)
			}
		})
	}
}

func contains(names []string, name string) bool {
	for _, n := range names {
		if n == name {
			return true
		}
	}
	return false
}

func TestEvaluator_Buckets(t *testing.T) {
	ev := NewEvaluator([]FilterGroup{{Match: None}, {Match: All}, {Match: Any}, {Match: Any}})
	ignore, all, anyOf := ev.Buckets()
	assert.Equal(t, []int{1, 1, 2}, []int{ignore, all, anyOf})
}

func TestEvaluator_Unimplemented(t *testing.T) {
	ev := NewEvaluator([]FilterGroup{{Match: All, Filters: []filters.Predicate{filters.Unimplemented{Of: filters.KindHash}}}})

	_, err := ev.Admit([]types.Entry{entry("a", 1)}, env)
	assert.True(t, errors.IsErrorCode(err, errors.ErrNotImplemented))

	_, err = ev.Matches(entry("a", 1), env)
	assert.True(t, errors.IsErrorCode(err, errors.ErrNotImplemented))
}

func TestAdmission_Property(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100
	properties := gopter.NewProperties(parameters)

	build := func(sizes []int64, q1, q2, t1, t2 int) (*Evaluator, []types.Entry) {
		entries := make([]types.Entry, len(sizes))
		for i, s := range sizes {
			entries[i] = entry(fmt.Sprintf("f%03d", i), s)
		}
		ev := NewEvaluator([]FilterGroup{
			{Match: Quantifier(q1), Filters: []filters.Predicate{sizeAtLeast(t1)}},
			{Match: Quantifier(q2), Filters: []filters.Predicate{sizeAtLeast(t2), no}},
		})
		return ev, entries
	}

	properties.Property("admission is idempotent", prop.ForAll(
		func(sizes []int64, q1, q2, t1, t2 int) bool {
			ev, entries := build(sizes, q1, q2, t1, t2)
			once, err := ev.Admit(entries, env)
			if err != nil {
				return false
			}
			again, err := ev.Admit(entries, env)
			if err != nil {
				return false
			}
			twice, err := ev.Admit(once, env)
			if err != nil {
				return false
			}
			return equalEntries(once, again) && equalEntries(once, twice)
		},
		gen.SliceOf(gen.Int64Range(1, 5000)),
		gen.IntRange(0, 2),
		gen.IntRange(0, 2),
		gen.IntRange(1, 5000),
		gen.IntRange(1, 5000),
	))

	properties.Property("admission agrees with per-entry matching", prop.ForAll(
		func(sizes []int64, q1, q2, t1, t2 int) bool {
			ev, entries := build(sizes, q1, q2, t1, t2)
			admitted, err := ev.Admit(entries, env)
			if err != nil {
				return false
			}
			var expected []types.Entry
			for _, e := range entries {
				ok, err := ev.Matches(e, env)
				if err != nil {
					return false
				}
				if ok {
					expected = append(expected, e)
				}
			}
			return equalEntries(admitted, expected)
		},
		gen.SliceOf(gen.Int64Range(1, 5000)),
		gen.IntRange(0, 2),
		gen.IntRange(0, 2),
		gen.IntRange(1, 5000),
		gen.IntRange(1, 5000),
	))

	properties.TestingRun(t)
}

func equalEntries(a, b []types.Entry) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
