package runner

import (
	"context"
	"slices"
	"time"

	"github.com/organize-rs/organize-sub000/pkg/config"
	"github.com/organize-rs/organize-sub000/pkg/errors"
	"github.com/organize-rs/organize-sub000/pkg/filters"
	"github.com/organize-rs/organize-sub000/pkg/logging"
	"github.com/organize-rs/organize-sub000/pkg/rules"
	"github.com/organize-rs/organize-sub000/pkg/types"
	"github.com/organize-rs/organize-sub000/pkg/walker"
)

// ReasonTagsNotRequested marks rules whose tags miss the requested set
const ReasonTagsNotRequested = "tags not requested"

// Match pairs a rule with the entries it admitted, in walk order
type Match struct {
	Rule    rules.Rule
	Entries []types.Entry
}

// Skipped records a rule that did not run and why
type Skipped struct {
	Rule   string
	Reason string
}

// Init is the first stage: no rules are known yet
type Init struct {
	opts options
}

// New creates the Init stage
func New(opts ...Option) Init {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return Init{opts: o}
}

// LoadConfigs loads rule files. A parse error in any file aborts the load.
func (i Init) LoadConfigs(paths ...string) (Start, error) {
	loaded, err := config.LoadRules(paths...)
	if err != nil {
		return Start{}, err
	}
	return i.WithRules(loaded...), nil
}

// WithRules moves to Start with rules built in code
func (i Init) WithRules(rs ...rules.Rule) Start {
	return Start{opts: i.opts, rules: slices.Clone(rs)}
}

// Start holds the loaded rules
type Start struct {
	opts  options
	rules []rules.Rule
}

// Rules returns the loaded rules
func (s Start) Rules() []rules.Rule {
	return slices.Clone(s.rules)
}

// ApplyFilters runs every admitted rule over its locations. Disabled rules,
// rules tagged never and rules outside the requested tags are skipped with a
// diagnostic. An empty requested set admits every remaining rule.
func (s Start) ApplyFilters(ctx context.Context, requested []rules.Tag) (Inspect, error) {
	logger := logging.GetLogger("runner")
	s.opts = s.opts.complete()
	started := s.opts.clock()
	wanted := rules.Tags(requested)

	out := Inspect{opts: s.opts, started: started}
	for _, rule := range s.rules {
		if err := ctx.Err(); err != nil {
			return Inspect{}, err
		}

		reason := rule.SkipReason()
		if reason == "" && len(wanted) > 0 && !rule.Tags.Intersects(wanted) {
			reason = ReasonTagsNotRequested
		}
		if reason != "" {
			logger.Info().Str("rule", rule.Name).Str("reason", reason).Msg("Skipping rule")
			out.skipped = append(out.skipped, Skipped{Rule: rule.Name, Reason: reason})
			continue
		}

		entries, err := s.filterRule(ctx, rule)
		if err != nil {
			return Inspect{}, err
		}
		logger.Debug().Str("rule", rule.Name).Int("matched", len(entries)).Msg("Rule applied")
		out.matches = append(out.matches, Match{Rule: rule, Entries: entries})
	}
	return out, nil
}

// filterRule walks the rule's locations and admits entries. Paths reached
// through more than one location are evaluated once.
func (s Start) filterRule(ctx context.Context, rule rules.Rule) ([]types.Entry, error) {
	logger := logging.GetLogger("runner").With().Str("rule", rule.Name).Logger()
	w := walker.New(s.opts.fs)

	var candidates []types.Entry
	seen := make(map[string]struct{})
	for _, loc := range rule.Locations {
		seq, err := w.Entries(loc)
		if err != nil {
			if errors.IsErrorCode(err, errors.ErrLocationAccess) {
				logger.Warn().Err(err).Str("location", loc.Path).Msg("Skipping location")
				continue
			}
			return nil, err
		}

		stream := walker.Offload(ctx, seq, s.opts.capacity)
		for e := range stream.All() {
			if _, dup := seen[e.Path]; dup {
				continue
			}
			seen[e.Path] = struct{}{}
			candidates = append(candidates, e)
		}
		if err := stream.Close(); err != nil {
			return nil, err
		}
		if err := ctx.Err(); err != nil {
			return nil, err
		}
	}

	env := filters.Env{FS: s.opts.fs, Now: s.opts.clock()}
	return rules.NewEngine(rule).Filter(candidates, env)
}

// Inspect holds the matches of a filter pass
type Inspect struct {
	opts    options
	started time.Time
	matches []Match
	skipped []Skipped
}

// Matches returns the rule matches in rule order
func (i Inspect) Matches() []Match {
	return slices.Clone(i.matches)
}

// Skipped returns the rules that did not run
func (i Inspect) Skipped() []Skipped {
	return slices.Clone(i.skipped)
}

// HandleConflicts indexes which rules claimed each path. Matches are passed
// on unchanged; no conflict is resolved.
func (i Inspect) HandleConflicts() HandleConflicts {
	c := NewConflicts()
	for _, m := range i.matches {
		for _, e := range m.Entries {
			c.Claim(e.Path, m.Rule.Name)
		}
	}

	logger := logging.GetLogger("runner")
	logger.Debug().
		Int("paths", c.Len()).
		Int("conflicts", len(c.Conflicting())).
		Msg("Indexed claimed paths")

	return HandleConflicts{
		opts:      i.opts,
		started:   i.started,
		matches:   i.matches,
		skipped:   i.skipped,
		conflicts: c,
	}
}

// HandleConflicts holds the matches and the claim index
type HandleConflicts struct {
	opts      options
	started   time.Time
	matches   []Match
	skipped   []Skipped
	conflicts *Conflicts
}

// Matches returns the rule matches in rule order
func (h HandleConflicts) Matches() []Match {
	return slices.Clone(h.matches)
}

// Conflicts returns the claim index
func (h HandleConflicts) Conflicts() *Conflicts {
	return h.conflicts
}

// Report summarizes the run
func (h HandleConflicts) Report() Report {
	return newReport(h.started, h.opts.complete().clock(), h.matches, h.skipped, h.conflicts.Conflicting())
}
