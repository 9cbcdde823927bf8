package display

import (
	"time"

	"github.com/organize-rs/organize-sub000/pkg/runner"
	"github.com/organize-rs/organize-sub000/pkg/types"
)

// ReportView is the serializable form of a run report shared by all
// renderers
type ReportView struct {
	ID        string         `json:"id"`
	Started   time.Time      `json:"started"`
	Finished  time.Time      `json:"finished"`
	Duration  time.Duration  `json:"duration_ns"`
	Total     int            `json:"total"`
	Matches   []MatchView    `json:"matches"`
	Skipped   []SkippedView  `json:"skipped"`
	Conflicts []ConflictView `json:"conflicts"`
}

// MatchView is one rule with the entries it admitted and the actions that
// would be applied to them
type MatchView struct {
	Rule    string        `json:"rule"`
	Tags    []string      `json:"tags,omitempty"`
	Actions []string      `json:"actions"`
	Entries []types.Entry `json:"entries"`
}

type SkippedView struct {
	Rule   string `json:"rule"`
	Reason string `json:"reason"`
}

type ConflictView struct {
	Path  string   `json:"path"`
	Rules []string `json:"rules"`
}

// NewReportView converts a runner report. Slices are never nil so JSON
// output always carries arrays.
func NewReportView(r runner.Report) ReportView {
	v := ReportView{
		ID:        r.ID,
		Started:   r.Started,
		Finished:  r.Finished,
		Duration:  r.Duration(),
		Total:     r.Total(),
		Matches:   make([]MatchView, 0, len(r.Matches)),
		Skipped:   make([]SkippedView, 0, len(r.Skipped)),
		Conflicts: make([]ConflictView, 0, len(r.Conflicts)),
	}

	for _, m := range r.Matches {
		mv := MatchView{
			Rule:    m.Rule.Name,
			Tags:    m.Rule.Tags.Strings(),
			Actions: make([]string, 0, len(m.Rule.Actions)),
			Entries: m.Entries,
		}
		if mv.Entries == nil {
			mv.Entries = []types.Entry{}
		}
		for _, a := range m.Rule.Actions {
			mv.Actions = append(mv.Actions, a.String())
		}
		v.Matches = append(v.Matches, mv)
	}
	for _, s := range r.Skipped {
		v.Skipped = append(v.Skipped, SkippedView{Rule: s.Rule, Reason: s.Reason})
	}
	for _, c := range r.Conflicts {
		v.Conflicts = append(v.Conflicts, ConflictView{Path: c.Path, Rules: c.Rules})
	}
	return v
}
