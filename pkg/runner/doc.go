// Package runner drives one organize pass as a sequence of stage types.
//
//	New() -> Init
//	Init.LoadConfigs / Init.WithRules -> Start
//	Start.ApplyFilters -> Inspect
//	Inspect.HandleConflicts -> HandleConflicts
//	HandleConflicts.Report -> Report
//
// Each stage type only offers the transition to the next stage, so conflict
// handling cannot run before filtering. Stages are values; a stage can be
// transitioned more than once and always starts from the same data.
//
// Actions are carried to the Report unchanged. The runner never touches the
// filesystem beyond reading it.
package runner
