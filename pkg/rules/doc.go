// Package rules holds the rule model and the filter-group algebra that
// reduces many predicates to one admit or reject decision per entry.
//
// A FilterGroup combines predicates with a quantifier:
//
//   - all:  every predicate is true
//   - any:  at least one predicate is true
//   - none: no predicate is true
//
// An Evaluator sorts a rule's groups into three buckets and admits entries
// in three stages. Entries for which any "none" group evaluates true are
// dropped first. The rest must satisfy every "all" group, and finally at
// least one "any" group. Empty buckets pass everything.
//
// Groups also carry a polarity (include or exclude). It is parsed and
// reported but does not change evaluation.
package rules
