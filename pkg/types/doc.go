// Package types defines the data shared between the walker, the predicate
// catalog and the rule engine: Entry snapshots of filesystem items and the
// Location a rule scans.
package types
