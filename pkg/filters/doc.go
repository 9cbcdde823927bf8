// Package filters is the predicate catalog: the closed set of tests a rule
// can apply to a filesystem entry.
//
// Predicates are plain values built once at rule-load time (ranges parsed,
// "#!" negations split off, media types normalized) and evaluated by the
// single Evaluate function. Six schema members (regex, file_content,
// duplicate, exif, mac_os_tags, hash) are accepted by the loader but fail
// evaluation with NOT_IMPLEMENTED so callers can tell "no match" apart from
// "not supported".
package filters
