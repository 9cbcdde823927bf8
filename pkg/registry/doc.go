// Package registry maps configuration names to items, such as the
// predicate factories and action kinds a rule file may reference.
//
// Names are normalized before use: case is ignored and "-" is treated as
// "_", so "Last-Modified" and "last_modified" refer to the same item.
package registry
