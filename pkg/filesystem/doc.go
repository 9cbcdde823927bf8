// Package filesystem turns paths on an afero.Fs into types.Entry snapshots
// and answers the metadata questions predicates ask: emptiness, content
// type and OS timestamps.
//
// The OS filesystem (afero.NewOsFs) is used in production and an
// afero.MemMapFs in tests. Birth and access times are only read from the
// OS filesystem; on other backends they stay zero.
package filesystem
