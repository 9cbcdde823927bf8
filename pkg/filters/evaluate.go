package filters

import (
	"strings"
	"time"

	"github.com/organize-rs/organize-sub000/pkg/errors"
	"github.com/organize-rs/organize-sub000/pkg/filesystem"
	"github.com/organize-rs/organize-sub000/pkg/logging"
	"github.com/organize-rs/organize-sub000/pkg/ranges"
	"github.com/organize-rs/organize-sub000/pkg/types"
	"github.com/spf13/afero"
)

// Env carries what predicates need besides the entry itself
type Env struct {
	FS afero.Fs
	// Now is the instant elapsed-time predicates measure against
	Now time.Time
}

// Evaluate applies p to e. Metadata problems make the predicate false;
// only unimplemented predicates return an error.
func Evaluate(p Predicate, e types.Entry, env Env) (bool, error) {
	switch p := p.(type) {
	case Extension:
		return matchExtension(p, e), nil
	case Name:
		return matchName(p, e), nil
	case Size:
		if p.Range == nil || e.IsDir() {
			return false, nil
		}
		return p.Range.Contains(float64(e.Size)), nil
	case Created:
		return matchAge(p.Range, e.Created, env.Now, e, KindCreated), nil
	case LastModified:
		return matchAge(p.Range, e.Modified, env.Now, e, KindLastModified), nil
	case LastAccessed:
		return matchAge(p.Range, e.Accessed, env.Now, e, KindLastAccessed), nil
	case Empty:
		return matchEmpty(e, env), nil
	case Mimetype:
		return matchMimetype(p, e, env), nil
	case IgnoreName:
		return !containsAnyFold(e.Name, p.Patterns), nil
	case IgnorePath:
		return !containsAnyFold(e.Path, p.Patterns), nil
	case AllItems:
		return p.Consent, nil
	case NoFilter:
		return false, nil
	case Unimplemented:
		return false, errors.Newf(errors.ErrNotImplemented, "filter %s is not implemented", p.Of).
			WithDetail("filter", p.Of.String())
	case nil:
		return false, errors.New(errors.ErrInternal, "nil predicate")
	default:
		return false, errors.Newf(errors.ErrInternal, "unknown predicate type %T", p)
	}
}

func matchExtension(p Extension, e types.Entry) bool {
	if e.IsDir() {
		return false
	}
	ext := e.Extension()
	for _, want := range p.Exts {
		if strings.EqualFold(ext, strings.TrimPrefix(want, ".")) {
			logger := logging.GetLogger("filters.extension")
			logger.Trace().
				Str("path", e.Path).
				Str("extension", want).
				Msg("file extension matched")
			return true
		}
	}
	return false
}

func matchName(p Name, e types.Entry) bool {
	stem := e.Stem()
	if p.CaseInsensitive {
		stem = strings.ToLower(stem)
	}

	lists := []struct {
		criteria []Criterion
		holds    func(s, pattern string) bool
	}{
		{p.StartsWith, strings.HasPrefix},
		{p.Contains, strings.Contains},
		{p.EndsWith, strings.HasSuffix},
	}

	active, positives, matched := false, 0, false
	for _, list := range lists {
		for _, c := range list.criteria {
			active = true
			pattern := c.Pattern
			if p.CaseInsensitive {
				pattern = strings.ToLower(pattern)
			}
			holds := list.holds(stem, pattern)

			if c.Negated {
				if holds {
					return false
				}
				continue
			}
			positives++
			matched = matched || holds
		}
	}

	if !active {
		return false
	}
	// Only negations were configured and none fired
	if positives == 0 {
		return true
	}
	return matched
}

func matchAge(r *ranges.Range, ts, now time.Time, e types.Entry, kind Kind) bool {
	if r == nil || ts.IsZero() {
		return false
	}

	elapsed := now.Sub(ts).Seconds()
	if elapsed < 0 {
		logger := logging.GetLogger("filters")
		logger.Debug().
			Str("code", string(errors.ErrClockSkew)).
			Str("path", e.Path).
			Str("filter", kind.String()).
			Time("timestamp", ts).
			Time("now", now).
			Msg("Timestamp lies in the future")
		return false
	}
	return r.Contains(elapsed)
}

func matchEmpty(e types.Entry, env Env) bool {
	if e.Type == types.Dir && env.FS == nil {
		return false
	}
	empty, err := filesystem.IsEmpty(env.FS, e)
	if err != nil {
		logger := logging.GetLogger("filters")
		logger.Debug().Err(err).Str("path", e.Path).Msg("Cannot check emptiness")
		return false
	}
	return empty
}

func matchMimetype(p Mimetype, e types.Entry, env Env) bool {
	if e.Type != types.File || env.FS == nil || len(p.Types) == 0 {
		return false
	}

	detected, err := filesystem.DetectMediaType(env.FS, e.Path)
	if err != nil {
		logger := logging.GetLogger("filters")
		logger.Debug().Err(err).Str("path", e.Path).Msg("Cannot detect media type")
		return false
	}

	for _, want := range p.Types {
		if want == detected {
			return true
		}
	}
	return false
}

func containsAnyFold(s string, patterns []string) bool {
	lower := strings.ToLower(s)
	for _, pattern := range patterns {
		if pattern != "" && strings.Contains(lower, strings.ToLower(pattern)) {
			return true
		}
	}
	return false
}
