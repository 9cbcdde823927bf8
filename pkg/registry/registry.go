package registry

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/organize-rs/organize-sub000/pkg/errors"
)

// Registry stores items under normalized names
type Registry[T any] interface {
	// Register adds an item under name and any aliases
	Register(name string, item T, aliases ...string) error

	// Get retrieves an item by name or alias
	Get(name string) (T, error)

	// List returns the canonical names, sorted
	List() []string

	Has(name string) bool
	Count() int
}

type registry[T any] struct {
	mu      sync.RWMutex
	items   map[string]T
	aliases map[string]string
}

// New creates an empty Registry
func New[T any]() Registry[T] {
	return &registry[T]{
		items:   make(map[string]T),
		aliases: make(map[string]string),
	}
}

// Normalize lowers name and replaces dashes and spaces with underscores
func Normalize(name string) string {
	name = strings.ToLower(strings.TrimSpace(name))
	return strings.NewReplacer("-", "_", " ", "_").Replace(name)
}

func (r *registry[T]) Register(name string, item T, aliases ...string) error {
	key := Normalize(name)
	if key == "" {
		return errors.New(errors.ErrInvalidInput, "registry name cannot be empty")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.taken(key) {
		return errors.Newf(errors.ErrAlreadyExists, "'%s' is already registered", name)
	}
	for _, alias := range aliases {
		if a := Normalize(alias); r.taken(a) || a == key {
			return errors.Newf(errors.ErrAlreadyExists, "alias '%s' is already registered", alias)
		}
	}

	r.items[key] = item
	for _, alias := range aliases {
		r.aliases[Normalize(alias)] = key
	}
	return nil
}

func (r *registry[T]) taken(key string) bool {
	_, isItem := r.items[key]
	_, isAlias := r.aliases[key]
	return isItem || isAlias
}

func (r *registry[T]) Get(name string) (T, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	key := Normalize(name)
	if canonical, ok := r.aliases[key]; ok {
		key = canonical
	}

	item, exists := r.items[key]
	if !exists {
		var zero T
		return zero, errors.Newf(errors.ErrNotFound, "'%s' is not registered", name).
			WithDetail("known", r.list())
	}
	return item, nil
}

func (r *registry[T]) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.list()
}

func (r *registry[T]) list() []string {
	names := make([]string, 0, len(r.items))
	for name := range r.items {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (r *registry[T]) Has(name string) bool {
	_, err := r.Get(name)
	return err == nil
}

func (r *registry[T]) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.items)
}

// MustRegister registers an item and panics if registration fails.
// Registration errors during package init are programming errors.
func MustRegister[T any](reg Registry[T], name string, item T, aliases ...string) {
	if err := reg.Register(name, item, aliases...); err != nil {
		panic(fmt.Sprintf("failed to register %s: %v", name, err))
	}
}
