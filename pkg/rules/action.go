package rules

import (
	"fmt"
	"sort"
	"strings"

	"github.com/organize-rs/organize-sub000/pkg/errors"
	"github.com/organize-rs/organize-sub000/pkg/registry"
)

// ActionKind names what should happen to admitted entries. Actions are
// carried to the report; this package never executes them.
type ActionKind string

const (
	ActionMove    ActionKind = "move"
	ActionCopy    ActionKind = "copy"
	ActionRename  ActionKind = "rename"
	ActionTrash   ActionKind = "trash"
	ActionDelete  ActionKind = "delete"
	ActionSymlink ActionKind = "symlink"
	ActionWrite   ActionKind = "write"
	ActionEcho    ActionKind = "echo"
	ActionNone    ActionKind = "none"
)

// actionKinds maps config names and aliases to kinds; the value records
// whether the action changes the filesystem
var actionKinds = registry.New[actionInfo]()

type actionInfo struct {
	kind        ActionKind
	destructive bool
}

func init() {
	for _, a := range []struct {
		info    actionInfo
		aliases []string
	}{
		{actionInfo{ActionMove, true}, []string{"mv"}},
		{actionInfo{ActionCopy, true}, []string{"cp"}},
		{actionInfo{ActionRename, true}, nil},
		{actionInfo{ActionTrash, true}, nil},
		{actionInfo{ActionDelete, true}, []string{"rm"}},
		{actionInfo{ActionSymlink, true}, []string{"link"}},
		{actionInfo{ActionWrite, true}, nil},
		{actionInfo{ActionEcho, false}, nil},
		{actionInfo{ActionNone, false}, nil},
	} {
		registry.MustRegister(actionKinds, string(a.info.kind), a.info, a.aliases...)
	}
}

// ParseActionKind resolves a config name or alias
func ParseActionKind(s string) (ActionKind, error) {
	info, err := actionKinds.Get(s)
	if err != nil {
		return "", errors.Wrapf(err, errors.ErrInvalidInput, "unknown action %q", s)
	}
	return info.kind, nil
}

// ActionKinds returns the config names of all actions
func ActionKinds() []string {
	return actionKinds.List()
}

// Destructive reports whether the action would change the filesystem
func (k ActionKind) Destructive() bool {
	info, err := actionKinds.Get(string(k))
	return err == nil && info.destructive
}

// Action is one step a rule asks for, with its free-form parameters
type Action struct {
	Kind   ActionKind     `json:"action"`
	Params map[string]any `json:"params,omitempty"`
}

func (a Action) String() string {
	if len(a.Params) == 0 {
		return string(a.Kind)
	}
	keys := make([]string, 0, len(a.Params))
	for k := range a.Params {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = fmt.Sprintf("%s=%v", k, a.Params[k])
	}
	return fmt.Sprintf("%s(%s)", a.Kind, strings.Join(parts, ", "))
}
