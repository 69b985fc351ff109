package sway

import "fmt"

type targetKind int

const (
	byNumber targetKind = iota
	byName
	byBoth
)

// Target addresses a workspace by number, by name, or by both. Commands
// built from a Target use sway's "number N", "NAME" or "number N:NAME"
// forms, which decide whether sway matches on the number or the full name.
type Target struct {
	kind targetKind
	num  int32
	name string
}

// NumberTarget addresses a workspace by its number.
func NumberTarget(num int32) Target {
	return Target{kind: byNumber, num: num}
}

// NameTarget addresses a workspace by its full name.
func NameTarget(name string) Target {
	return Target{kind: byName, name: name}
}

// FullTarget addresses a workspace by number and name at once.
func FullTarget(num int32, name string) Target {
	return Target{kind: byBoth, num: num, name: name}
}

// Number returns the target's workspace number, if it has one.
func (t Target) Number() (int32, bool) {
	if t.kind == byName {
		return 0, false
	}
	return t.num, true
}

// Name returns the target's workspace name, if it has one.
func (t Target) Name() (string, bool) {
	if t.kind == byNumber {
		return "", false
	}
	return t.name, true
}

// Matches reports whether ws is the workspace the target addresses: its
// name equals the requested name or its number equals the requested number.
func (t Target) Matches(ws Workspace) bool {
	if name, ok := t.Name(); ok && name == ws.Name {
		return true
	}
	if num, ok := t.Number(); ok && num == ws.Num {
		return true
	}
	return false
}

// spec renders the workspace selector used after "workspace" and
// "move to workspace".
func (t Target) spec() string {
	switch t.kind {
	case byNumber:
		return fmt.Sprintf("number %d", t.num)
	case byBoth:
		return fmt.Sprintf("number %d:%s", t.num, t.name)
	default:
		return t.name
	}
}

func (t Target) String() string {
	return t.spec()
}
