package state

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
)

// ErrNoPrevious means no previous-workspace record exists yet, typically
// because the monitor daemon has not observed a workspace change.
var ErrNoPrevious = errors.New("no previous workspace recorded")

// PreviousWorkspace is the workspace that lost focus on the last observed
// workspace change. On disk it is a two-element JSON array [name, num].
type PreviousWorkspace struct {
	Name string
	Num  int32
}

func (p PreviousWorkspace) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]any{p.Name, p.Num})
}

func (p *PreviousWorkspace) UnmarshalJSON(data []byte) error {
	var parts []json.RawMessage
	if err := json.Unmarshal(data, &parts); err != nil {
		return err
	}
	if len(parts) != 2 {
		return fmt.Errorf("expected a two-element array, got %d elements", len(parts))
	}
	if err := json.Unmarshal(parts[0], &p.Name); err != nil {
		return err
	}
	return json.Unmarshal(parts[1], &p.Num)
}

// RecordPrevious overwrites the previous-workspace file. Last writer wins;
// there is no locking.
func (s *Store) RecordPrevious(name string, num int32) error {
	data, err := json.Marshal(PreviousWorkspace{Name: name, Num: num})
	if err != nil {
		return fmt.Errorf("encode previous workspace: %w", err)
	}
	if err := writeFileAtomic(s.previousPath, data); err != nil {
		return fmt.Errorf("write previous-workspace file: %w", err)
	}
	return nil
}

// LoadPrevious reads the previous-workspace record. A missing file yields
// ErrNoPrevious.
func (s *Store) LoadPrevious() (PreviousWorkspace, error) {
	data, err := os.ReadFile(s.previousPath)
	if os.IsNotExist(err) {
		return PreviousWorkspace{}, ErrNoPrevious
	}
	if err != nil {
		return PreviousWorkspace{}, fmt.Errorf("read previous-workspace file: %w", err)
	}
	var previous PreviousWorkspace
	if err := json.Unmarshal(data, &previous); err != nil {
		return PreviousWorkspace{}, fmt.Errorf("parse previous-workspace file %s: %w", s.previousPath, err)
	}
	return previous, nil
}
