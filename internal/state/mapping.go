// Package state persists the two on-disk records swayws keeps: the
// output-to-workspace-numbers mapping and the previously focused workspace.
// Both live under the runtime directory and are overwritten wholesale on
// every save; nothing is merged from disk.
package state

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
)

// Mapping assigns each output name the set of workspace numbers it should
// host. Number sets are kept sorted and free of duplicates.
type Mapping map[string][]int32

// OutputFor returns the output claiming the workspace number, or "" when no
// output does.
func (m Mapping) OutputFor(num int32) string {
	for output, nums := range m {
		for _, n := range nums {
			if n == num {
				return output
			}
		}
	}
	return ""
}

// Outputs returns the mapped output names in sorted order.
func (m Mapping) Outputs() []string {
	outputs := make([]string, 0, len(m))
	for output := range m {
		outputs = append(outputs, output)
	}
	sort.Strings(outputs)
	return outputs
}

// Store reads and writes the mapping and previous-workspace files.
type Store struct {
	mappingPath  string
	previousPath string
}

func NewStore(mappingPath, previousPath string) *Store {
	return &Store{mappingPath: mappingPath, previousPath: previousPath}
}

// LoadMapping reads the mapping file. A missing file yields an empty
// mapping; any other read or decode failure is an error.
func (s *Store) LoadMapping() (Mapping, error) {
	data, err := os.ReadFile(s.mappingPath)
	if os.IsNotExist(err) {
		return Mapping{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read mapping file: %w", err)
	}
	var mapping Mapping
	if err := json.Unmarshal(data, &mapping); err != nil {
		return nil, fmt.Errorf("parse mapping file %s: %w", s.mappingPath, err)
	}
	return mapping, nil
}

// SaveMapping atomically replaces the mapping file with the full mapping.
func (s *Store) SaveMapping(mapping Mapping) error {
	data, err := json.Marshal(mapping)
	if err != nil {
		return fmt.Errorf("encode mapping: %w", err)
	}
	if err := writeFileAtomic(s.mappingPath, data); err != nil {
		return fmt.Errorf("write mapping file: %w", err)
	}
	return nil
}

// writeFileAtomic writes via a temp file in the target directory and
// renames it into place, so readers never observe a partial file.
func writeFileAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp-*")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return err
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return err
	}
	return nil
}
