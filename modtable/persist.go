package modtable

import (
	"encoding/json"
	"fmt"
	"os"

	jsonpatch "github.com/evanphx/json-patch"
)

// Save writes the table as a flat JSON object.
func Save(path string, tbl Table) error {
	d, err := json.MarshalIndent(tbl, "", "  ")
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, append(d, '\n'), 0644); err != nil {
		return fmt.Errorf("could not write %q: %w", path, err)
	}
	return nil
}

// Load reads a table previously written by Save. Anything other than
// a flat object of numbers is rejected.
func Load(path string) (Table, error) {
	d, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("could not read %q: %w", path, err)
	}
	tbl := Table{}
	if err := json.Unmarshal(d, &tbl); err != nil {
		return nil, fmt.Errorf("could not decode %q: %w", path, err)
	}
	return tbl, nil
}

// MergePatch applies an RFC 7386 merge patch to the table, so a
// generated table can be adjusted declaratively: numbers replace
// entries, null removes them.
func MergePatch(tbl Table, patch []byte) (Table, error) {
	doc, err := json.Marshal(tbl)
	if err != nil {
		return nil, err
	}
	merged, err := jsonpatch.MergePatch(doc, patch)
	if err != nil {
		return nil, fmt.Errorf("could not apply patch: %w", err)
	}
	res := Table{}
	if err := json.Unmarshal(merged, &res); err != nil {
		return nil, fmt.Errorf("patched table is not a flat number table: %w", err)
	}
	return res, nil
}
