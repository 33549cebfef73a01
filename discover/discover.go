// Package discover extracts game entity names from fixed schema
// locations in the game's data directories. The names feed wildcard
// expansion in package modtable.
package discover

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/eu4tools/pdxmul/debug"
	"github.com/eu4tools/pdxmul/ir"
	"github.com/eu4tools/pdxmul/parse"
)

// ErrSchema reports a file that parses but does not have the expected
// shape at a fixed location. It is fatal: continuing would expand
// wildcards against an incomplete entity set.
var ErrSchema = errors.New("schema error")

// Estates returns the estate names defined across dirs, with the
// `estate_` prefix stripped. Every top-level value must be a Block.
func Estates(dirs []string) ([]string, error) {
	names := map[string]bool{}
	err := eachFile(dirs, func(path string, root *ir.Node) error {
		for i, key := range root.Fields {
			if err := wantBlock(path, key, root.Values[i]); err != nil {
				return err
			}
			names[strings.TrimPrefix(key.String, "estate_")] = true
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return sorted(names), nil
}

// Factions returns the faction names defined across dirs, skipping
// top-level keys listed in ignores.
func Factions(dirs, ignores []string) ([]string, error) {
	skip := map[string]bool{}
	for _, ig := range ignores {
		skip[ig] = true
	}
	names := map[string]bool{}
	err := eachFile(dirs, func(path string, root *ir.Node) error {
		for i, key := range root.Fields {
			if skip[key.String] {
				continue
			}
			if err := wantBlock(path, key, root.Values[i]); err != nil {
				return err
			}
			names[key.String] = true
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return sorted(names), nil
}

// Powers returns the government power type ids found in the `powers`
// sub-block of each government mechanic across dirs.
func Powers(dirs []string) ([]string, error) {
	names := map[string]bool{}
	err := eachFile(dirs, func(path string, root *ir.Node) error {
		for i, key := range root.Fields {
			mechanic := root.Values[i]
			if err := wantBlock(path, key, mechanic); err != nil {
				return err
			}
			powers := mechanic.Get("powers")
			if powers == nil {
				continue
			}
			if powers.Type != ir.BlockType {
				return fmt.Errorf("%w: %s: powers of %q is %s, expected Block",
					ErrSchema, path, key.String, powers.Type)
			}
			for _, power := range powers.Fields {
				names[power.String] = true
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return sorted(names), nil
}

func eachFile(dirs []string, f func(path string, root *ir.Node) error) error {
	for _, dir := range dirs {
		entries, err := os.ReadDir(dir)
		if err != nil {
			return fmt.Errorf("could not read %q: %w", dir, err)
		}
		for _, entry := range entries {
			if entry.IsDir() {
				continue
			}
			path := filepath.Join(dir, entry.Name())
			if debug.Parse() {
				debug.Logf("discover: parsing %q", path)
			}
			d, err := os.ReadFile(path)
			if err != nil {
				return fmt.Errorf("could not read %q: %w", path, err)
			}
			root, err := parse.Parse(d)
			if err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}
			if err := f(path, root); err != nil {
				return err
			}
		}
	}
	return nil
}

func wantBlock(path string, key, val *ir.Node) error {
	if val.Type != ir.BlockType {
		return fmt.Errorf("%w: %s: %q is %s, expected Block",
			ErrSchema, path, key.String, val.Type)
	}
	return nil
}

func sorted(set map[string]bool) []string {
	res := make([]string, 0, len(set))
	for name := range set {
		res = append(res, name)
	}
	slices.Sort(res)
	return res
}
