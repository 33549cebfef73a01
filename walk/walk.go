// Package walk mirrors a game data tree into a destination tree,
// multiplying modifiers in every eligible file along the way. Only
// files the transformer actually changed are written, so the
// destination stays free of diff noise.
package walk

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/eu4tools/pdxmul/debug"
	"github.com/eu4tools/pdxmul/encode"
	"github.com/eu4tools/pdxmul/ir"
	"github.com/eu4tools/pdxmul/modtable"
	"github.com/eu4tools/pdxmul/parse"
	"github.com/eu4tools/pdxmul/token"
	"github.com/eu4tools/pdxmul/transform"
)

// LooseFilesDir is the directory whose immediate plain files are
// skipped; the game keeps non-script scratch files there.
const LooseFilesDir = "common"

// StaticDir marks files holding always-active modifier groupings,
// which get the shallower static skip rule.
const StaticDir = "static_modifiers"

type Walker struct {
	Table        modtable.Table
	IgnoreBlocks map[string]bool
	StaticIgnore map[string]bool

	// IgnoreDirs are directory names skipped wholesale (colors,
	// bookmarks and other content irrelevant to numeric balance).
	IgnoreDirs map[string]bool

	// KeepGoing continues past per-file parse failures instead of
	// aborting the batch.
	KeepGoing bool

	// ShowDiff prints a change report for every written file.
	ShowDiff bool

	// Out receives progress output; nil discards it.
	Out io.Writer
}

type frame struct {
	src, dst string
}

// Run walks source depth first with an explicit stack, mirroring the
// directory structure of changed files under destination.
func (w *Walker) Run(source, destination string) error {
	stack := []frame{{src: source, dst: destination}}
	for len(stack) > 0 {
		fr := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		info, err := os.Stat(fr.src)
		if err != nil {
			return fmt.Errorf("could not stat %q: %w", fr.src, err)
		}
		if !info.IsDir() {
			if err := w.file(fr.src, fr.dst); err != nil {
				if !w.KeepGoing {
					return err
				}
				w.printf("  skipping: %v\n", err)
			}
			continue
		}
		entries, err := os.ReadDir(fr.src)
		if err != nil {
			return fmt.Errorf("could not read %q: %w", fr.src, err)
		}
		base := filepath.Base(fr.src)
		for _, entry := range entries {
			if base == LooseFilesDir && !entry.IsDir() {
				continue
			}
			if w.IgnoreDirs[entry.Name()] {
				continue
			}
			stack = append(stack, frame{
				src: filepath.Join(fr.src, entry.Name()),
				dst: filepath.Join(fr.dst, entry.Name()),
			})
		}
	}
	return nil
}

func (w *Walker) file(src, dst string) error {
	w.printf("processing %q:\n", src)
	d, err := os.ReadFile(src)
	if err != nil {
		return fmt.Errorf("could not read %q: %w", src, err)
	}
	positions := map[*ir.Node]*token.Pos{}
	root, err := parse.Parse(d, parse.ParsePositions(positions))
	if err != nil {
		return fmt.Errorf("%s: %w", src, err)
	}
	tr := &transform.Transformer{
		Table:        w.Table,
		IgnoreBlocks: w.IgnoreBlocks,
		StaticIgnore: w.StaticIgnore,
		Positions:    positions,
		Path:         src,
		Warnf:        w.warnf,
	}
	var changed bool
	if filepath.Base(filepath.Dir(src)) == StaticDir {
		changed, err = tr.ProcessStatic(root)
		if err != nil {
			return err
		}
	} else {
		changed = tr.Process(root)
	}
	if !changed {
		w.printf("  no changes, skipping write\n")
		return nil
	}
	buf := &bytes.Buffer{}
	if err := encode.Encode(root, buf); err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(dst), 0755); err != nil {
		return fmt.Errorf("could not create %q: %w", filepath.Dir(dst), err)
	}
	if err := os.WriteFile(dst, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("could not write %q: %w", dst, err)
	}
	w.printf("  changes written to %q\n", dst)
	if w.ShowDiff && w.Out != nil {
		printDiff(w.Out, string(d), buf.String())
	}
	if debug.Walk() {
		debug.Logf("walk: %s -> %s (%d bytes)", src, dst, buf.Len())
	}
	return nil
}

func (w *Walker) printf(format string, args ...any) {
	if w.Out == nil {
		return
	}
	fmt.Fprintf(w.Out, format, args...)
}

func (w *Walker) warnf(format string, args ...any) {
	w.printf("  "+format+"\n", args...)
}
