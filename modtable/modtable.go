// Package modtable builds the flat modifier-name to multiplier table
// that bridges the gen-modifiers and multiply phases.
package modtable

import (
	"bufio"
	"fmt"
	"io"
	"regexp"
	"strings"

	"github.com/expr-lang/expr"

	"github.com/eu4tools/pdxmul/debug"
)

// Table maps concrete modifier names to their multipliers. It is the
// only artifact persisted between runs.
type Table map[string]float64

// Sets holds the discovered entity names substituted for wildcard
// placeholders. Estates, factions and powers come from package
// discover; tech categories come from configuration.
type Sets struct {
	Estates  []string
	Factions []string
	Powers   []string
	Techs    []string
}

// Options configures table construction. Override values may be
// numbers, or strings evaluated once as expressions with `mult` bound
// to the global multiplier (e.g. "mult / 2").
type Options struct {
	Multiplier float64
	Ignores    []string
	Overrides  map[string]any
	Sets       Sets
}

var placeholders = []struct {
	re  *regexp.Regexp
	set func(*Sets) []string
}{
	{regexp.MustCompile(`^(?P<before>.*)<estate>(?P<after>.*)$`), func(s *Sets) []string { return s.Estates }},
	{regexp.MustCompile(`^(?P<before>.*)<faction>(?P<after>.*)$`), func(s *Sets) []string { return s.Factions }},
	{regexp.MustCompile(`^(?P<before>.*)<government_power_type_id>(?P<after>.*)$`), func(s *Sets) []string { return s.Powers }},
	{regexp.MustCompile(`^(?P<before>.*)<tech>(?P<after>.*)$`), func(s *Sets) []string { return s.Techs }},
}

// Build reads modifier-name identifiers from r, one per line, and
// returns the expanded table. Blank lines and names listed in
// opts.Ignores are skipped. An override for a template name applies to
// every expansion of it; an override for a concrete name wins over
// both the template override and the global multiplier.
func Build(r io.Reader, opts *Options) (Table, error) {
	overrides, err := resolveOverrides(opts)
	if err != nil {
		return nil, err
	}
	ignores := map[string]bool{}
	for _, ig := range opts.Ignores {
		ignores[ig] = true
	}
	res := Table{}
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		ident := strings.TrimRight(scanner.Text(), " \t\r")
		if ident == "" || ignores[ident] {
			continue
		}
		base, haveBase := overrides[ident]
		if !haveBase {
			base = opts.Multiplier
		}
		expanded := false
		for _, ph := range placeholders {
			m := ph.re.FindStringSubmatch(ident)
			if m == nil {
				continue
			}
			before, after := m[1], m[2]
			for _, name := range ph.set(&opts.Sets) {
				key := before + name + after
				mult := base
				if o, ok := overrides[key]; ok {
					mult = o
				}
				res[key] = mult
			}
			expanded = true
			break
		}
		if !expanded {
			res[ident] = base
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading modifiers: %w", err)
	}
	if debug.Table() {
		debug.Logf("built modifier table with %d entries", len(res))
	}
	return res, nil
}

func resolveOverrides(opts *Options) (map[string]float64, error) {
	res := make(map[string]float64, len(opts.Overrides))
	env := map[string]any{"mult": opts.Multiplier}
	for key, v := range opts.Overrides {
		switch x := v.(type) {
		case float64:
			res[key] = x
		case int:
			res[key] = float64(x)
		case int64:
			res[key] = float64(x)
		case uint64:
			res[key] = float64(x)
		case string:
			out, err := expr.Eval(x, env)
			if err != nil {
				return nil, fmt.Errorf("override %q: %w", key, err)
			}
			f, err := toFloat(out)
			if err != nil {
				return nil, fmt.Errorf("override %q: %w", key, err)
			}
			res[key] = f
		default:
			return nil, fmt.Errorf("override %q: unsupported value %v (%T)", key, v, v)
		}
	}
	return res, nil
}

func toFloat(v any) (float64, error) {
	switch x := v.(type) {
	case float64:
		return x, nil
	case float32:
		return float64(x), nil
	case int:
		return float64(x), nil
	case int64:
		return float64(x), nil
	default:
		return 0, fmt.Errorf("expression yields %v (%T), not a number", v, v)
	}
}
