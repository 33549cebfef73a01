package discover

import (
	"errors"
	"os"
	"path/filepath"
	"slices"
	"testing"
)

func writeFiles(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for name, content := range files {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0644); err != nil {
			t.Fatal(err)
		}
	}
	return dir
}

func TestEstates(t *testing.T) {
	dir := writeFiles(t, map[string]string{
		"00_estates.txt": "estate_church = {\n\ticon = 1\n}\nestate_nobility = { icon = 2 }\n",
	})
	got, err := Estates([]string{dir})
	if err != nil {
		t.Fatal(err)
	}
	if !slices.Equal(got, []string{"church", "nobility"}) {
		t.Errorf("got %v", got)
	}
}

func TestEstatesSchemaErr(t *testing.T) {
	dir := writeFiles(t, map[string]string{
		"bad.txt": "estate_church = yes\n",
	})
	_, err := Estates([]string{dir})
	if !errors.Is(err, ErrSchema) {
		t.Errorf("got %v, want ErrSchema", err)
	}
}

func TestFactions(t *testing.T) {
	dir := writeFiles(t, map[string]string{
		"factions.txt": "mr_aristocrats = { monarch_power = MIL }\nmr_guilds = { monarch_power = DIP }\nignored_key = { }\n",
	})
	got, err := Factions([]string{dir}, []string{"ignored_key"})
	if err != nil {
		t.Fatal(err)
	}
	if !slices.Equal(got, []string{"mr_aristocrats", "mr_guilds"}) {
		t.Errorf("got %v", got)
	}
}

func TestPowers(t *testing.T) {
	dir := writeFiles(t, map[string]string{
		"mechanics.txt": `russian_mechanic = {
	basic_rule = yes
	powers = {
		ADM_power = { max = 100 }
		DIP_power = { max = 100 }
	}
}
plain_mechanic = {
	basic_rule = no
}
`,
	})
	got, err := Powers([]string{dir})
	if err != nil {
		t.Fatal(err)
	}
	if !slices.Equal(got, []string{"ADM_power", "DIP_power"}) {
		t.Errorf("got %v", got)
	}
}

func TestPowersSchemaErr(t *testing.T) {
	dir := writeFiles(t, map[string]string{
		"mechanics.txt": "m = {\n\tpowers = no\n}\n",
	})
	_, err := Powers([]string{dir})
	if !errors.Is(err, ErrSchema) {
		t.Errorf("got %v, want ErrSchema", err)
	}
}

func TestParseFailurePropagates(t *testing.T) {
	dir := writeFiles(t, map[string]string{
		"broken.txt": "estate_church = {\n",
	})
	if _, err := Estates([]string{dir}); err == nil {
		t.Fatal("expected parse error")
	}
}
