package scriptlet

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// LoadFile parses every scriptlet in one markdown file. An H1 heading sets
// the group for the H2 sections that follow it; sections that fail to parse
// are skipped, never failing the file.
func LoadFile(path string) ([]Scriptlet, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading scriptlet file: %w", err)
	}

	var scriptlets []Scriptlet
	group := ""
	lines := strings.Split(string(data), "\n")

	sectionStart := -1
	flush := func(end int) {
		if sectionStart < 0 {
			return
		}
		section := strings.Join(lines[sectionStart:end], "\n")
		if s, ok := Parse(group, section); ok {
			scriptlets = append(scriptlets, s)
		} else {
			parseLog.Warn("skipping unparsable scriptlet section", "file", filepath.Base(path))
		}
		sectionStart = -1
	}

	for i, line := range lines {
		trimmed := strings.TrimSpace(line)
		if name, ok := strings.CutPrefix(trimmed, "# "); ok && !strings.HasPrefix(trimmed, "## ") {
			flush(i)
			group = strings.TrimSpace(name)
			continue
		}
		if strings.HasPrefix(trimmed, "## ") {
			flush(i)
			sectionStart = i
		}
	}
	flush(len(lines))

	return scriptlets, nil
}

// LoadDir parses every .md file directly under dir, in name order so the
// resulting action sets are deterministic across runs.
func LoadDir(dir string) ([]Scriptlet, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading scriptlet directory: %w", err)
	}

	var names []string
	for _, entry := range entries {
		if entry.IsDir() || !strings.EqualFold(filepath.Ext(entry.Name()), ".md") {
			continue
		}
		names = append(names, entry.Name())
	}
	sort.Strings(names)

	var scriptlets []Scriptlet
	for _, name := range names {
		parsed, err := LoadFile(filepath.Join(dir, name))
		if err != nil {
			parseLog.Warn("skipping unreadable scriptlet file", "file", name, "err", err)
			continue
		}
		scriptlets = append(scriptlets, parsed...)
	}
	return scriptlets, nil
}
