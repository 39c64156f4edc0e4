// Package snippets holds the Ruby snippet library: trigger words mapped to
// template bodies. Templates use %N(placeholder) markers; expanding them is
// the editor's job, so bodies are opaque strings here.
package snippets

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Library maps snippet triggers to template bodies.
type Library struct {
	snippets map[string]string
}

// New returns a library preloaded with the built-in Ruby snippets.
func New() *Library {
	l := &Library{snippets: make(map[string]string, len(builtin))}
	for trigger, body := range builtin {
		l.snippets[trigger] = body
	}
	return l
}

// LoadDir merges user snippets from dir into the library. Each *.snippet
// file contributes one snippet: the filename (without extension) is the
// trigger and the file content, with one trailing newline trimmed, is the
// body. User snippets override builtins with the same trigger.
func (l *Library) LoadDir(dir string) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return err
	}
	for _, e := range entries {
		if e.IsDir() || filepath.Ext(e.Name()) != ".snippet" {
			continue
		}
		body, err := os.ReadFile(filepath.Join(dir, e.Name()))
		if err != nil {
			return err
		}
		trigger := strings.TrimSuffix(e.Name(), ".snippet")
		l.snippets[trigger] = strings.TrimSuffix(string(body), "\n")
	}
	return nil
}

// Lookup returns the body for an exact trigger.
func (l *Library) Lookup(trigger string) (string, bool) {
	body, ok := l.snippets[trigger]
	return body, ok
}

// Triggers returns all triggers starting with prefix, sorted. An empty
// prefix lists everything.
func (l *Library) Triggers(prefix string) []string {
	var out []string
	for trigger := range l.snippets {
		if strings.HasPrefix(trigger, prefix) {
			out = append(out, trigger)
		}
	}
	sort.Strings(out)
	return out
}

// Len returns the number of snippets in the library.
func (l *Library) Len() int { return len(l.snippets) }
