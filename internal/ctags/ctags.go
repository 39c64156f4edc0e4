// Package ctags indexes ctags tags files for symbol completion. The format
// is a tab-separated line per symbol: name, file, ex command, then optional
// extension fields. Lookup is a linear scan; tags files are flat and the
// scan is bounded by their size.
package ctags

import (
	"bufio"
	"context"
	"log"
	"os"
	"sort"
	"strings"
	"sync"
)

// Tag is one entry from a tags file.
type Tag struct {
	Name  string
	File  string // path as recorded in the tags file
	ExCmd string // search pattern or line number locating the symbol
	Kind  string // single-letter ctags kind, "" when absent
}

// Index holds the tags loaded from one or more tags files.
type Index struct {
	mu     sync.RWMutex
	byFile map[string][]Tag // tags file path -> its entries
}

// New creates an empty index.
func New() *Index {
	return &Index{byFile: make(map[string][]Tag)}
}

// Load reads all given tags files concurrently. Unreadable files are
// logged and skipped; Load only fails on context cancellation.
func (idx *Index) Load(ctx context.Context, paths []string) error {
	var wg sync.WaitGroup
	sem := make(chan struct{}, 8)

	for _, path := range paths {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		wg.Add(1)
		go func(path string) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()

			if err := idx.Reload(path); err != nil {
				log.Printf("failed to load tags file %s: %v", path, err)
			}
		}(path)
	}

	wg.Wait()
	log.Printf("loaded %d tags", idx.Len())
	return nil
}

// Reload reads or re-reads one tags file, replacing its entries.
func (idx *Index) Reload(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	var tags []Tag
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 64*1024), 1024*1024)
	for scanner.Scan() {
		if tag, ok := parseLine(scanner.Text()); ok {
			tags = append(tags, tag)
		}
	}
	if err := scanner.Err(); err != nil {
		return err
	}

	idx.mu.Lock()
	idx.byFile[path] = tags
	idx.mu.Unlock()
	return nil
}

// Remove drops all entries that came from the given tags file.
func (idx *Index) Remove(path string) {
	idx.mu.Lock()
	delete(idx.byFile, path)
	idx.mu.Unlock()
}

// Complete returns all tags whose name starts with prefix, sorted by name
// and deduplicated by (name, file).
func (idx *Index) Complete(prefix string) []Tag {
	idx.mu.RLock()
	defer idx.mu.RUnlock()

	seen := make(map[string]struct{})
	var out []Tag
	for _, tags := range idx.byFile {
		for _, tag := range tags {
			if !strings.HasPrefix(tag.Name, prefix) {
				continue
			}
			key := tag.Name + "\x00" + tag.File
			if _, dup := seen[key]; dup {
				continue
			}
			seen[key] = struct{}{}
			out = append(out, tag)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Name != out[j].Name {
			return out[i].Name < out[j].Name
		}
		return out[i].File < out[j].File
	})
	return out
}

// Lookup returns all tags named exactly name.
func (idx *Index) Lookup(name string) []Tag {
	idx.mu.RLock()
	defer idx.mu.RUnlock()

	var out []Tag
	for _, tags := range idx.byFile {
		for _, tag := range tags {
			if tag.Name == name {
				out = append(out, tag)
			}
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].File < out[j].File })
	return out
}

// Len returns the total number of indexed tags.
func (idx *Index) Len() int {
	idx.mu.RLock()
	defer idx.mu.RUnlock()

	n := 0
	for _, tags := range idx.byFile {
		n += len(tags)
	}
	return n
}

// parseLine parses one tags file line. Header lines (!_TAG_...) and
// malformed lines report ok=false.
func parseLine(line string) (Tag, bool) {
	if line == "" || strings.HasPrefix(line, "!_TAG_") {
		return Tag{}, false
	}
	parts := strings.SplitN(line, "\t", 4)
	if len(parts) < 3 || parts[0] == "" {
		return Tag{}, false
	}

	tag := Tag{Name: parts[0], File: parts[1]}

	// Extended format terminates the ex command with ;" before the
	// extension fields.
	excmd := parts[2]
	if i := strings.Index(excmd, `;"`); i >= 0 {
		excmd = excmd[:i]
	}
	tag.ExCmd = excmd

	if len(parts) == 4 {
		for _, field := range strings.Split(parts[3], "\t") {
			switch {
			case strings.HasPrefix(field, "kind:"):
				tag.Kind = strings.TrimPrefix(field, "kind:")
			case len(field) == 1:
				tag.Kind = field
			}
		}
	}
	return tag, true
}
