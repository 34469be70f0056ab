// Package prompts provides the embedded prompt templates for the explanatory
// collaborator. Templates live in JSON files compiled into the binary, keyed
// by prompt name, with {{.Key}} placeholders substituted at request time.
package prompts

import (
	"embed"
	"encoding/json"
	"fmt"
	"strings"
	"sync"
)

//go:embed *.json
var promptFiles embed.FS

// parsed caches already-decoded prompt files. Each file decodes to a flat
// name-to-template map.
var (
	parsed   = make(map[string]map[string]string)
	parsedMu sync.RWMutex
)

// Get returns the template stored under key in the named embedded file.
// The filename carries no path component (e.g. "explain.json").
func Get(filename, key string) (string, error) {
	templates, err := load(filename)
	if err != nil {
		return "", err
	}

	template, ok := templates[key]
	if !ok {
		return "", fmt.Errorf("prompt key %q not found in %s", key, filename)
	}
	return template, nil
}

// MustGet is Get for prompts required at initialization time; it panics on
// any failure.
func MustGet(filename, key string) string {
	template, err := Get(filename, key)
	if err != nil {
		panic(fmt.Sprintf("failed to load prompt: %v", err))
	}
	return template
}

// Format substitutes {{.Key}} placeholders with values from data. Unmatched
// placeholders are left in place.
func Format(template string, data map[string]string) string {
	out := template
	for key, value := range data {
		out = strings.ReplaceAll(out, "{{."+key+"}}", value)
	}
	return out
}

func load(filename string) (map[string]string, error) {
	parsedMu.RLock()
	templates, ok := parsed[filename]
	parsedMu.RUnlock()
	if ok {
		return templates, nil
	}

	raw, err := promptFiles.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read prompt file %s: %w", filename, err)
	}
	if err := json.Unmarshal(raw, &templates); err != nil {
		return nil, fmt.Errorf("failed to parse prompt file %s: %w", filename, err)
	}

	parsedMu.Lock()
	parsed[filename] = templates
	parsedMu.Unlock()
	return templates, nil
}

// ClearCache drops all cached prompt files. Useful for testing.
func ClearCache() {
	parsedMu.Lock()
	parsed = make(map[string]map[string]string)
	parsedMu.Unlock()
}
