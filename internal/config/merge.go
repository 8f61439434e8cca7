// Package config seeds and updates the two user-level JSON files the
// runtime reads: the model allowlist inside opencode.json and the
// Antigravity model override table. Both operations are safe to re-run.
package config

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"agpatch/internal/model"
)

// allowlistPath is the fixed location of the allowlist mapping inside the
// opencode.json document.
var allowlistPath = []string{"experimental", "allowed_models"}

// MergeAllowlist inserts every missing qualified model id into the
// allowlist mapping, creating intermediate objects as needed. Pure set
// union on keys: existing entries and unrelated keys are never touched.
// Returns the number of insertions and whether the step was skipped
// because the document does not exist.
func MergeAllowlist(path string, models []string, dryRun bool) (added int, skipped bool, err error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			// No opencode.json means the runtime has never been configured;
			// seeding an allowlist into a file we'd otherwise invent is not
			// this tool's job.
			return 0, true, nil
		}
		return 0, false, err
	}

	var doc map[string]any
	if err := json.Unmarshal(data, &doc); err != nil {
		return 0, false, fmt.Errorf("parse %s: %w", path, err)
	}

	// Walk (creating as needed) down to the allowlist mapping.
	node := doc
	for _, key := range allowlistPath {
		child, ok := node[key].(map[string]any)
		if !ok {
			child = map[string]any{}
			node[key] = child
		}
		node = child
	}

	for _, id := range models {
		if _, ok := node[id]; ok {
			continue
		}
		node[id] = map[string]any{}
		added++
	}

	if added == 0 || dryRun {
		return added, false, nil
	}
	return added, false, writeJSON(path, doc)
}

// WriteOverrides creates the override document from its fixed template if
// and only if the file does not exist. An existing file is left untouched
// in any state, including empty or malformed. Returns whether the file
// was (or in dry-run mode, would have been) created.
func WriteOverrides(path string, dryRun bool) (created bool, err error) {
	if _, err := os.Stat(path); err == nil {
		return false, nil
	} else if !os.IsNotExist(err) {
		return false, err
	}

	if dryRun {
		return true, nil
	}

	entries := map[string]any{}
	for _, id := range model.AntigravityModels {
		entries[id] = map[string]any{}
	}
	doc := map[string]any{model.ProviderID: entries}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return false, err
	}
	return true, writeJSON(path, doc)
}

// writeJSON writes the document with two-space indentation and a trailing
// newline, matching how the runtime itself formats its config files. An
// existing file keeps its permission bits.
func writeJSON(path string, doc map[string]any) error {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return err
	}
	perm := os.FileMode(0644)
	if info, err := os.Stat(path); err == nil {
		perm = info.Mode().Perm()
	}
	return os.WriteFile(path, buf.Bytes(), perm)
}
