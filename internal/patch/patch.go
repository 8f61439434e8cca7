package patch

import (
	"errors"
	"fmt"
	"os"
	"regexp"
	"strings"

	goversion "github.com/hashicorp/go-version"

	"agpatch/internal/model"
)

// Outcome is what applying a target actually did.
type Outcome int

const (
	Applied        Outcome = iota // file modified (backup written first)
	AlreadyApplied                // prior run left the target text in place
	WouldApply                    // dry-run: modification suppressed
	PatternMissing                // no old text, no new text: needs manual attention
	FileMissing                   // optional target file not on disk
)

// Result reports the outcome of one Apply call. Warning carries a surfaced
// non-fatal condition (e.g. the search text occurring more than once).
type Result struct {
	Outcome Outcome
	Detail  string
	Warning string
}

// ErrNoChange is returned when a patch matched but could not change the
// file. A patch that cannot change the file must never be reported as
// applied, so this is an error rather than a silent success.
var ErrNoChange = errors.New("patch produced no change")

// Apply runs the target's engine against the file on disk. A Required
// target whose file is missing is an error; otherwise a missing file is
// skipped (distribution chunks come and go between releases).
func Apply(t Target, dryRun bool) (Result, error) {
	data, err := os.ReadFile(t.File)
	if err != nil {
		if os.IsNotExist(err) && !t.Required {
			return Result{Outcome: FileMissing}, nil
		}
		return Result{}, err
	}
	content := string(data)

	var res Result
	var patched string
	var changed bool
	switch t.Kind {
	case KindVersion:
		res, patched, changed, err = applyVersion(t, content)
	case KindPlatform:
		res, patched, changed, err = applyPlatform(t, content)
	default:
		res, patched, changed, err = applyLiteral(t, content)
	}
	if err != nil {
		return Result{}, err
	}
	if !changed {
		// Nothing to write (already applied, pattern missing, ...).
		return res, nil
	}

	if dryRun {
		res.Outcome = WouldApply
		return res, nil
	}
	if err := writeWithBackup(t.File, patched); err != nil {
		return Result{}, err
	}
	res.Outcome = Applied
	return res, nil
}

// applyLiteral performs the exact-substring replacement, first occurrence
// only. Idempotence is detected by the presence of the replacement text.
func applyLiteral(t Target, content string) (Result, string, bool, error) {
	if t.Find == t.Replace {
		return Result{}, "", false, fmt.Errorf("%s: search text equals replacement: %w", t.Description, ErrNoChange)
	}

	// Presence of the replacement text means a prior run already landed.
	// This must be checked before the search text: insertion-style patches
	// keep the search text as a prefix of the replacement, so it is still
	// present after a successful run.
	if strings.Contains(content, t.Replace) {
		return Result{Outcome: AlreadyApplied}, "", false, nil
	}

	count := strings.Count(content, t.Find)
	if count == 0 {
		return Result{Outcome: PatternMissing}, "", false, nil
	}

	var warning string
	if count > 1 {
		warning = fmt.Sprintf("search text occurs %d times, replacing first occurrence only", count)
	}

	patched := strings.Replace(content, t.Find, t.Replace, 1)
	if patched == content {
		return Result{}, "", false, fmt.Errorf("%s: %w", t.Description, ErrNoChange)
	}
	return Result{Warning: warning}, patched, true, nil
}

// versionRe matches KEY = "x.y.z" with the value captured.
func versionRe(key string) *regexp.Regexp {
	return regexp.MustCompile(regexp.QuoteMeta(key) + `\s*=\s*"(\d+\.\d+\.\d+)"`)
}

// applyVersion rewrites only the quoted value, whatever it currently is.
func applyVersion(t Target, content string) (Result, string, bool, error) {
	idx := versionRe(t.Key).FindStringSubmatchIndex(content)
	if idx == nil {
		return Result{Outcome: PatternMissing}, "", false, nil
	}
	current := content[idx[2]:idx[3]]
	if current == t.Version {
		return Result{Outcome: AlreadyApplied}, "", false, nil
	}

	detail := current + " -> " + t.Version
	// The pinned version normally moves forward. A downgrade is legal (the
	// upstream bundle may ship ahead of the pin) but worth pointing out.
	cur, errCur := goversion.NewVersion(current)
	tgt, errTgt := goversion.NewVersion(t.Version)
	if errCur == nil && errTgt == nil && tgt.LessThan(cur) {
		detail += " (downgrade)"
	}

	patched := content[:idx[2]] + t.Version + content[idx[3]:]
	return Result{Detail: detail}, patched, true, nil
}

// platformRe matches the os/arch pair directly after the marker.
func platformRe(marker string) *regexp.Regexp {
	return regexp.MustCompile(regexp.QuoteMeta(marker) + `([a-z0-9_]+)/([a-z0-9_]+)`)
}

// applyPlatform rewrites only the token pair, whatever it currently is.
func applyPlatform(t Target, content string) (Result, string, bool, error) {
	idx := platformRe(t.Marker).FindStringSubmatchIndex(content)
	if idx == nil {
		return Result{Outcome: PatternMissing}, "", false, nil
	}
	current := content[idx[2]:idx[5]]
	if current == t.Pair {
		return Result{Outcome: AlreadyApplied}, "", false, nil
	}
	patched := content[:idx[2]] + t.Pair + content[idx[5]:]
	return Result{Detail: current + " -> " + t.Pair}, patched, true, nil
}

// writeWithBackup copies the file to its .prepatch.bak sibling, then
// writes the new content in place with the original permission bits.
func writeWithBackup(file, content string) error {
	if err := model.CopyFile(file, file+model.BackupSuffix); err != nil {
		return fmt.Errorf("backup %s: %w", file, err)
	}
	info, err := os.Stat(file)
	if err != nil {
		return err
	}
	return os.WriteFile(file, []byte(content), info.Mode().Perm())
}
