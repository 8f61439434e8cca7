package patch

import (
	"os"
	"strings"

	"agpatch/internal/model"
)

// Status evaluates a target against the file on disk without touching it.
// Feeds the status TUI and the --json report.
func Status(t Target) model.TargetStatus {
	s := model.TargetStatus{
		Description: t.Description,
		File:        t.File,
	}

	data, err := os.ReadFile(t.File)
	if err != nil {
		s.State = model.StateMissingFile
		return s
	}
	content := string(data)

	switch t.Kind {
	case KindVersion:
		idx := versionRe(t.Key).FindStringSubmatchIndex(content)
		if idx == nil {
			s.State = model.StateMissingPattern
			return s
		}
		current := content[idx[2]:idx[3]]
		if current == t.Version {
			s.State = model.StateApplied
		} else {
			s.State = model.StatePending
			s.Detail = current + " -> " + t.Version
		}

	case KindPlatform:
		idx := platformRe(t.Marker).FindStringSubmatchIndex(content)
		if idx == nil {
			s.State = model.StateMissingPattern
			return s
		}
		current := content[idx[2]:idx[5]]
		if current == t.Pair {
			s.State = model.StateApplied
		} else {
			s.State = model.StatePending
			s.Detail = current + " -> " + t.Pair
		}

	default:
		switch {
		case strings.Contains(content, t.Replace):
			s.State = model.StateApplied
		case strings.Contains(content, t.Find):
			s.State = model.StatePending
		default:
			s.State = model.StateMissingPattern
		}
	}
	return s
}

// StatusAll evaluates every target in plan order.
func StatusAll(targets []Target) []model.TargetStatus {
	out := make([]model.TargetStatus, len(targets))
	for i, t := range targets {
		out[i] = Status(t)
	}
	return out
}
