// Package coverage computes completeness metrics over a partially-filled
// discovery answer map. Compute is a pure function of its input: it holds no
// state and performs no I/O, so snapshots are recomputed on demand and are
// always consistent with the latest answer writes.
package coverage

import (
	"fmt"
	"math"
	"strings"

	"github.com/mseverin/brandforge/internal/schema"
)

// AreaResult is the per-area portion of a snapshot.
type AreaResult struct {
	Area                schema.Area
	FilledKeys          []string
	MissingKeys         []string
	MissingRequiredKeys []string
	PercentFilled       int
	IsComplete          bool
}

// Snapshot is a derived completeness report. Never persisted.
type Snapshot struct {
	Areas               []AreaResult
	TotalFilled         int
	TotalKeys           int
	TotalRequired       int
	TotalRequiredFilled int
	OverallPercent      int
	ReadyForBrandscript bool
}

func filled(answers map[string]string, key string) bool {
	return strings.TrimSpace(answers[key]) != ""
}

// Compute scores the given answer map against the registry. A value counts
// as filled only when non-empty after trimming; whitespace-only answers are
// missing. An area with zero declared keys scores 100%.
func Compute(answers map[string]string) Snapshot {
	areas := make([]AreaResult, 0, len(schema.Areas))
	for _, area := range schema.Areas {
		var res AreaResult
		res.Area = area
		for _, k := range area.Keys {
			if filled(answers, k) {
				res.FilledKeys = append(res.FilledKeys, k)
			} else {
				res.MissingKeys = append(res.MissingKeys, k)
			}
		}
		for _, k := range area.Required {
			if !filled(answers, k) {
				res.MissingRequiredKeys = append(res.MissingRequiredKeys, k)
			}
		}
		if len(area.Keys) > 0 {
			res.PercentFilled = roundPercent(len(res.FilledKeys), len(area.Keys))
		} else {
			res.PercentFilled = 100
		}
		res.IsComplete = len(res.MissingRequiredKeys) == 0
		areas = append(areas, res)
	}

	allKeys := schema.AllFieldKeys()
	totalFilled := 0
	for _, k := range allKeys {
		if filled(answers, k) {
			totalFilled++
		}
	}

	// Required totals use the flattened union of every area's required list.
	// A key required in more than one area would be counted twice; the
	// current registry has no such overlap and the flattening is kept as-is.
	totalRequired := 0
	totalRequiredFilled := 0
	for _, area := range schema.Areas {
		for _, k := range area.Required {
			totalRequired++
			if filled(answers, k) {
				totalRequiredFilled++
			}
		}
	}

	overall := 0
	if len(allKeys) > 0 {
		overall = roundPercent(totalFilled, len(allKeys))
	}

	ready := true
	for _, a := range areas {
		if !a.IsComplete {
			ready = false
			break
		}
	}

	return Snapshot{
		Areas:               areas,
		TotalFilled:         totalFilled,
		TotalKeys:           len(allKeys),
		TotalRequired:       totalRequired,
		TotalRequiredFilled: totalRequiredFilled,
		OverallPercent:      overall,
		ReadyForBrandscript: ready,
	}
}

func roundPercent(part, whole int) int {
	return int(math.Round(100 * float64(part) / float64(whole)))
}

// FormatGaps renders a snapshot as one line per area. The output is fed
// verbatim into the story-session system prompt so the interviewer knows
// which areas still need material.
func FormatGaps(snap Snapshot) string {
	lines := make([]string, 0, len(snap.Areas))
	for _, a := range snap.Areas {
		switch {
		case len(a.MissingRequiredKeys) > 0:
			lines = append(lines, fmt.Sprintf("- %s: MISSING required fields: %s",
				a.Area.Label, strings.Join(a.MissingRequiredKeys, ", ")))
		case len(a.MissingKeys) > 0:
			lines = append(lines, fmt.Sprintf("- %s: Complete (optional missing: %s)",
				a.Area.Label, strings.Join(a.MissingKeys, ", ")))
		default:
			lines = append(lines, fmt.Sprintf("- %s: COMPLETE", a.Area.Label))
		}
	}
	return strings.Join(lines, "\n")
}
