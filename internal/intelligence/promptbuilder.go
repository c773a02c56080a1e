package intelligence

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/mseverin/brandforge/internal/domain"
	"github.com/mseverin/brandforge/internal/llm"
)

// PromptInput carries the context a task's system prompt is assembled from.
// Only the fields relevant to the task are consulted.
type PromptInput struct {
	Task         llm.TaskType
	AssetType    domain.AssetType
	Answers      map[string]string
	Brandscript  map[string]any
	CurrentAsset string
	Platform     string
	CoverageGaps string
	FilledFields string
}

// SystemPrompt assembles the full system prompt for a generation task.
// Every prompt opens with the core philosophy; the rest depends on the task.
func SystemPrompt(in PromptInput) string {
	parts := []string{corePhilosophy}

	switch in.Task {
	case llm.TaskBrandscript:
		parts = append(parts, sb7Framework)
		parts = append(parts, formatAnswers(in.Answers))
		parts = append(parts, "\n"+brandscriptInstructions)

	case llm.TaskAsset:
		if fw, ok := assetFrameworks[in.AssetType]; ok {
			parts = append(parts, fw)
		}
		parts = append(parts, formatBrandscript(in.Brandscript))
		if in.Platform != "" {
			parts = append(parts, "\nTARGET PLATFORM: "+in.Platform)
		}
		parts = append(parts, formatAnswers(in.Answers))

	case llm.TaskRefine:
		if fw, ok := assetFrameworks[in.AssetType]; ok {
			parts = append(parts, fw)
		}
		parts = append(parts, formatBrandscript(in.Brandscript))
		if in.CurrentAsset != "" {
			parts = append(parts, "\nCURRENT ASSET:\n"+in.CurrentAsset)
		}
		parts = append(parts, "\n"+refineInstructions)

	case llm.TaskImport:
		parts = append(parts, sb7Framework)
		parts = append(parts, "\n"+importInstructions)

	case llm.TaskStorySession:
		parts = append(parts, storySessionPrompt)
		if in.FilledFields != "" {
			parts = append(parts, "\nFIELDS ALREADY CAPTURED (do not re-ask about these unless the user brings them up or says something that improves them):\n"+in.FilledFields)
		}
		if in.CoverageGaps != "" {
			parts = append(parts, "\nCURRENT COVERAGE STATUS:\n"+in.CoverageGaps)
		}
	}

	return strings.Join(parts, "\n\n")
}

// formatAnswers renders discovery answers as a key: value block, sorted for
// stable prompt output.
func formatAnswers(answers map[string]string) string {
	if len(answers) == 0 {
		return ""
	}
	keys := make([]string, 0, len(answers))
	for k := range answers {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	b.WriteString("\n\nDISCOVERY ANSWERS:\n")
	for i, k := range keys {
		if i > 0 {
			b.WriteByte('\n')
		}
		fmt.Fprintf(&b, "%s: %s", k, answers[k])
	}
	return b.String()
}

func formatBrandscript(bs map[string]any) string {
	if len(bs) == 0 {
		return ""
	}
	data, err := json.MarshalIndent(bs, "", "  ")
	if err != nil {
		return ""
	}
	return "\n\nBRANDSCRIPT:\n" + string(data)
}

// FormatFilledFields renders the non-empty answers for the "already
// captured" section of the story session prompt. Returns "(none yet)" when
// nothing is filled so the model knows it is starting fresh.
func FormatFilledFields(answers map[string]string) string {
	filled := make(map[string]string, len(answers))
	for k, v := range answers {
		if strings.TrimSpace(v) != "" {
			filled[k] = v
		}
	}
	if len(filled) == 0 {
		return "(none yet)"
	}
	out := formatAnswers(filled)
	return strings.TrimPrefix(out, "\n\nDISCOVERY ANSWERS:\n")
}
