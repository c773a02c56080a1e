package intelligence

import "fmt"

// UnparseableExtractionError reports that an extraction reply contained no
// usable JSON. Raw preserves the full model output so the caller can show
// it to the user instead of silently discarding their content.
type UnparseableExtractionError struct {
	Raw string
}

func (e *UnparseableExtractionError) Error() string {
	return "could not parse extraction response"
}

// NormalizeExtracted rewrites the aliases the import prompt allows into
// canonical field keys:
//
//   - plan_steps array → plan_step_1 .. plan_step_4 (extra steps dropped)
//   - audiences array  → audience_primary, audience_secondary
//   - authority        → authority_credentials, unless already present
//
// The map is modified in place and returned. Unknown keys pass through;
// the reconciliation layer filters them against the schema.
func NormalizeExtracted(parsed map[string]any) map[string]any {
	if steps, ok := parsed["plan_steps"].([]any); ok {
		for i, step := range steps {
			if i >= 4 {
				break
			}
			if s, ok := step.(string); ok {
				parsed[fmt.Sprintf("plan_step_%d", i+1)] = s
			}
		}
		delete(parsed, "plan_steps")
	}

	if audiences, ok := parsed["audiences"].([]any); ok {
		if len(audiences) > 0 {
			if s, ok := audiences[0].(string); ok && s != "" {
				parsed["audience_primary"] = s
			}
		}
		if len(audiences) > 1 {
			if s, ok := audiences[1].(string); ok && s != "" {
				parsed["audience_secondary"] = s
			}
		}
		delete(parsed, "audiences")
	}

	if authority, ok := parsed["authority"]; ok {
		if _, has := parsed["authority_credentials"]; !has {
			parsed["authority_credentials"] = authority
		}
		delete(parsed, "authority")
	}

	return parsed
}
