// Package schema holds the static discovery field registry: the wizard's
// step grouping and the scoring-side coverage areas. The two groupings
// overlap on the same key space but differ in membership semantics, so they
// are kept as independent tables rather than derived from one another.
package schema

// InputKind describes the input shape a field expects in the wizard.
type InputKind string

const (
	InputText     InputKind = "text"
	InputTextarea InputKind = "textarea"
)

// Field is one atomic discovery question.
type Field struct {
	Key         string
	Label       string
	Placeholder string
	Kind        InputKind
}

// Step is an ordered wizard page grouping several fields.
type Step struct {
	Number      int
	Title       string
	Subtitle    string
	Description string
	Fields      []Field
}

// Area is a scoring grouping with a required subset. An area is complete
// when every required key has a non-empty answer; optional keys only
// affect the fill percentage.
type Area struct {
	ID       string
	Label    string
	Keys     []string
	Required []string
}

// keyToStep is the derived reverse index from field key to owning step.
var keyToStep = func() map[string]int {
	m := make(map[string]int)
	for _, step := range Steps {
		for _, f := range step.Fields {
			m[f.Key] = step.Number
		}
	}
	return m
}()

// StepForKey returns the step number owning key. Unknown keys return
// (0, false) and must be silently ignored by callers, never treated as
// an error: the registry is the sole source of truth for what persists.
func StepForKey(key string) (int, bool) {
	n, ok := keyToStep[key]
	return n, ok
}

// KnownKey reports whether key is part of the registry.
func KnownKey(key string) bool {
	_, ok := keyToStep[key]
	return ok
}

// AllFieldKeys returns every field key across all steps, in step order.
func AllFieldKeys() []string {
	keys := make([]string, 0, len(keyToStep))
	for _, step := range Steps {
		for _, f := range step.Fields {
			keys = append(keys, f.Key)
		}
	}
	return keys
}

// StepByNumber returns the step with the given number, or nil.
func StepByNumber(n int) *Step {
	for i := range Steps {
		if Steps[i].Number == n {
			return &Steps[i]
		}
	}
	return nil
}
