package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAllFieldKeys_CountAndUniqueness(t *testing.T) {
	keys := AllFieldKeys()
	assert.Len(t, keys, 31)

	seen := make(map[string]bool)
	for _, k := range keys {
		assert.False(t, seen[k], "duplicate key %s", k)
		seen[k] = true
	}
}

func TestStepForKey(t *testing.T) {
	cases := map[string]int{
		"business_name":    1,
		"customer_desire":  2,
		"villain":          3,
		"empathy_statement": 4,
		"plan_step_4":      5,
		"success_state":    6,
		"origin_mission":   7,
		"main_objection":   8,
		"cta_transitional": 9,
	}
	for key, want := range cases {
		n, ok := StepForKey(key)
		require.True(t, ok, "key %s should be known", key)
		assert.Equal(t, want, n, "key %s", key)
	}
}

func TestStepForKey_Unknown(t *testing.T) {
	_, ok := StepForKey("favorite_color")
	assert.False(t, ok)
	assert.False(t, KnownKey("favorite_color"))
}

func TestAreas_KeysBelongToRegistry(t *testing.T) {
	for _, area := range Areas {
		for _, k := range area.Keys {
			assert.True(t, KnownKey(k), "area %s references unknown key %s", area.ID, k)
		}
	}
}

func TestAreas_RequiredIsSubsetOfKeys(t *testing.T) {
	for _, area := range Areas {
		keySet := make(map[string]bool)
		for _, k := range area.Keys {
			keySet[k] = true
		}
		for _, r := range area.Required {
			assert.True(t, keySet[r], "area %s requires %s outside its key set", area.ID, r)
		}
	}
}

func TestAreas_OptionalDetailFieldsRequiredNowhere(t *testing.T) {
	// These fields belong to step 9 but must not gate any area.
	for _, key := range []string{"timeline", "guarantee", "platforms"} {
		for _, area := range Areas {
			for _, r := range area.Required {
				assert.NotEqual(t, key, r, "area %s must not require %s", area.ID, key)
			}
		}
	}
}

func TestStepByNumber(t *testing.T) {
	step := StepByNumber(5)
	require.NotNil(t, step)
	assert.Equal(t, "The Plan", step.Title)
	assert.Len(t, step.Fields, 4)

	assert.Nil(t, StepByNumber(10))
}
