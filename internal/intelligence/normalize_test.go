package intelligence

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeExtracted_PlanSteps(t *testing.T) {
	got := NormalizeExtracted(map[string]any{
		"plan_steps": []any{"book a call", "pick a plan", "launch", "grow", "extra"},
	})

	assert.Equal(t, "book a call", got["plan_step_1"])
	assert.Equal(t, "pick a plan", got["plan_step_2"])
	assert.Equal(t, "launch", got["plan_step_3"])
	assert.Equal(t, "grow", got["plan_step_4"])
	assert.NotContains(t, got, "plan_steps")
	assert.NotContains(t, got, "plan_step_5")
}

func TestNormalizeExtracted_Audiences(t *testing.T) {
	got := NormalizeExtracted(map[string]any{
		"audiences": []any{"solo founders", "small agencies"},
	})

	assert.Equal(t, "solo founders", got["audience_primary"])
	assert.Equal(t, "small agencies", got["audience_secondary"])
	assert.NotContains(t, got, "audiences")
}

func TestNormalizeExtracted_SingleAudience(t *testing.T) {
	got := NormalizeExtracted(map[string]any{
		"audiences": []any{"solo founders"},
	})

	assert.Equal(t, "solo founders", got["audience_primary"])
	assert.NotContains(t, got, "audience_secondary")
}

func TestNormalizeExtracted_AuthorityAlias(t *testing.T) {
	got := NormalizeExtracted(map[string]any{"authority": "12 years, 400 clients"})
	assert.Equal(t, "12 years, 400 clients", got["authority_credentials"])
	assert.NotContains(t, got, "authority")
}

func TestNormalizeExtracted_AuthorityDoesNotOverwrite(t *testing.T) {
	got := NormalizeExtracted(map[string]any{
		"authority":             "alias value",
		"authority_credentials": "canonical value",
	})
	assert.Equal(t, "canonical value", got["authority_credentials"])
	assert.NotContains(t, got, "authority")
}

func TestNormalizeExtracted_PassthroughAndUnknown(t *testing.T) {
	got := NormalizeExtracted(map[string]any{
		"business_name": "Acme",
		"made_up_key":   "something",
	})
	assert.Equal(t, "Acme", got["business_name"])
	assert.Equal(t, "something", got["made_up_key"])
}
