package service

import (
	"context"
	"errors"
	"testing"

	"github.com/mseverin/brandforge/internal/intelligence"
	"github.com/mseverin/brandforge/internal/llm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestImportService_ImportFreeform(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	p := env.newProject(t, "Acme")

	client := &fakeLLM{replies: []string{`{
		"business_name": "Acme",
		"audiences": ["solo founders", "small agencies"],
		"plan_steps": ["book a call", "pick a plan", "launch"],
		"authority": "12 years, 400 clients",
		"external_problem": "invoices pile up",
		"made_up": "dropped"
	}`}}
	svc := NewImportService(env.answers, env.discovery, client)

	res, err := svc.ImportFreeform(ctx, p.ID, "pasted brand doc...")
	require.NoError(t, err)

	// business_name, 2 audiences, 3 plan steps, authority_credentials,
	// external_problem; the unknown key is filtered at save time.
	assert.Equal(t, 8, res.Saved)
	assert.Equal(t, "Acme", res.Extracted["business_name"])
	assert.NotContains(t, res.Extracted, "plan_steps")
	assert.NotContains(t, res.Extracted, "audiences")
	assert.NotContains(t, res.Extracted, "authority")

	m, err := env.answers.MapByProject(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, "solo founders", m["audience_primary"])
	assert.Equal(t, "small agencies", m["audience_secondary"])
	assert.Equal(t, "book a call", m["plan_step_1"])
	assert.Equal(t, "launch", m["plan_step_3"])
	assert.Equal(t, "12 years, 400 clients", m["authority_credentials"])
	assert.NotContains(t, m, "made_up")

	assert.Equal(t, 8, res.Coverage.TotalFilled)
}

func TestImportService_PromptSetup(t *testing.T) {
	env := newTestEnv(t)
	p := env.newProject(t, "Acme")

	client := &fakeLLM{replies: []string{`{}`}}
	svc := NewImportService(env.answers, env.discovery, client)

	_, err := svc.ImportFreeform(context.Background(), p.ID, "the content")
	require.NoError(t, err)

	require.Len(t, client.requests, 1)
	req := client.requests[0]
	assert.Equal(t, llm.TaskImport, req.Task)
	assert.Contains(t, req.SystemPrompt, "THE STORYBRAND 7-PART FRAMEWORK")
	assert.Contains(t, req.UserPrompt, "Extract discovery answers from the following content:\n\nthe content")
}

func TestImportService_UnparseableReply(t *testing.T) {
	env := newTestEnv(t)
	p := env.newProject(t, "Acme")

	client := &fakeLLM{replies: []string{"I'm sorry, I can't extract anything from that."}}
	svc := NewImportService(env.answers, env.discovery, client)

	_, err := svc.ImportFreeform(context.Background(), p.ID, "garbage")
	require.Error(t, err)

	var unparseable *intelligence.UnparseableExtractionError
	require.True(t, errors.As(err, &unparseable))
	assert.Equal(t, "I'm sorry, I can't extract anything from that.", unparseable.Raw)

	// Nothing was saved.
	m, err := env.answers.MapByProject(context.Background(), p.ID)
	require.NoError(t, err)
	assert.Empty(t, m)
}

func TestImportService_GenerationError(t *testing.T) {
	env := newTestEnv(t)
	p := env.newProject(t, "Acme")

	client := &fakeLLM{err: llm.ErrTimeout}
	svc := NewImportService(env.answers, env.discovery, client)

	_, err := svc.ImportFreeform(context.Background(), p.ID, "content")
	require.ErrorIs(t, err, llm.ErrTimeout)
}
