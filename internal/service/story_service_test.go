package service

import (
	"context"
	"fmt"
	"testing"

	"github.com/mseverin/brandforge/internal/domain"
	"github.com/mseverin/brandforge/internal/llm"
	"github.com/mseverin/brandforge/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStoryService_SubmitTurn_SavesFieldsAndTranscript(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	p := env.newProject(t, "Acme")

	client := &fakeLLM{replies: []string{
		"That sounds rough. Who did you build this for?\n---PARSED---\n{\"origin_struggle\": \"drowning in invoices\", \"business_name\": \"Acme\"}\n---END---",
	}}
	svc := NewStoryService(env.stories, env.answers, env.discovery, client)

	turn, err := svc.SubmitTurn(ctx, p.ID, "I started Acme after drowning in invoices.")
	require.NoError(t, err)

	assert.Equal(t, "That sounds rough. Who did you build this for?", turn.Reply)
	assert.Equal(t, 2, turn.SavedFields)
	assert.Equal(t, "drowning in invoices", turn.ParsedFields["origin_struggle"])
	assert.Equal(t, 2, turn.Coverage.TotalFilled)

	transcript, err := svc.Transcript(ctx, p.ID)
	require.NoError(t, err)
	require.Len(t, transcript, 2)
	assert.Equal(t, domain.RoleUser, transcript[0].Role)
	assert.Equal(t, "I started Acme after drowning in invoices.", transcript[0].Message)
	assert.Equal(t, domain.RoleAssistant, transcript[1].Role)
	assert.Equal(t, "That sounds rough. Who did you build this for?", transcript[1].Message)
	assert.Equal(t, "Acme", transcript[1].ParsedFields["business_name"])
}

func TestStoryService_SubmitTurn_NoFields(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	p := env.newProject(t, "Acme")

	client := &fakeLLM{replies: []string{"Tell me more about that.\n---PARSED---\n{}\n---END---"}}
	svc := NewStoryService(env.stories, env.answers, env.discovery, client)

	turn, err := svc.SubmitTurn(ctx, p.ID, "hmm")
	require.NoError(t, err)
	assert.Equal(t, 0, turn.SavedFields)

	transcript, err := svc.Transcript(ctx, p.ID)
	require.NoError(t, err)
	require.Len(t, transcript, 2)
	assert.Nil(t, transcript[1].ParsedFields)
}

func TestStoryService_SubmitTurn_PromptCarriesCoverageContext(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	p := env.newProject(t, "Acme")

	_, err := env.discovery.SaveExtractedFields(ctx, p.ID, map[string]string{"business_name": "Acme"})
	require.NoError(t, err)

	client := &fakeLLM{replies: []string{"ok"}}
	svc := NewStoryService(env.stories, env.answers, env.discovery, client)

	_, err = svc.SubmitTurn(ctx, p.ID, "hello")
	require.NoError(t, err)

	require.Len(t, client.requests, 1)
	req := client.requests[0]
	assert.Equal(t, llm.TaskStorySession, req.Task)
	assert.Contains(t, req.SystemPrompt, "FIELDS ALREADY CAPTURED")
	assert.Contains(t, req.SystemPrompt, "business_name: Acme")
	assert.Contains(t, req.SystemPrompt, "CURRENT COVERAGE STATUS:")
	assert.Equal(t, "hello", req.UserPrompt)
	assert.Empty(t, req.History)
}

func TestStoryService_SubmitTurn_ReplaysHistory(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	p := env.newProject(t, "Acme")

	require.NoError(t, env.stories.Append(ctx, testutil.NewTestStoryMessage(p.ID, domain.RoleUser, "first")))
	require.NoError(t, env.stories.Append(ctx, testutil.NewTestStoryMessage(p.ID, domain.RoleAssistant, "reply")))

	client := &fakeLLM{replies: []string{"ok"}}
	svc := NewStoryService(env.stories, env.answers, env.discovery, client)

	_, err := svc.SubmitTurn(ctx, p.ID, "second")
	require.NoError(t, err)

	req := client.requests[0]
	require.Len(t, req.History, 2)
	assert.Equal(t, llm.Message{Role: "user", Content: "first"}, req.History[0])
	assert.Equal(t, llm.Message{Role: "assistant", Content: "reply"}, req.History[1])
}

func TestStoryService_SubmitTurn_TruncatesLongTranscript(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	p := env.newProject(t, "Acme")

	for i := 0; i < 45; i++ {
		role := domain.RoleUser
		if i%2 == 1 {
			role = domain.RoleAssistant
		}
		msg := testutil.NewTestStoryMessage(p.ID, role, fmt.Sprintf("turn %d", i))
		require.NoError(t, env.stories.Append(ctx, msg))
	}

	client := &fakeLLM{replies: []string{"ok"}}
	svc := NewStoryService(env.stories, env.answers, env.discovery, client)

	_, err := svc.SubmitTurn(ctx, p.ID, "latest")
	require.NoError(t, err)

	req := client.requests[0]
	require.Len(t, req.History, 32)
	assert.Equal(t, "turn 0", req.History[0].Content)
	assert.Equal(t, "turn 1", req.History[1].Content)
	assert.Equal(t, "turn 15", req.History[2].Content)
	assert.Equal(t, "turn 44", req.History[31].Content)
}

func TestStoryService_SubmitTurn_GenerationFailureKeepsUserMessage(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	p := env.newProject(t, "Acme")

	client := &fakeLLM{err: llm.ErrUnavailable}
	svc := NewStoryService(env.stories, env.answers, env.discovery, client)

	_, err := svc.SubmitTurn(ctx, p.ID, "hello?")
	require.ErrorIs(t, err, llm.ErrUnavailable)

	// The user's message survives so retrying doesn't lose their words.
	transcript, err := svc.Transcript(ctx, p.ID)
	require.NoError(t, err)
	require.Len(t, transcript, 1)
	assert.Equal(t, "hello?", transcript[0].Message)
}
