package service

import (
	"context"
	"testing"

	"github.com/mseverin/brandforge/internal/domain"
	"github.com/mseverin/brandforge/internal/llm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAssetService(env *testEnv, client llm.Client) AssetService {
	return NewAssetService(env.assets, env.brandscripts, env.answers, env.conversations, client)
}

func TestAssetService_Generate(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	p := env.newProject(t, "Acme")

	bsSvc := NewBrandscriptService(env.brandscripts, env.answers, &fakeLLM{replies: []string{`{"character": "busy owner"}`}})
	_, err := bsSvc.Generate(ctx, p.ID)
	require.NoError(t, err)

	client := &fakeLLM{replies: []string{"Most founders waste hours on invoices..."}}
	svc := newAssetService(env, client)

	a, err := svc.Generate(ctx, p.ID, domain.AssetOneLiner, "")
	require.NoError(t, err)
	assert.Equal(t, "One-Liner", a.Title)
	assert.Equal(t, 1, a.Version)
	assert.Nil(t, a.ParentID)
	assert.Equal(t, "Most founders waste hours on invoices...", a.Content)

	req := client.requests[0]
	assert.Equal(t, llm.TaskAsset, req.Task)
	assert.Contains(t, req.SystemPrompt, "THE ONE-LINER")
	assert.Contains(t, req.SystemPrompt, `"character": "busy owner"`)
	assert.Contains(t, req.UserPrompt, "Generate 3 one-liner variations")
}

func TestAssetService_Generate_VersionsIncrement(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	p := env.newProject(t, "Acme")

	svc := newAssetService(env, &fakeLLM{replies: []string{"v1", "v2"}})

	first, err := svc.Generate(ctx, p.ID, domain.AssetColdEmail, "")
	require.NoError(t, err)
	second, err := svc.Generate(ctx, p.ID, domain.AssetColdEmail, "")
	require.NoError(t, err)

	assert.Equal(t, 1, first.Version)
	assert.Equal(t, 2, second.Version)
}

func TestAssetService_Generate_PlatformNote(t *testing.T) {
	env := newTestEnv(t)
	p := env.newProject(t, "Acme")

	client := &fakeLLM{replies: []string{"posts"}}
	svc := newAssetService(env, client)

	_, err := svc.Generate(context.Background(), p.ID, domain.AssetSocialMedia, "LinkedIn")
	require.NoError(t, err)

	req := client.requests[0]
	assert.Contains(t, req.SystemPrompt, "TARGET PLATFORM: LinkedIn")
	assert.Contains(t, req.UserPrompt, "Target platform: LinkedIn.")
}

func TestAssetService_Generate_InvalidType(t *testing.T) {
	env := newTestEnv(t)
	p := env.newProject(t, "Acme")

	svc := newAssetService(env, &fakeLLM{})
	_, err := svc.Generate(context.Background(), p.ID, domain.AssetType("brochure"), "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown asset type")
}

func TestAssetService_Refine(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	p := env.newProject(t, "Acme")

	client := &fakeLLM{replies: []string{"original copy", "punchier copy"}}
	svc := newAssetService(env, client)

	original, err := svc.Generate(ctx, p.ID, domain.AssetOneLiner, "")
	require.NoError(t, err)

	refined, err := svc.Refine(ctx, p.ID, original.ID, "make it punchier")
	require.NoError(t, err)

	assert.Equal(t, "punchier copy", refined.Content)
	assert.Equal(t, 2, refined.Version)
	require.NotNil(t, refined.ParentID)
	assert.Equal(t, original.ID, *refined.ParentID)
	assert.Equal(t, original.Title, refined.Title)

	req := client.requests[1]
	assert.Equal(t, llm.TaskRefine, req.Task)
	assert.Contains(t, req.SystemPrompt, "CURRENT ASSET:\noriginal copy")
	assert.Equal(t, "make it punchier", req.UserPrompt)

	conv, err := svc.Conversation(ctx, original.ID)
	require.NoError(t, err)
	require.Len(t, conv, 2)
	assert.Equal(t, domain.RoleUser, conv[0].Role)
	assert.Equal(t, "make it punchier", conv[0].Message)
	assert.Equal(t, domain.RoleAssistant, conv[1].Role)
	assert.Equal(t, "punchier copy", conv[1].Message)
}

func TestAssetService_Refine_ReplaysConversation(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	p := env.newProject(t, "Acme")

	client := &fakeLLM{replies: []string{"original", "take two", "take three"}}
	svc := newAssetService(env, client)

	original, err := svc.Generate(ctx, p.ID, domain.AssetOneLiner, "")
	require.NoError(t, err)

	_, err = svc.Refine(ctx, p.ID, original.ID, "shorter")
	require.NoError(t, err)
	_, err = svc.Refine(ctx, p.ID, original.ID, "now warmer")
	require.NoError(t, err)

	req := client.requests[2]
	require.Len(t, req.History, 2)
	assert.Equal(t, llm.Message{Role: "user", Content: "shorter"}, req.History[0])
	assert.Equal(t, llm.Message{Role: "assistant", Content: "take two"}, req.History[1])
}

func TestAssetService_Refine_WrongProject(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	p := env.newProject(t, "Acme")
	other := env.newProject(t, "Other")

	client := &fakeLLM{replies: []string{"copy"}}
	svc := newAssetService(env, client)

	a, err := svc.Generate(ctx, p.ID, domain.AssetOneLiner, "")
	require.NoError(t, err)

	_, err = svc.Refine(ctx, other.ID, a.ID, "change it")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestAssetService_List_VersionCounts(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	p := env.newProject(t, "Acme")

	svc := newAssetService(env, &fakeLLM{replies: []string{"a", "b", "c"}})

	_, err := svc.Generate(ctx, p.ID, domain.AssetOneLiner, "")
	require.NoError(t, err)
	_, err = svc.Generate(ctx, p.ID, domain.AssetOneLiner, "")
	require.NoError(t, err)
	_, err = svc.Generate(ctx, p.ID, domain.AssetColdEmail, "")
	require.NoError(t, err)

	items, err := svc.List(ctx, p.ID)
	require.NoError(t, err)
	require.Len(t, items, 3)

	for _, item := range items {
		switch item.Asset.Type {
		case domain.AssetOneLiner:
			assert.Equal(t, 2, item.VersionCount)
		case domain.AssetColdEmail:
			assert.Equal(t, 1, item.VersionCount)
		}
	}
}
