package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProjectService_CreateAndGet(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	svc := NewProjectService(env.projects)

	p, err := svc.Create(ctx, "  Acme  ", " invoicing for founders ")
	require.NoError(t, err)
	assert.Equal(t, "Acme", p.Name)
	assert.Equal(t, "invoicing for founders", p.Description)
	assert.NotEmpty(t, p.ID)

	got, err := svc.Get(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, p.Name, got.Name)
}

func TestProjectService_Create_RequiresName(t *testing.T) {
	env := newTestEnv(t)
	svc := NewProjectService(env.projects)

	_, err := svc.Create(context.Background(), "   ", "desc")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "name is required")
}

func TestProjectService_Update(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	svc := NewProjectService(env.projects)

	p, err := svc.Create(ctx, "Acme", "old description")
	require.NoError(t, err)

	updated, err := svc.Update(ctx, p.ID, "Acme Consulting", "")
	require.NoError(t, err)
	assert.Equal(t, "Acme Consulting", updated.Name)
	assert.Equal(t, "old description", updated.Description)
}

func TestProjectService_ListAndDelete(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	svc := NewProjectService(env.projects)

	p1, err := svc.Create(ctx, "First", "")
	require.NoError(t, err)
	_, err = svc.Create(ctx, "Second", "")
	require.NoError(t, err)

	list, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 2)

	require.NoError(t, svc.Delete(ctx, p1.ID))
	list, err = svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "Second", list[0].Name)
}
