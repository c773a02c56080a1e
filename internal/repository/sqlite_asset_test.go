package repository

import (
	"context"
	"testing"

	"github.com/mseverin/brandforge/internal/domain"
	"github.com/mseverin/brandforge/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAssetRepo_CreateAndGet(t *testing.T) {
	db := testutil.NewTestDB(t)
	projects := NewSQLiteProjectRepo(db)
	assets := NewSQLiteAssetRepo(db)
	ctx := context.Background()

	p := createProject(t, projects, "Assets")
	a := testutil.NewTestAsset(p.ID, domain.AssetLandingPage, "Hero headline...")
	require.NoError(t, assets.Create(ctx, a))

	fetched, err := assets.GetByID(ctx, a.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.AssetLandingPage, fetched.Type)
	assert.Equal(t, "Landing Page Copy", fetched.Title)
	assert.Equal(t, 1, fetched.Version)
	assert.Nil(t, fetched.ParentID)
}

func TestAssetRepo_CountByType(t *testing.T) {
	db := testutil.NewTestDB(t)
	projects := NewSQLiteProjectRepo(db)
	assets := NewSQLiteAssetRepo(db)
	ctx := context.Background()

	p := createProject(t, projects, "Assets")
	require.NoError(t, assets.Create(ctx, testutil.NewTestAsset(p.ID, domain.AssetOneLiner, "v1")))

	second := testutil.NewTestAsset(p.ID, domain.AssetOneLiner, "v2")
	second.Version = 2
	require.NoError(t, assets.Create(ctx, second))
	require.NoError(t, assets.Create(ctx, testutil.NewTestAsset(p.ID, domain.AssetColdEmail, "email")))

	count, err := assets.CountByType(ctx, p.ID, domain.AssetOneLiner)
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	count, err = assets.CountByType(ctx, p.ID, domain.AssetPitchDeck)
	require.NoError(t, err)
	assert.Equal(t, 0, count)
}

func TestAssetRepo_RefinementParentLink(t *testing.T) {
	db := testutil.NewTestDB(t)
	projects := NewSQLiteProjectRepo(db)
	assets := NewSQLiteAssetRepo(db)
	ctx := context.Background()

	p := createProject(t, projects, "Assets")
	original := testutil.NewTestAsset(p.ID, domain.AssetColdEmail, "v1")
	require.NoError(t, assets.Create(ctx, original))

	refined := testutil.NewTestAsset(p.ID, domain.AssetColdEmail, "v2")
	refined.Version = 2
	refined.ParentID = &original.ID
	require.NoError(t, assets.Create(ctx, refined))

	fetched, err := assets.GetByID(ctx, refined.ID)
	require.NoError(t, err)
	require.NotNil(t, fetched.ParentID)
	assert.Equal(t, original.ID, *fetched.ParentID)
}

func TestBrandscriptRepo_LatestAndUpdate(t *testing.T) {
	db := testutil.NewTestDB(t)
	projects := NewSQLiteProjectRepo(db)
	scripts := NewSQLiteBrandscriptRepo(db)
	ctx := context.Background()

	p := createProject(t, projects, "Scripts")

	none, err := scripts.Latest(ctx, p.ID)
	require.NoError(t, err)
	assert.Nil(t, none)

	first := testutil.NewTestBrandscript(p.ID, map[string]any{"character": "busy owner"})
	require.NoError(t, scripts.Create(ctx, first))
	second := testutil.NewTestBrandscript(p.ID, map[string]any{"character": "stressed founder"})
	require.NoError(t, scripts.Create(ctx, second))

	latest, err := scripts.Latest(ctx, p.ID)
	require.NoError(t, err)
	require.NotNil(t, latest)
	assert.Equal(t, second.ID, latest.ID)
	assert.Equal(t, "stressed founder", latest.Content["character"])

	require.NoError(t, scripts.UpdateContent(ctx, latest.ID, map[string]any{"character": "edited"}))
	latest, err = scripts.Latest(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, "edited", latest.Content["character"])
}
