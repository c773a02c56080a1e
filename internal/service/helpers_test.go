package service

import (
	"context"
	"database/sql"
	"testing"

	"github.com/mseverin/brandforge/internal/domain"
	"github.com/mseverin/brandforge/internal/llm"
	"github.com/mseverin/brandforge/internal/repository"
	"github.com/mseverin/brandforge/internal/testutil"
	"github.com/stretchr/testify/require"
)

// fakeLLM is a scripted llm.Client. Each Generate call consumes the next
// reply and records the request for assertions.
type fakeLLM struct {
	replies  []string
	err      error
	requests []llm.GenerateRequest
}

func (f *fakeLLM) Generate(_ context.Context, req llm.GenerateRequest) (*llm.GenerateResponse, error) {
	f.requests = append(f.requests, req)
	if f.err != nil {
		return nil, f.err
	}
	reply := ""
	if len(f.replies) > 0 {
		reply = f.replies[0]
		if len(f.replies) > 1 {
			f.replies = f.replies[1:]
		}
	}
	return &llm.GenerateResponse{Text: reply, Model: "fake", LatencyMs: 1}, nil
}

func (f *fakeLLM) Available(context.Context) bool { return true }

type testEnv struct {
	db            *sql.DB
	projects      repository.ProjectRepo
	answers       repository.AnswerRepo
	brandscripts  repository.BrandscriptRepo
	assets        repository.AssetRepo
	conversations repository.ConversationRepo
	stories       repository.StoryRepo
	discovery     DiscoveryService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	database := testutil.NewTestDB(t)
	uow := testutil.NewTestUoW(database)

	env := &testEnv{
		db:            database,
		projects:      repository.NewSQLiteProjectRepo(database),
		answers:       repository.NewSQLiteAnswerRepo(database),
		brandscripts:  repository.NewSQLiteBrandscriptRepo(database),
		assets:        repository.NewSQLiteAssetRepo(database),
		conversations: repository.NewSQLiteConversationRepo(database),
		stories:       repository.NewSQLiteStoryRepo(database),
	}
	env.discovery = NewDiscoveryService(env.answers, uow)
	return env
}

func (e *testEnv) newProject(t *testing.T, name string) *domain.Project {
	t.Helper()
	p := testutil.NewTestProject(name)
	require.NoError(t, e.projects.Create(context.Background(), p))
	return p
}
