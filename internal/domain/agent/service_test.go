package agent

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"agentsync/server/internal/domain/query"
	"agentsync/server/internal/utils/apperrors"
)

type fakeAgentStore struct {
	agents []*Agent
	nextID uint
}

func (f *fakeAgentStore) Create(_ context.Context, a *Agent) error {
	f.nextID++
	a.ID = f.nextID
	f.agents = append(f.agents, a)
	return nil
}

func (f *fakeAgentStore) FindByPublicIDAndUserID(ctx context.Context, publicID string, userID uint) (*Agent, error) {
	for _, a := range f.agents {
		if a.PublicID == publicID && a.UserID == userID {
			return a, nil
		}
	}
	return nil, apperrors.NewError(ctx, apperrors.LayerRepository, apperrors.ErrorTypeNotFound, "agent not found", nil, "98b66d52-3f1a-41cf-9e6e-f0461c0cbb53")
}

func (f *fakeAgentStore) FindByIDAndUserID(ctx context.Context, id, userID uint) (*Agent, error) {
	for _, a := range f.agents {
		if a.ID == id && a.UserID == userID {
			return a, nil
		}
	}
	return nil, apperrors.NewError(ctx, apperrors.LayerRepository, apperrors.ErrorTypeNotFound, "agent not found", nil, "8d3df4b1-5dd2-4ec9-bf2c-d2ea3ba3b82c")
}

func (f *fakeAgentStore) ListByUserID(_ context.Context, userID uint, _ *query.Pagination) ([]*Agent, error) {
	var owned []*Agent
	for _, a := range f.agents {
		if a.UserID == userID {
			owned = append(owned, a)
		}
	}
	return owned, nil
}

func (f *fakeAgentStore) Update(_ context.Context, _ *Agent) error { return nil }

func (f *fakeAgentStore) Delete(_ context.Context, id uint) error {
	var kept []*Agent
	for _, a := range f.agents {
		if a.ID != id {
			kept = append(kept, a)
		}
	}
	f.agents = kept
	return nil
}

func TestCreateAgent(t *testing.T) {
	ctx := context.Background()
	svc := NewService(&fakeAgentStore{})

	a, err := svc.Create(ctx, 7, "  Tutor  ", "You are a math tutor.")
	require.NoError(t, err)
	assert.Equal(t, "Tutor", a.Name)
	assert.Equal(t, uint(7), a.UserID)
	assert.Regexp(t, `^agt_`, a.PublicID)
}

func TestCreateAgentValidation(t *testing.T) {
	ctx := context.Background()
	svc := NewService(&fakeAgentStore{})

	tests := []struct {
		name         string
		agentName    string
		instructions string
	}{
		{"blank name", "  ", "You tutor."},
		{"blank instructions", "Tutor", "   "},
		{"instructions too long", "Tutor", strings.Repeat("x", maxInstructionsLength+1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Create(ctx, 7, tt.agentName, tt.instructions)
			require.Error(t, err)
			assert.Equal(t, apperrors.ErrorTypeValidation, apperrors.TypeOf(err))
		})
	}
}

func TestGetByPublicIDScopedToOwner(t *testing.T) {
	ctx := context.Background()
	svc := NewService(&fakeAgentStore{})
	a, err := svc.Create(ctx, 7, "Tutor", "You tutor.")
	require.NoError(t, err)

	_, err = svc.GetByPublicID(ctx, a.PublicID, 8)
	require.Error(t, err)
	assert.True(t, apperrors.IsNotFound(err))
}

func TestUpdateAgentPartialFields(t *testing.T) {
	ctx := context.Background()
	svc := NewService(&fakeAgentStore{})
	a, err := svc.Create(ctx, 7, "Tutor", "You tutor.")
	require.NoError(t, err)

	name := "Math Tutor"
	updated, err := svc.Update(ctx, a.PublicID, 7, &name, nil)
	require.NoError(t, err)
	assert.Equal(t, "Math Tutor", updated.Name)
	assert.Equal(t, "You tutor.", updated.Instructions)

	blank := "   "
	_, err = svc.Update(ctx, a.PublicID, 7, nil, &blank)
	require.Error(t, err)
	assert.Equal(t, apperrors.ErrorTypeValidation, apperrors.TypeOf(err))
}

func TestDeleteAgent(t *testing.T) {
	ctx := context.Background()
	store := &fakeAgentStore{}
	svc := NewService(store)
	a, err := svc.Create(ctx, 7, "Tutor", "You tutor.")
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, a.PublicID, 7))
	assert.Empty(t, store.agents)

	err = svc.Delete(ctx, a.PublicID, 7)
	require.Error(t, err)
	assert.True(t, apperrors.IsNotFound(err))
}
