package user

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"agentsync/server/internal/utils/apperrors"
)

type fakeUserStore struct {
	users map[uint]*User
}

func (f *fakeUserStore) Create(_ context.Context, u *User) error {
	f.users[u.ID] = u
	return nil
}

func (f *fakeUserStore) FindByID(ctx context.Context, id uint) (*User, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, apperrors.NewError(ctx, apperrors.LayerRepository, apperrors.ErrorTypeNotFound, "user not found", nil, "f2a4ec0f-33a4-40a1-95de-6a47a0cb1eec")
	}
	return u, nil
}

func (f *fakeUserStore) FindByPublicID(ctx context.Context, publicID string) (*User, error) {
	for _, u := range f.users {
		if u.PublicID == publicID {
			return u, nil
		}
	}
	return nil, apperrors.NewError(ctx, apperrors.LayerRepository, apperrors.ErrorTypeNotFound, "user not found", nil, "0a4c7e0e-9a77-44d1-9e29-1c7f2ed4f799")
}

func (f *fakeUserStore) FindByEmail(ctx context.Context, email string) (*User, error) {
	for _, u := range f.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, apperrors.NewError(ctx, apperrors.LayerRepository, apperrors.ErrorTypeNotFound, "user not found", nil, "3f2e58d6-2e86-4b5d-8569-ab0d8d2f9c4a")
}

func (f *fakeUserStore) Update(_ context.Context, u *User) error {
	f.users[u.ID] = u
	return nil
}

func TestUpdateProfile(t *testing.T) {
	ctx := context.Background()
	store := &fakeUserStore{users: map[uint]*User{
		7: {ID: 7, PublicID: "usr_abc", Name: "Alice", Email: "alice@example.com"},
	}}
	svc := NewService(store)

	image := "https://cdn.example.com/avatar.png"
	u, err := svc.UpdateProfile(ctx, 7, "Alice B", "Alice.B@Example.com", &image)
	require.NoError(t, err)
	assert.Equal(t, "Alice B", u.Name)
	assert.Equal(t, "alice.b@example.com", u.Email)
	require.NotNil(t, u.Image)
	assert.Equal(t, image, *u.Image)
}

func TestUpdateProfileValidation(t *testing.T) {
	ctx := context.Background()
	svc := NewService(&fakeUserStore{users: map[uint]*User{
		7: {ID: 7, Name: "Alice", Email: "alice@example.com"},
	}})

	_, err := svc.UpdateProfile(ctx, 7, "  ", "alice@example.com", nil)
	require.Error(t, err)
	assert.Equal(t, apperrors.ErrorTypeValidation, apperrors.TypeOf(err))

	_, err = svc.UpdateProfile(ctx, 7, "Alice", "not-an-email", nil)
	require.Error(t, err)
	assert.Equal(t, apperrors.ErrorTypeValidation, apperrors.TypeOf(err))
}

func TestUpdateProfileUnknownUser(t *testing.T) {
	svc := NewService(&fakeUserStore{users: map[uint]*User{}})

	_, err := svc.UpdateProfile(context.Background(), 42, "Alice", "alice@example.com", nil)
	require.Error(t, err)
	assert.True(t, apperrors.IsNotFound(err))
}
