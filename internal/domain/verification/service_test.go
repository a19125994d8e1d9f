package verification

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"agentsync/server/internal/domain/user"
	"agentsync/server/internal/utils/apperrors"
)

type fakeCodeStore struct {
	rows   map[string]*Code
	nextID uint
}

func newFakeCodeStore() *fakeCodeStore {
	return &fakeCodeStore{rows: make(map[string]*Code)}
}

func (f *fakeCodeStore) FindByIdentifier(ctx context.Context, email string) (*Code, error) {
	row, ok := f.rows[email]
	if !ok {
		return nil, apperrors.NewError(ctx, apperrors.LayerRepository, apperrors.ErrorTypeNotFound, "verification code not found", nil, "0b9f4a6e-4d6a-4a49-9a5d-3a1a5d2f6c71")
	}
	copied := *row
	return &copied, nil
}

func (f *fakeCodeStore) DeleteByIdentifier(_ context.Context, email string) error {
	delete(f.rows, email)
	return nil
}

func (f *fakeCodeStore) Create(_ context.Context, code *Code) error {
	f.nextID++
	code.ID = f.nextID
	copied := *code
	f.rows[code.Identifier] = &copied
	return nil
}

func (f *fakeCodeStore) Update(_ context.Context, code *Code) error {
	copied := *code
	f.rows[code.Identifier] = &copied
	return nil
}

func (f *fakeCodeStore) Delete(_ context.Context, id uint) error {
	for email, row := range f.rows {
		if row.ID == id {
			delete(f.rows, email)
		}
	}
	return nil
}

func (f *fakeCodeStore) DeleteStale(_ context.Context, now time.Time, verifiedMaxAge time.Duration) (int64, error) {
	var removed int64
	for email, row := range f.rows {
		if (!row.Verified() && now.After(row.ExpiresAt)) ||
			(row.Verified() && now.Sub(row.UpdatedAt) > verifiedMaxAge) {
			delete(f.rows, email)
			removed++
		}
	}
	return removed, nil
}

type fakeUserStore struct {
	byEmail map[string]*user.User
	nextID  uint
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{byEmail: make(map[string]*user.User)}
}

func (f *fakeUserStore) Create(_ context.Context, u *user.User) error {
	f.nextID++
	u.ID = f.nextID
	f.byEmail[u.Email] = u
	return nil
}

func (f *fakeUserStore) FindByID(ctx context.Context, id uint) (*user.User, error) {
	for _, u := range f.byEmail {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, apperrors.NewError(ctx, apperrors.LayerRepository, apperrors.ErrorTypeNotFound, "user not found", nil, "5f1f3dfc-6f44-44df-bf0e-1b0af6f3c2bd")
}

func (f *fakeUserStore) FindByPublicID(ctx context.Context, publicID string) (*user.User, error) {
	for _, u := range f.byEmail {
		if u.PublicID == publicID {
			return u, nil
		}
	}
	return nil, apperrors.NewError(ctx, apperrors.LayerRepository, apperrors.ErrorTypeNotFound, "user not found", nil, "b00f0c73-74a5-4c6e-9b36-0beccf2e55a4")
}

func (f *fakeUserStore) FindByEmail(ctx context.Context, email string) (*user.User, error) {
	u, ok := f.byEmail[email]
	if !ok {
		return nil, apperrors.NewError(ctx, apperrors.LayerRepository, apperrors.ErrorTypeNotFound, "user not found", nil, "d1c3f3be-8d0a-4d39-9e44-cc3e5a9f8ec2")
	}
	return u, nil
}

func (f *fakeUserStore) Update(_ context.Context, u *user.User) error {
	f.byEmail[u.Email] = u
	return nil
}

type fakeMailer struct {
	sent []string
}

func (f *fakeMailer) SendOTP(_ context.Context, _, code string) error {
	f.sent = append(f.sent, code)
	return nil
}

func newTestService() (*Service, *fakeCodeStore, *fakeUserStore, *fakeMailer) {
	codes := newFakeCodeStore()
	users := newFakeUserStore()
	mailer := &fakeMailer{}
	return NewService(codes, users, mailer, 5*time.Minute), codes, users, mailer
}

func TestRequestCodeReplacesPrevious(t *testing.T) {
	ctx := context.Background()
	svc, codes, _, mailer := newTestService()

	require.NoError(t, svc.RequestCode(ctx, "Alice@Example.com"))
	require.NoError(t, svc.RequestCode(ctx, "alice@example.com"))

	require.Len(t, mailer.sent, 2)
	assert.Regexp(t, regexp.MustCompile(`^\d{6}$`), mailer.sent[0])
	assert.Regexp(t, regexp.MustCompile(`^\d{6}$`), mailer.sent[1])

	// Resend leaves exactly one active row, holding the latest code.
	require.Len(t, codes.rows, 1)
	row, err := codes.FindByIdentifier(ctx, "alice@example.com")
	require.NoError(t, err)
	assert.Equal(t, mailer.sent[1], row.Value)
}

func TestRequestCodeRejectsInvalidEmail(t *testing.T) {
	svc, _, _, mailer := newTestService()

	err := svc.RequestCode(context.Background(), "not-an-email")
	require.Error(t, err)
	assert.Equal(t, apperrors.ErrorTypeValidation, apperrors.TypeOf(err))
	assert.Empty(t, mailer.sent)
}

func TestConfirmCodeWithoutRequest(t *testing.T) {
	svc, _, _, _ := newTestService()

	err := svc.ConfirmCode(context.Background(), "alice@example.com", "123456")
	require.Error(t, err)
	assert.Equal(t, apperrors.ErrorTypeValidation, apperrors.TypeOf(err))
	assert.Contains(t, err.Error(), "no verification request found")
}

func TestConfirmCodeExpiryCheckedBeforeMatch(t *testing.T) {
	ctx := context.Background()
	svc, codes, _, _ := newTestService()
	require.NoError(t, codes.Create(ctx, &Code{
		Identifier: "alice@example.com",
		Value:      "123456",
		ExpiresAt:  time.Now().Add(-time.Minute),
	}))

	// Even the correct code reports expiry once past ExpiresAt.
	err := svc.ConfirmCode(ctx, "alice@example.com", "123456")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "verification code expired")
	assert.Empty(t, codes.rows)
}

func TestConfirmCodeMismatch(t *testing.T) {
	ctx := context.Background()
	svc, codes, _, _ := newTestService()
	require.NoError(t, codes.Create(ctx, &Code{
		Identifier: "alice@example.com",
		Value:      "123456",
		ExpiresAt:  time.Now().Add(time.Minute),
	}))

	err := svc.ConfirmCode(ctx, "alice@example.com", "654321")
	require.Error(t, err)
	assert.Equal(t, apperrors.ErrorTypeValidation, apperrors.TypeOf(err))

	row, findErr := codes.FindByIdentifier(ctx, "alice@example.com")
	require.NoError(t, findErr)
	assert.False(t, row.Verified())
}

func TestConfirmCodeMarksRowVerified(t *testing.T) {
	ctx := context.Background()
	svc, codes, _, _ := newTestService()
	require.NoError(t, codes.Create(ctx, &Code{
		Identifier: "alice@example.com",
		Value:      "123456",
		ExpiresAt:  time.Now().Add(time.Minute),
	}))

	require.NoError(t, svc.ConfirmCode(ctx, "alice@example.com", "123456"))

	row, err := codes.FindByIdentifier(ctx, "alice@example.com")
	require.NoError(t, err)
	assert.True(t, row.Verified())
	assert.Equal(t, VerifiedPrefix+"123456", row.Value)
}

func TestRegisterRequiresVerifiedEmail(t *testing.T) {
	ctx := context.Background()
	svc, codes, _, _ := newTestService()

	_, err := svc.Register(ctx, "alice@example.com", "Alice")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "email not verified")

	require.NoError(t, codes.Create(ctx, &Code{
		Identifier: "alice@example.com",
		Value:      "123456",
		ExpiresAt:  time.Now().Add(time.Minute),
	}))
	_, err = svc.Register(ctx, "alice@example.com", "Alice")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "email not verified")
}

func TestRegisterConsumesVerificationRow(t *testing.T) {
	ctx := context.Background()
	svc, codes, users, _ := newTestService()
	require.NoError(t, codes.Create(ctx, &Code{
		Identifier: "alice@example.com",
		Value:      VerifiedPrefix + "123456",
		ExpiresAt:  time.Now().Add(time.Minute),
	}))

	u, err := svc.Register(ctx, " Alice@Example.com ", "Alice")
	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", u.Email)
	assert.Equal(t, "Alice", u.Name)
	assert.Regexp(t, regexp.MustCompile(`^usr_`), u.PublicID)

	stored, err := users.FindByEmail(ctx, "alice@example.com")
	require.NoError(t, err)
	assert.Equal(t, u.PublicID, stored.PublicID)
	assert.Empty(t, codes.rows)
}

func TestRegisterRejectsExistingAccount(t *testing.T) {
	ctx := context.Background()
	svc, codes, users, _ := newTestService()
	require.NoError(t, users.Create(ctx, &user.User{PublicID: "usr_existing", Name: "Alice", Email: "alice@example.com"}))
	require.NoError(t, codes.Create(ctx, &Code{
		Identifier: "alice@example.com",
		Value:      VerifiedPrefix + "123456",
		ExpiresAt:  time.Now().Add(time.Minute),
	}))

	_, err := svc.Register(ctx, "alice@example.com", "Alice")
	require.Error(t, err)
	assert.Equal(t, apperrors.ErrorTypeConflict, apperrors.TypeOf(err))
}

func TestSweepStaleRemovesExpiredAndConsumedRows(t *testing.T) {
	ctx := context.Background()
	svc, codes, _, _ := newTestService()
	now := time.Now()
	svc.now = func() time.Time { return now }

	require.NoError(t, codes.Create(ctx, &Code{Identifier: "expired@example.com", Value: "111111", ExpiresAt: now.Add(-time.Minute)}))
	require.NoError(t, codes.Create(ctx, &Code{Identifier: "fresh@example.com", Value: "222222", ExpiresAt: now.Add(time.Minute)}))

	stale := &Code{Identifier: "stale@example.com", Value: VerifiedPrefix + "333333", ExpiresAt: now.Add(time.Minute)}
	require.NoError(t, codes.Create(ctx, stale))
	codes.rows["stale@example.com"].UpdatedAt = now.Add(-2 * time.Hour)

	removed, err := svc.SweepStale(ctx, time.Hour)
	require.NoError(t, err)
	assert.Equal(t, int64(2), removed)
	require.Len(t, codes.rows, 1)
	assert.Contains(t, codes.rows, "fresh@example.com")
}
