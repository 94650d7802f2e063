package commands_test

import (
	"context"
	"testing"
	"time"

	"cargotrack/internal/core/application/usecases/commands"
	"cargotrack/internal/core/domain/model/account"
	"cargotrack/internal/core/domain/model/kernel"
	"cargotrack/internal/pkg/errs"

	"golang.org/x/crypto/bcrypt"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockTokenIssuer struct{ mock.Mock }

func (m *MockTokenIssuer) Issue(profileID, email, role string) (string, error) {
	args := m.Called(profileID, email, role)
	return args.String(0), args.Error(1)
}

func hashedProfile(t *testing.T, password string, active bool) *account.Profile {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)

	p, err := account.RestoreProfile(account.NewProfileParams{
		ID:           kernel.NewUUID(),
		Email:        "ivan@example.com",
		FullName:     "Иван Петров",
		Role:         account.RoleClient,
		PasswordHash: string(hash),
		CreatedAt:    time.Now(),
	}, active)
	require.NoError(t, err)
	return p
}

func TestAuthenticateCommandHandler_Handle_Success(t *testing.T) {
	ctx := context.Background()
	profile := hashedProfile(t, "secret-password", true)
	cmd, err := commands.NewAuthenticateCommand("Ivan@Example.com", "secret-password")
	require.NoError(t, err)

	repo := new(MockProfileRepository)
	uow := new(MockProfileUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ProfileRepository").Return(repo).Once(),
		repo.On("GetByEmail", mock.Anything, "ivan@example.com").Return(profile, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockProfileUoWFactory)
	factory.On("Create").Return(uow).Once()

	tokens := new(MockTokenIssuer)
	tokens.On("Issue", profile.ID().String(), "ivan@example.com", "client").
		Return("signed-token", nil).Once()

	h := commands.NewAuthenticateCommandHandler(factory, tokens)
	result, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, "signed-token", result.Token)
	assert.True(t, result.Profile.IsEqual(profile))
	tokens.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestAuthenticateCommandHandler_Handle_WrongPassword(t *testing.T) {
	ctx := context.Background()
	profile := hashedProfile(t, "secret-password", true)
	cmd, err := commands.NewAuthenticateCommand("ivan@example.com", "wrong-password")
	require.NoError(t, err)

	repo := new(MockProfileRepository)
	uow := new(MockProfileUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ProfileRepository").Return(repo).Once(),
		repo.On("GetByEmail", mock.Anything, "ivan@example.com").Return(profile, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockProfileUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewAuthenticateCommandHandler(factory, new(MockTokenIssuer))
	_, err = h.Handle(ctx, cmd)

	require.ErrorIs(t, err, commands.ErrInvalidCredentials)
}

func TestAuthenticateCommandHandler_Handle_UnknownEmail(t *testing.T) {
	ctx := context.Background()
	cmd, err := commands.NewAuthenticateCommand("ghost@example.com", "whatever1")
	require.NoError(t, err)

	repo := new(MockProfileRepository)
	uow := new(MockProfileUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ProfileRepository").Return(repo).Once(),
		repo.On("GetByEmail", mock.Anything, "ghost@example.com").
			Return(nil, errs.NewObjectNotFoundError("email", "ghost@example.com")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockProfileUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewAuthenticateCommandHandler(factory, new(MockTokenIssuer))
	_, err = h.Handle(ctx, cmd)

	require.ErrorIs(t, err, commands.ErrInvalidCredentials)
}

func TestAuthenticateCommandHandler_Handle_DeactivatedProfile(t *testing.T) {
	ctx := context.Background()
	profile := hashedProfile(t, "secret-password", false)
	cmd, err := commands.NewAuthenticateCommand("ivan@example.com", "secret-password")
	require.NoError(t, err)

	repo := new(MockProfileRepository)
	uow := new(MockProfileUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ProfileRepository").Return(repo).Once(),
		repo.On("GetByEmail", mock.Anything, "ivan@example.com").Return(profile, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockProfileUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewAuthenticateCommandHandler(factory, new(MockTokenIssuer))
	_, err = h.Handle(ctx, cmd)

	require.ErrorIs(t, err, commands.ErrInvalidCredentials)
}
