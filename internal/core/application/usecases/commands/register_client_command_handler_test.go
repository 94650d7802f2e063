package commands_test

import (
	"context"
	"testing"
	"time"

	"cargotrack/internal/core/application/usecases/commands"
	"cargotrack/internal/core/domain/model/account"
	"cargotrack/internal/core/domain/model/kernel"
	"cargotrack/internal/core/ports"
	"cargotrack/internal/pkg/errs"

	"golang.org/x/crypto/bcrypt"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockProfileRepository struct{ mock.Mock }

func (m *MockProfileRepository) Add(ctx context.Context, p *account.Profile) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}
func (m *MockProfileRepository) Update(ctx context.Context, p *account.Profile) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}
func (m *MockProfileRepository) Get(ctx context.Context, id kernel.UUID) (*account.Profile, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*account.Profile), args.Error(1)
}
func (m *MockProfileRepository) GetByEmail(ctx context.Context, email string) (*account.Profile, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*account.Profile), args.Error(1)
}

type MockProfileUoW struct{ mock.Mock }

func (m *MockProfileUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockProfileUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockProfileUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockProfileUoW) ProfileRepository() ports.ProfileRepository {
	args := m.Called()
	return args.Get(0).(ports.ProfileRepository)
}

type MockProfileUoWFactory struct{ mock.Mock }

func (m *MockProfileUoWFactory) Create() commands.ProfileUoW {
	args := m.Called()
	return args.Get(0).(commands.ProfileUoW)
}

func TestRegisterClientCommandHandler_Handle_Success(t *testing.T) {
	ctx := context.Background()
	cmd, err := commands.NewRegisterClientCommand(
		"Ivan@Example.com", "secret-password", "Иван Петров", "+79990001122", "")
	require.NoError(t, err)

	var saved *account.Profile
	repo := new(MockProfileRepository)
	uow := new(MockProfileUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ProfileRepository").Return(repo).Once(),
		repo.On("GetByEmail", mock.Anything, "ivan@example.com").
			Return(nil, errs.NewObjectNotFoundError("email", "ivan@example.com")).Once(),
		repo.On("Add", mock.Anything, mock.AnythingOfType("*account.Profile")).
			Run(func(args mock.Arguments) { saved = args.Get(1).(*account.Profile) }).
			Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockProfileUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewRegisterClientCommandHandler(factory)
	id, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	require.NoError(t, id.Validate())
	require.NotNil(t, saved)
	assert.Equal(t, account.RoleClient, saved.Role())
	assert.NoError(t, bcrypt.CompareHashAndPassword(
		[]byte(saved.PasswordHash()), []byte("secret-password")))
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestRegisterClientCommandHandler_Handle_EmailTaken(t *testing.T) {
	ctx := context.Background()
	cmd, err := commands.NewRegisterClientCommand(
		"ivan@example.com", "secret-password", "Иван Петров", "", "")
	require.NoError(t, err)

	existing, err := account.NewProfile(account.NewProfileParams{
		ID:           kernel.NewUUID(),
		Email:        "ivan@example.com",
		FullName:     "Иван Петров",
		Role:         account.RoleClient,
		PasswordHash: "x",
		CreatedAt:    time.Now(),
	})
	require.NoError(t, err)

	repo := new(MockProfileRepository)
	uow := new(MockProfileUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ProfileRepository").Return(repo).Once(),
		repo.On("GetByEmail", mock.Anything, "ivan@example.com").Return(existing, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockProfileUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewRegisterClientCommandHandler(factory)
	_, err = h.Handle(ctx, cmd)

	require.ErrorIs(t, err, commands.ErrEmailAlreadyRegistered)
	uow.AssertExpectations(t)
}

func TestNewRegisterClientCommand_ShortPassword(t *testing.T) {
	_, err := commands.NewRegisterClientCommand("ivan@example.com", "short", "Иван", "", "")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "password")
}
