package impl

import (
	"context"
	"testing"

	"ledger/internal/domain/entity"
	domainerrors "ledger/internal/domain/errors"
	"ledger/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// authServiceFixtures holds all test dependencies for auth service tests.
type authServiceFixtures struct {
	service        usecase.AuthUsecase
	userRepo       *fakeUserRepo
	credentialRepo *fakeCredentialRepo
	hasher         *fakeHasher
	tokenService   *fakeTokenService
}

func createTestAuthService(_ *testing.T) authServiceFixtures {
	userRepo := newFakeUserRepo()
	credentialRepo := newFakeCredentialRepo()
	hasher := &fakeHasher{}
	tokenService := &fakeTokenService{}
	txManager := &fakeTxManager{factory: &fakeRepoFactory{
		userRepo:       userRepo,
		credentialRepo: credentialRepo,
	}}

	service := NewAuthService(AuthServiceParams{
		TxManager:      txManager,
		UserRepo:       userRepo,
		CredentialRepo: credentialRepo,
		Hasher:         hasher,
		TokenService:   tokenService,
		Logger:         newDiscardLogger(),
	})

	return authServiceFixtures{
		service:        service,
		userRepo:       userRepo,
		credentialRepo: credentialRepo,
		hasher:         hasher,
		tokenService:   tokenService,
	}
}

func registerTestUser(t *testing.T, fixtures authServiceFixtures, email, password string) *entity.User {
	t.Helper()

	_, err := fixtures.service.Register(context.Background(), &usecase.RegisterInput{
		Email:     email,
		FirstName: "Test",
		LastName:  "User",
		Password:  password,
	})
	require.NoError(t, err)

	user, err := fixtures.userRepo.FindByEmail(context.Background(), email)
	require.NoError(t, err)

	return user
}

func TestAuthService_Register_Success(t *testing.T) {
	fixtures := createTestAuthService(t)

	output, err := fixtures.service.Register(context.Background(), &usecase.RegisterInput{
		Email:     "alice@example.com",
		FirstName: "Alice",
		LastName:  "Smith",
		Password:  "Password123!",
	})
	require.NoError(t, err)
	assert.Equal(t, "token-for:alice@example.com", output.AccessToken)
	assert.Equal(t, "bearer", output.TokenType)

	user, err := fixtures.userRepo.FindByEmail(context.Background(), "alice@example.com")
	require.NoError(t, err)
	assert.Equal(t, "Alice", user.FirstName)
	assert.Equal(t, "Smith", user.LastName)

	credential, err := fixtures.credentialRepo.FindByUserID(context.Background(), user.ID)
	require.NoError(t, err)
	assert.Equal(t, "hashed:Password123!", credential.PasswordHash)
}

func TestAuthService_Register_DuplicateEmail(t *testing.T) {
	fixtures := createTestAuthService(t)
	registerTestUser(t, fixtures, "alice@example.com", "Password123!")

	_, err := fixtures.service.Register(context.Background(), &usecase.RegisterInput{
		Email:     "alice@example.com",
		FirstName: "Other",
		LastName:  "Person",
		Password:  "Different456!",
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrEmailAlreadyRegistered)
}

func TestAuthService_Register_HashFailure(t *testing.T) {
	fixtures := createTestAuthService(t)
	fixtures.hasher.hashErr = errors.New("hash exploded")

	_, err := fixtures.service.Register(context.Background(), &usecase.RegisterInput{
		Email:    "alice@example.com",
		Password: "Password123!",
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrPasswordHashFailed)

	// Nothing should be persisted when hashing fails.
	_, err = fixtures.userRepo.FindByEmail(context.Background(), "alice@example.com")
	require.Error(t, err)
}

func TestAuthService_Login_Success(t *testing.T) {
	fixtures := createTestAuthService(t)
	registerTestUser(t, fixtures, "alice@example.com", "Password123!")

	output, err := fixtures.service.Login(context.Background(), &usecase.LoginInput{
		Email:    "alice@example.com",
		Password: "Password123!",
	})
	require.NoError(t, err)
	assert.Equal(t, "token-for:alice@example.com", output.AccessToken)
	assert.Equal(t, "bearer", output.TokenType)
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	fixtures := createTestAuthService(t)
	registerTestUser(t, fixtures, "alice@example.com", "Password123!")

	_, err := fixtures.service.Login(context.Background(), &usecase.LoginInput{
		Email:    "alice@example.com",
		Password: "wrong-password",
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestAuthService_Login_UnknownEmail(t *testing.T) {
	fixtures := createTestAuthService(t)

	_, err := fixtures.service.Login(context.Background(), &usecase.LoginInput{
		Email:    "nobody@example.com",
		Password: "Password123!",
	})
	require.Error(t, err)

	// Unknown email and wrong password must be indistinguishable.
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestAuthService_ResolveIdentity_Success(t *testing.T) {
	fixtures := createTestAuthService(t)
	registered := registerTestUser(t, fixtures, "alice@example.com", "Password123!")

	user, err := fixtures.service.ResolveIdentity(context.Background(), "token-for:alice@example.com")
	require.NoError(t, err)
	assert.Equal(t, registered.ID, user.ID)
	assert.Equal(t, "alice@example.com", user.Email)
}

func TestAuthService_ResolveIdentity_InvalidToken(t *testing.T) {
	fixtures := createTestAuthService(t)

	_, err := fixtures.service.ResolveIdentity(context.Background(), "garbage")
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidToken)
}

func TestAuthService_ResolveIdentity_VanishedSubject(t *testing.T) {
	fixtures := createTestAuthService(t)

	// Token validates but no user carries that email.
	_, err := fixtures.service.ResolveIdentity(context.Background(), "token-for:gone@example.com")
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidToken)
}
