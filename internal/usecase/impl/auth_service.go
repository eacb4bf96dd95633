// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"

	deliverycontext "ledger/internal/delivery/context"
	"ledger/internal/domain/entity"
	domainerrors "ledger/internal/domain/errors"
	"ledger/internal/domain/repository"
	"ledger/internal/domain/service"
	"ledger/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// tokenTypeBearer is the token_type value returned with every issued token.
const tokenTypeBearer = "bearer"

// authService implements the AuthUsecase interface.
type authService struct {
	txManager      repository.TransactionManager
	userRepo       repository.UserRepository
	credentialRepo repository.CredentialRepository
	hasher         service.PasswordHasher
	tokenService   service.TokenService
	logger         *slog.Logger
}

// AuthServiceParams holds dependencies for authService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	TxManager      repository.TransactionManager
	UserRepo       repository.UserRepository
	CredentialRepo repository.CredentialRepository
	Hasher         service.PasswordHasher
	TokenService   service.TokenService
	Logger         *slog.Logger
}

// NewAuthService is the constructor for authService. It receives all dependencies as interfaces.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	return &authService{
		txManager:      params.TxManager,
		userRepo:       params.UserRepo,
		credentialRepo: params.CredentialRepo,
		hasher:         params.Hasher,
		tokenService:   params.TokenService,
		logger:         params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register orchestrates the complete registration process: the user row and
// its password credential are created in a single transaction, and a session
// token for the new account is issued on success.
func (srv *authService) Register(ctx context.Context, input *usecase.RegisterInput) (*usecase.TokenOutput, error) {
	srv.log(ctx).Info("Starting registration", slog.String("email", input.Email))

	// Hash outside the transaction (bcrypt is CPU-bound).
	hashedPassword, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password during registration", slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrPasswordHashFailed, "failed to hash password during registration")
	}

	newUser := &entity.User{
		Email:     input.Email,
		FirstName: input.FirstName,
		LastName:  input.LastName,
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()
		credentialRepo := repoFactory.CredentialRepo()

		// Pre-check for a friendlier path; the unique constraint on email is
		// the authoritative guard against concurrent registrations.
		_, findErr := userRepo.FindByEmail(ctx, input.Email)
		if findErr == nil {
			return errors.Wrap(domainerrors.ErrEmailAlreadyRegistered, "email already registered")
		}
		if !errors.Is(findErr, repository.ErrUserNotFound) {
			return errors.Wrap(findErr, "failed to check existing registration")
		}

		if createErr := userRepo.Create(ctx, newUser); createErr != nil {
			return errors.Wrap(createErr, "failed to create user during registration")
		}

		newCredential := &entity.Credential{
			UserID:       newUser.ID,
			PasswordHash: hashedPassword,
		}
		if createErr := credentialRepo.Create(ctx, newCredential); createErr != nil {
			return errors.Wrap(createErr, "failed to create credential during registration")
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Failed to execute registration transaction", slog.String("email", input.Email), slog.Any("error", err))

		return nil, err
	}

	srv.log(ctx).Debug("Registration completed", slog.Any("userID", newUser.ID))

	return srv.issueToken(ctx, newUser.Email)
}

// Login verifies an email/password pair and returns a fresh session token.
// Every failure mode collapses to ErrInvalidCredentials so the response does
// not reveal whether the email is registered.
func (srv *authService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.TokenOutput, error) {
	srv.log(ctx).Debug("Starting login", slog.String("email", input.Email))

	user, err := srv.userRepo.FindByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			srv.log(ctx).Warn("Login failed", slog.String("email", input.Email), slog.Any("error", domainerrors.ErrInvalidCredentials))

			return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed")
		}

		return nil, errors.Wrap(err, "failed to find user by email")
	}

	credential, err := srv.credentialRepo.FindByUserID(ctx, user.ID)
	if err != nil {
		if errors.Is(err, repository.ErrCredentialNotFound) {
			srv.log(ctx).Warn("Login failed", slog.String("email", input.Email), slog.Any("error", domainerrors.ErrInvalidCredentials))

			return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed")
		}

		return nil, errors.Wrap(err, "failed to find credential")
	}

	// Check password outside any transaction (bcrypt is CPU-bound).
	if !srv.hasher.Check(input.Password, credential.PasswordHash) {
		srv.log(ctx).Warn("Login failed", slog.String("email", input.Email), slog.Any("error", domainerrors.ErrInvalidCredentials))

		return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed")
	}

	srv.log(ctx).Debug("User logged in successfully", slog.Any("userID", user.ID))

	return srv.issueToken(ctx, user.Email)
}

// ResolveIdentity validates a raw token string and loads the user named by
// its subject. A valid token whose subject has since vanished is rejected
// exactly like a malformed one.
func (srv *authService) ResolveIdentity(ctx context.Context, tokenString string) (*entity.User, error) {
	claims, err := srv.tokenService.Validate(tokenString)
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrInvalidToken, "token validation failed")
	}

	user, err := srv.userRepo.FindByEmail(ctx, claims.Subject)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			srv.log(ctx).Warn("Token subject no longer exists", slog.String("subject", claims.Subject))

			return nil, errors.Wrap(domainerrors.ErrInvalidToken, "token subject no longer exists")
		}

		return nil, errors.Wrap(err, "failed to load token subject")
	}

	return user, nil
}

func (srv *authService) issueToken(ctx context.Context, subject string) (*usecase.TokenOutput, error) {
	accessToken, err := srv.tokenService.Issue(subject, srv.tokenService.AccessTokenTTL())
	if err != nil {
		srv.log(ctx).Error("Failed to issue session token", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to issue session token")
	}

	return &usecase.TokenOutput{
		AccessToken: accessToken,
		TokenType:   tokenTypeBearer,
	}, nil
}
