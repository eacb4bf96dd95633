package impl

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"
	"sync"
	"time"

	"ledger/internal/domain/entity"
	"ledger/internal/domain/repository"
	"ledger/internal/domain/service"

	"github.com/google/uuid"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// --- in-memory repository fakes ---

type fakeUserRepo struct {
	mu    sync.Mutex
	users map[uuid.UUID]*entity.User

	findByEmailErr error
	createErr      error
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[uuid.UUID]*entity.User)}
}

func (r *fakeUserRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	user, ok := r.users[id]
	if !ok {
		return nil, repository.ErrUserNotFound
	}
	clone := *user

	return &clone, nil
}

func (r *fakeUserRepo) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.findByEmailErr != nil {
		return nil, r.findByEmailErr
	}
	for _, user := range r.users {
		if user.Email == email {
			clone := *user

			return &clone, nil
		}
	}

	return nil, repository.ErrUserNotFound
}

func (r *fakeUserRepo) Create(_ context.Context, user *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.createErr != nil {
		return r.createErr
	}
	user.ID = uuid.New()
	user.CreatedAt = time.Now()
	user.UpdatedAt = user.CreatedAt
	clone := *user
	r.users[user.ID] = &clone

	return nil
}

type fakeCredentialRepo struct {
	mu          sync.Mutex
	credentials map[uuid.UUID]*entity.Credential

	createErr error
}

func newFakeCredentialRepo() *fakeCredentialRepo {
	return &fakeCredentialRepo{credentials: make(map[uuid.UUID]*entity.Credential)}
}

func (r *fakeCredentialRepo) Create(_ context.Context, credential *entity.Credential) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.createErr != nil {
		return r.createErr
	}
	credential.ID = uuid.New()
	credential.CreatedAt = time.Now()
	clone := *credential
	r.credentials[credential.UserID] = &clone

	return nil
}

func (r *fakeCredentialRepo) FindByUserID(_ context.Context, userID uuid.UUID) (*entity.Credential, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	credential, ok := r.credentials[userID]
	if !ok {
		return nil, repository.ErrCredentialNotFound
	}
	clone := *credential

	return &clone, nil
}

type fakeAccountRepo struct {
	mu       sync.Mutex
	accounts map[uuid.UUID]*entity.Account

	createErr error
}

func newFakeAccountRepo() *fakeAccountRepo {
	return &fakeAccountRepo{accounts: make(map[uuid.UUID]*entity.Account)}
}

func (r *fakeAccountRepo) ListByUserID(_ context.Context, userID uuid.UUID) ([]*entity.Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var result []*entity.Account
	for _, account := range r.accounts {
		if account.UserID == userID {
			clone := *account
			result = append(result, &clone)
		}
	}

	return result, nil
}

func (r *fakeAccountRepo) FindByID(_ context.Context, userID, id uuid.UUID) (*entity.Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	account, ok := r.accounts[id]
	if !ok || account.UserID != userID {
		return nil, repository.ErrAccountNotFound
	}
	clone := *account

	return &clone, nil
}

func (r *fakeAccountRepo) Create(_ context.Context, account *entity.Account) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.createErr != nil {
		return r.createErr
	}
	account.ID = uuid.New()
	account.CreatedAt = time.Now()
	account.UpdatedAt = account.CreatedAt
	clone := *account
	r.accounts[account.ID] = &clone

	return nil
}

func (r *fakeAccountRepo) Update(_ context.Context, account *entity.Account) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.accounts[account.ID]; !ok {
		return repository.ErrAccountNotFound
	}
	account.UpdatedAt = time.Now()
	clone := *account
	r.accounts[account.ID] = &clone

	return nil
}

func (r *fakeAccountRepo) Delete(_ context.Context, userID, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	account, ok := r.accounts[id]
	if !ok || account.UserID != userID {
		return repository.ErrAccountNotFound
	}
	delete(r.accounts, id)

	return nil
}

type fakeCategoryRepo struct {
	mu         sync.Mutex
	categories map[uuid.UUID]*entity.ExpenseCategory
}

func newFakeCategoryRepo() *fakeCategoryRepo {
	return &fakeCategoryRepo{categories: make(map[uuid.UUID]*entity.ExpenseCategory)}
}

func (r *fakeCategoryRepo) List(_ context.Context) ([]*entity.ExpenseCategory, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var result []*entity.ExpenseCategory
	for _, category := range r.categories {
		clone := *category
		result = append(result, &clone)
	}

	return result, nil
}

func (r *fakeCategoryRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.ExpenseCategory, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	category, ok := r.categories[id]
	if !ok {
		return nil, repository.ErrCategoryNotFound
	}
	clone := *category

	return &clone, nil
}

func (r *fakeCategoryRepo) Create(_ context.Context, category *entity.ExpenseCategory) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	category.ID = uuid.New()
	category.CreatedAt = time.Now()
	category.UpdatedAt = category.CreatedAt
	clone := *category
	r.categories[category.ID] = &clone

	return nil
}

func (r *fakeCategoryRepo) Update(_ context.Context, category *entity.ExpenseCategory) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.categories[category.ID]; !ok {
		return repository.ErrCategoryNotFound
	}
	category.UpdatedAt = time.Now()
	clone := *category
	r.categories[category.ID] = &clone

	return nil
}

func (r *fakeCategoryRepo) Delete(_ context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.categories[id]; !ok {
		return repository.ErrCategoryNotFound
	}
	delete(r.categories, id)

	return nil
}

// fakeRepoFactory hands back the shared in-memory fakes so transactional and
// direct paths observe the same state.
type fakeRepoFactory struct {
	userRepo       *fakeUserRepo
	credentialRepo *fakeCredentialRepo
	accountRepo    *fakeAccountRepo
	categoryRepo   *fakeCategoryRepo
}

func (f *fakeRepoFactory) UserRepo() repository.UserRepository { return f.userRepo }

func (f *fakeRepoFactory) CredentialRepo() repository.CredentialRepository {
	return f.credentialRepo
}

func (f *fakeRepoFactory) AccountRepo() repository.AccountRepository { return f.accountRepo }

func (f *fakeRepoFactory) ExpenseCategoryRepo() repository.ExpenseCategoryRepository {
	return f.categoryRepo
}

// fakeTxManager runs the callback against the shared fakes without any real
// transaction semantics.
type fakeTxManager struct {
	factory *fakeRepoFactory

	executeErr error
}

func (tm *fakeTxManager) Execute(_ context.Context, fn func(repository.RepositoryFactory) error) error {
	if tm.executeErr != nil {
		return tm.executeErr
	}

	return fn(tm.factory)
}

// --- domain service fakes ---

type fakeHasher struct {
	hashErr error
}

func (h *fakeHasher) Hash(password string) (string, error) {
	if h.hashErr != nil {
		return "", h.hashErr
	}

	return "hashed:" + password, nil
}

func (h *fakeHasher) Check(password, hash string) bool {
	return hash == "hashed:"+password
}

var errFakeTokenRejected = errors.New("token rejected")

type fakeTokenService struct {
	issueErr error
	ttl      time.Duration
}

func (s *fakeTokenService) Issue(subject string, ttl time.Duration) (string, error) {
	if s.issueErr != nil {
		return "", s.issueErr
	}

	return "token-for:" + subject, nil
}

func (s *fakeTokenService) IssueDefault(subject string) (string, error) {
	return s.Issue(subject, service.DefaultSessionTTL)
}

func (s *fakeTokenService) Validate(tokenString string) (*service.Claims, error) {
	subject, ok := strings.CutPrefix(tokenString, "token-for:")
	if !ok || subject == "" {
		return nil, errFakeTokenRejected
	}

	return &service.Claims{
		Subject:   subject,
		ExpiresAt: time.Now().Add(time.Minute),
	}, nil
}

func (s *fakeTokenService) AccessTokenTTL() time.Duration {
	if s.ttl > 0 {
		return s.ttl
	}

	return 30 * time.Minute
}
