package identity

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"
)

// Account is this service's view of a student account held by the external
// identity collaborator. The collaborator owns credentials and sessions;
// only the account id and email matter here.
type Account struct {
	ID        string
	Email     string
	Name      string
	CreatedAt time.Time
}

var (
	ErrAccountNotFound = errors.New("identity account not found")
	ErrInvalidToken    = errors.New("invalid identity token")
)

// Provider is the port to the external identity collaborator. Credential
// verification for students happens entirely on the collaborator's side;
// this service only creates accounts at signup and verifies issued tokens.
type Provider interface {
	CreateAccount(ctx context.Context, name, email, password string) (*Account, error)
	AccountByEmail(ctx context.Context, email string) (*Account, error)
	VerifyToken(ctx context.Context, token string) (*Account, error)
	DeleteAccount(ctx context.Context, id string) error
	ListAccounts(ctx context.Context) ([]*Account, error)
}

// MockProvider is an in-memory Provider for tests and local development.
type MockProvider struct {
	mu       sync.Mutex
	accounts map[string]*Account // keyed by id
	tokens   map[string]string   // token -> account id
	nextID   int

	// FailCreate forces CreateAccount to fail after the duplicate check,
	// to exercise the non-atomic signup path.
	FailCreate bool
}

func NewMockProvider() *MockProvider {
	return &MockProvider{
		accounts: make(map[string]*Account),
		tokens:   make(map[string]string),
	}
}

func (m *MockProvider) CreateAccount(ctx context.Context, name, email, password string) (*Account, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.FailCreate {
		return nil, errors.New("mock: account creation failed")
	}

	m.nextID++
	account := &Account{
		ID:        fmt.Sprintf("acct-%d", m.nextID),
		Email:     email,
		Name:      name,
		CreatedAt: time.Now(),
	}
	m.accounts[account.ID] = account
	return account, nil
}

func (m *MockProvider) AccountByEmail(ctx context.Context, email string) (*Account, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, account := range m.accounts {
		if account.Email == email {
			return account, nil
		}
	}
	return nil, ErrAccountNotFound
}

func (m *MockProvider) VerifyToken(ctx context.Context, token string) (*Account, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	id, ok := m.tokens[token]
	if !ok {
		return nil, ErrInvalidToken
	}
	account, ok := m.accounts[id]
	if !ok {
		return nil, ErrInvalidToken
	}
	return account, nil
}

func (m *MockProvider) DeleteAccount(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.accounts[id]; !ok {
		return ErrAccountNotFound
	}
	delete(m.accounts, id)
	return nil
}

func (m *MockProvider) ListAccounts(ctx context.Context) ([]*Account, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	accounts := make([]*Account, 0, len(m.accounts))
	for _, account := range m.accounts {
		accounts = append(accounts, account)
	}
	return accounts, nil
}

// IssueToken registers a token for an account, standing in for the
// collaborator's session issuance.
func (m *MockProvider) IssueToken(id, token string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.tokens[token] = id
}
