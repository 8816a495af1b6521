package identity

import (
	"context"
	"fmt"
	"time"

	"github.com/casdoor/casdoor-go-sdk/casdoorsdk"
	"github.com/google/uuid"
)

// CasdoorProvider implements Provider against a Casdoor deployment.
type CasdoorProvider struct {
	client       *casdoorsdk.Client
	organization string
	application  string
}

type CasdoorConfig struct {
	Endpoint     string
	ClientID     string
	ClientSecret string
	Certificate  string
	Organization string
	Application  string
}

func NewCasdoorProvider(cfg CasdoorConfig) *CasdoorProvider {
	client := casdoorsdk.NewClient(
		cfg.Endpoint,
		cfg.ClientID,
		cfg.ClientSecret,
		cfg.Certificate,
		cfg.Organization,
		cfg.Application,
	)
	return &CasdoorProvider{
		client:       client,
		organization: cfg.Organization,
		application:  cfg.Application,
	}
}

func (p *CasdoorProvider) CreateAccount(ctx context.Context, name, email, password string) (*Account, error) {
	user := &casdoorsdk.User{
		Owner:             p.organization,
		Name:              uuid.NewString(),
		Id:                uuid.NewString(),
		DisplayName:       name,
		Email:             email,
		Password:          password,
		SignupApplication: p.application,
		CreatedTime:       time.Now().Format(time.RFC3339),
	}

	ok, err := p.client.AddUser(user)
	if err != nil {
		return nil, fmt.Errorf("identity collaborator rejected account creation: %w", err)
	}
	if !ok {
		return nil, fmt.Errorf("identity collaborator did not create account for %s", email)
	}

	return accountFromUser(user), nil
}

func (p *CasdoorProvider) AccountByEmail(ctx context.Context, email string) (*Account, error) {
	user, err := p.client.GetUserByEmail(email)
	if err != nil {
		return nil, fmt.Errorf("failed to look up account by email: %w", err)
	}
	if user == nil || user.Id == "" {
		return nil, ErrAccountNotFound
	}
	return accountFromUser(user), nil
}

func (p *CasdoorProvider) VerifyToken(ctx context.Context, token string) (*Account, error) {
	claims, err := p.client.ParseJwtToken(token)
	if err != nil {
		return nil, ErrInvalidToken
	}
	return accountFromUser(&claims.User), nil
}

func (p *CasdoorProvider) DeleteAccount(ctx context.Context, id string) error {
	users, err := p.client.GetUsers()
	if err != nil {
		return fmt.Errorf("failed to list accounts: %w", err)
	}
	for _, user := range users {
		if user.Id != id {
			continue
		}
		ok, err := p.client.DeleteUser(user)
		if err != nil {
			return fmt.Errorf("failed to delete account %s: %w", id, err)
		}
		if !ok {
			return fmt.Errorf("identity collaborator refused to delete account %s", id)
		}
		return nil
	}
	return ErrAccountNotFound
}

func (p *CasdoorProvider) ListAccounts(ctx context.Context) ([]*Account, error) {
	users, err := p.client.GetUsers()
	if err != nil {
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}
	accounts := make([]*Account, 0, len(users))
	for _, user := range users {
		accounts = append(accounts, accountFromUser(user))
	}
	return accounts, nil
}

func accountFromUser(user *casdoorsdk.User) *Account {
	createdAt, _ := time.Parse(time.RFC3339, user.CreatedTime)
	return &Account{
		ID:        user.Id,
		Email:     user.Email,
		Name:      user.DisplayName,
		CreatedAt: createdAt,
	}
}
