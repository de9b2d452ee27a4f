package auth

import (
	"context"
	"errors"
	"strings"

	"github.com/fundr-ph/donation-ledger/internal/domain/entity"
	errs "github.com/fundr-ph/donation-ledger/internal/domain/error"
	authport "github.com/fundr-ph/donation-ledger/internal/domain/port/auth"
	coreport "github.com/fundr-ph/donation-ledger/internal/domain/port/core"
	"github.com/fundr-ph/donation-ledger/internal/domain/port/persistence"
)

// Service implements the authentication collaborator: sign-up, sign-in and
// current-user resolution. Sign-out is a client-side token discard.
type Service struct {
	userRepo     persistence.UserRepository
	hasher       authport.PasswordHasher
	tokens       authport.TokenService
	idGen        coreport.IDGenerator
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
}

// NewService creates an authentication service
func NewService(
	userRepo persistence.UserRepository,
	hasher authport.PasswordHasher,
	tokens authport.TokenService,
	idGen coreport.IDGenerator,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
) *Service {
	return &Service{
		userRepo:     userRepo,
		hasher:       hasher,
		tokens:       tokens,
		idGen:        idGen,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

const minPasswordLength = 8

// SignUp registers a donor account with a zero donation total and returns
// the account together with a signed token.
func (s *Service) SignUp(ctx context.Context, email, password, displayName string) (*entity.UserAccount, string, error) {
	if len(password) < minPasswordLength {
		return nil, "", errs.ErrInvalidCredentials
	}

	email = strings.TrimSpace(strings.ToLower(email))
	if _, err := s.userRepo.GetByEmail(ctx, email); err == nil {
		return nil, "", errs.ErrDuplicateEmail
	} else if !errors.Is(err, errs.ErrUserNotFound) {
		return nil, "", err
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		return nil, "", err
	}

	account, err := entity.NewUserAccount(s.idGen.NewID(), email, displayName, hash, s.timeProvider)
	if err != nil {
		return nil, "", err
	}

	if err := s.userRepo.Create(ctx, account); err != nil {
		return nil, "", err
	}

	token, err := s.tokens.Issue(entity.Identity{
		UserID: account.ID,
		Email:  account.Email,
		Role:   account.Role,
	})
	if err != nil {
		return nil, "", err
	}

	s.logger.Info("Account registered", map[string]any{
		"user_id": account.ID,
		"email":   account.Email,
	})

	return account, token, nil
}

// SignIn authenticates an account by email and password and returns a
// signed token carrying the account's identity and role.
func (s *Service) SignIn(ctx context.Context, email, password string) (*entity.UserAccount, string, error) {
	email = strings.TrimSpace(strings.ToLower(email))

	account, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, errs.ErrUserNotFound) {
			// Same answer as a bad password so the response does not leak
			// which addresses are registered
			return nil, "", errs.ErrInvalidCredentials
		}
		return nil, "", err
	}

	if err := s.hasher.Compare(account.PasswordHash, password); err != nil {
		s.logger.Warn("Failed sign-in attempt", map[string]any{
			"email": email,
		})
		return nil, "", errs.ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(entity.Identity{
		UserID: account.ID,
		Email:  account.Email,
		Role:   account.Role,
	})
	if err != nil {
		return nil, "", err
	}

	return account, token, nil
}

// CurrentUser resolves a bearer token to the identity it carries
func (s *Service) CurrentUser(token string) (entity.Identity, error) {
	if token == "" {
		return entity.Identity{}, errs.ErrUnauthenticated
	}
	return s.tokens.Parse(token)
}
