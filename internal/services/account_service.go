package services

import (
	"database/sql"
	"fmt"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"jobtrail/internal/models"
)

// AccountServiceProvider defines the interface for account services.
type AccountServiceProvider interface {
	Register(username, password string) (models.Account, error)
	Authenticate(username, password string) (models.Account, error)
	GetByID(id string) (models.Account, error)
}

// AccountService provides business logic for account management.
type AccountService struct {
	db *sql.DB
}

// NewAccountService creates a new AccountService.
func NewAccountService(db *sql.DB) *AccountService {
	return &AccountService{db: db}
}

// Register creates a new account, hashing the password. It fails with
// ErrDuplicateUsername when the username is taken and ErrValidation when
// username or password is empty.
func (s *AccountService) Register(username, password string) (models.Account, error) {
	if username == "" {
		return models.Account{}, fmt.Errorf("%w: username is required", ErrValidation)
	}
	if password == "" {
		return models.Account{}, fmt.Errorf("%w: password is required", ErrValidation)
	}

	var exists int
	err := s.db.QueryRow("SELECT COUNT(1) FROM accounts WHERE username = ?", username).Scan(&exists)
	if err != nil {
		return models.Account{}, err
	}
	if exists > 0 {
		return models.Account{}, ErrDuplicateUsername
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return models.Account{}, fmt.Errorf("failed to hash password: %w", err)
	}

	account := models.Account{
		ID:       uuid.New().String(),
		Username: username,
	}

	stmt, err := s.db.Prepare("INSERT INTO accounts(id, username, password_hash) VALUES(?, ?, ?)")
	if err != nil {
		return models.Account{}, err
	}
	defer stmt.Close()

	if _, err = stmt.Exec(account.ID, account.Username, string(hashedPassword)); err != nil {
		return models.Account{}, err
	}

	return account, nil
}

// Authenticate verifies a username/password pair. Unknown usernames and
// wrong passwords both fail with ErrInvalidCredentials.
func (s *AccountService) Authenticate(username, password string) (models.Account, error) {
	var account models.Account
	row := s.db.QueryRow("SELECT id, username, password_hash, created_at FROM accounts WHERE username = ?", username)
	err := row.Scan(&account.ID, &account.Username, &account.PasswordHash, &account.CreatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return models.Account{}, ErrInvalidCredentials
		}
		return models.Account{}, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(password)); err != nil {
		return models.Account{}, ErrInvalidCredentials
	}

	// Don't let the hash travel beyond this service
	account.PasswordHash = ""
	return account, nil
}

// GetByID retrieves a single account by its ID, without the password hash.
func (s *AccountService) GetByID(id string) (models.Account, error) {
	var account models.Account
	row := s.db.QueryRow("SELECT id, username, created_at FROM accounts WHERE id = ?", id)
	err := row.Scan(&account.ID, &account.Username, &account.CreatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return models.Account{}, ErrNotFound
		}
		return models.Account{}, err
	}
	return account, nil
}
