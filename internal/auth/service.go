// Package auth implements the credential store: registration and login
// against the shared users database. Usernames are stored only as
// SHA-256 digests; passwords are hashed with Argon2id by default, with a
// PBKDF2-HMAC-SHA256 fallback selectable via configuration.
package auth

import (
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/techhome/techhome/internal/config"
	"github.com/techhome/techhome/internal/entities"
	"github.com/techhome/techhome/internal/userdb"
)

var (
	ErrBlankCredentials   = errors.New("username and password must not be blank")
	ErrUserExists         = errors.New("user already exists")
	ErrInvalidCredentials = errors.New("invalid username or password")
)

// Default hashing parameters, applied when the configuration leaves them
// unset (Argon2id 64 MiB, t=3, p=1; PBKDF2 600k iterations).
const (
	defaultArgon2Time       = 3
	defaultArgon2Memory     = 64 * 1024
	defaultArgon2Threads    = 1
	defaultPBKDF2Iterations = 600000
)

// Service handles registration and authentication.
type Service struct {
	mgr *userdb.Manager
	cfg config.Auth
}

// NewService creates a new credential service.
func NewService(mgr *userdb.Manager, cfg config.Auth) *Service {
	return &Service{mgr: mgr, cfg: cfg}
}

// CreateUser registers a new account. Blank or whitespace-only inputs
// fail before any I/O and leave no files behind. A username whose hash
// is already registered returns ErrUserExists. On success the user's
// data file is created and migrated eagerly so the account is queryable
// immediately.
func (s *Service) CreateUser(username, password string) error {
	if strings.TrimSpace(username) == "" || strings.TrimSpace(password) == "" {
		return ErrBlankCredentials
	}

	usernameHash := userdb.HashUsername(username)

	err := s.mgr.WithShared(func(db *gorm.DB) error {
		var existing entities.Credential
		err := db.Where("username_hash = ?", usernameHash).First(&existing).Error
		if err == nil {
			return ErrUserExists
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("failed to check existing user: %w", err)
		}

		record := entities.Credential{UsernameHash: usernameHash}
		if err := s.hashPassword(password, &record); err != nil {
			return err
		}

		if err := db.Create(&record).Error; err != nil {
			return fmt.Errorf("failed to create user: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	if err := s.mgr.EnsureUser(username); err != nil {
		return fmt.Errorf("failed to initialize user database: %w", err)
	}
	return nil
}

// Authenticate verifies a username/password pair. Unknown users, wrong
// passwords, blank inputs, and records with an unknown algorithm tag all
// collapse to ErrInvalidCredentials. On success the user's data file is
// ensured to exist, in case it was deleted out of band.
func (s *Service) Authenticate(username, password string) error {
	if strings.TrimSpace(username) == "" || strings.TrimSpace(password) == "" {
		return ErrInvalidCredentials
	}

	var cred entities.Credential
	err := s.mgr.WithShared(func(db *gorm.DB) error {
		return db.Where("username_hash = ?", userdb.HashUsername(username)).First(&cred).Error
	})
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrInvalidCredentials
	}
	if err != nil {
		return fmt.Errorf("failed to look up user: %w", err)
	}

	switch cred.Algo {
	case AlgoArgon2:
		if !VerifyArgon2id(password, cred.PasswordHash) {
			return ErrInvalidCredentials
		}
	case AlgoPBKDF2:
		if !VerifyPBKDF2(password, cred.PasswordHash, cred.Salt) {
			return ErrInvalidCredentials
		}
	default:
		return ErrInvalidCredentials
	}

	if err := s.mgr.EnsureUser(username); err != nil {
		return fmt.Errorf("failed to prepare user database: %w", err)
	}
	return nil
}

// hashPassword fills the password hash, salt, and algorithm tag on a
// credential record using the configured strategy.
func (s *Service) hashPassword(password string, record *entities.Credential) error {
	switch s.cfg.Algorithm {
	case config.HashPBKDF2:
		iterations := s.cfg.PBKDF2Iterations
		if iterations <= 0 {
			iterations = defaultPBKDF2Iterations
		}
		encoded, salt, err := HashPBKDF2(password, iterations)
		if err != nil {
			return fmt.Errorf("failed to hash password: %w", err)
		}
		record.PasswordHash = encoded
		record.Salt = salt
		record.Algo = AlgoPBKDF2
	default:
		time, memory, threads := s.cfg.Argon2Time, s.cfg.Argon2Memory, s.cfg.Argon2Threads
		if time == 0 {
			time = defaultArgon2Time
		}
		if memory == 0 {
			memory = defaultArgon2Memory
		}
		if threads == 0 {
			threads = defaultArgon2Threads
		}
		encoded, err := HashArgon2id(password, time, memory, threads)
		if err != nil {
			return fmt.Errorf("failed to hash password: %w", err)
		}
		record.PasswordHash = encoded
		record.Salt = ""
		record.Algo = AlgoArgon2
	}
	return nil
}
