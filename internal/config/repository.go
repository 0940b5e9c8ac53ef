package config

import (
	"fmt"
	"os"

	"todo-app/internal/repository/sqlite"
)

// Environment represents the current environment
type Environment string

const (
	Development Environment = "development"
	Testing     Environment = "testing"
	Production  Environment = "production"
)

// IsValid reports whether e is a known environment
func (e Environment) IsValid() bool {
	switch e {
	case Development, Testing, Production:
		return true
	default:
		return false
	}
}

// UnmarshalText lets unknown values fail validation instead of parsing
func (e *Environment) UnmarshalText(text []byte) error {
	*e = Environment(text)
	return nil
}

// GetEnvironment determines the current environment from TODO_ENV
func GetEnvironment() Environment {
	env := Environment(os.Getenv("TODO_ENV"))
	if env.IsValid() {
		return env
	}
	// Default to production for safety
	return Production
}

// RepositoryFactory creates repository instances based on environment
type RepositoryFactory struct {
	env    Environment
	config *Config
}

// NewRepositoryFactory creates a new repository factory for the given configuration
func NewRepositoryFactory(cfg *Config) *RepositoryFactory {
	return &RepositoryFactory{env: cfg.Environment, config: cfg}
}

// CreateRepository creates a repository instance based on the current environment
func (rf *RepositoryFactory) CreateRepository() (sqlite.Repository, error) {
	switch rf.env {
	case Testing:
		return CreateTestRepository()
	default:
		return CreateRepository(rf.config)
	}
}

// CreateRepository creates a repository instance using the configuration system.
// The database directory and file are created if they do not exist.
func CreateRepository(config *Config) (sqlite.Repository, error) {
	dbPath := config.GetDatabasePath()

	if dbPath != MemoryDatabase {
		if err := os.MkdirAll(config.Database.Dir, config.Database.DirPermissions.Perm()); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
	}

	repo, err := sqlite.NewWithOptions(dbPath, config.RepositoryOptions())
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	return repo, nil
}

// CreateTestRepository creates an in-memory repository for testing
func CreateTestRepository() (sqlite.Repository, error) {
	repo, err := sqlite.New(MemoryDatabase)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize test database: %w", err)
	}

	return repo, nil
}
