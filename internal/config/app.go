package config

import "max.ks1230/expenses-ledger/internal/entity/expense"

type AppConfig struct {
	DefaultUserName string `yaml:"default-user"`
}

// DefaultUser is the user the CLI selects when --user is not given.
func (s *AppConfig) DefaultUser() (expense.User, error) {
	return expense.ParseUser(s.DefaultUserName)
}
