// Package storage persists the client-side session between runs: the
// bearer token and the reduced identity record, kept under fixed keys in a
// small sqlite database. Both are always written and cleared together.
package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	gormlogger "gorm.io/gorm/logger"

	"crust-connect/internal/model"
)

const (
	keyToken = "token"
	keyUser  = "user"
)

type entry struct {
	Key   string `gorm:"primaryKey"`
	Value string
}

func (entry) TableName() string { return "storage" }

type Store struct {
	db *gorm.DB
}

// Open creates the database (and its parent directory) if needed.
func Open(path string) (*Store, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o700); err != nil {
			return nil, fmt.Errorf("create storage dir: %w", err)
		}
	}

	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("open storage: %w", err)
	}

	if err := db.AutoMigrate(&entry{}); err != nil {
		return nil, fmt.Errorf("migrate storage: %w", err)
	}

	return &Store{db: db}, nil
}

// SaveAuth persists the credential and identity from a successful
// login/register response.
func (s *Store) SaveAuth(token string, user model.User) error {
	raw, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("marshal user: %w", err)
	}

	if err := s.set(keyToken, token); err != nil {
		return err
	}
	return s.set(keyUser, string(raw))
}

// Token returns the persisted bearer token, or "" when absent.
func (s *Store) Token() string {
	v, ok := s.get(keyToken)
	if !ok {
		return ""
	}
	return v
}

// User returns the persisted identity record, if any.
func (s *Store) User() (model.User, bool) {
	v, ok := s.get(keyUser)
	if !ok {
		return model.User{}, false
	}

	var u model.User
	if err := json.Unmarshal([]byte(v), &u); err != nil {
		return model.User{}, false
	}
	return u, true
}

// Clear removes the credential and identity together. Called on logout and
// on a forced authentication expiry.
func (s *Store) Clear() error {
	return s.db.Where("key IN ?", []string{keyToken, keyUser}).Delete(&entry{}).Error
}

func (s *Store) set(key, value string) error {
	err := s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value"}),
	}).Create(&entry{Key: key, Value: value}).Error
	if err != nil {
		return fmt.Errorf("store %s: %w", key, err)
	}
	return nil
}

func (s *Store) get(key string) (string, bool) {
	var e entry
	err := s.db.First(&e, "key = ?", key).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", false
	}
	if err != nil {
		return "", false
	}
	return e.Value, true
}
