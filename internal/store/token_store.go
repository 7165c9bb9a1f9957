// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/gofrs/flock"

	"github.com/MKhiriev/go-device-sync/internal/logger"
	"github.com/MKhiriev/go-device-sync/models"
)

const tokenFileMode = 0o600

// fileTokenStore keeps the credential as {"token":"..."} in a single file.
//
// Writes go to a temporary file in the same directory which is then renamed
// over the target, so readers observe either the old or the new credential.
// An exclusive flock on "<path>.lock" serialises writers across processes;
// mu does the same between goroutines sharing the store.
type fileTokenStore struct {
	path   string
	mu     sync.RWMutex
	lock   *flock.Flock
	logger *logger.Logger
}

// NewFileTokenStore constructs a [TokenStore] persisting to path.
func NewFileTokenStore(path string, logger *logger.Logger) TokenStore {
	return &fileTokenStore{
		path:   path,
		lock:   flock.New(path + ".lock"),
		logger: logger,
	}
}

// Load implements [TokenStore]. A missing or corrupted file is reported as
// absent, never as an error.
func (s *fileTokenStore) Load() (models.Credential, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if err := s.lock.RLock(); err != nil {
		s.logger.Warn().Err(err).Str("path", s.path).Msg("could not take shared lock on token file, reading anyway")
	} else {
		defer s.unlock()
	}

	raw, err := os.ReadFile(s.path)
	if err != nil {
		if !os.IsNotExist(err) {
			s.logger.Warn().Err(err).Str("path", s.path).Msg("token file is unreadable")
		}
		return models.Credential{}, false
	}

	var cred models.Credential
	if err = json.Unmarshal(raw, &cred); err != nil {
		s.logger.Warn().Err(err).Str("path", s.path).Msg("token file is not valid JSON")
		return models.Credential{}, false
	}
	if strings.TrimSpace(cred.Token) == "" {
		return models.Credential{}, false
	}

	return cred, true
}

// Save implements [TokenStore].
func (s *fileTokenStore) Save(cred models.Credential) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.lock.Lock(); err != nil {
		return fmt.Errorf("%w: lock %s: %w", ErrPersistence, s.lock.Path(), err)
	}
	defer s.unlock()

	payload, err := json.Marshal(cred)
	if err != nil {
		return fmt.Errorf("%w: encode credential: %w", ErrPersistence, err)
	}

	if err = writeFileAtomic(s.path, payload); err != nil {
		return fmt.Errorf("%w: %w", ErrPersistence, err)
	}

	s.logger.Debug().Str("path", s.path).Msg("credential saved")
	return nil
}

func (s *fileTokenStore) unlock() {
	if err := s.lock.Unlock(); err != nil {
		s.logger.Warn().Err(err).Str("path", s.lock.Path()).Msg("failed to release token file lock")
	}
}

func writeFileAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpName := tmp.Name()
	committed := false
	defer func() {
		if !committed {
			_ = os.Remove(tmpName)
		}
	}()

	if _, err = tmp.Write(data); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("write temp file: %w", err)
	}
	if err = tmp.Sync(); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("sync temp file: %w", err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}
	if err = os.Chmod(tmpName, tokenFileMode); err != nil {
		return fmt.Errorf("chmod temp file: %w", err)
	}
	if err = os.Rename(tmpName, path); err != nil {
		return fmt.Errorf("replace %s: %w", path, err)
	}
	committed = true

	return nil
}
