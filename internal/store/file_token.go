package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/mikud-go/mikud/internal/logger"
	"github.com/mikud-go/mikud/models"
)

// tokenFileMode restricts the cache to its owner: it holds a live credential.
const tokenFileMode fs.FileMode = 0o600

// fileTokenStore is the JSON file implementation of [TokenStore].
type fileTokenStore struct {
	path string

	// mu serialises access from goroutines of this process. Writes go
	// through a temporary file and a rename, so other processes never see a
	// partially written cache.
	mu sync.Mutex

	logger *logger.Logger
}

// NewFileTokenStore constructs a [TokenStore] backed by the file at path.
// The file is not touched until the first call.
func NewFileTokenStore(path string, logger *logger.Logger) TokenStore {
	return &fileTokenStore{path: path, logger: logger}
}

// Load implements [TokenStore].
func (f *fileTokenStore) Load(ctx context.Context) (models.Token, error) {
	if err := ctx.Err(); err != nil {
		return models.Token{}, err
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	data, err := os.ReadFile(f.path)
	if errors.Is(err, fs.ErrNotExist) {
		return models.Token{}, ErrTokenNotFound
	}
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrReadingToken, err)
	}

	var token models.Token
	if err = json.Unmarshal(data, &token); err != nil {
		// well-formed JSON of another shape holds no token
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) {
			return models.Token{}, ErrTokenNotFound
		}
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCorrupted, err)
	}
	if token.IsEmpty() {
		return models.Token{}, ErrTokenNotFound
	}

	return token, nil
}

// Save implements [TokenStore]. Missing parent directories are created.
func (f *fileTokenStore) Save(ctx context.Context, token models.Token) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	data, err := json.Marshal(token)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrSavingToken, err)
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	dir := filepath.Dir(f.path)
	if err = os.MkdirAll(dir, 0o700); err != nil {
		return fmt.Errorf("%w: %w", ErrSavingToken, err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(f.path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("%w: %w", ErrSavingToken, err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if _, err = tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("%w: %w", ErrSavingToken, err)
	}
	if err = tmp.Chmod(tokenFileMode); err != nil {
		tmp.Close()
		return fmt.Errorf("%w: %w", ErrSavingToken, err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("%w: %w", ErrSavingToken, err)
	}
	if err = os.Rename(tmpName, f.path); err != nil {
		return fmt.Errorf("%w: %w", ErrSavingToken, err)
	}

	f.logger.Debug().Str("path", f.path).Msg("token cache saved")
	return nil
}

// Delete implements [TokenStore].
func (f *fileTokenStore) Delete(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	err := os.Remove(f.path)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("%w: %w", ErrDeletingToken, err)
	}

	f.logger.Debug().Str("path", f.path).Msg("token cache deleted")
	return nil
}
