// Package blob implements the BlobStore port on the local filesystem.
// Objects live under a root directory; the blob path maps to a relative
// file path. Read access from outside the process goes through HMAC-signed
// expiring URLs served by the HTTP adapter.
package blob

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"missionops/internal/pkg/errs"
)

// ErrInvalidBlobPath is returned for empty, absolute or traversal paths.
var ErrInvalidBlobPath = errors.New("blob path must be a clean relative path")

// FileStore stores blobs as files under a root directory. The stored
// content type is advisory and not persisted; callers derive it from the
// blob path convention.
type FileStore struct {
	root    string
	baseURL string
	secret  []byte
}

// NewFileStore creates a store rooted at root. baseURL is the externally
// reachable prefix signed URLs point at; secret keys the URL signatures.
func NewFileStore(root, baseURL string, secret []byte) (*FileStore, error) {
	if root == "" {
		return nil, errs.NewValueIsRequiredError("blob root")
	}
	if len(secret) == 0 {
		return nil, errs.NewValueIsRequiredError("signed URL secret")
	}

	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("create blob root: %w", err)
	}

	return &FileStore{
		root:    root,
		baseURL: strings.TrimRight(baseURL, "/"),
		secret:  secret,
	}, nil
}

// Put stores data at path. With overwrite disabled the create is atomic at
// the filesystem level: a concurrent second writer to the same path loses
// with a conflict and the first object stays untouched.
func (s *FileStore) Put(ctx context.Context, path string, data []byte, _ string, overwrite bool) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	full, err := s.resolve(path)
	if err != nil {
		return err
	}

	if err = os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
		return fmt.Errorf("create blob directory: %w", err)
	}

	if !overwrite {
		file, openErr := os.OpenFile(full, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
		if openErr != nil {
			if errors.Is(openErr, fs.ErrExist) {
				return errs.NewConflictError("blob " + path)
			}
			return fmt.Errorf("create blob: %w", openErr)
		}
		if _, err = file.Write(data); err != nil {
			_ = file.Close()
			return fmt.Errorf("write blob: %w", err)
		}
		return file.Close()
	}

	// Overwrite goes through a temp file and rename so readers never see a
	// half-written object.
	tmp, err := os.CreateTemp(filepath.Dir(full), ".blob-*")
	if err != nil {
		return fmt.Errorf("create blob temp file: %w", err)
	}
	if _, err = tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmp.Name())
		return fmt.Errorf("write blob: %w", err)
	}
	if err = tmp.Close(); err != nil {
		_ = os.Remove(tmp.Name())
		return fmt.Errorf("close blob temp file: %w", err)
	}
	if err = os.Rename(tmp.Name(), full); err != nil {
		_ = os.Remove(tmp.Name())
		return fmt.Errorf("replace blob: %w", err)
	}
	return nil
}

// Get retrieves the object at path.
func (s *FileStore) Get(ctx context.Context, path string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	full, err := s.resolve(path)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(full)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, errs.NewObjectNotFoundError("blob", path)
		}
		return nil, fmt.Errorf("read blob: %w", err)
	}
	return data, nil
}

// Delete removes the object at path. Deleting a missing object is not an
// error.
func (s *FileStore) Delete(ctx context.Context, path string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	full, err := s.resolve(path)
	if err != nil {
		return err
	}

	if err = os.Remove(full); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("delete blob: %w", err)
	}
	return nil
}

// SignedURL returns a time-limited read URL for the object at path. The
// signature binds the path and expiry together so neither can be swapped.
func (s *FileStore) SignedURL(path string, ttl time.Duration) (string, error) {
	if _, err := s.resolve(path); err != nil {
		return "", err
	}
	if ttl <= 0 {
		return "", errs.NewValueIsOutOfRangeError("ttl", ttl, 1, "unbounded")
	}

	expires := time.Now().Add(ttl).Unix()
	return fmt.Sprintf("%s/blobs/%s?expires=%d&signature=%s",
		s.baseURL, path, expires, s.sign(path, expires)), nil
}

// VerifySignedURL checks a signed URL's path, expiry and signature. Used by
// the HTTP adapter before serving blob bytes.
func (s *FileStore) VerifySignedURL(path string, expires int64, signature string) bool {
	if time.Now().Unix() > expires {
		return false
	}
	expected := s.sign(path, expires)
	return hmac.Equal([]byte(expected), []byte(signature))
}

func (s *FileStore) sign(path string, expires int64) string {
	mac := hmac.New(sha256.New, s.secret)
	mac.Write([]byte(path))
	mac.Write([]byte{0})
	mac.Write([]byte(strconv.FormatInt(expires, 10)))
	return hex.EncodeToString(mac.Sum(nil))
}

func (s *FileStore) resolve(path string) (string, error) {
	if path == "" || filepath.IsAbs(path) {
		return "", ErrInvalidBlobPath
	}
	clean := filepath.Clean(filepath.FromSlash(path))
	if clean == "." || strings.HasPrefix(clean, "..") {
		return "", ErrInvalidBlobPath
	}
	return filepath.Join(s.root, clean), nil
}
