package storage

import (
	"context"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

const tempPrefix = ".upload-"

// localBackend stores objects as plain files under a media root directory.
// Writes go to a temp file first and are renamed into place, so a crash
// mid-write never leaves a partial object visible under its key.
type localBackend struct {
	root string
}

// NewLocal creates the media root if absent and returns a local-disk backend.
func NewLocal(root string) (Backend, error) {
	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("%w: resolve media path: %v", ErrBackendUnavailable, err)
	}
	if err := os.MkdirAll(abs, 0o755); err != nil {
		return nil, fmt.Errorf("%w: create media path: %v", ErrBackendUnavailable, err)
	}
	return &localBackend{root: abs}, nil
}

func (l *localBackend) Kind() string { return "local" }

// Put writes the object atomically: temp file in the target directory, then rename.
func (l *localBackend) Put(ctx context.Context, key string, r io.Reader, opt PutOptions) error {
	dst := filepath.Join(l.root, filepath.FromSlash(key))
	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return &WriteError{Key: key, Err: err}
	}

	tmp, err := os.CreateTemp(filepath.Dir(dst), tempPrefix+"*")
	if err != nil {
		return &WriteError{Key: key, Err: err}
	}
	tmpName := tmp.Name()

	if _, err := io.Copy(tmp, r); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return &WriteError{Key: key, Err: err}
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return &WriteError{Key: key, Err: err}
	}
	if err := os.Rename(tmpName, dst); err != nil {
		os.Remove(tmpName)
		return &WriteError{Key: key, Err: err}
	}
	return nil
}

// URLFor returns the serve path for a local object. The HTTP layer streams
// the file itself; there is no signed-URL concept on disk.
func (l *localBackend) URLFor(_ context.Context, key string) (string, error) {
	return "/media/" + key, nil
}

// Delete removes the file. A missing file is not an error, so retries and
// double-cleanups are safe.
func (l *localBackend) Delete(_ context.Context, key string) error {
	err := os.Remove(filepath.Join(l.root, filepath.FromSlash(key)))
	if err != nil && !os.IsNotExist(err) {
		return &DeleteError{Key: key, Err: err}
	}
	return nil
}

// List walks the media root lazily, emitting one ObjectInfo per file.
// In-flight temp files are skipped.
func (l *localBackend) List(ctx context.Context) <-chan ObjectInfo {
	out := make(chan ObjectInfo)
	go func() {
		defer close(out)
		err := filepath.WalkDir(l.root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.IsDir() || strings.HasPrefix(d.Name(), tempPrefix) {
				return nil
			}
			info, err := d.Info()
			if err != nil {
				if os.IsNotExist(err) {
					// Deleted between walk and stat.
					return nil
				}
				return err
			}
			rel, err := filepath.Rel(l.root, path)
			if err != nil {
				return err
			}
			select {
			case out <- ObjectInfo{
				Key:          filepath.ToSlash(rel),
				Size:         info.Size(),
				LastModified: info.ModTime(),
			}:
				return nil
			case <-ctx.Done():
				return ctx.Err()
			}
		})
		if err != nil && ctx.Err() == nil {
			select {
			case out <- ObjectInfo{Err: err}:
			case <-ctx.Done():
			}
		}
	}()
	return out
}
