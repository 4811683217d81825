// Package atomicfile replaces files in a single rename so readers never see
// a partially written file.
package atomicfile

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/koral--/shipkit/internal/core"
)

const defaultPerm os.FileMode = 0o644

// Swappable for tests that simulate an interrupted write.
var (
	copyContent = func(w io.Writer, content []byte) error {
		_, err := io.Copy(w, bytes.NewReader(content))
		return err
	}
	rename = os.Rename
)

// Write replaces path with content. The parent directory must already exist.
// On failure the previous content of path, if any, is left untouched and the
// returned error wraps core.ErrWriteFailure.
func Write(path string, content []byte) error {
	if err := write(path, content); err != nil {
		return &core.WriteError{Path: path, Err: err}
	}
	return nil
}

func write(path string, content []byte) error {
	dir := filepath.Dir(path)
	base := filepath.Base(path)

	info, err := os.Stat(dir)
	if err != nil {
		return err
	}
	if !info.IsDir() {
		return fmt.Errorf("%s is not a directory", dir)
	}

	perm := defaultPerm
	if existing, err := os.Stat(path); err == nil {
		if existing.IsDir() {
			return errors.New("destination is a directory")
		}
		perm = existing.Mode().Perm()
	}

	tmp, err := os.CreateTemp(dir, base+".tmp.*")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	committed := false
	defer func() {
		_ = tmp.Close()
		if !committed {
			_ = os.Remove(tmpName)
		}
	}()

	if err := copyContent(tmp, content); err != nil {
		return err
	}
	if err := tmp.Chmod(perm); err != nil {
		return err
	}
	if err := tmp.Sync(); err != nil {
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	if err := rename(tmpName, path); err != nil {
		return err
	}
	committed = true

	// The rename is the commit point; a failed directory sync does not undo it.
	_ = syncDir(dir)
	return nil
}

func syncDir(dir string) error {
	f, err := os.Open(dir)
	if err != nil {
		return err
	}
	defer f.Close()
	return f.Sync()
}
