// Package fileops holds the filesystem operations the scaffold pipeline and
// conflict resolver perform. Every helper takes an afero.Fs so callers can
// swap the real disk for an in-memory filesystem.
package fileops

import (
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/spf13/afero"
)

const (
	dirPerm  fs.FileMode = 0o755
	filePerm fs.FileMode = 0o644
)

// EnsureDir creates path and any missing parents.
func EnsureDir(afs afero.Fs, path string) error {
	return afs.MkdirAll(path, dirPerm)
}

// ReadFileOrEmpty returns the file contents, or "" when the file does not exist.
func ReadFileOrEmpty(afs afero.Fs, path string) (string, error) {
	data, err := afero.ReadFile(afs, path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", nil
		}
		return "", err
	}
	return string(data), nil
}

// WriteFile truncates path and writes content, creating parent directories.
func WriteFile(afs afero.Fs, path, content string) error {
	if err := EnsureDir(afs, filepath.Dir(path)); err != nil {
		return err
	}
	return afero.WriteFile(afs, path, []byte(content), filePerm)
}

// AppendFile appends content to path, creating the file if it is absent.
func AppendFile(afs afero.Fs, path, content string) error {
	if err := EnsureDir(afs, filepath.Dir(path)); err != nil {
		return err
	}
	f, err := afs.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, filePerm)
	if err != nil {
		return err
	}
	if _, err := f.WriteString(content); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// PrependFile rewrites path as prefix followed by its previous contents.
// A missing file is treated as empty.
func PrependFile(afs afero.Fs, path, prefix string) error {
	old, err := ReadFileOrEmpty(afs, path)
	if err != nil {
		return err
	}
	return WriteFile(afs, path, prefix+old)
}

// CopyFile copies src out of fsys to dst on afs, replacing dst if present.
func CopyFile(fsys fs.FS, src string, afs afero.Fs, dst string) error {
	in, err := fsys.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	if err := EnsureDir(afs, filepath.Dir(dst)); err != nil {
		return err
	}
	out, err := afs.OpenFile(dst, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, filePerm)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}

// Exists reports whether anything is at path.
func Exists(afs afero.Fs, path string) (bool, error) {
	return afero.Exists(afs, path)
}

// DirExists reports whether path is a directory.
func DirExists(afs afero.Fs, path string) (bool, error) {
	return afero.DirExists(afs, path)
}

// IsEmptyDir reports whether path is a directory with no entries.
// It returns an error when path does not exist or is not a directory.
func IsEmptyDir(afs afero.Fs, path string) (bool, error) {
	f, err := afs.Open(path)
	if err != nil {
		return false, err
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return false, err
	}
	if !info.IsDir() {
		return false, &fs.PathError{Op: "readdir", Path: path, Err: ErrNotDir}
	}
	names, err := f.Readdirnames(1)
	if errors.Is(err, io.EOF) {
		return true, nil
	}
	if err != nil {
		return false, err
	}
	return len(names) == 0, nil
}

// ErrNotDir is returned when a directory operation targets a non-directory.
var ErrNotDir = errors.New("not a directory")

// EmptyDir removes every entry inside path and keeps path itself.
func EmptyDir(afs afero.Fs, path string) error {
	entries, err := afero.ReadDir(afs, path)
	if err != nil {
		return err
	}
	for _, entry := range entries {
		if err := afs.RemoveAll(filepath.Join(path, entry.Name())); err != nil {
			return err
		}
	}
	return nil
}
