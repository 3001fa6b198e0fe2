package main

import (
	"errors"
	"os"
	"path/filepath"
)

var errClosed = errors.New("write to closed writer")

// tempPrefix names in-progress output files.
const tempPrefix = ".graphworks.tmp."

// atomicWriter writes to a temporary file next to the final path. Close
// renames it into place; Abort discards it. The first Write error is kept and
// returned again by every later Write and by Close, so callers may defer
// error checking to Close.
type atomicWriter struct {
	path string
	next *os.File
	err  error
}

// createAtomic is like os.Create, except a temporary file name is used until
// Close succeeds. The target is never left partially written.
func createAtomic(path string) (*atomicWriter, error) {
	fd, err := os.CreateTemp(filepath.Dir(path), tempPrefix)
	if err != nil {
		return nil, err
	}

	return &atomicWriter{path: path, next: fd}, nil
}

// Write is like io.Writer, but is a no-op on an already failed atomicWriter.
func (w *atomicWriter) Write(bs []byte) (int, error) {
	if w.err != nil {
		return 0, w.err
	}
	n, err := w.next.Write(bs)
	if err != nil {
		w.err = err
		w.next.Close()
	}
	return n, err
}

// Close syncs the temporary file and renames it to the final path. It is
// invalid to call Write or Close after Close.
func (w *atomicWriter) Close() error {
	if w.err != nil {
		return w.err
	}

	// Try to not leave temp file around, but ignore error.
	defer os.Remove(w.next.Name())

	// sync() isn't supported everywhere, our best effort will suffice.
	_ = w.next.Sync()

	if err := w.next.Close(); err != nil {
		w.err = err
		return err
	}

	// os.CreateTemp uses 0600; give the result ordinary file permissions.
	mode := os.FileMode(0o644)
	if info, err := os.Lstat(w.path); err == nil {
		mode = info.Mode().Perm()
	}
	if err := os.Chmod(w.next.Name(), mode); err != nil {
		w.err = err
		return err
	}
	if err := os.Rename(w.next.Name(), w.path); err != nil {
		w.err = err
		return err
	}

	w.err = errClosed

	return nil
}

// Abort discards the temporary file. The final path is left untouched.
// Abort after a successful Close is a no-op.
func (w *atomicWriter) Abort() {
	if w.err == errClosed {
		return
	}
	w.next.Close()
	os.Remove(w.next.Name())
	w.err = errClosed
}
