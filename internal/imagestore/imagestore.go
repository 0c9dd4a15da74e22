// Package imagestore manages the directory that holds copies of post
// images.
//
// When a post is created with an image, the file the author picked is
// copied into this directory before the post row is written, and the post
// records the copy's path — the original can move or disappear without
// breaking the post.
//
// Naming: by default the copy keeps the source's base filename, and a
// second upload with the same filename OVERWRITES the first. That has
// always been the behavior and it is intentional here (and pinned by a
// test);
// enable UniqueNames to prefix each copy with a generated id instead, which
// makes collisions impossible at the cost of uglier filenames.
package imagestore

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/rs/xid"
)

type Dir struct {
	path        string
	uniqueNames bool
}

// New returns a store rooted at path. The directory is created lazily on
// the first Store call, so constructing a Dir never touches the disk.
func New(path string, uniqueNames bool) *Dir {
	return &Dir{path: path, uniqueNames: uniqueNames}
}

// Path returns the managed directory's path.
func (d *Dir) Path() string {
	return d.path
}

// Store copies the file at sourcePath into the managed directory and
// returns the stored copy's path. The copy is byte-for-byte; no
// re-encoding or thumbnailing happens here (display scaling belongs to the
// presentation layer).
func (d *Dir) Store(sourcePath string) (string, error) {
	if err := os.MkdirAll(d.path, 0o755); err != nil {
		return "", fmt.Errorf("imagestore: creating directory %s: %w", d.path, err)
	}

	name := filepath.Base(sourcePath)
	if d.uniqueNames {
		name = xid.New().String() + "_" + name
	}
	dest := filepath.Join(d.path, name)

	src, err := os.Open(sourcePath)
	if err != nil {
		return "", fmt.Errorf("imagestore: opening source %s: %w", sourcePath, err)
	}
	defer src.Close()

	// O_TRUNC: an existing file with the same name is overwritten, per the
	// package comment.
	dst, err := os.OpenFile(dest, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o644)
	if err != nil {
		return "", fmt.Errorf("imagestore: creating %s: %w", dest, err)
	}

	if _, err := io.Copy(dst, src); err != nil {
		dst.Close()
		os.Remove(dest) // don't leave a truncated copy behind
		return "", fmt.Errorf("imagestore: copying %s: %w", sourcePath, err)
	}
	if err := dst.Close(); err != nil {
		return "", fmt.Errorf("imagestore: closing %s: %w", dest, err)
	}

	return dest, nil
}

// Delete removes a stored image. Post deletion does NOT call this — stored
// images deliberately outlive their posts — but a frontend that wants
// explicit cleanup can.
func (d *Dir) Delete(storedPath string) error {
	// Refuse paths outside the managed directory; Delete is for our copies
	// only, never for the author's originals.
	rel, err := filepath.Rel(d.path, storedPath)
	if err != nil || rel == ".." || filepath.Dir(rel) != "." {
		return fmt.Errorf("imagestore: %s is not inside %s", storedPath, d.path)
	}
	if err := os.Remove(storedPath); err != nil {
		return fmt.Errorf("imagestore: deleting %s: %w", storedPath, err)
	}
	return nil
}
