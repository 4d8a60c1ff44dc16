// Package scan discovers video files under a source root.
package scan

import (
	"errors"
	"fmt"
	"io/fs"
	"iter"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// ErrNotDirectory indicates the source root exists but is not a directory.
var ErrNotDirectory = errors.New("not a directory")

// videoExtensions are matched case-insensitively against the file name.
var videoExtensions = []string{".mp4", ".mkv", ".avi", ".webm"}

// tempSuffix marks partially written downloads. It is checked before the
// extension list.
const tempSuffix = ".temp.mp4"

// IsVideoFile reports whether name looks like a catalogable video file.
func IsVideoFile(name string) bool {
	lower := strings.ToLower(filepath.Base(name))
	if strings.HasSuffix(lower, tempSuffix) {
		return false
	}
	for _, ext := range videoExtensions {
		if strings.HasSuffix(lower, ext) {
			return true
		}
	}
	return false
}

// Walk lazily yields the path of every video file under root, in directory
// walk order. A missing or unreadable root, or any read error during the
// walk, is yielded once as an error and ends the sequence.
func Walk(root string) iter.Seq2[string, error] {
	return func(yield func(string, error) bool) {
		info, err := os.Stat(root)
		if err != nil {
			yield("", fmt.Errorf("stat root: %w", err))
			return
		}
		if !info.IsDir() {
			yield("", fmt.Errorf("%s: %w", root, ErrNotDirectory))
			return
		}

		stopped := false
		err = filepath.WalkDir(DirRoot(root), func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.IsDir() || !IsVideoFile(d.Name()) {
				return nil
			}
			if !yield(path, nil) {
				stopped = true
				return filepath.SkipAll
			}
			return nil
		})
		if err != nil && !stopped {
			yield("", fmt.Errorf("walk directory: %w", err))
		}
	}
}

// DirRoot returns root in a form filepath.WalkDir descends into even when
// root is a symlink to a directory. WalkDir does not follow a symlinked
// root; a trailing separator makes the first Lstat resolve it. Paths below
// the root keep the root as given as their prefix.
func DirRoot(root string) string {
	if strings.HasSuffix(root, string(filepath.Separator)) {
		return root
	}
	return root + string(filepath.Separator)
}

// FindVideos collects every video file under root.
// On error no partial result is returned.
func FindVideos(root string) ([]string, error) {
	var videos []string
	for path, err := range Walk(root) {
		if err != nil {
			return nil, err
		}
		videos = append(videos, path)
	}
	return videos, nil
}

// FileName returns the catalog name of path: the base name without its
// final extension, NFC-normalized so that names read from NFD filesystems
// compare equal to the same name written elsewhere. A name that is only an
// extension, such as ".mkv", is kept whole.
func FileName(path string) string {
	stem, _ := split(path)
	return norm.NFC.String(stem)
}

// Extension returns the extension of path without the leading dot. It is
// empty when FileName keeps the whole base name.
func Extension(path string) string {
	_, ext := split(path)
	return strings.TrimPrefix(ext, ".")
}

func split(path string) (stem, ext string) {
	base := filepath.Base(path)
	ext = filepath.Ext(base)
	stem = strings.TrimSuffix(base, ext)
	if stem == "" {
		return base, ""
	}
	return stem, ext
}
