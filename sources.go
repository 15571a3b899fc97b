package combine

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// Echo returns a pipe containing the supplied string.
func Echo(s string) *Pipe {
	return NewPipe().WithReader(strings.NewReader(s))
}

// File returns a *Pipe associated with the specified file. This is useful for
// starting pipelines. If there is an error opening the file, the pipe's error
// status will be set.
func File(name string) *Pipe {
	p := NewPipe()
	f, err := os.Open(name)
	if err != nil {
		return p.WithError(err)
	}
	return p.WithReader(f)
}

// ListEntries returns the entries of dir, not recursing into subdirectories,
// in the order the filesystem reports them. No sorting is done, so the order
// may differ between platforms and filesystems.
//
// Each entry is classified as regular or not by following symlinks: a link to
// a regular file counts as regular, while a dangling link or a link to a
// directory does not.
func ListEntries(dir string) ([]Entry, error) {
	d, err := os.Open(dir)
	if err != nil {
		return nil, err
	}
	defer d.Close()
	dirents, err := d.ReadDir(-1)
	if err != nil {
		return nil, err
	}
	entries := make([]Entry, 0, len(dirents))
	for _, de := range dirents {
		entries = append(entries, Entry{
			Name:    de.Name(),
			Regular: isRegular(dir, de),
		})
	}
	return entries, nil
}

func isRegular(dir string, de fs.DirEntry) bool {
	if de.Type().IsRegular() {
		return true
	}
	if de.Type()&fs.ModeSymlink == 0 {
		return false
	}
	info, err := os.Stat(filepath.Join(dir, de.Name()))
	if err != nil {
		return false
	}
	return info.Mode().IsRegular()
}
