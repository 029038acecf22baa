// Package dir provides a Backend that keeps one file per key under a root
// directory. Keys are percent-escaped into file names, so the namespace
// separator and spaces in program names survive any filesystem.
package dir

import (
	"context"
	"net/url"
	"os"
	"path/filepath"
	"sort"

	"github.com/endbasic/progstore/backend"
)

// Dir is a directory-backed Backend.
type Dir struct {
	root string
}

var _ backend.Backend = (*Dir)(nil)

// New creates the root directory if needed and returns a backend over it.
func New(root string) (*Dir, error) {
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, err
	}
	return &Dir{root: root}, nil
}

func (d *Dir) path(key string) string {
	return filepath.Join(d.root, url.PathEscape(key))
}

func (d *Dir) Get(_ context.Context, key string) (string, bool, error) {
	b, err := os.ReadFile(d.path(key))
	if os.IsNotExist(err) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return string(b), true, nil
}

func (d *Dir) Set(_ context.Context, key, value string) error {
	return os.WriteFile(d.path(key), []byte(value), 0o644)
}

func (d *Dir) Delete(_ context.Context, key string) error {
	err := os.Remove(d.path(key))
	if os.IsNotExist(err) {
		return nil
	}
	return err
}

func (d *Dir) Len(ctx context.Context) (int, error) {
	keys, err := d.list()
	if err != nil {
		return 0, err
	}
	return len(keys), nil
}

func (d *Dir) Key(_ context.Context, index int) (string, bool, error) {
	keys, err := d.list()
	if err != nil {
		return "", false, err
	}
	if index < 0 || index >= len(keys) {
		return "", false, nil
	}
	return keys[index], true, nil
}

// list returns the decoded keys in sorted order so that repeated Key calls
// within one enumeration pass see a stable index.
func (d *Dir) list() ([]string, error) {
	ents, err := os.ReadDir(d.root)
	if err != nil {
		return nil, err
	}
	keys := make([]string, 0, len(ents))
	for _, ent := range ents {
		if ent.IsDir() {
			continue
		}
		key, err := url.PathUnescape(ent.Name())
		if err != nil {
			// foreign file in the root; not ours to report
			continue
		}
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys, nil
}

func (d *Dir) Close(context.Context) error { return nil }
