package web

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/dmitrymomot/docstyle/pkg/stylesheet"
)

//go:embed assets/common/*.css
var embedded embed.FS

// Styles returns the stylesheet file system: dir if set, otherwise the
// embedded defaults. Every known stylesheet must be present.
func Styles(dir string) (fs.FS, error) {
	var fsys fs.FS
	if dir != "" {
		info, err := os.Stat(dir)
		if err != nil {
			return nil, errors.Join(ErrStyleDir, err)
		}
		if !info.IsDir() {
			return nil, errors.Join(ErrStyleDir, fmt.Errorf("%s is not a directory", dir))
		}
		fsys = os.DirFS(dir)
	} else {
		sub, err := fs.Sub(embedded, "assets/common")
		if err != nil {
			return nil, err
		}
		fsys = sub
	}

	if err := checkStyles(fsys); err != nil {
		return nil, err
	}
	return fsys, nil
}

func checkStyles(fsys fs.FS) error {
	for _, name := range stylesheet.Names() {
		if _, err := fs.Stat(fsys, string(name)); err != nil {
			return errors.Join(ErrMissingStyle, fmt.Errorf("%s: %w", name, err))
		}
	}
	return nil
}
