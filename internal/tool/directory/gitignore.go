package directory

import (
	"os"

	"github.com/Cyclone1070/fman/internal/tool/service/git"
)

type ignoreFileSystem interface {
	Stat(path string) (os.FileInfo, error)
	ReadFile(path string) ([]byte, error)
}

// GitignoreLoader returns an IgnoreLoader backed by the root's .gitignore.
func GitignoreLoader(fs ignoreFileSystem) IgnoreLoader {
	return func(root string) (IgnoreMatcher, error) {
		m, err := git.NewIgnoreMatcher(root, fs)
		if err != nil {
			return nil, err
		}
		return m, nil
	}
}
