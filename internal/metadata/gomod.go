package metadata

import (
	"fmt"
	"os"
	"path/filepath"

	"golang.org/x/mod/modfile"

	"github.com/toyz/axonscan/internal/errors"
)

// Module describes the Go module rooted at Dir
type Module struct {
	Path string // Module import path from go.mod
	Dir  string // Directory containing go.mod
}

// FindModule searches for a go.mod file starting from startDir and walking up,
// and returns the module it declares.
func FindModule(startDir string) (Module, error) {
	currentDir, err := filepath.Abs(startDir)
	if err != nil {
		return Module{}, errors.WrapFileSystemError("resolve", startDir, err)
	}

	for {
		goModPath := filepath.Join(currentDir, "go.mod")
		if _, err := os.Stat(goModPath); err == nil {
			path, err := ParseModulePath(goModPath)
			if err != nil {
				return Module{}, err
			}
			return Module{Path: path, Dir: currentDir}, nil
		}

		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			// Reached root directory
			break
		}
		currentDir = parentDir
	}

	return Module{}, errors.New(errors.FileSystemErrorCode, fmt.Sprintf("go.mod file not found above %s", startDir)).
		WithSuggestion("Point --root at a directory inside a Go module")
}

// ParseModulePath extracts the module path from a go.mod file
func ParseModulePath(goModPath string) (string, error) {
	content, err := os.ReadFile(goModPath)
	if err != nil {
		return "", errors.WrapFileSystemError("read", goModPath, err)
	}

	modFile, err := modfile.ParseLax(goModPath, content, nil)
	if err != nil {
		return "", errors.WrapParseError(goModPath, err)
	}

	if modFile.Module == nil {
		return "", errors.New(errors.SyntaxErrorCode, "no module declaration found in go.mod").
			WithContext("path", goModPath)
	}

	return modFile.Module.Mod.Path, nil
}
