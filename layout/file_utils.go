package layout

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/dasdy/layerlens/model"
)

// ResolvePath makes relative paths absolute against the working directory.
func ResolvePath(path string) (string, error) {
	if filepath.IsAbs(path) {
		return path, nil
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("could not resolve path %s: %w", path, err)
	}

	return abs, nil
}

func OpenPath(path string) (*os.File, error) {
	resolved, err := ResolvePath(path)
	if err != nil {
		return nil, err
	}

	slog.Info("Opening keyboard info", "path", resolved)

	file, err := os.Open(resolved)
	if err != nil {
		return nil, fmt.Errorf("could not open file %s: %w", path, err)
	}

	return file, nil
}

func LoadFile(path string) (*model.KeyboardInfo, error) {
	file, err := OpenPath(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	info, err := LoadKeyboardInfo(file)
	if err != nil {
		return nil, fmt.Errorf("could not load keyboard info from %s: %w", path, err)
	}

	return info, nil
}
