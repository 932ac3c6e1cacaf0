package pathlib

import (
	"os"
	"path/filepath"
)

func Exists(pathname string) bool {
	_, err := os.Stat(pathname)
	return err == nil
}

func IsFile(pathname string) bool {
	stat, err := os.Stat(pathname)
	return err == nil && stat.Mode().IsRegular()
}

func Abs(pathname string) (string, error) {
	return filepath.Abs(pathname)
}

func EnsureDirectory(directory string) (string, error) {
	err := os.MkdirAll(directory, 0o750)
	if err != nil {
		return "", err
	}
	return directory, nil
}

func EnsureParentDirectory(resource string) (string, error) {
	return EnsureDirectory(filepath.Dir(resource))
}

func Create(filename string) (*os.File, error) {
	_, err := EnsureParentDirectory(filename)
	if err != nil {
		return nil, err
	}
	return os.Create(filename)
}

func WriteFile(filename string, blob []byte, mode os.FileMode) error {
	_, err := EnsureParentDirectory(filename)
	if err != nil {
		return err
	}
	return os.WriteFile(filename, blob, mode)
}
