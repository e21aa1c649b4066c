package pkg

import (
	"os"
)

// PathExists returns whether the given file or directory exists
func PathExists(path string, isDir bool) (bool, error) {
	stat, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, err
	}
	if isDir && !stat.IsDir() {
		return false, &os.PathError{Op: "stat", Path: path, Err: errNotADir}
	}
	if !isDir && stat.IsDir() {
		return false, &os.PathError{Op: "stat", Path: path, Err: errIsADir}
	}
	return true, nil
}

var (
	errNotADir = pathErr("is not a directory")
	errIsADir  = pathErr("is a directory")
)

type pathErr string

func (e pathErr) Error() string { return string(e) }
