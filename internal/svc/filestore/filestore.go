package filestore

import (
	"fmt"
	"io"
	"os"

	"github.com/ostia/icon-processor/go/internal/instance"
)

type Instance struct{}

func New() instance.FileStore {
	return &Instance{}
}

func (Instance) Exists(path string) bool {
	_, err := os.Stat(path)

	return err == nil
}

func (Instance) MkdirAll(path string) error {
	return os.MkdirAll(path, 0700)
}

func (Instance) Copy(src string, dst string) (int64, error) {
	sourceFileStat, err := os.Stat(src)
	if err != nil {
		return 0, err
	}

	if !sourceFileStat.Mode().IsRegular() {
		return 0, fmt.Errorf("%s is not a regular file", src)
	}

	source, err := os.Open(src)
	if err != nil {
		return 0, err
	}
	defer source.Close()

	destination, err := os.Create(dst)
	if err != nil {
		return 0, err
	}

	defer destination.Close()
	nBytes, err := io.Copy(destination, source)

	return nBytes, err
}

func (Instance) Read(path string) ([]byte, error) {
	return os.ReadFile(path)
}

func (Instance) Write(path string, data []byte) error {
	return os.WriteFile(path, data, 0600)
}
