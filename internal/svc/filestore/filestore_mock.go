package filestore

import (
	"fmt"
	"path"
	"sync"

	"github.com/ostia/icon-processor/go/internal/instance"
)

type MockInstance struct {
	mtx   sync.Mutex
	files map[string][]byte
	dirs  map[string]bool
}

func NewMock(files map[string][]byte) instance.FileStore {
	if files == nil {
		files = map[string][]byte{}
	}

	return &MockInstance{
		files: files,
		dirs:  map[string]bool{},
	}
}

func (i *MockInstance) Exists(pth string) bool {
	i.mtx.Lock()
	defer i.mtx.Unlock()

	if _, ok := i.files[pth]; ok {
		return true
	}

	return i.dirs[pth]
}

func (i *MockInstance) MkdirAll(pth string) error {
	i.mtx.Lock()
	defer i.mtx.Unlock()

	for pth != "." && pth != "/" && pth != "" {
		i.dirs[pth] = true
		pth = path.Dir(pth)
	}

	return nil
}

func (i *MockInstance) Copy(src string, dst string) (int64, error) {
	i.mtx.Lock()
	defer i.mtx.Unlock()

	data, ok := i.files[src]
	if !ok {
		return 0, fmt.Errorf("%s does not exist", src)
	}

	cp := make([]byte, len(data))
	copy(cp, data)
	i.files[dst] = cp

	return int64(len(cp)), nil
}

func (i *MockInstance) Read(pth string) ([]byte, error) {
	i.mtx.Lock()
	defer i.mtx.Unlock()

	data, ok := i.files[pth]
	if !ok {
		return nil, fmt.Errorf("%s does not exist", pth)
	}

	return data, nil
}

func (i *MockInstance) Write(pth string, data []byte) error {
	i.mtx.Lock()
	defer i.mtx.Unlock()

	cp := make([]byte, len(data))
	copy(cp, data)
	i.files[pth] = cp

	return nil
}
