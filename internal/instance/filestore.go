package instance

type FileStore interface {
	Exists(path string) bool
	MkdirAll(path string) error
	Copy(src string, dst string) (int64, error)
	Read(path string) ([]byte, error)
	Write(path string, data []byte) error
}
