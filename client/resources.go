package client

import (
	"fmt"
	"io"
	"io/fs"
)

// ResourceProvider opens named game resources.
type ResourceProvider interface {
	GetResourceStream(name string) (io.ReadCloser, error)
}

// FSResources serves resources from a file system, typically an embed.FS.
type FSResources struct {
	FS fs.FS
}

func (r FSResources) GetResourceStream(name string) (io.ReadCloser, error) {
	f, err := r.FS.Open(name)
	if err != nil {
		return nil, fmt.Errorf("open resource %q: %w", name, err)
	}
	return f, nil
}

// GetResourceAsString reads a whole resource into a string.
func GetResourceAsString(p ResourceProvider, name string) (string, error) {
	stream, err := p.GetResourceStream(name)
	if err != nil {
		return "", err
	}
	defer stream.Close()

	data, err := io.ReadAll(stream)
	if err != nil {
		return "", fmt.Errorf("read resource %q: %w", name, err)
	}
	return string(data), nil
}
