package repository

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/shenikar/crime_file_system/internal/service"
)

// FileSlot хранит снимок коллекции в JSON-файле <root>/<key>.json.
// Запись идет через временный файл и rename, поэтому файл не бывает записан наполовину.
type FileSlot struct {
	path string
}

func NewFileSlot(root, key string) (service.SnapshotRepository, error) {
	if strings.TrimSpace(key) == "" {
		return nil, fmt.Errorf("empty slot key")
	}
	if strings.Contains(key, "..") || strings.ContainsAny(key, `/\`) {
		return nil, fmt.Errorf("invalid slot key %q", key)
	}
	if root == "" {
		root = "./data"
	}
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create storage dir %q: %w", root, err)
	}
	return &FileSlot{path: filepath.Join(root, key+".json")}, nil
}

// Load возвращает содержимое файла или nil, если файла еще нет
func (r *FileSlot) Load(_ context.Context) ([]byte, error) {
	payload, err := os.ReadFile(r.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to load snapshot from %q: %w", r.path, err)
	}
	return payload, nil
}

// Save атомарно перезаписывает файл снимка
func (r *FileSlot) Save(_ context.Context, payload []byte) error {
	tmp, err := os.CreateTemp(filepath.Dir(r.path), ".tmp-*")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	defer func() { _ = os.Remove(tmp.Name()) }()

	if _, err := tmp.Write(payload); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("failed to write snapshot: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("failed to sync snapshot: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to close snapshot: %w", err)
	}
	if err := os.Rename(tmp.Name(), r.path); err != nil {
		return fmt.Errorf("failed to move snapshot into place: %w", err)
	}
	return nil
}
