package session

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// FileRepo stores one JSON file per session under a base directory. It is
// the default durable store: sessions survive a restart of the dashboard
// the way a browser's saved login survives a page reload.
type FileRepo struct {
	baseDir string
}

func NewFileRepo(baseDir string) (*FileRepo, error) {
	if baseDir == "" {
		return nil, fmt.Errorf("baseDir is required")
	}
	if err := os.MkdirAll(baseDir, 0o700); err != nil {
		return nil, fmt.Errorf("create session dir %s: %w", baseDir, err)
	}
	return &FileRepo{baseDir: baseDir}, nil
}

func (r *FileRepo) Upsert(ctx context.Context, rec Record) error {
	path, err := r.path(rec.SessionID)
	if err != nil {
		return err
	}
	data, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("marshal session %s: %w", rec.SessionID, err)
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

func (r *FileRepo) Delete(ctx context.Context, sessionID string) error {
	path, err := r.path(sessionID)
	if err != nil {
		return err
	}
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("remove %s: %w", path, err)
	}
	return nil
}

func (r *FileRepo) List(ctx context.Context) ([]Record, error) {
	entries, err := os.ReadDir(r.baseDir)
	if err != nil {
		return nil, fmt.Errorf("read session dir %s: %w", r.baseDir, err)
	}
	out := make([]Record, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".json") {
			continue
		}
		sessionID := strings.TrimSuffix(e.Name(), ".json")
		data, err := os.ReadFile(filepath.Join(r.baseDir, e.Name()))
		if err != nil {
			// Unreadable record surfaces as invalid so Restore deletes it.
			out = append(out, Record{SessionID: sessionID})
			continue
		}
		var rec Record
		if err := json.Unmarshal(data, &rec); err != nil {
			out = append(out, Record{SessionID: sessionID})
			continue
		}
		rec.SessionID = sessionID
		out = append(out, rec)
	}
	return out, nil
}

func (r *FileRepo) path(sessionID string) (string, error) {
	if sessionID == "" {
		return "", fmt.Errorf("sessionID is required")
	}
	if strings.ContainsAny(sessionID, `/\`) || sessionID == "." || sessionID == ".." {
		return "", fmt.Errorf("invalid sessionID %q", sessionID)
	}
	return filepath.Join(r.baseDir, sessionID+".json"), nil
}
