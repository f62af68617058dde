package queue

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/iliyamo/iavo-ui/internal/model"
)

// FileRecorder appends one human-readable line per event to
// <Dir>/profile.log.
type FileRecorder struct {
	Dir string
	mu  sync.Mutex
}

func NewFileRecorder(dir string) *FileRecorder { return &FileRecorder{Dir: dir} }

func (r *FileRecorder) Record(_ context.Context, ev model.ProfileUpdateEvent) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := os.MkdirAll(r.Dir, 0o755); err != nil {
		return fmt.Errorf("mkdir %s: %w", r.Dir, err)
	}
	f, err := os.OpenFile(filepath.Join(r.Dir, "profile.log"), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}
	defer f.Close()

	if _, err := f.WriteString(formatLine(ev)); err != nil {
		return fmt.Errorf("write log: %w", err)
	}
	return nil
}

func formatLine(ev model.ProfileUpdateEvent) string {
	return fmt.Sprintf("[%s] Profile update %s | creator_id=%q | name=%q | tier=%q | backend_status=%d\n",
		ev.SubmittedAt.UTC().Format(time.RFC3339), ev.Outcome, ev.CreatorID, ev.Name, ev.Tier, ev.BackendStatus)
}
