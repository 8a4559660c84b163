package services

import (
	"archive/zip"
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/custodia-labs/minutes-cli/internal/core/domain"
	"github.com/custodia-labs/minutes-cli/internal/core/ports/driven"
	"github.com/custodia-labs/minutes-cli/internal/core/ports/driving"
	"github.com/custodia-labs/minutes-cli/internal/logger"
)

const (
	// entryExtension is the archive entry file extension.
	entryExtension = ".json"

	// maxEntryNameLen caps archive entry names, extension included.
	maxEntryNameLen = 200
)

// Ensure ExportService implements the interface.
var _ driving.Exporter = (*ExportService)(nil)

// ExportService packages the working set into a ZIP archive.
type ExportService struct {
	store driven.TranscriptStore
	now   func() time.Time
}

// NewExportService creates an export service.
func NewExportService(store driven.TranscriptStore) *ExportService {
	return &ExportService{store: store, now: time.Now}
}

// Export writes all selected, non-archived records to a ZIP archive at
// path, stamps them exported and returns the number of entries written.
func (s *ExportService) Export(ctx context.Context, path string) (int, error) {
	records, err := s.store.List(ctx, false)
	if err != nil {
		return 0, fmt.Errorf("list records: %w", err)
	}

	var selected []domain.TranscriptRecord
	for _, rec := range records {
		if rec.Selected == domain.SelectionIncluded {
			selected = append(selected, rec)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return 0, fmt.Errorf("create archive: %w", err)
	}
	defer f.Close()

	written, exportedIDs, err := WriteArchive(f, selected)
	if err != nil {
		return 0, err
	}

	if len(exportedIDs) > 0 {
		if err := s.store.MarkExported(ctx, exportedIDs, s.now().UTC()); err != nil {
			return written, fmt.Errorf("mark exported: %w", err)
		}
	}

	logger.Info("exported %d of %d selected records to %s", written, len(selected), path)
	return written, nil
}

// WriteArchive writes one ZIP entry per record with non-empty content
// and returns the entry count plus the IDs of the records written.
// Records with empty content are silently skipped.
func WriteArchive(w io.Writer, records []domain.TranscriptRecord) (int, []string, error) {
	zw := zip.NewWriter(w)

	written := 0
	var ids []string
	for _, rec := range records {
		if rec.RawContent == "" {
			continue
		}

		entry, err := zw.Create(entryName(rec.ExternalID, rec.Title))
		if err != nil {
			return written, ids, fmt.Errorf("create entry: %w", err)
		}
		if _, err := entry.Write([]byte(rec.RawContent)); err != nil {
			return written, ids, fmt.Errorf("write entry: %w", err)
		}
		written++
		ids = append(ids, rec.ID)
	}

	if err := zw.Close(); err != nil {
		return written, ids, fmt.Errorf("close archive: %w", err)
	}
	return written, ids, nil
}

// entryName builds a filesystem-safe archive entry name from the
// external ID and title, truncated to maxEntryNameLen while keeping the
// trailing extension.
func entryName(externalID, title string) string {
	base := externalID
	if title != "" {
		base += "_" + sanitizeName(title)
	}
	if len(base)+len(entryExtension) > maxEntryNameLen {
		base = base[:maxEntryNameLen-len(entryExtension)]
	}
	return base + entryExtension
}

// sanitizeName replaces characters unsafe in file names.
func sanitizeName(name string) string {
	var b strings.Builder
	b.Grow(len(name))
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == '-' || r == '_' || r == '.':
			b.WriteRune(r)
		default:
			b.WriteByte('_')
		}
	}
	return b.String()
}
