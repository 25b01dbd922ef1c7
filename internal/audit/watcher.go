package audit

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fsnotify/fsnotify"

	"github.com/ecosim/ecosim/internal/logging"
)

// Auditor ties the dropzone watcher, the classifier, and the sink
// together: every .txt file that lands in the dropzone is read whole,
// classified, and appended to the output file.
type Auditor struct {
	dropzone string
	sink     *Sink

	// OnRecord, when set, observes every appended record. The serve
	// command uses it to feed the audit counters.
	OnRecord func(Record)

	// processed tracks file sizes already audited so rewrite events for
	// an unchanged file do not produce duplicate records.
	processed map[string]int64
}

// NewAuditor returns an auditor for the given dropzone directory,
// appending results through sink. The dropzone is created if missing.
func NewAuditor(dropzone string, sink *Sink) (*Auditor, error) {
	if err := os.MkdirAll(dropzone, 0750); err != nil {
		return nil, fmt.Errorf("create dropzone: %w", err)
	}
	return &Auditor{
		dropzone:  dropzone,
		sink:      sink,
		processed: make(map[string]int64),
	}, nil
}

// Run processes every .txt file already in the dropzone, then blocks
// watching for new or rewritten files until ctx is canceled. It returns
// nil on cancellation and an error only when the watcher itself fails.
func (a *Auditor) Run(ctx context.Context) error {
	log := logging.ComponentLogger(*logging.FromContext(ctx), "audit")

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer watcher.Close()

	if err := watcher.Add(a.dropzone); err != nil {
		return fmt.Errorf("watch dropzone: %w", err)
	}

	log.Info().
		Str("dropzone", a.dropzone).
		Str("output_file", a.sink.Path()).
		Msg("live auditor running")

	// Existing files count as a backlog: audit them before streaming.
	if err := a.scanExisting(ctx); err != nil {
		return err
	}

	for {
		select {
		case <-ctx.Done():
			log.Info().Msg("live auditor stopped")
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !event.Op.Has(fsnotify.Create) && !event.Op.Has(fsnotify.Write) {
				continue
			}
			a.auditFile(ctx, event.Name)

		case watchErr, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			log.Warn().Err(watchErr).Msg("watcher error")
		}
	}
}

// scanExisting audits all .txt files already present in the dropzone.
func (a *Auditor) scanExisting(ctx context.Context) error {
	entries, err := os.ReadDir(a.dropzone)
	if err != nil {
		return fmt.Errorf("read dropzone: %w", err)
	}
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		a.auditFile(ctx, filepath.Join(a.dropzone, entry.Name()))
	}
	return nil
}

// auditFile classifies one file and appends the record. Non-.txt files,
// unreadable files, and unchanged already-processed files are skipped.
func (a *Auditor) auditFile(ctx context.Context, path string) {
	log := logging.ComponentLogger(*logging.FromContext(ctx), "audit")

	if !strings.EqualFold(filepath.Ext(path), ".txt") {
		return
	}

	info, err := os.Stat(path)
	if err != nil {
		return
	}
	if size, ok := a.processed[path]; ok && size == info.Size() {
		return
	}

	content, err := os.ReadFile(path)
	if err != nil {
		log.Warn().Err(err).Str("path", path).Msg("could not read report")
		return
	}
	a.processed[path] = info.Size()

	rec := Classify(ctx, string(content))
	if err := a.sink.Append(rec); err != nil {
		log.Error().Err(err).Str("path", path).Msg("could not append audit record")
		return
	}
	if a.OnRecord != nil {
		a.OnRecord(rec)
	}

	log.Info().
		Str("audit_id", rec.ID).
		Str("file", filepath.Base(path)).
		Str("classification", rec.PrimaryClassification).
		Float64("confidence", rec.ModelConfidence).
		Str("risk_level", rec.RiskLevel).
		Msg("report audited")
}
