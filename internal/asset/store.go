// Package asset keeps durable media objects and the records that point at
// them in step. One generic Store serves every media kind; a Kind describes
// the storage prefix and which record fields hold public URLs.
//
// Ordering rules:
//   - Create uploads first and inserts last. A failed upload inserts nothing.
//   - Replace uploads the new objects, updates the record, then deletes the
//     replaced objects. A failed upload leaves the record and old objects as
//     they were.
//   - Delete removes durable objects best-effort, then the record.
//
// Objects written before a later step fails are left in storage and logged.
// The sweep command reclaims them.
package asset

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/brightofhouse/site/internal/logger"
	"github.com/brightofhouse/site/internal/metrics"
	"github.com/brightofhouse/site/internal/storage"
	"github.com/brightofhouse/site/internal/tracing"
	"go.opentelemetry.io/otel/attribute"
)

var (
	// ErrUpload wraps any failure writing a new object to durable storage.
	ErrUpload = errors.New("asset: durable upload failed")
	// ErrUnknownSlot means an artifact was supplied for a slot the kind does
	// not declare.
	ErrUnknownSlot = errors.New("asset: unknown slot")
	// ErrNotReplaceable is returned for kinds that are only created and
	// deleted.
	ErrNotReplaceable = errors.New("asset: kind does not support replace")
)

// Artifact is a transformed file ready to be stored.
type Artifact struct {
	Data        []byte
	Ext         string
	ContentType string
}

func (a *Artifact) Size() int64 {
	return int64(len(a.Data))
}

// Slot names one URL field of a record.
type Slot[R any] struct {
	Name string
	Get  func(*R) string
	Set  func(*R, string)
}

type Kind[R any] struct {
	Name   string
	Prefix string
	Slots  []Slot[R]
}

func (k Kind[R]) slot(name string) (Slot[R], bool) {
	for _, s := range k.Slots {
		if s.Name == name {
			return s, true
		}
	}
	return Slot[R]{}, false
}

// Repository persists records of one kind.
type Repository[R any] interface {
	Insert(ctx context.Context, rec R) (R, error)
	Update(ctx context.Context, rec R) (R, error)
	Delete(ctx context.Context, rec R) error
}

type Store[R any] struct {
	kind    Kind[R]
	storage storage.Storage
	keys    *storage.Keys
	repo    Repository[R]
}

func NewStore[R any](kind Kind[R], s storage.Storage, keys *storage.Keys, repo Repository[R]) *Store[R] {
	return &Store[R]{kind: kind, storage: s, keys: keys, repo: repo}
}

func (s *Store[R]) Kind() Kind[R] {
	return s.kind
}

// uploaded is one object written during the current call.
type uploaded struct {
	slot string
	key  string
	url  string
}

// uploadAll writes every supplied artifact in slot order. On failure the
// objects already written in this call are reported as orphans.
func (s *Store[R]) uploadAll(ctx context.Context, files map[string]*Artifact) ([]uploaded, error) {
	for name := range files {
		if _, ok := s.kind.slot(name); !ok {
			return nil, fmt.Errorf("%w: %s has no slot %q", ErrUnknownSlot, s.kind.Name, name)
		}
	}

	var done []uploaded
	for _, slot := range s.kind.Slots {
		art := files[slot.Name]
		if art == nil {
			continue
		}

		key := s.keys.New(s.kind.Prefix, art.Ext)
		err := s.storage.Upload(ctx, key, bytes.NewReader(art.Data), art.ContentType, art.Size())
		metrics.RecordMediaUpload(s.kind.Name, art.Size(), err)
		if err != nil {
			s.logOrphans(ctx, "upload failed", done)
			return nil, fmt.Errorf("%w: %s %s: %v", ErrUpload, s.kind.Name, slot.Name, err)
		}
		done = append(done, uploaded{slot: slot.Name, key: key, url: s.keys.PublicURL(key)})
	}
	return done, nil
}

// Create stores the artifacts and inserts rec with their public URLs.
func (s *Store[R]) Create(ctx context.Context, rec R, files map[string]*Artifact) (R, error) {
	ctx, span := tracing.StartSpan(ctx, "asset.create")
	defer span.End()
	span.SetAttributes(attribute.String("asset.kind", s.kind.Name))

	var zero R
	done, err := s.uploadAll(ctx, files)
	if err != nil {
		tracing.RecordError(ctx, err)
		return zero, err
	}

	for _, u := range done {
		slot, _ := s.kind.slot(u.slot)
		slot.Set(&rec, u.url)
	}

	created, err := s.repo.Insert(ctx, rec)
	if err != nil {
		s.logOrphans(ctx, "insert failed", done)
		tracing.RecordError(ctx, err)
		return zero, fmt.Errorf("insert %s: %w", s.kind.Name, err)
	}

	logger.FromContext(ctx).Info("asset created", "kind", s.kind.Name, "objects", len(done))
	return created, nil
}

// Replace writes next, swapping in any supplied artifacts. Slots without a new
// artifact keep current's URL. Replaced objects are deleted only after the
// record update succeeds.
func (s *Store[R]) Replace(ctx context.Context, current R, next R, files map[string]*Artifact) (R, error) {
	ctx, span := tracing.StartSpan(ctx, "asset.replace")
	defer span.End()
	span.SetAttributes(attribute.String("asset.kind", s.kind.Name))

	var zero R
	done, err := s.uploadAll(ctx, files)
	if err != nil {
		tracing.RecordError(ctx, err)
		return zero, err
	}

	replaced := make(map[string]bool, len(done))
	for _, u := range done {
		replaced[u.slot] = true
	}

	var stale []string
	for _, slot := range s.kind.Slots {
		old := slot.Get(&current)
		if !replaced[slot.Name] {
			slot.Set(&next, old)
			continue
		}
		if old != "" {
			stale = append(stale, old)
		}
	}
	for _, u := range done {
		slot, _ := s.kind.slot(u.slot)
		slot.Set(&next, u.url)
	}

	updated, err := s.repo.Update(ctx, next)
	if err != nil {
		s.logOrphans(ctx, "update failed", done)
		tracing.RecordError(ctx, err)
		return zero, fmt.Errorf("update %s: %w", s.kind.Name, err)
	}

	for _, url := range stale {
		s.deleteURL(ctx, url)
	}

	logger.FromContext(ctx).Info("asset replaced", "kind", s.kind.Name, "replaced", len(done))
	return updated, nil
}

// Delete removes rec's durable objects and then rec itself. Storage failures
// are logged and do not stop the record delete.
func (s *Store[R]) Delete(ctx context.Context, rec R) error {
	ctx, span := tracing.StartSpan(ctx, "asset.delete")
	defer span.End()
	span.SetAttributes(attribute.String("asset.kind", s.kind.Name))

	for _, slot := range s.kind.Slots {
		if url := slot.Get(&rec); url != "" {
			s.deleteURL(ctx, url)
		}
	}

	if err := s.repo.Delete(ctx, rec); err != nil {
		tracing.RecordError(ctx, err)
		return fmt.Errorf("delete %s: %w", s.kind.Name, err)
	}
	return nil
}

func (s *Store[R]) deleteURL(ctx context.Context, url string) {
	log := logger.FromContext(ctx)

	key, ok := s.keys.KeyFromURL(url)
	if !ok {
		log.Warn("media url outside public base, not deleting", "kind", s.kind.Name, "url", url)
		return
	}

	err := s.storage.Delete(ctx, key)
	metrics.RecordMediaDeletion(s.kind.Name, err)
	if err != nil {
		log.Error("durable delete failed, object orphaned", "kind", s.kind.Name, "key", key, "error", err)
		return
	}
	log.Debug("durable object deleted", "kind", s.kind.Name, "key", key)
}

func (s *Store[R]) logOrphans(ctx context.Context, reason string, done []uploaded) {
	if len(done) == 0 {
		return
	}
	keys := make([]string, len(done))
	for i, u := range done {
		keys[i] = u.key
	}
	logger.FromContext(ctx).Warn("objects left orphaned", "kind", s.kind.Name, "reason", reason, slog.Any("keys", keys))
}
