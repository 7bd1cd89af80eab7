// Package store persists the diary document. Every mutation runs as a
// read-modify-write against the whole document; implementations guarantee
// that concurrent updates never silently drop each other's changes.
package store

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/Alijeyrad/sorriso_backend/pkg/crypto"
	"github.com/Alijeyrad/sorriso_backend/pkg/diary"
)

const tracerName = "github.com/Alijeyrad/sorriso_backend/internal/store"

var (
	// ErrConflict is returned when another writer changed the document
	// between read and write. The caller may retry the whole operation.
	ErrConflict = errors.New("document changed concurrently")
	// ErrCorrupted means the stored bytes could not be decoded. The document
	// is left untouched.
	ErrCorrupted = errors.New("stored document is corrupted")
)

type Store interface {
	// Load returns a snapshot of the document.
	Load(ctx context.Context) (*diary.Document, error)
	// Update loads the document, applies fn and persists the result. When
	// fn returns an error nothing is written and that error is returned.
	Update(ctx context.Context, fn func(doc *diary.Document) error) error
	// Ping reports whether the backing storage is reachable.
	Ping(ctx context.Context) error
	Close() error
}

type Option func(*codec)

// WithSealer encrypts the document at rest.
func WithSealer(s *crypto.Sealer) Option {
	return func(c *codec) { c.sealer = s }
}

type codec struct {
	sealer *crypto.Sealer
}

func newCodec(opts []Option) codec {
	var c codec
	for _, opt := range opts {
		opt(&c)
	}
	return c
}

func (c codec) decode(data []byte) (*diary.Document, error) {
	doc := &diary.Document{}
	if len(bytes.TrimSpace(data)) == 0 {
		doc.EnsureCollections()
		return doc, nil
	}

	if crypto.IsSealed(data) {
		if c.sealer == nil {
			return nil, fmt.Errorf("%w: document is sealed but no encryption key is configured", ErrCorrupted)
		}
		plain, err := c.sealer.Open(data)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrCorrupted, err)
		}
		data = plain
	}

	if err := json.Unmarshal(data, doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorrupted, err)
	}
	doc.EnsureCollections()
	return doc, nil
}

func (c codec) encode(doc *diary.Document) ([]byte, error) {
	doc.EnsureCollections()
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode document: %w", err)
	}
	if c.sealer == nil {
		return data, nil
	}
	return c.sealer.Seal(data)
}

func startSpan(ctx context.Context, name, driver string) (context.Context, trace.Span) {
	return otel.Tracer(tracerName).Start(ctx, name,
		trace.WithAttributes(attribute.String("store.driver", driver)),
	)
}

func endSpan(span trace.Span, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	span.End()
}
