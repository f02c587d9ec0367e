// Package tableio reads and writes tabular and structured files through a
// blobstore.Store.
//
// Every error is annotated with the blob name and re-raised to the caller;
// when a logger is configured a diagnostic is emitted first, but failures
// are never swallowed. Names ending in ".gz" are transparently
// gzip-compressed on write and decompressed on read.
package tableio

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/klauspost/compress/gzip"

	"github.com/rowkit/rowkit"
	"github.com/rowkit/rowkit/blobstore"
	"github.com/rowkit/rowkit/codec"
	"github.com/rowkit/rowkit/record"
	"github.com/rowkit/rowkit/tabular"
)

// indent is the indentation unit for pretty structured output.
const indent = "  "

type options struct {
	codec  codec.Codec
	logger *rowkit.Logger
}

// Option configures a tableio operation.
type Option func(*options)

// WithCodec selects the structured codec used by ReadValue/WriteValue.
// The default is codec.Default.
func WithCodec(c codec.Codec) Option {
	return func(o *options) { o.codec = c }
}

// WithLogger sets a logger for I/O diagnostics. Errors are logged before
// being returned. The default discards all output.
func WithLogger(l *rowkit.Logger) Option {
	return func(o *options) { o.logger = l }
}

func applyOptions(opts []Option) options {
	o := options{
		codec:  codec.Default,
		logger: rowkit.NoopLogger(),
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// ReadTable reads and parses a tabular blob into a collection.
func ReadTable(ctx context.Context, store blobstore.Store, name string, opts ...Option) (record.Collection, error) {
	o := applyOptions(opts)

	data, err := readBlob(ctx, store, name)
	if err != nil {
		o.logger.LogTableRead(ctx, name, 0, err)
		return nil, err
	}
	c, err := tabular.ParseBytes(data)
	if err != nil {
		err = fmt.Errorf("tableio: parse %s: %w", name, err)
		o.logger.LogTableRead(ctx, name, 0, err)
		return nil, err
	}
	o.logger.LogTableRead(ctx, name, len(c), nil)
	return c, nil
}

// WriteTable serializes a collection and writes it as a tabular blob.
func WriteTable(ctx context.Context, store blobstore.Store, name string, c record.Collection, opts ...Option) error {
	o := applyOptions(opts)

	data, err := tabular.Marshal(c)
	if err != nil {
		err = fmt.Errorf("tableio: serialize %s: %w", name, err)
		o.logger.LogTableWrite(ctx, name, len(c), err)
		return err
	}
	if err := writeBlob(ctx, store, name, data); err != nil {
		o.logger.LogTableWrite(ctx, name, len(c), err)
		return err
	}
	o.logger.LogTableWrite(ctx, name, len(c), nil)
	return nil
}

// ReadValue reads a structured blob and decodes it into v.
func ReadValue(ctx context.Context, store blobstore.Store, name string, v any, opts ...Option) error {
	o := applyOptions(opts)

	data, err := readBlob(ctx, store, name)
	if err != nil {
		o.logger.LogValueRead(ctx, name, err)
		return err
	}
	if err := o.codec.Unmarshal(data, v); err != nil {
		err = fmt.Errorf("tableio: decode %s: %w", name, err)
		o.logger.LogValueRead(ctx, name, err)
		return err
	}
	o.logger.LogValueRead(ctx, name, nil)
	return nil
}

// WriteValue encodes v and writes it as a structured blob. Codecs that
// implement codec.IndentMarshaler produce pretty output with two-space
// indentation.
func WriteValue(ctx context.Context, store blobstore.Store, name string, v any, opts ...Option) error {
	o := applyOptions(opts)

	var data []byte
	var err error
	if im, ok := o.codec.(codec.IndentMarshaler); ok {
		data, err = im.MarshalIndent(v, "", indent)
	} else {
		data, err = o.codec.Marshal(v)
	}
	if err != nil {
		err = fmt.Errorf("tableio: encode %s: %w", name, err)
		o.logger.LogValueWrite(ctx, name, err)
		return err
	}
	if err := writeBlob(ctx, store, name, data); err != nil {
		o.logger.LogValueWrite(ctx, name, err)
		return err
	}
	o.logger.LogValueWrite(ctx, name, nil)
	return nil
}

func compressed(name string) bool {
	return strings.HasSuffix(name, ".gz")
}

func readBlob(ctx context.Context, store blobstore.Store, name string) ([]byte, error) {
	data, err := store.Read(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("tableio: read %s: %w", name, err)
	}
	if !compressed(name) {
		return data, nil
	}
	zr, err := gzip.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("tableio: decompress %s: %w", name, err)
	}
	defer zr.Close()
	raw, err := io.ReadAll(zr)
	if err != nil {
		return nil, fmt.Errorf("tableio: decompress %s: %w", name, err)
	}
	return raw, nil
}

func writeBlob(ctx context.Context, store blobstore.Store, name string, data []byte) error {
	if compressed(name) {
		var buf bytes.Buffer
		zw := gzip.NewWriter(&buf)
		if _, err := zw.Write(data); err != nil {
			zw.Close()
			return fmt.Errorf("tableio: compress %s: %w", name, err)
		}
		if err := zw.Close(); err != nil {
			return fmt.Errorf("tableio: compress %s: %w", name, err)
		}
		data = buf.Bytes()
	}
	if err := store.Write(ctx, name, data); err != nil {
		return fmt.Errorf("tableio: write %s: %w", name, err)
	}
	return nil
}
