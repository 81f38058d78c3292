package source

import (
	"bufio"
	"bytes"
	"context"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"

	"github.com/hupe1980/seqeq/internal/mmap"
	"github.com/hupe1980/seqeq/internal/resource"
)

// Format is the encoding of an input.
type Format uint8

const (
	// Raw inputs are compared as stored.
	Raw Format = iota
	// Zstd inputs are Zstandard frames.
	Zstd
	// LZ4 inputs are LZ4 frames.
	LZ4
)

// String returns the string representation of a Format.
func (f Format) String() string {
	switch f {
	case Raw:
		return "raw"
	case Zstd:
		return "zstd"
	case LZ4:
		return "lz4"
	default:
		return "unknown"
	}
}

const (
	zstdMagic = 0xFD2FB528
	lz4Magic  = 0x184D2204
)

// Stdin is the path that selects standard input.
const Stdin = "-"

// Detect classifies an input by its first four bytes.
func Detect(prefix []byte) Format {
	if len(prefix) < 4 {
		return Raw
	}
	switch binary.LittleEndian.Uint32(prefix) {
	case zstdMagic:
		return Zstd
	case lz4Magic:
		return LZ4
	default:
		return Raw
	}
}

// Source is an opened input. Its bytes stay valid until Close.
type Source struct {
	name    string
	format  Format
	data    []byte
	mapping *mmap.Mapping
	ctrl    *resource.Controller
	charged int64
}

// adviseSequential hints a front-to-back scan of a mapped input.
var adviseSequential = func(m *mmap.Mapping) error {
	return m.Advise(mmap.AccessSequential)
}

// Open opens the input at path. Raw files are mapped; compressed files and
// standard input are decoded into memory charged to ctrl. ctrl and logger
// may be nil.
func Open(ctx context.Context, path string, ctrl *resource.Controller, logger *slog.Logger) (*Source, error) {
	if path == Stdin {
		return Read(ctx, "stdin", os.Stdin, ctrl)
	}

	m, err := mmap.Open(path)
	if err != nil {
		return nil, err
	}

	format := Detect(m.Bytes())
	if format == Raw {
		if err := adviseSequential(m); err != nil && logger != nil {
			logger.DebugContext(ctx, "access hint rejected", "input", path, "error", err)
		}
		return &Source{name: path, format: Raw, data: m.Bytes(), mapping: m}, nil
	}

	defer m.Close()

	return decode(ctx, path, format, io.NewSectionReader(m, 0, int64(m.Size())), ctrl)
}

// Read drains r into memory charged to ctrl, decoding it if it carries a
// known frame magic.
func Read(ctx context.Context, name string, r io.Reader, ctrl *resource.Controller) (*Source, error) {
	br := bufio.NewReader(r)
	prefix, err := br.Peek(4)
	if err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("source %s: %w", name, err)
	}
	return decode(ctx, name, Detect(prefix), br, ctrl)
}

func decode(ctx context.Context, name string, format Format, r io.Reader, ctrl *resource.Controller) (*Source, error) {
	r = resource.NewRateLimitedReader(ctx, r, ctrl)

	switch format {
	case Zstd:
		dec, err := zstd.NewReader(r, zstd.WithDecoderConcurrency(1))
		if err != nil {
			return nil, fmt.Errorf("source %s: %w", name, err)
		}
		defer dec.Close()
		r = dec
	case LZ4:
		r = lz4.NewReader(r)
	}

	buf := &chargedBuffer{ctrl: ctrl}
	if _, err := io.Copy(buf, r); err != nil {
		ctrl.ReleaseMemory(buf.charged)
		return nil, fmt.Errorf("source %s (%s): %w", name, format, err)
	}

	return &Source{
		name:    name,
		format:  format,
		data:    buf.Bytes(),
		ctrl:    ctrl,
		charged: buf.charged,
	}, nil
}

// Name returns the path or label the source was opened with.
func (s *Source) Name() string { return s.name }

// Format returns the detected encoding.
func (s *Source) Format() Format { return s.format }

// Bytes returns the decoded contents.
func (s *Source) Bytes() []byte { return s.data }

// Len returns the decoded length in bytes.
func (s *Source) Len() int { return len(s.data) }

// Close releases the mapping or the memory charge. It is idempotent.
func (s *Source) Close() error {
	s.data = nil
	if s.charged > 0 {
		s.ctrl.ReleaseMemory(s.charged)
		s.charged = 0
	}
	if s.mapping != nil {
		return s.mapping.Close()
	}
	return nil
}

// chargedBuffer grows only after the controller grants the memory for each
// write.
type chargedBuffer struct {
	buf     bytes.Buffer
	ctrl    *resource.Controller
	charged int64
}

func (b *chargedBuffer) Write(p []byte) (int, error) {
	if err := b.ctrl.AcquireMemory(int64(len(p))); err != nil {
		return 0, err
	}
	b.charged += int64(len(p))
	return b.buf.Write(p)
}

func (b *chargedBuffer) Bytes() []byte { return b.buf.Bytes() }
