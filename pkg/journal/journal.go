// Package journal provides an append-only, gob encoded record file.
package journal

import (
	"bufio"
	"bytes"
	"encoding/binary"
	"encoding/gob"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
)

// ErrCorrupt is returned when a record cannot be framed or decoded.
var ErrCorrupt = errors.New("journal: corrupt record")

// Journal stores items of type T in insertion order on disk.
type Journal[T any] interface {
	Len() uint64
	Path() string
	Append(item T) error
	AppendBatch(items []T) error
	Get(index uint64) (T, error)
	Range(f func(index uint64, item T) error) error
	Close() error
}

type journal[T any] struct {
	path   string
	file   *os.File
	mu     sync.Mutex
	length uint64
}

// Open opens the journal at path, creating it and its directory when
// missing. Existing records are counted, not loaded.
func Open[T any](path string) (Journal[T], error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		slog.Error("failed to create journal directory", "path", path, "error", err)
		return nil, fmt.Errorf("failed to create journal directory: %w", err)
	}

	file, err := os.OpenFile(path, os.O_CREATE|os.O_RDWR|os.O_APPEND, 0o640)
	if err != nil {
		slog.Error("failed to open journal", "path", path, "error", err)
		return nil, fmt.Errorf("failed to open journal: %w", err)
	}

	j := &journal[T]{path: path, file: file}

	n, err := j.count()
	if err != nil {
		_ = file.Close()
		return nil, err
	}

	j.length = n
	slog.Debug("opened journal", "path", path, "length", n)

	return j, nil
}

func (j *journal[T]) count() (uint64, error) {
	var n uint64

	err := j.scan(func(_ uint64, _ []byte) (bool, error) {
		n++
		return true, nil
	})

	return n, err
}

// scan walks the raw record payloads until fn returns false.
func (j *journal[T]) scan(fn func(index uint64, payload []byte) (bool, error)) error {
	file, err := os.Open(j.path)
	if err != nil {
		slog.Error("failed to open journal for read", "path", j.path, "error", err)
		return fmt.Errorf("failed to open journal: %w", err)
	}

	defer func() {
		if err := file.Close(); err != nil {
			slog.Error("failed to close journal", "path", j.path, "error", err)
		}
	}()

	info, err := file.Stat()
	if err != nil {
		return fmt.Errorf("failed to stat journal: %w", err)
	}

	// no record can be larger than the file holding it
	limit := uint64(info.Size())

	r := bufio.NewReader(file)

	for i := uint64(0); ; i++ {
		size, err := binary.ReadUvarint(r)
		if errors.Is(err, io.EOF) {
			return nil
		}

		if err != nil {
			return fmt.Errorf("%w at index %d: %w", ErrCorrupt, i, err)
		}

		if size > limit {
			return fmt.Errorf("%w at index %d: record size %d", ErrCorrupt, i, size)
		}

		payload := make([]byte, size)
		if _, err := io.ReadFull(r, payload); err != nil {
			return fmt.Errorf("%w at index %d: %w", ErrCorrupt, i, err)
		}

		more, err := fn(i, payload)
		if err != nil || !more {
			return err
		}
	}
}

func decode[T any](index uint64, payload []byte) (T, error) {
	var item T

	if err := gob.NewDecoder(bytes.NewReader(payload)).Decode(&item); err != nil {
		var zero T
		return zero, fmt.Errorf("%w at index %d: %w", ErrCorrupt, index, err)
	}

	return item, nil
}

// Append implements Journal.
func (j *journal[T]) Append(item T) error {
	var payload bytes.Buffer
	if err := gob.NewEncoder(&payload).Encode(item); err != nil {
		slog.Error("failed to encode item", "path", j.path, "error", err)
		return fmt.Errorf("failed to encode item: %w", err)
	}

	record := binary.AppendUvarint(make([]byte, 0, payload.Len()+binary.MaxVarintLen64), uint64(payload.Len()))
	record = append(record, payload.Bytes()...)

	j.mu.Lock()
	defer j.mu.Unlock()

	if j.file == nil {
		return fmt.Errorf("journal %s is closed", j.path)
	}

	if _, err := j.file.Write(record); err != nil {
		slog.Error("failed to write item", "path", j.path, "index", j.length, "error", err)
		return fmt.Errorf("failed to write item: %w", err)
	}

	j.length++
	slog.Debug("appended item", "path", j.path, "index", j.length-1)

	return nil
}

// AppendBatch implements Journal.
func (j *journal[T]) AppendBatch(items []T) error {
	for _, item := range items {
		if err := j.Append(item); err != nil {
			return err
		}
	}

	return nil
}

// Path implements Journal.
func (j *journal[T]) Path() string {
	return j.path
}

// Len implements Journal.
func (j *journal[T]) Len() uint64 {
	j.mu.Lock()
	defer j.mu.Unlock()

	return j.length
}

// Get implements Journal.
func (j *journal[T]) Get(index uint64) (T, error) {
	j.mu.Lock()
	defer j.mu.Unlock()

	var item T

	if index >= j.length {
		slog.Warn("get index out of bounds", "path", j.path, "index", index, "length", j.length)
		return item, fmt.Errorf("index %d out of bounds (length %d)", index, j.length)
	}

	var decodeErr error

	err := j.scan(func(i uint64, payload []byte) (bool, error) {
		if i < index {
			return true, nil
		}

		item, decodeErr = decode[T](i, payload)

		return false, nil
	})
	if err == nil {
		err = decodeErr
	}

	if err != nil {
		var zero T
		return zero, err
	}

	return item, nil
}

// Range implements Journal.
func (j *journal[T]) Range(fn func(index uint64, item T) error) error {
	j.mu.Lock()
	defer j.mu.Unlock()

	length := j.length

	err := j.scan(func(i uint64, payload []byte) (bool, error) {
		if i >= length {
			return false, nil
		}

		item, err := decode[T](i, payload)
		if err != nil {
			return false, err
		}

		if err := fn(i, item); err != nil {
			slog.Warn("range callback error", "path", j.path, "index", i, "error", err)
			return false, err
		}

		return true, nil
	})
	if err != nil {
		return err
	}

	slog.Debug("range completed", "path", j.path, "count", length)

	return nil
}

// Close implements Journal.
func (j *journal[T]) Close() error {
	j.mu.Lock()
	defer j.mu.Unlock()

	if j.file == nil {
		return nil
	}

	err := j.file.Close()
	j.file = nil

	if err != nil {
		slog.Error("failed to close journal", "path", j.path, "error", err)
		return err
	}

	slog.Debug("closed journal", "path", j.path, "length", j.length)

	return nil
}
