package mocks

import (
	"bytes"
	"context"
	"time"

	"appraisalapi/internal/storage"

	"github.com/stretchr/testify/mock"
)

type MockStorage struct {
	mock.Mock
}

func (m *MockStorage) NewWriter(ctx context.Context, key, contentType string, size int64) storage.Writer {
	args := m.Called(ctx, key, contentType, size)
	return args.Get(0).(storage.Writer)
}

func (m *MockStorage) PresignGet(ctx context.Context, key string, expiry time.Duration) (string, error) {
	args := m.Called(ctx, key, expiry)
	return args.String(0), args.Error(1)
}

func (m *MockStorage) Ping(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

// BufferWriter is a storage.Writer that keeps written bytes in memory and
// reports Err as the upload result once closed.
type BufferWriter struct {
	bytes.Buffer
	Err    error
	Closed bool
	done   chan error
}

func NewBufferWriter(err error) *BufferWriter {
	return &BufferWriter{Err: err, done: make(chan error, 1)}
}

func (w *BufferWriter) Close() error {
	w.Closed = true
	w.done <- w.Err
	return nil
}

func (w *BufferWriter) Done() <-chan error {
	return w.done
}
