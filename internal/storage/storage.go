// Package storage contains object storage abstractions for S3-compatible stores.
// Implementations stream uploads and never touch local disk.
package storage

import (
	"context"
	"io"
	"path"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Writer is an open upload stream to the object store.
//
// Callers Write the content, Close the stream, then receive exactly once from
// Done, which reports whether the store accepted the object.
type Writer interface {
	io.WriteCloser
	Done() <-chan error
}

// Storage is a reusable, S3-compatible object storage client interface.
type Storage interface {
	// NewWriter opens an upload stream for key tagged with contentType.
	// size is the exact byte count when known, or -1.
	NewWriter(ctx context.Context, key, contentType string, size int64) Writer
	// PresignGet returns a time-limited URL that can be used to download the object without credentials.
	PresignGet(ctx context.Context, key string, expiry time.Duration) (string, error)
	// Ping verifies the bucket is reachable.
	Ping(ctx context.Context) error
}

var unsafeKeyChars = regexp.MustCompile(`[^A-Za-z0-9._-]+`)

// TimestampedKey builds prefix/<unix millis>_<name> from an uploaded filename.
// Directory parts are dropped and characters outside [A-Za-z0-9._-] become
// underscores, so callers cannot steer the key into other prefixes.
func TimestampedKey(prefix string, now time.Time, filename string) string {
	name := path.Base(strings.ReplaceAll(filename, `\`, "/"))
	name = unsafeKeyChars.ReplaceAllString(name, "_")
	name = strings.Trim(name, ".")
	if name == "" || name == "_" {
		name = "upload"
	}
	return path.Join(prefix, strconv.FormatInt(now.UnixMilli(), 10)+"_"+name)
}

// objectWriter adapts a blocking reader-based upload to the Writer contract.
type objectWriter struct {
	pw   *io.PipeWriter
	done chan error
}

// newObjectWriter runs upload in its own goroutine, feeding it everything
// written to the returned writer.
func newObjectWriter(upload func(r io.Reader) error) *objectWriter {
	pr, pw := io.Pipe()
	w := &objectWriter{pw: pw, done: make(chan error, 1)}
	go func() {
		err := upload(pr)
		// Unblocks pending writes when the upload gave up early.
		pr.CloseWithError(err)
		w.done <- err
	}()
	return w
}

func (w *objectWriter) Write(p []byte) (int, error) {
	return w.pw.Write(p)
}

func (w *objectWriter) Close() error {
	return w.pw.Close()
}

func (w *objectWriter) Done() <-chan error {
	return w.done
}
