// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"bytes"
	"compress/gzip"
	"io"
	"net/http"
	"strconv"
	"strings"
	"sync"

	"github.com/MKhiriev/go-user-api/internal/app"
)

// compressionThreshold is the minimum response body size, in bytes, that
// triggers gzip compression. Smaller bodies are sent as-is: for tiny JSON
// payloads the gzip header overhead outweighs any size win.
const compressionThreshold = 2048

var gzipWriterPool = sync.Pool{
	New: func() any {
		w := gzip.NewWriter(nil)
		return w
	},
}

var gzipReaderPool = sync.Pool{
	New: func() any {
		return new(gzip.Reader)
	},
}

// withGZip transparently decompresses gzip request bodies and compresses
// response bodies of at least compressionThreshold bytes when the client
// advertises gzip support. Responses below the threshold are buffered and
// sent uncompressed.
func (h *Handler) withGZip(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		contentEncoding := r.Header.Get("Content-Encoding")
		if strings.Contains(contentEncoding, "gzip") && r.Body != nil {
			gzipReader := gzipReaderPool.Get().(*gzip.Reader)
			if err := gzipReader.Reset(r.Body); err != nil {
				gzipReaderPool.Put(gzipReader)
				h.writeError(w, r, newAPIError(kindParse, app.MsgInvalidGzipBody))
				return
			}

			r.Body = &wrappedReadCloser{
				Reader: gzipReader,
				OnClose: func() {
					gzipReader.Close()
					gzipReaderPool.Put(gzipReader)
				},
			}
			r.Header.Del("Content-Encoding")
		}

		if !strings.Contains(r.Header.Get("Accept-Encoding"), "gzip") {
			next.ServeHTTP(w, r)
			return
		}

		gzipRW := &gzipResponseWriter{ResponseWriter: w}

		next.ServeHTTP(gzipRW, r)

		gzipRW.Close()
	})
}

type wrappedReadCloser struct {
	io.Reader
	OnClose func()
}

func (w *wrappedReadCloser) Close() error {
	if w.OnClose != nil {
		w.OnClose()
	}
	return nil
}

// gzipResponseWriter buffers the response body until it either exceeds
// compressionThreshold, at which point the buffered bytes and everything
// after them are streamed through a pooled gzip writer, or the handler
// returns, in which case the small body is flushed uncompressed.
//
// The status line is withheld until the compression decision is made, since
// the Content-Encoding header must be set before WriteHeader reaches the
// underlying writer.
type gzipResponseWriter struct {
	http.ResponseWriter

	buf        bytes.Buffer
	status     int
	gzipWriter *gzip.Writer
	closed     bool
}

func (w *gzipResponseWriter) WriteHeader(statusCode int) {
	if w.status == 0 {
		w.status = statusCode
	}
}

func (w *gzipResponseWriter) Write(data []byte) (int, error) {
	if w.gzipWriter != nil {
		return w.gzipWriter.Write(data)
	}

	n, err := w.buf.Write(data)
	if err != nil {
		return n, err
	}

	if w.buf.Len() >= compressionThreshold {
		if err := w.startCompression(); err != nil {
			return n, err
		}
	}

	return n, nil
}

// startCompression commits to a gzip-encoded response: it stamps the
// encoding headers, sends the withheld status line, and replays the buffer
// through a pooled gzip writer.
func (w *gzipResponseWriter) startCompression() error {
	header := w.Header()
	header.Set("Content-Encoding", "gzip")
	header.Add("Vary", "Accept-Encoding")
	header.Del("Content-Length")

	w.ResponseWriter.WriteHeader(w.statusOrDefault())

	gzipWriter := gzipWriterPool.Get().(*gzip.Writer)
	gzipWriter.Reset(w.ResponseWriter)
	w.gzipWriter = gzipWriter

	_, err := w.gzipWriter.Write(w.buf.Bytes())
	w.buf.Reset()
	return err
}

// Close finalizes the response. It must be called exactly once after the
// downstream handler returns.
func (w *gzipResponseWriter) Close() error {
	if w.closed {
		return nil
	}
	w.closed = true

	if w.gzipWriter != nil {
		err := w.gzipWriter.Close()
		gzipWriterPool.Put(w.gzipWriter)
		w.gzipWriter = nil
		return err
	}

	w.Header().Set("Content-Length", strconv.Itoa(w.buf.Len()))
	w.ResponseWriter.WriteHeader(w.statusOrDefault())
	_, err := w.ResponseWriter.Write(w.buf.Bytes())
	return err
}

func (w *gzipResponseWriter) statusOrDefault() int {
	if w.status == 0 {
		return http.StatusOK
	}
	return w.status
}
