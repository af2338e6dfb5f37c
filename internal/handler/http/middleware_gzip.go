package http

import (
	"compress/gzip"
	"net/http"
	"strings"
	"sync"
)

// Both directions are pooled: attachment uploads and note payloads may
// arrive gzipped, and responses are compressed whenever the client
// advertises support.
var (
	gzipWriterPool = sync.Pool{
		New: func() any { return gzip.NewWriter(nil) },
	}
	gzipReaderPool = sync.Pool{
		New: func() any { return new(gzip.Reader) },
	}
)

func withGZip(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		if strings.Contains(req.Header.Get("Content-Encoding"), "gzip") && req.Body != nil {
			if !decompressRequestBody(w, req) {
				return
			}
		}

		if !strings.Contains(req.Header.Get("Accept-Encoding"), "gzip") {
			next.ServeHTTP(w, req)
			return
		}

		zw := gzipWriterPool.Get().(*gzip.Writer)
		zw.Reset(w)

		next.ServeHTTP(&gzipResponseWriter{ResponseWriter: w, gzipWriter: zw}, req)

		zw.Close()
		gzipWriterPool.Put(zw)
	})
}

// decompressRequestBody swaps req.Body for a decoding reader and strips the
// Content-Encoding header so downstream handlers see a plain body. A body
// that is not valid gzip is rejected with 400 before any handler runs.
func decompressRequestBody(w http.ResponseWriter, req *http.Request) bool {
	zr := gzipReaderPool.Get().(*gzip.Reader)
	if err := zr.Reset(req.Body); err != nil {
		gzipReaderPool.Put(zr)
		http.Error(w, "invalid gzip body", http.StatusBadRequest)
		return false
	}

	req.Body = &pooledBodyReader{reader: zr}
	req.Header.Del("Content-Encoding")
	return true
}

// pooledBodyReader returns its gzip reader to the pool on Close.
type pooledBodyReader struct {
	reader *gzip.Reader
}

func (r *pooledBodyReader) Read(p []byte) (int, error) {
	return r.reader.Read(p)
}

func (r *pooledBodyReader) Close() error {
	err := r.reader.Close()
	gzipReaderPool.Put(r.reader)
	return err
}

type gzipResponseWriter struct {
	http.ResponseWriter
	gzipWriter *gzip.Writer
}

func (w *gzipResponseWriter) WriteHeader(statusCode int) {
	w.Header().Set("Content-Encoding", "gzip")
	w.ResponseWriter.WriteHeader(statusCode)
}

func (w *gzipResponseWriter) Write(data []byte) (int, error) {
	return w.gzipWriter.Write(data)
}
