package http

import (
	"compress/gzip"
	"io"
	"net/http"
	"strings"
	"sync"

	"github.com/andybalholm/brotli"
)

const (
	encodingBrotli = "br"
	encodingGzip   = "gzip"
)

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

var brotliWriterPool = sync.Pool{
	New: func() any {
		return brotli.NewWriterLevel(nil, brotli.DefaultCompression)
	},
}

// withCompression encodes responses with brotli or gzip, whichever the
// client accepts (brotli first), and transparently decodes gzip request
// bodies.
func withCompression(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		contentEncoding := req.Header.Get("Content-Encoding")
		isGzipRequest := strings.Contains(contentEncoding, encodingGzip)

		if isGzipRequest && req.Body != nil {
			gzipReader := gzipReaderPool.Get().(*gzip.Reader)
			if err := gzipReader.Reset(req.Body); err != nil {
				gzipReaderPool.Put(gzipReader)
				http.Error(w, "Invalid gzip data", http.StatusBadRequest)
				return
			}

			req.Body = &wrappedReadCloser{
				Reader: gzipReader,
				OnClose: func() {
					gzipReader.Close()
					gzipReaderPool.Put(gzipReader)
				},
			}
			req.Header.Del("Content-Encoding")
		}

		encoding := negotiateEncoding(req.Header.Get("Accept-Encoding"))
		if encoding == "" {
			next.ServeHTTP(w, req)
			return
		}

		w.Header().Add("Vary", "Accept-Encoding")

		switch encoding {
		case encodingBrotli:
			brotliWriter := brotliWriterPool.Get().(*brotli.Writer)
			brotliWriter.Reset(w)

			cw := &compressResponseWriter{ResponseWriter: w, writer: brotliWriter, encoding: encodingBrotli}
			next.ServeHTTP(cw, req)

			cw.finish()
			brotliWriterPool.Put(brotliWriter)
		default:
			gzipWriter := gzipWriterPool.Get().(*gzip.Writer)
			gzipWriter.Reset(w)

			cw := &compressResponseWriter{ResponseWriter: w, writer: gzipWriter, encoding: encodingGzip}
			next.ServeHTTP(cw, req)

			cw.finish()
			gzipWriterPool.Put(gzipWriter)
		}
	})
}

// negotiateEncoding picks the response encoding from an Accept-Encoding
// header. Codings listed with q=0 are refused.
func negotiateEncoding(acceptEncoding string) string {
	var gzipAccepted bool
	for _, part := range strings.Split(acceptEncoding, ",") {
		coding, params, _ := strings.Cut(strings.TrimSpace(part), ";")
		coding = strings.ToLower(strings.TrimSpace(coding))
		if isZeroQuality(params) {
			continue
		}
		switch coding {
		case encodingBrotli:
			return encodingBrotli
		case encodingGzip:
			gzipAccepted = true
		}
	}
	if gzipAccepted {
		return encodingGzip
	}
	return ""
}

func isZeroQuality(params string) bool {
	q, ok := strings.CutPrefix(strings.ReplaceAll(params, " ", ""), "q=")
	if !ok {
		return false
	}
	return strings.Trim(q, "0.") == ""
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

// compressResponseWriter holds the status line back until the first body
// byte, so responses without a body go out unencoded.
type compressResponseWriter struct {
	http.ResponseWriter
	writer      io.WriteCloser
	encoding    string
	status      int
	wroteHeader bool
	started     bool
}

func (w *compressResponseWriter) WriteHeader(statusCode int) {
	if w.wroteHeader {
		return
	}
	w.wroteHeader = true
	w.status = statusCode
}

func (w *compressResponseWriter) Write(data []byte) (int, error) {
	if !w.wroteHeader {
		w.WriteHeader(http.StatusOK)
	}
	if len(data) == 0 {
		return 0, nil
	}
	if !w.started {
		w.started = true
		w.Header().Set("Content-Encoding", w.encoding)
		w.Header().Del("Content-Length")
		w.ResponseWriter.WriteHeader(w.status)
	}
	return w.writer.Write(data)
}

// finish flushes the encoder trailer once a body was written. Otherwise it
// only sends the pending status.
func (w *compressResponseWriter) finish() {
	if w.started {
		_ = w.writer.Close()
		return
	}
	if w.wroteHeader {
		w.ResponseWriter.WriteHeader(w.status)
	}
}
