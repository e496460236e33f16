package logger

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github/walletpanel/go-wallet-panel/internal/util"
)

// Config controls what the request logger middleware emits. Body and
// header logging are opt-in since they may leak sensitive payloads.
type Config struct {
	Skipper           middleware.Skipper
	Level             zerolog.Level
	LogRequestBody    bool
	LogRequestHeader  bool
	LogRequestQuery   bool
	LogResponseBody   bool
	LogResponseHeader bool
}

var DefaultConfig = Config{
	Skipper: middleware.DefaultSkipper,
	Level:   zerolog.DebugLevel,
}

func With() echo.MiddlewareFunc {
	return WithConfig(DefaultConfig)
}

// WithConfig returns a middleware that attaches a request-scoped zerolog
// logger (carrying the request ID) to the request context and emits one
// log line per completed request.
func WithConfig(config Config) echo.MiddlewareFunc {
	if config.Skipper == nil {
		config.Skipper = DefaultConfig.Skipper
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if config.Skipper(c) {
				return next(c)
			}

			req := c.Request()
			id := req.Header.Get(echo.HeaderXRequestID)
			if id == "" {
				id = c.Response().Header().Get(echo.HeaderXRequestID)
			}

			l := log.With().
				Str("id", id).
				Str("method", req.Method).
				Str("path", req.URL.Path).
				Logger()

			if config.LogRequestQuery {
				l = l.With().Str("query", req.URL.RawQuery).Logger()
			}

			if config.LogRequestHeader {
				l = l.With().Interface("req_header", req.Header).Logger()
			}

			ctx := l.WithContext(req.Context())
			ctx = context.WithValue(ctx, util.CTXKeyRequestID, id)
			c.SetRequest(req.WithContext(ctx))

			var resBody *bodyDumpResponseWriter
			if config.LogResponseBody {
				resBody = dumpResponse(c)
			}

			start := time.Now()
			err := next(c)
			if err != nil {
				c.Error(err)
			}

			res := c.Response()

			evt := l.WithLevel(config.Level).
				Int("status", res.Status).
				Int64("bytes_out", res.Size).
				Dur("duration_ms", time.Since(start))

			if config.LogResponseHeader {
				evt = evt.Interface("res_header", res.Header())
			}

			if resBody != nil {
				evt = evt.Bytes("res_body", resBody.body)
			}

			evt.Msg("Request handled")

			return err
		}
	}
}

type bodyDumpResponseWriter struct {
	http.ResponseWriter
	body []byte
}

func (w *bodyDumpResponseWriter) Write(b []byte) (int, error) {
	w.body = append(w.body, b...)
	return w.ResponseWriter.Write(b)
}

func dumpResponse(c echo.Context) *bodyDumpResponseWriter {
	w := &bodyDumpResponseWriter{ResponseWriter: c.Response().Writer}
	c.Response().Writer = w

	return w
}
