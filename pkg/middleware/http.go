package middleware

import (
	"net/http"
	"time"

	"github.com/fekuna/omnipos-catalog-service/pkg/logger"
	chimw "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

// HTTPContext is the chi counterpart of ContextInterceptor.
func HTTPContext(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := WithRequestID(r.Context(), r.Header.Get(HeaderRequestID))
		ctx = WithLocale(ctx, r.Header.Get(HeaderAcceptLanguage))
		w.Header().Set(HeaderRequestID, RequestID(ctx))
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func HTTPLogger(log logger.ZapLogger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()
			next.ServeHTTP(ww, r)
			log.Info("http request",
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.Int("status", ww.Status()),
				zap.String("request_id", RequestID(r.Context())),
				zap.Duration("duration", time.Since(start)),
			)
		})
	}
}
