package handler

import (
	"net/http"
	"time"

	"github.com/EpicMandM/laptop-desk/internal/logger"
	"github.com/go-chi/chi/v5/middleware"
)

// RequestLogger logs every inbound request once it has been served.
func RequestLogger(log *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r)

			status := ww.Status()
			if status == 0 {
				status = http.StatusOK
			}
			log.Info("Request",
				logger.Method(r.Method),
				logger.Path(r.URL.Path),
				logger.StatusCode(status),
				logger.F("SIZE", ww.BytesWritten()),
				logger.Duration(time.Since(start)),
				logger.RequestID(middleware.GetReqID(r.Context())),
				logger.F("IP", r.RemoteAddr))
		})
	}
}
