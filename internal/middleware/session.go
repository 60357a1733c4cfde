package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/google/uuid"
)

// SessionHeader identifica la sesión de la app (una instalación abierta).
const SessionHeader = "X-Session-ID"

type ctxKey string

const sessionKey ctxKey = "session"

// Session:
// - Si viene X-Session-ID => se usa tal cual.
// - Si no => se genera uno nuevo y se devuelve en la respuesta para que el cliente lo reuse.
// No es autenticación: solo agrupa el estado efímero (favoritos) de una sesión.
func Session() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sid := strings.TrimSpace(r.Header.Get(SessionHeader))
			if sid == "" || len(sid) > 128 {
				sid = uuid.NewString()
			}
			w.Header().Set(SessionHeader, sid)

			ctx := context.WithValue(r.Context(), sessionKey, sid)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func GetSessionID(ctx context.Context) (string, bool) {
	v, ok := ctx.Value(sessionKey).(string)
	if !ok || v == "" {
		return "", false
	}
	return v, true
}
