package middleware

import (
	"context"
	"net/http"
	"strconv"
	"strings"

	"github.com/m04kA/SMC-DonationService/internal/api/handlers"
)

const (
	HeaderDonorID   = "X-Donor-ID"
	HeaderSessionID = "X-Session-ID"
)

const (
	msgMissingDonorID   = "отсутствует или некорректен ID донора"
	msgMissingSessionID = "отсутствует ID сессии"
)

type contextKeyDonorID struct{}
type contextKeySessionID struct{}

// Auth извлекает донора и сессию портала из заголовков.
// Аутентификация выполняется шлюзом; здесь только проверка наличия.
func Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		donorID, err := strconv.ParseInt(r.Header.Get(HeaderDonorID), 10, 64)
		if err != nil || donorID <= 0 {
			handlers.RespondUnauthorized(w, msgMissingDonorID)
			return
		}

		sessionID := strings.TrimSpace(r.Header.Get(HeaderSessionID))
		if sessionID == "" {
			handlers.RespondUnauthorized(w, msgMissingSessionID)
			return
		}

		next.ServeHTTP(w, r.WithContext(WithIdentity(r.Context(), donorID, sessionID)))
	})
}

// WithIdentity кладёт донора и сессию в контекст
func WithIdentity(ctx context.Context, donorID int64, sessionID string) context.Context {
	ctx = context.WithValue(ctx, contextKeyDonorID{}, donorID)
	return context.WithValue(ctx, contextKeySessionID{}, sessionID)
}

// GetDonorID возвращает ID донора из контекста
func GetDonorID(ctx context.Context) (int64, bool) {
	donorID, ok := ctx.Value(contextKeyDonorID{}).(int64)
	return donorID, ok
}

// GetSessionID возвращает ID сессии портала из контекста
func GetSessionID(ctx context.Context) (string, bool) {
	sessionID, ok := ctx.Value(contextKeySessionID{}).(string)
	return sessionID, ok && sessionID != ""
}
