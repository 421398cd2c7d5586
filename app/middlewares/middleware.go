package middlewares

import (
	"context"
	"log"
	"net/http"

	"github.com/foodhubdev/foodhub/app/helpers"
	"github.com/foodhubdev/foodhub/app/repositories"
	"github.com/foodhubdev/foodhub/app/utils/sessions"
)

// UserContextMiddleware resolves the session's user id to a full user and puts
// both on the request context. Requests without a valid session pass through
// anonymous.
func UserContextMiddleware(sessionStore sessions.SessionStore, userRepo repositories.UserRepositoryImpl) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			userID := sessionStore.GetUserID(r)
			if userID == "" {
				next.ServeHTTP(w, r)
				return
			}

			user, err := userRepo.GetByID(r.Context(), userID)
			if err != nil {
				log.Printf("UserContextMiddleware: session user %s not found: %v", userID, err)
				next.ServeHTTP(w, r)
				return
			}

			ctx := context.WithValue(r.Context(), helpers.ContextKeyUserID, user.ID)
			ctx = context.WithValue(ctx, helpers.ContextKeyUser, user)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// UserIDFromContext returns the signed-in user's id, empty for anonymous
// visitors.
func UserIDFromContext(ctx context.Context) string {
	userID, _ := ctx.Value(helpers.ContextKeyUserID).(string)
	return userID
}
