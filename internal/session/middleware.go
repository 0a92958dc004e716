package session

import (
	"net/http"

	"github.com/google/uuid"
)

// Middleware attaches the caller's session to the request context, starting
// a new one and setting the cookie when the request carries no live session.
func Middleware(store *Store, cookieName string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			slot := lookup(store, r, cookieName)
			if slot == nil {
				slot = store.Create()
				http.SetCookie(w, &http.Cookie{
					Name:     cookieName,
					Value:    slot.ID(),
					Path:     "/",
					MaxAge:   int(store.TTL().Seconds()),
					HttpOnly: true,
					SameSite: http.SameSiteLaxMode,
				})
			}

			next.ServeHTTP(w, r.WithContext(NewContext(r.Context(), slot)))
		})
	}
}

func lookup(store *Store, r *http.Request, cookieName string) *Slot {
	cookie, err := r.Cookie(cookieName)
	if err != nil {
		return nil
	}
	if _, err := uuid.Parse(cookie.Value); err != nil {
		return nil
	}
	slot, ok := store.Get(cookie.Value)
	if !ok {
		return nil
	}
	return slot
}
