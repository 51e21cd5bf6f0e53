package webui

import (
	"net/http"

	"github.com/icmt/icmt/internal/icmt/api"
)

// writeSession passes on to the browser the cookies the backend set while
// serving this request. Cookies the browser already holds with the same value
// and no new lifetime are left alone, as are any the backend never touched.
func writeSession(w http.ResponseWriter, r *http.Request, before []*http.Cookie, client *api.Client) {
	sent := make(map[string]string, len(before))
	for _, ck := range before {
		sent[ck.Name] = ck.Value
	}

	for _, ck := range client.IssuedCookies() {
		value, had := sent[ck.Name]

		if ck.MaxAge < 0 {
			if had {
				http.SetCookie(w, &http.Cookie{
					Name:   ck.Name,
					Value:  "",
					Path:   "/",
					MaxAge: -1,
				})
			}
			continue
		}
		if had && value == ck.Value && ck.Expires.IsZero() {
			continue
		}

		http.SetCookie(w, &http.Cookie{
			Name:     ck.Name,
			Value:    ck.Value,
			Path:     "/",
			Expires:  ck.Expires,
			MaxAge:   ck.MaxAge,
			HttpOnly: true,
			Secure:   r.TLS != nil,
			SameSite: http.SameSiteLaxMode,
		})
	}
}
