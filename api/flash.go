package api

import (
	"encoding/base64"
	"encoding/json"
	"net/http"
)

// Flash kinds
const (
	FlashError   = "error"
	FlashSuccess = "success"
)

// Flash is a one-shot notification queued by a controller and drained into
// the next rendered response after a redirect.
type Flash struct {
	Kind string `json:"kind"`
	Text string `json:"text"`
}

const flashCookieName = "portfolio_flash"

// pushFlashes queues messages for the response that follows the next
// redirect. The queue rides in a cookie so it survives the POST/redirect/GET
// hop without server-side session state.
func pushFlashes(w http.ResponseWriter, flashes ...Flash) {
	encoded, err := json.Marshal(flashes)
	if err != nil {
		return
	}
	http.SetCookie(w, &http.Cookie{
		Name:     flashCookieName,
		Value:    base64.URLEncoding.EncodeToString(encoded),
		Path:     "/",
		HttpOnly: true,
	})
}

// popFlashes drains any queued messages and clears the cookie so each message
// is shown exactly once. A malformed cookie is dropped silently.
func popFlashes(w http.ResponseWriter, r *http.Request) []Flash {
	cookie, err := r.Cookie(flashCookieName)
	if err != nil {
		return nil
	}

	http.SetCookie(w, &http.Cookie{
		Name:     flashCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
	})

	decoded, err := base64.URLEncoding.DecodeString(cookie.Value)
	if err != nil {
		return nil
	}

	var flashes []Flash
	if err := json.Unmarshal(decoded, &flashes); err != nil {
		return nil
	}
	return flashes
}
