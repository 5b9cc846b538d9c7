package api

import (
	"net/http"

	"github.com/rs/zerolog"
)

// Renderer is the rendering collaborator for the page controllers: it
// receives a template identifier and a mapping of named values plus any
// pending flash messages, and writes the response body. The backend ships a
// JSON renderer for a headless frontend; an HTML template engine can sit
// behind the same interface.
type Renderer interface {
	Render(w http.ResponseWriter, template string, data map[string]any, flashes []Flash)
}

type jsonRenderer struct {
	responder Responder
}

func NewJSONRenderer(logger zerolog.Logger) Renderer {
	return jsonRenderer{responder: NewResponder(logger)}
}

func (r jsonRenderer) Render(w http.ResponseWriter, template string, data map[string]any, flashes []Flash) {
	payload := map[string]any{
		"template": template,
		"data":     data,
	}
	if len(flashes) > 0 {
		payload["messages"] = flashes
	}
	r.responder.WriteJSON(w, payload)
}
