package api

import (
	"net/http"

	"github.com/FijacksProp/portfolio/database"
	"github.com/FijacksProp/portfolio/models"
	"github.com/FijacksProp/portfolio/services"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type contactHandler struct {
	responder   Responder
	logger      zerolog.Logger
	renderer    Renderer
	contactRepo *database.ContactRepo
	notifier    *services.ContactNotifier // nil when notifications are not configured
}

func newContactHandler(renderer Renderer, contactRepo *database.ContactRepo, notifier *services.ContactNotifier) contactHandler {
	logger := log.With().Str("handlerName", "contactHandler").Logger()

	return contactHandler{
		responder:   NewResponder(logger),
		logger:      logger,
		renderer:    renderer,
		contactRepo: contactRepo,
		notifier:    notifier,
	}
}

// showForm renders the empty contact form along with any flash messages left
// by a previous submission.
func (h contactHandler) showForm() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		h.renderer.Render(w, "contact", map[string]any{}, popFlashes(w, r))
	}
}

// submit handles a contact form submission. All four fields must be present
// and non-empty; on any failure nothing is persisted and the visitor is sent
// back to the form with an error flash.
func (h contactHandler) submit() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			h.logger.Error().Err(err).Msg("Failed to parse contact form")
			pushFlashes(w, Flash{Kind: FlashError, Text: "All fields are required."})
			http.Redirect(w, r, "/contact", http.StatusSeeOther)
			return
		}

		name := r.PostFormValue("name")
		email := r.PostFormValue("email")
		subject := r.PostFormValue("subject")
		message := r.PostFormValue("message")

		if name == "" || email == "" || subject == "" || message == "" {
			pushFlashes(w, Flash{Kind: FlashError, Text: "All fields are required."})
			http.Redirect(w, r, "/contact", http.StatusSeeOther)
			return
		}

		contact := models.Contact{
			Name:    name,
			Email:   email,
			Subject: subject,
			Message: message,
		}

		if err := h.contactRepo.Add(&contact); err != nil {
			h.logger.Error().Err(err).Msg("Failed to store contact message")
			pushFlashes(w, Flash{Kind: FlashError, Text: "Something went wrong, please try again."})
			http.Redirect(w, r, "/contact", http.StatusSeeOther)
			return
		}

		// Notification failures are logged by the notifier and never shown to
		// the visitor; the message is already stored.
		if h.notifier != nil {
			h.notifier.Notify(contact)
		}

		pushFlashes(w, Flash{Kind: FlashSuccess, Text: "Thank you for your message! I'll get back to you soon."})
		http.Redirect(w, r, "/contact", http.StatusSeeOther)
	}
}
