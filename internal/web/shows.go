package web

import (
	"errors"
	"net/http"

	"github.com/rs/zerolog/log"

	"showbill/internal/forms"
	"showbill/internal/store"
)

func (s *Server) handleListShows(w http.ResponseWriter, r *http.Request) {
	shows, err := s.shows.List(r.Context())
	if err != nil {
		log.Error().Err(err).Msg("list shows")
		s.ServerError(w, r)
		return
	}
	s.render(w, r, http.StatusOK, "shows", pageData{Title: "Shows", Data: shows})
}

func (s *Server) handleNewShowForm(w http.ResponseWriter, r *http.Request) {
	s.render(w, r, http.StatusOK, "new_show", pageData{Title: "List a Show", Form: forms.ShowForm{}})
}

func (s *Server) handleCreateShow(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad form submission", http.StatusBadRequest)
		return
	}

	form := forms.ParseShowForm(r.PostForm)
	if err := form.Validate(); err != nil {
		var verr *forms.ValidationError
		if !errors.As(err, &verr) {
			log.Error().Err(err).Msg("validate show form")
			s.ServerError(w, r)
			return
		}
		s.render(w, r, http.StatusUnprocessableEntity, "new_show", pageData{
			Title:  "List a Show",
			Form:   form,
			Errors: verr.Fields,
			Flash:  &Flash{Kind: "error", Message: "An error occurred. Show could not be listed."},
		})
		return
	}

	if _, err := s.shows.Create(r.Context(), form.Show()); err != nil {
		// A missing endpoint is a submission problem, not a fault.
		fields := map[string]string{}
		switch {
		case errors.Is(err, store.ErrArtistNotFound):
			fields["artist_id"] = "does not match an existing artist"
		case errors.Is(err, store.ErrVenueNotFound):
			fields["venue_id"] = "does not match an existing venue"
		default:
			log.Error().Err(err).Msg("create show")
			setFlash(w, "error", "An error occurred. Show could not be listed.")
			http.Redirect(w, r, "/", http.StatusSeeOther)
			return
		}
		s.render(w, r, http.StatusUnprocessableEntity, "new_show", pageData{
			Title:  "List a Show",
			Form:   form,
			Errors: fields,
			Flash:  &Flash{Kind: "error", Message: "An error occurred. Show could not be listed."},
		})
		return
	}

	setFlash(w, "success", "Show was successfully listed!")
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (s *Server) handleDeleteShow(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		s.NotFound(w, r)
		return
	}

	err := s.shows.Delete(r.Context(), id)
	if errors.Is(err, store.ErrShowNotFound) {
		setFlash(w, "error", "An error occurred. Show could not be canceled.")
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}
	if err != nil {
		log.Error().Err(err).Int64("show_id", id).Msg("delete show")
		setFlash(w, "error", "An error occurred. Show could not be canceled.")
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	setFlash(w, "success", "Show was successfully canceled!")
	http.Redirect(w, r, "/", http.StatusSeeOther)
}
