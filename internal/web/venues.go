package web

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/rs/zerolog/log"

	"showbill/internal/forms"
	"showbill/internal/models"
	"showbill/internal/store"
)

// searchPage is the data shape for both search result pages.
type searchPage struct {
	Results    *models.SearchResults
	SearchTerm string
}

func (s *Server) handleListVenues(w http.ResponseWriter, r *http.Request) {
	areas, err := s.venues.ListByArea(r.Context())
	if err != nil {
		log.Error().Err(err).Msg("list venues")
		s.ServerError(w, r)
		return
	}
	s.render(w, r, http.StatusOK, "venues", pageData{Title: "Venues", Data: areas})
}

func (s *Server) handleSearchVenues(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad form submission", http.StatusBadRequest)
		return
	}
	term := r.PostFormValue("search_term")

	results, err := s.venues.SearchByName(r.Context(), term)
	if err != nil {
		log.Error().Err(err).Str("term", term).Msg("search venues")
		s.ServerError(w, r)
		return
	}
	s.render(w, r, http.StatusOK, "search_venues", pageData{
		Title: "Find a Venue",
		Data:  searchPage{Results: results, SearchTerm: term},
	})
}

func (s *Server) handleShowVenue(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		s.NotFound(w, r)
		return
	}

	detail, err := s.venues.Get(r.Context(), id, s.now())
	if errors.Is(err, store.ErrVenueNotFound) {
		setFlash(w, "error", "An error occurred. Venue could not be listed.")
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}
	if err != nil {
		log.Error().Err(err).Int64("venue_id", id).Msg("get venue")
		s.ServerError(w, r)
		return
	}
	s.render(w, r, http.StatusOK, "show_venue", pageData{Title: detail.Name, Data: detail})
}

func (s *Server) handleNewVenueForm(w http.ResponseWriter, r *http.Request) {
	s.render(w, r, http.StatusOK, "new_venue", pageData{Title: "List a Venue", Form: forms.VenueForm{}})
}

func (s *Server) handleCreateVenue(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad form submission", http.StatusBadRequest)
		return
	}

	form := forms.ParseVenueForm(r.PostForm)
	if err := form.Validate(); err != nil {
		var verr *forms.ValidationError
		if !errors.As(err, &verr) {
			log.Error().Err(err).Msg("validate venue form")
			s.ServerError(w, r)
			return
		}
		s.render(w, r, http.StatusUnprocessableEntity, "new_venue", pageData{
			Title:  "List a Venue",
			Form:   form,
			Errors: verr.Fields,
			Flash:  &Flash{Kind: "error", Message: fmt.Sprintf("An error occurred. Venue %q could not be listed.", form.Name)},
		})
		return
	}

	venue, err := s.venues.Create(r.Context(), form.Venue())
	if err != nil {
		log.Error().Err(err).Msg("create venue")
		setFlash(w, "error", fmt.Sprintf("An error occurred. Venue %q could not be listed.", form.Name))
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	setFlash(w, "success", fmt.Sprintf("Venue %q was successfully listed!", venue.Name))
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (s *Server) handleEditVenueForm(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		s.NotFound(w, r)
		return
	}

	detail, err := s.venues.Get(r.Context(), id, s.now())
	if errors.Is(err, store.ErrVenueNotFound) {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}
	if err != nil {
		log.Error().Err(err).Int64("venue_id", id).Msg("get venue for edit")
		s.ServerError(w, r)
		return
	}

	form := forms.VenueForm{
		Name:               detail.Name,
		City:               detail.City,
		State:              detail.State,
		Address:            detail.Address,
		Phone:              detail.Phone,
		Genres:             detail.Genres,
		ImageLink:          detail.ImageLink,
		FacebookLink:       detail.FacebookLink,
		WebsiteLink:        detail.Website,
		SeekingTalent:      detail.SeekingTalent,
		SeekingDescription: detail.SeekingDescription,
	}
	s.render(w, r, http.StatusOK, "edit_venue", pageData{
		Title: "Edit " + detail.Name,
		Form:  form,
		Data:  detail,
	})
}

func (s *Server) handleEditVenue(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		s.NotFound(w, r)
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad form submission", http.StatusBadRequest)
		return
	}

	form := forms.ParseVenueForm(r.PostForm)
	if err := form.Validate(); err != nil {
		var verr *forms.ValidationError
		if !errors.As(err, &verr) {
			log.Error().Err(err).Msg("validate venue form")
			s.ServerError(w, r)
			return
		}
		s.render(w, r, http.StatusUnprocessableEntity, "edit_venue", pageData{
			Title:  "Edit Venue",
			Form:   form,
			Data:   &models.VenueDetail{Venue: models.Venue{ID: id}},
			Errors: verr.Fields,
			Flash:  &Flash{Kind: "error", Message: fmt.Sprintf("An error occurred. Venue %q could not be updated.", form.Name)},
		})
		return
	}

	venue, err := s.venues.Update(r.Context(), id, form.Venue())
	if errors.Is(err, store.ErrVenueNotFound) {
		setFlash(w, "error", fmt.Sprintf("An error occurred. Venue %q could not be updated.", form.Name))
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}
	if err != nil {
		log.Error().Err(err).Int64("venue_id", id).Msg("update venue")
		setFlash(w, "error", fmt.Sprintf("An error occurred. Venue %q could not be updated.", form.Name))
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	setFlash(w, "success", fmt.Sprintf("Venue %q was successfully updated!", venue.Name))
	http.Redirect(w, r, fmt.Sprintf("/venues/%d", id), http.StatusSeeOther)
}

func (s *Server) handleDeleteVenue(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		s.NotFound(w, r)
		return
	}

	name, err := s.venues.Delete(r.Context(), id)
	if errors.Is(err, store.ErrVenueNotFound) {
		setFlash(w, "error", "An error occurred. Venue could not be removed.")
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}
	if err != nil {
		log.Error().Err(err).Int64("venue_id", id).Msg("delete venue")
		setFlash(w, "error", "An error occurred. Venue could not be removed.")
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	setFlash(w, "success", fmt.Sprintf("Venue %q was successfully removed!", name))
	http.Redirect(w, r, "/", http.StatusSeeOther)
}
