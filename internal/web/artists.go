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

func (s *Server) handleListArtists(w http.ResponseWriter, r *http.Request) {
	artists, err := s.artists.List(r.Context())
	if err != nil {
		log.Error().Err(err).Msg("list artists")
		s.ServerError(w, r)
		return
	}
	s.render(w, r, http.StatusOK, "artists", pageData{Title: "Artists", Data: artists})
}

func (s *Server) handleSearchArtists(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad form submission", http.StatusBadRequest)
		return
	}
	term := r.PostFormValue("search_term")

	results, err := s.artists.SearchByName(r.Context(), term)
	if err != nil {
		log.Error().Err(err).Str("term", term).Msg("search artists")
		s.ServerError(w, r)
		return
	}
	s.render(w, r, http.StatusOK, "search_artists", pageData{
		Title: "Find an Artist",
		Data:  searchPage{Results: results, SearchTerm: term},
	})
}

func (s *Server) handleShowArtist(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		s.NotFound(w, r)
		return
	}

	detail, err := s.artists.Get(r.Context(), id, s.now())
	if errors.Is(err, store.ErrArtistNotFound) {
		setFlash(w, "error", "An error occurred. Artist could not be listed.")
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}
	if err != nil {
		log.Error().Err(err).Int64("artist_id", id).Msg("get artist")
		s.ServerError(w, r)
		return
	}
	s.render(w, r, http.StatusOK, "show_artist", pageData{Title: detail.Name, Data: detail})
}

func (s *Server) handleNewArtistForm(w http.ResponseWriter, r *http.Request) {
	s.render(w, r, http.StatusOK, "new_artist", pageData{Title: "List an Artist", Form: forms.ArtistForm{}})
}

func (s *Server) handleCreateArtist(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad form submission", http.StatusBadRequest)
		return
	}

	form := forms.ParseArtistForm(r.PostForm)
	if err := form.Validate(); err != nil {
		var verr *forms.ValidationError
		if !errors.As(err, &verr) {
			log.Error().Err(err).Msg("validate artist form")
			s.ServerError(w, r)
			return
		}
		s.render(w, r, http.StatusUnprocessableEntity, "new_artist", pageData{
			Title:  "List an Artist",
			Form:   form,
			Errors: verr.Fields,
			Flash:  &Flash{Kind: "error", Message: fmt.Sprintf("An error occurred. Artist %q could not be listed.", form.Name)},
		})
		return
	}

	artist, err := s.artists.Create(r.Context(), form.Artist())
	if err != nil {
		log.Error().Err(err).Msg("create artist")
		setFlash(w, "error", fmt.Sprintf("An error occurred. Artist %q could not be listed.", form.Name))
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	setFlash(w, "success", fmt.Sprintf("Artist %q was successfully listed!", artist.Name))
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (s *Server) handleEditArtistForm(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		s.NotFound(w, r)
		return
	}

	detail, err := s.artists.Get(r.Context(), id, s.now())
	if errors.Is(err, store.ErrArtistNotFound) {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}
	if err != nil {
		log.Error().Err(err).Int64("artist_id", id).Msg("get artist for edit")
		s.ServerError(w, r)
		return
	}

	form := forms.ArtistForm{
		Name:               detail.Name,
		City:               detail.City,
		State:              detail.State,
		Phone:              detail.Phone,
		Genres:             detail.Genres,
		ImageLink:          detail.ImageLink,
		FacebookLink:       detail.FacebookLink,
		WebsiteLink:        detail.Website,
		SeekingVenue:       detail.SeekingVenue,
		SeekingDescription: detail.SeekingDescription,
	}
	s.render(w, r, http.StatusOK, "edit_artist", pageData{
		Title: "Edit " + detail.Name,
		Form:  form,
		Data:  detail,
	})
}

func (s *Server) handleEditArtist(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		s.NotFound(w, r)
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad form submission", http.StatusBadRequest)
		return
	}

	form := forms.ParseArtistForm(r.PostForm)
	if err := form.Validate(); err != nil {
		var verr *forms.ValidationError
		if !errors.As(err, &verr) {
			log.Error().Err(err).Msg("validate artist form")
			s.ServerError(w, r)
			return
		}
		s.render(w, r, http.StatusUnprocessableEntity, "edit_artist", pageData{
			Title:  "Edit Artist",
			Form:   form,
			Data:   &models.ArtistDetail{Artist: models.Artist{ID: id}},
			Errors: verr.Fields,
			Flash:  &Flash{Kind: "error", Message: fmt.Sprintf("An error occurred. Artist %q could not be updated.", form.Name)},
		})
		return
	}

	artist, err := s.artists.Update(r.Context(), id, form.Artist())
	if errors.Is(err, store.ErrArtistNotFound) {
		setFlash(w, "error", fmt.Sprintf("An error occurred. Artist %q could not be updated.", form.Name))
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}
	if err != nil {
		log.Error().Err(err).Int64("artist_id", id).Msg("update artist")
		setFlash(w, "error", fmt.Sprintf("An error occurred. Artist %q could not be updated.", form.Name))
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	setFlash(w, "success", fmt.Sprintf("Artist %q was successfully updated!", artist.Name))
	http.Redirect(w, r, fmt.Sprintf("/artists/%d", id), http.StatusSeeOther)
}

func (s *Server) handleDeleteArtist(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		s.NotFound(w, r)
		return
	}

	name, err := s.artists.Delete(r.Context(), id)
	if errors.Is(err, store.ErrArtistNotFound) {
		setFlash(w, "error", "An error occurred. Artist could not be removed.")
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}
	if err != nil {
		log.Error().Err(err).Int64("artist_id", id).Msg("delete artist")
		setFlash(w, "error", "An error occurred. Artist could not be removed.")
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	setFlash(w, "success", fmt.Sprintf("Artist %q was successfully removed!", name))
	http.Redirect(w, r, "/", http.StatusSeeOther)
}
