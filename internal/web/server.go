package web

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"showbill/internal/models"
)

// VenueService captures the venue operations needed by the page handlers.
type VenueService interface {
	Create(ctx context.Context, venue *models.Venue) (*models.Venue, error)
	ListByArea(ctx context.Context) ([]models.VenueArea, error)
	SearchByName(ctx context.Context, fragment string) (*models.SearchResults, error)
	Get(ctx context.Context, id int64, now time.Time) (*models.VenueDetail, error)
	Update(ctx context.Context, id int64, venue *models.Venue) (*models.Venue, error)
	Delete(ctx context.Context, id int64) (string, error)
}

// ArtistService captures the artist operations needed by the page handlers.
type ArtistService interface {
	Create(ctx context.Context, artist *models.Artist) (*models.Artist, error)
	List(ctx context.Context) ([]models.Ref, error)
	SearchByName(ctx context.Context, fragment string) (*models.SearchResults, error)
	Get(ctx context.Context, id int64, now time.Time) (*models.ArtistDetail, error)
	Update(ctx context.Context, id int64, artist *models.Artist) (*models.Artist, error)
	Delete(ctx context.Context, id int64) (string, error)
}

// ShowService captures the show operations needed by the page handlers.
type ShowService interface {
	Create(ctx context.Context, show *models.Show) (*models.Show, error)
	List(ctx context.Context) ([]models.ShowListing, error)
	Delete(ctx context.Context, id int64) error
}

// Server wires the page handlers to the underlying services.
type Server struct {
	venues  VenueService
	artists ArtistService
	shows   ShowService

	// now supplies the evaluation instant for past/upcoming partitions,
	// one read per detail request.
	now func() time.Time
}

// New configures a Server with the given services.
func New(venues VenueService, artists ArtistService, shows ShowService) *Server {
	return &Server{
		venues:  venues,
		artists: artists,
		shows:   shows,
		now:     time.Now,
	}
}

// Routes exposes the server-rendered directory pages.
func (s *Server) Routes() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /{$}", s.handleHome)

	// Venue pages
	mux.HandleFunc("GET /venues", s.handleListVenues)
	mux.HandleFunc("POST /venues/search", s.handleSearchVenues)
	mux.HandleFunc("GET /venues/create", s.handleNewVenueForm)
	mux.HandleFunc("POST /venues/create", s.handleCreateVenue)
	mux.HandleFunc("GET /venues/{id}", s.handleShowVenue)
	mux.HandleFunc("GET /venues/{id}/edit", s.handleEditVenueForm)
	mux.HandleFunc("POST /venues/{id}/edit", s.handleEditVenue)
	mux.HandleFunc("POST /venues/{id}/delete", s.handleDeleteVenue)

	// Artist pages
	mux.HandleFunc("GET /artists", s.handleListArtists)
	mux.HandleFunc("POST /artists/search", s.handleSearchArtists)
	mux.HandleFunc("GET /artists/create", s.handleNewArtistForm)
	mux.HandleFunc("POST /artists/create", s.handleCreateArtist)
	mux.HandleFunc("GET /artists/{id}", s.handleShowArtist)
	mux.HandleFunc("GET /artists/{id}/edit", s.handleEditArtistForm)
	mux.HandleFunc("POST /artists/{id}/edit", s.handleEditArtist)
	mux.HandleFunc("POST /artists/{id}/delete", s.handleDeleteArtist)

	// Show pages
	mux.HandleFunc("GET /shows", s.handleListShows)
	mux.HandleFunc("GET /shows/create", s.handleNewShowForm)
	mux.HandleFunc("POST /shows/create", s.handleCreateShow)
	mux.HandleFunc("POST /shows/{id}/delete", s.handleDeleteShow)

	// Anything unrouted gets the styled 404 page.
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, pattern := mux.Handler(r); pattern == "" {
			s.NotFound(w, r)
			return
		}
		mux.ServeHTTP(w, r)
	})
}

func (s *Server) handleHome(w http.ResponseWriter, r *http.Request) {
	s.render(w, r, http.StatusOK, "home", pageData{Title: "Showbill"})
}

func pathID(r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}
