package web

import (
	"context"
	"encoding/base64"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"showbill/internal/models"
	"showbill/internal/store"
)

type stubVenueService struct {
	areas    []models.VenueArea
	areasErr error

	searchResults *models.SearchResults
	searchErr     error

	detail    *models.VenueDetail
	detailErr error

	created   *models.Venue
	createErr error

	updated   *models.Venue
	updateErr error

	deletedName string
	deleteErr   error

	lastSearchTerm string
	lastCreated    *models.Venue
	lastDeletedID  int64
}

func (s *stubVenueService) Create(ctx context.Context, venue *models.Venue) (*models.Venue, error) {
	s.lastCreated = venue
	if s.createErr != nil {
		return nil, s.createErr
	}
	if s.created != nil {
		return s.created, nil
	}
	return venue, nil
}

func (s *stubVenueService) ListByArea(ctx context.Context) ([]models.VenueArea, error) {
	return s.areas, s.areasErr
}

func (s *stubVenueService) SearchByName(ctx context.Context, fragment string) (*models.SearchResults, error) {
	s.lastSearchTerm = fragment
	if s.searchErr != nil {
		return nil, s.searchErr
	}
	if s.searchResults != nil {
		return s.searchResults, nil
	}
	return &models.SearchResults{}, nil
}

func (s *stubVenueService) Get(ctx context.Context, id int64, now time.Time) (*models.VenueDetail, error) {
	return s.detail, s.detailErr
}

func (s *stubVenueService) Update(ctx context.Context, id int64, venue *models.Venue) (*models.Venue, error) {
	if s.updateErr != nil {
		return nil, s.updateErr
	}
	if s.updated != nil {
		return s.updated, nil
	}
	return venue, nil
}

func (s *stubVenueService) Delete(ctx context.Context, id int64) (string, error) {
	s.lastDeletedID = id
	return s.deletedName, s.deleteErr
}

type stubArtistService struct {
	refs    []models.Ref
	listErr error

	searchResults *models.SearchResults
	searchErr     error

	detail    *models.ArtistDetail
	detailErr error

	createErr error
	updateErr error

	deletedName string
	deleteErr   error

	lastCreated *models.Artist
}

func (s *stubArtistService) Create(ctx context.Context, artist *models.Artist) (*models.Artist, error) {
	s.lastCreated = artist
	if s.createErr != nil {
		return nil, s.createErr
	}
	return artist, nil
}

func (s *stubArtistService) List(ctx context.Context) ([]models.Ref, error) {
	return s.refs, s.listErr
}

func (s *stubArtistService) SearchByName(ctx context.Context, fragment string) (*models.SearchResults, error) {
	if s.searchErr != nil {
		return nil, s.searchErr
	}
	if s.searchResults != nil {
		return s.searchResults, nil
	}
	return &models.SearchResults{}, nil
}

func (s *stubArtistService) Get(ctx context.Context, id int64, now time.Time) (*models.ArtistDetail, error) {
	return s.detail, s.detailErr
}

func (s *stubArtistService) Update(ctx context.Context, id int64, artist *models.Artist) (*models.Artist, error) {
	if s.updateErr != nil {
		return nil, s.updateErr
	}
	return artist, nil
}

func (s *stubArtistService) Delete(ctx context.Context, id int64) (string, error) {
	return s.deletedName, s.deleteErr
}

type stubShowService struct {
	listings []models.ShowListing
	listErr  error

	createErr error
	deleteErr error

	lastCreated *models.Show
}

func (s *stubShowService) Create(ctx context.Context, show *models.Show) (*models.Show, error) {
	s.lastCreated = show
	if s.createErr != nil {
		return nil, s.createErr
	}
	show.ID = 1
	return show, nil
}

func (s *stubShowService) List(ctx context.Context) ([]models.ShowListing, error) {
	return s.listings, s.listErr
}

func (s *stubShowService) Delete(ctx context.Context, id int64) error {
	return s.deleteErr
}

func newTestHandler(venues VenueService, artists ArtistService, shows ShowService) http.Handler {
	if venues == nil {
		venues = &stubVenueService{}
	}
	if artists == nil {
		artists = &stubArtistService{}
	}
	if shows == nil {
		shows = &stubShowService{}
	}
	return New(venues, artists, shows).Routes()
}

func postForm(handler http.Handler, path string, values url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(values.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func flashFromResponse(t *testing.T, rec *httptest.ResponseRecorder) (kind, message string) {
	t.Helper()
	for _, cookie := range rec.Result().Cookies() {
		if cookie.Name != "showbill_flash" || cookie.Value == "" {
			continue
		}
		decoded, err := base64.RawURLEncoding.DecodeString(cookie.Value)
		if err != nil {
			t.Fatalf("decode flash cookie: %v", err)
		}
		kind, message, _ = strings.Cut(string(decoded), "|")
		return kind, message
	}
	t.Fatal("no flash cookie set")
	return "", ""
}

func TestHomePage(t *testing.T) {
	handler := newTestHandler(nil, nil, nil)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Showbill") {
		t.Fatal("expected home page content")
	}
}

func TestUnknownRouteRenders404(t *testing.T) {
	handler := newTestHandler(nil, nil, nil)

	req := httptest.NewRequest(http.MethodGet, "/no/such/page", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Page not found") {
		t.Fatal("expected styled 404 page")
	}
}

func TestListVenuesGroupsByArea(t *testing.T) {
	venues := &stubVenueService{areas: []models.VenueArea{
		{City: "New York", State: "NY", Venues: []models.Ref{{ID: 2, Name: "The Dueling Pianos Bar"}}},
		{City: "San Francisco", State: "CA", Venues: []models.Ref{{ID: 1, Name: "The Musical Hop"}}},
	}}
	handler := newTestHandler(venues, nil, nil)

	req := httptest.NewRequest(http.MethodGet, "/venues", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	body := rec.Body.String()
	if !strings.Contains(body, "New York, NY") || !strings.Contains(body, "The Musical Hop") {
		t.Fatal("expected grouped venue listing")
	}
}

func TestSearchVenues(t *testing.T) {
	venues := &stubVenueService{searchResults: &models.SearchResults{
		Count:   1,
		Results: []models.Ref{{ID: 1, Name: "The Musical Hop"}},
	}}
	handler := newTestHandler(venues, nil, nil)

	rec := postForm(handler, "/venues/search", url.Values{"search_term": {"hop"}})

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if venues.lastSearchTerm != "hop" {
		t.Fatalf("expected search term %q, got %q", "hop", venues.lastSearchTerm)
	}
	if !strings.Contains(rec.Body.String(), "The Musical Hop") {
		t.Fatal("expected search result in body")
	}
}

func TestShowVenueMissingRedirectsWithFlash(t *testing.T) {
	venues := &stubVenueService{detailErr: store.ErrVenueNotFound}
	handler := newTestHandler(venues, nil, nil)

	req := httptest.NewRequest(http.MethodGet, "/venues/99", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusSeeOther {
		t.Fatalf("expected 303, got %d", rec.Code)
	}
	if loc := rec.Header().Get("Location"); loc != "/" {
		t.Fatalf("expected redirect to /, got %q", loc)
	}
	kind, _ := flashFromResponse(t, rec)
	if kind != "error" {
		t.Fatalf("expected error flash, got %q", kind)
	}
}

func TestShowVenueRendersPartitions(t *testing.T) {
	detail := &models.VenueDetail{
		Venue: models.Venue{ID: 1, Name: "The Musical Hop", City: "San Francisco", State: "CA", Genres: []string{"Jazz"}},
		PastShows: []models.VenueShowEntry{
			{ArtistID: 4, ArtistName: "Guns N Petals", StartTime: time.Date(2019, 5, 21, 21, 30, 0, 0, time.UTC)},
		},
		PastShowsCount:     1,
		UpcomingShowsCount: 0,
	}
	handler := newTestHandler(&stubVenueService{detail: detail}, nil, nil)

	req := httptest.NewRequest(http.MethodGet, "/venues/1", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	body := rec.Body.String()
	if !strings.Contains(body, "Past shows (1)") || !strings.Contains(body, "Upcoming shows (0)") {
		t.Fatal("expected show partition headings with counts")
	}
	if !strings.Contains(body, "Guns N Petals") {
		t.Fatal("expected past show entry")
	}
}

func TestCreateVenueSuccessFlashesName(t *testing.T) {
	venues := &stubVenueService{}
	handler := newTestHandler(venues, nil, nil)

	rec := postForm(handler, "/venues/create", url.Values{
		"name":    {"The Musical Hop"},
		"city":    {"San Francisco"},
		"state":   {"CA"},
		"address": {"1015 Folsom Street"},
		"genres":  {"Jazz"},
	})

	if rec.Code != http.StatusSeeOther {
		t.Fatalf("expected 303, got %d", rec.Code)
	}
	kind, message := flashFromResponse(t, rec)
	if kind != "success" || !strings.Contains(message, `Venue "The Musical Hop" was successfully listed!`) {
		t.Fatalf("unexpected flash: %q %q", kind, message)
	}
	if venues.lastCreated == nil || venues.lastCreated.Name != "The Musical Hop" {
		t.Fatalf("unexpected venue passed to service: %#v", venues.lastCreated)
	}
}

func TestCreateVenueValidationRerenders(t *testing.T) {
	venues := &stubVenueService{}
	handler := newTestHandler(venues, nil, nil)

	rec := postForm(handler, "/venues/create", url.Values{
		"city":   {"San Francisco"},
		"state":  {"CA"},
		"genres": {"Jazz"},
	})

	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "is required") {
		t.Fatal("expected field error in re-rendered form")
	}
	if venues.lastCreated != nil {
		t.Fatal("service should not be called on invalid submission")
	}
}

func TestEditVenueFormPrefills(t *testing.T) {
	detail := &models.VenueDetail{Venue: models.Venue{
		ID: 1, Name: "The Musical Hop", City: "San Francisco", State: "CA",
		Address: "1015 Folsom Street", Genres: []string{"Jazz"},
	}}
	handler := newTestHandler(&stubVenueService{detail: detail}, nil, nil)

	req := httptest.NewRequest(http.MethodGet, "/venues/1/edit", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `value="1015 Folsom Street"`) {
		t.Fatal("expected prefilled address field")
	}
}

func TestDeleteVenueFlashesName(t *testing.T) {
	venues := &stubVenueService{deletedName: "The Musical Hop"}
	handler := newTestHandler(venues, nil, nil)

	rec := postForm(handler, "/venues/3/delete", nil)

	if rec.Code != http.StatusSeeOther {
		t.Fatalf("expected 303, got %d", rec.Code)
	}
	if venues.lastDeletedID != 3 {
		t.Fatalf("expected delete of venue 3, got %d", venues.lastDeletedID)
	}
	kind, message := flashFromResponse(t, rec)
	if kind != "success" || !strings.Contains(message, `Venue "The Musical Hop" was successfully removed!`) {
		t.Fatalf("unexpected flash: %q %q", kind, message)
	}
}

func TestCreateArtistSuccess(t *testing.T) {
	artists := &stubArtistService{}
	handler := newTestHandler(nil, artists, nil)

	rec := postForm(handler, "/artists/create", url.Values{
		"name":   {"Guns N Petals"},
		"city":   {"San Francisco"},
		"state":  {"CA"},
		"genres": {"Rock n Roll"},
	})

	if rec.Code != http.StatusSeeOther {
		t.Fatalf("expected 303, got %d", rec.Code)
	}
	kind, message := flashFromResponse(t, rec)
	if kind != "success" || !strings.Contains(message, `Artist "Guns N Petals" was successfully listed!`) {
		t.Fatalf("unexpected flash: %q %q", kind, message)
	}
}

func TestListArtists(t *testing.T) {
	artists := &stubArtistService{refs: []models.Ref{
		{ID: 4, Name: "Guns N Petals"},
		{ID: 5, Name: "Matt Quevedo"},
	}}
	handler := newTestHandler(nil, artists, nil)

	req := httptest.NewRequest(http.MethodGet, "/artists", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Matt Quevedo") {
		t.Fatal("expected artist listing")
	}
}

func TestCreateShowUnknownArtistRerenders(t *testing.T) {
	shows := &stubShowService{createErr: store.ErrArtistNotFound}
	handler := newTestHandler(nil, nil, shows)

	rec := postForm(handler, "/shows/create", url.Values{
		"artist_id":  {"99"},
		"venue_id":   {"1"},
		"start_time": {"2026-04-01T20:00"},
	})

	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "does not match an existing artist") {
		t.Fatal("expected artist_id field error")
	}
}

func TestCreateShowSuccess(t *testing.T) {
	shows := &stubShowService{}
	handler := newTestHandler(nil, nil, shows)

	rec := postForm(handler, "/shows/create", url.Values{
		"artist_id":  {"1"},
		"venue_id":   {"2"},
		"start_time": {"2026-04-01T20:00"},
	})

	if rec.Code != http.StatusSeeOther {
		t.Fatalf("expected 303, got %d", rec.Code)
	}
	if shows.lastCreated == nil || shows.lastCreated.ArtistID != 1 || shows.lastCreated.VenueID != 2 {
		t.Fatalf("unexpected show passed to service: %#v", shows.lastCreated)
	}
	kind, message := flashFromResponse(t, rec)
	if kind != "success" || message != "Show was successfully listed!" {
		t.Fatalf("unexpected flash: %q %q", kind, message)
	}
}

func TestDeleteShowMissingFlashesError(t *testing.T) {
	shows := &stubShowService{deleteErr: store.ErrShowNotFound}
	handler := newTestHandler(nil, nil, shows)

	rec := postForm(handler, "/shows/42/delete", nil)

	if rec.Code != http.StatusSeeOther {
		t.Fatalf("expected 303, got %d", rec.Code)
	}
	kind, _ := flashFromResponse(t, rec)
	if kind != "error" {
		t.Fatalf("expected error flash, got %q", kind)
	}
}
