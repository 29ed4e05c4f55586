package main

import (
	"net/http"

	"showbill/internal/app/artists"
	"showbill/internal/app/shows"
	"showbill/internal/app/venues"
	"showbill/internal/middleware"
	"showbill/internal/store"
	"showbill/internal/web"
)

func newHTTPHandler(dataStore *store.Store) http.Handler {
	venueSvc := venues.New(dataStore)
	artistSvc := artists.New(dataStore)
	showSvc := shows.New(dataStore)

	srv := web.New(venueSvc, artistSvc, showSvc)

	handler := srv.Routes()
	handler = middleware.Recovery(srv.ServerError)(handler)
	handler = middleware.RequestLogging()(handler)
	return handler
}
