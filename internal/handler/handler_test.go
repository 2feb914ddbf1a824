package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"

	"autobid-server/internal/middleware"
	"autobid-server/internal/model"
	"autobid-server/internal/service"
)

const testSecret = "handler-test-secret"

// newTestRouter wires the handlers over mocked stores with a real token
// service, mirroring the production route table for the protected paths.
func newTestRouter(t *testing.T, carStore service.CarStore, bidStore service.BidStore) (*chi.Mux, *service.TokenService) {
	t.Helper()

	tokens := service.NewTokenService(testSecret, time.Hour, false)
	authMW := middleware.NewAuthMiddleware(tokens)

	carHandler := NewCarHandler(service.NewCatalogService(carStore, nil))
	bidHandler := NewBidHandler(service.NewBidService(bidStore, nil))
	authHandler := NewAuthHandler(tokens)

	r := chi.NewRouter()
	r.Post("/jwt", authHandler.CreateSession)
	r.Post("/logout", authHandler.Logout)
	r.Get("/all-cars", carHandler.List)
	r.Get("/cars-count", carHandler.Count)
	r.With(authMW.RequireAuth).Get("/car/{id}", carHandler.GetByID)
	r.With(authMW.RequireAuth).Post("/car", carHandler.Create)
	r.With(authMW.RequireAuth).Get("/cars/{email}", carHandler.ListForOwner)
	r.With(authMW.RequireAuth).Put("/car/{id}", carHandler.Update)
	r.With(authMW.RequireAuth).Delete("/car/{id}", carHandler.Delete)
	r.With(authMW.RequireAuth).Post("/bid", bidHandler.Place)
	r.With(authMW.RequireAuth).Get("/my-bids/{email}", bidHandler.MyBids)
	r.With(authMW.RequireAuth).Get("/my-request/{email}", bidHandler.MyRequests)
	r.With(authMW.RequireAuth).Patch("/bid/{id}", bidHandler.UpdateStatus)

	return r, tokens
}

func sessionCookie(t *testing.T, tokens *service.TokenService, email string) *http.Cookie {
	t.Helper()

	token, err := tokens.Issue(email)
	require.NoError(t, err)
	return &http.Cookie{Name: model.SessionCookieName, Value: token}
}

func doRequest(router http.Handler, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}
