package router // package router defines how HTTP routes are registered for the API

import (
	"github.com/labstack/echo/v4" // import the Echo web framework to handle routing

	"github.com/marlenko/graveyard-management/internal/handler"    // import the handlers that implement business logic
	"github.com/marlenko/graveyard-management/internal/middleware" // import middleware for JWT authentication and role enforcement
)

// RegisterRoutes registers routes that do not require authentication on the
// provided Echo instance.  Currently it exposes only a health check.
func RegisterRoutes(e *echo.Echo) {
	// Map the GET request at path "/healthz" to the Health handler.  This
	// endpoint can be used by load balancers or monitoring systems to verify
	// that the service is up and running.
	e.GET("/healthz", handler.Health)
}

// RegisterAuth registers all authentication-related routes and applies the
// necessary middleware.  Unauthenticated operations live under /v1/auth,
// while protected endpoints live under /v1.
func RegisterAuth(e *echo.Echo, a *handler.AuthHandler, jwtSecret string) {
	// Create a route group under the /v1/auth prefix for operations that do
	// not require an existing session (register, login, refresh).  Each of
	// these handlers is responsible for generating or exchanging tokens.
	g := e.Group("/v1/auth")
	g.POST("/register", a.Register)
	g.POST("/login", a.Login)
	// Refresh rotates the refresh token and issues a new token pair.
	g.POST("/refresh", a.Refresh)
	// Logout accepts the refresh token in the request body and revokes it,
	// so it does not require a JWT.
	g.POST("/logout", a.Logout)

	// Routes that require a valid access token.  All handlers registered on
	// this group execute the JWTAuth middleware before being invoked.
	auth := e.Group("/v1")
	auth.Use(middleware.JWTAuth(jwtSecret))
	auth.Use(middleware.RequireRole("ADMIN", "STAFF"))
	// Return the authenticated user's information.
	auth.GET("/me", a.Me)
}

// RegisterMaps registers the map browse and scene endpoints.  These are
// read-only and open to guests; cached is an optional response-cache
// middleware applied to the browse routes (pass nil to disable).
func RegisterMaps(e *echo.Echo, m *handler.MapHandler, cached echo.MiddlewareFunc) {
	mw := []echo.MiddlewareFunc{}
	if cached != nil {
		mw = append(mw, cached)
	}

	// Graveyard tier: list all overview maps and project them into one
	// renderable scene at the requested zoom and pan.
	e.GET("/v1/graveyard-maps", m.ListGraveyardMaps, mw...)
	e.GET("/v1/graveyard-maps/scene", m.GraveyardScene)

	// Plot tier: maps and the projected scene are per graveyard map.
	e.GET("/v1/graveyard-maps/:id/plot-maps", m.ListPlotMaps, mw...)
	e.GET("/v1/graveyard-maps/:id/plot-maps/scene", m.PlotScene)

	// Grave tier: maps and the projected grid are per plot map.
	e.GET("/v1/plot-maps/:id/grave-maps", m.ListGraveMaps, mw...)
	e.GET("/v1/plot-maps/:id/grave-maps/scene", m.GraveScene)

	// Burial records are a read-only registry view.
	e.GET("/v1/burial-records", m.ListBurialRecords, mw...)
}

// RegisterMapAdmin registers the map management endpoints.  Creating,
// updating and deleting map configurations requires an authenticated
// ADMIN or STAFF session.
func RegisterMapAdmin(e *echo.Echo, m *handler.MapHandler, jwtSecret string) {
	g := e.Group("/v1")
	g.Use(middleware.JWTAuth(jwtSecret))
	g.Use(middleware.RequireRole("ADMIN", "STAFF"))

	g.POST("/graveyard-maps", m.CreateGraveyardMap)
	g.PATCH("/graveyard-maps/:id", m.UpdateGraveyardMap)
	// Deleting a graveyard map also removes its plot maps and their
	// grave maps.
	g.DELETE("/graveyard-maps/:id", m.DeleteGraveyardMap)

	g.POST("/plot-maps", m.CreatePlotMap)
	g.PATCH("/plot-maps/:id", m.UpdatePlotMap)
	g.DELETE("/plot-maps/:id", m.DeletePlotMap)

	g.POST("/grave-maps", m.CreateGraveMap)
	g.PATCH("/grave-maps/:id", m.UpdateGraveMap)
	g.DELETE("/grave-maps/:id", m.DeleteGraveMap)
}

// RegisterFinance registers the payment ledger endpoints.  The ledger is
// staff-facing, so every route requires an authenticated ADMIN or STAFF
// session.
func RegisterFinance(e *echo.Echo, f *handler.FinanceHandler, jwtSecret string) {
	g := e.Group("/v1")
	g.Use(middleware.JWTAuth(jwtSecret))
	g.Use(middleware.RequireRole("ADMIN", "STAFF"))

	g.GET("/payments", f.ListPayments)
	g.POST("/payments", f.CreatePayment)
	g.GET("/payments/:id", f.GetPayment)
	g.PATCH("/payments/:id", f.UpdatePayment)
	g.DELETE("/payments/:id", f.DeletePayment)
	// The receipt endpoint returns a printable HTML document rather
	// than JSON.
	g.GET("/payments/:id/receipt", f.GetReceipt)

	g.GET("/finance/summary", f.Summary)
	g.GET("/finance/overdue", f.ListOverdue)
}
