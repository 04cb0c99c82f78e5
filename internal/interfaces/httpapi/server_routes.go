package httpapi

import "net/http"

func registerSystemRoutes(mux *http.ServeMux, handler *Handler, swaggerEnabled bool) {
	mux.HandleFunc("GET /healthz", handler.Healthz)
	if !swaggerEnabled {
		return
	}

	mux.HandleFunc("GET /openapi.yaml", handler.OpenAPI)
	mux.HandleFunc("GET /docs", handler.SwaggerUI)
	mux.HandleFunc("GET /docs/", handler.SwaggerUI)
}

func registerPublicRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /v1/home", handler.GetHome)
	mux.HandleFunc("GET /v1/matches", handler.ListMatches)
	mux.HandleFunc("GET /v1/matches/{matchID}", handler.GetMatch)
	mux.HandleFunc("GET /v1/categories", handler.ListCategories)
	mux.HandleFunc("GET /v1/categories/{genre}/{ageCategoryID}/matches", handler.ListCategoryMatches)
	mux.HandleFunc("GET /v1/history", handler.GetHistory)
	mux.HandleFunc("GET /v1/seasons", handler.ListSeasons)
	mux.HandleFunc("GET /v1/competitions", handler.ListCompetitions)
	mux.HandleFunc("POST /v1/contact", handler.SubmitContact)
}

func registerAuthRoutes(mux *http.ServeMux, handler *Handler, limiter *IPRateLimiter) {
	mux.Handle("POST /v1/auth/signup", RateLimit(limiter, http.HandlerFunc(handler.Signup)))
	mux.Handle("POST /v1/auth/login", RateLimit(limiter, http.HandlerFunc(handler.Login)))
	mux.HandleFunc("POST /v1/auth/logout", handler.Logout)
}

func registerMemberRoutes(mux *http.ServeMux, handler *Handler, verifier TokenVerifier) {
	mux.Handle("GET /v1/dashboard", RequireAuth(verifier, http.HandlerFunc(handler.GetDashboard)))
}

func registerAdminRoutes(mux *http.ServeMux, handler *Handler, verifier TokenVerifier) {
	admin := func(pattern string, fn http.HandlerFunc) {
		mux.Handle(pattern, RequireAdmin(verifier, fn))
	}

	admin("GET /v1/admin/genres", handler.AdminListGenres)
	admin("POST /v1/admin/genres", handler.AdminCreateGenre)
	admin("GET /v1/admin/genres/{id}", handler.AdminGetGenre)
	admin("DELETE /v1/admin/genres/{id}", handler.AdminDeleteGenre)

	admin("GET /v1/admin/age-categories", handler.AdminListAgeCategories)
	admin("POST /v1/admin/age-categories", handler.AdminCreateAgeCategory)
	admin("GET /v1/admin/age-categories/{id}", handler.AdminGetAgeCategory)
	admin("PUT /v1/admin/age-categories/{id}", handler.AdminUpdateAgeCategory)
	admin("DELETE /v1/admin/age-categories/{id}", handler.AdminDeleteAgeCategory)

	admin("GET /v1/admin/seasons", handler.AdminListSeasons)
	admin("POST /v1/admin/seasons", handler.AdminCreateSeason)
	admin("GET /v1/admin/seasons/{id}", handler.AdminGetSeason)
	admin("PUT /v1/admin/seasons/{id}", handler.AdminUpdateSeason)
	admin("DELETE /v1/admin/seasons/{id}", handler.AdminDeleteSeason)

	admin("GET /v1/admin/competitions", handler.ListCompetitions)
	admin("POST /v1/admin/competitions", handler.AdminCreateCompetition)
	admin("GET /v1/admin/competitions/{id}", handler.AdminGetCompetition)
	admin("PUT /v1/admin/competitions/{id}", handler.AdminUpdateCompetition)
	admin("DELETE /v1/admin/competitions/{id}", handler.AdminDeleteCompetition)

	admin("GET /v1/admin/teams", handler.AdminListTeams)
	admin("POST /v1/admin/teams", handler.AdminCreateTeam)
	admin("GET /v1/admin/teams/{id}", handler.AdminGetTeam)
	admin("PUT /v1/admin/teams/{id}", handler.AdminUpdateTeam)
	admin("DELETE /v1/admin/teams/{id}", handler.AdminDeleteTeam)

	admin("GET /v1/admin/players", handler.AdminListPlayers)
	admin("POST /v1/admin/players", handler.AdminCreatePlayer)
	admin("POST /v1/admin/players/recategorize", handler.AdminRecategorizePlayers)
	admin("GET /v1/admin/players/{id}", handler.AdminGetPlayer)
	admin("PUT /v1/admin/players/{id}", handler.AdminUpdatePlayer)
	admin("DELETE /v1/admin/players/{id}", handler.AdminDeletePlayer)

	admin("GET /v1/admin/matches", handler.AdminListMatches)
	admin("POST /v1/admin/matches", handler.AdminCreateMatch)
	admin("GET /v1/admin/matches/{id}", handler.AdminGetMatch)
	admin("PUT /v1/admin/matches/{id}", handler.AdminUpdateMatch)
	admin("DELETE /v1/admin/matches/{id}", handler.AdminDeleteMatch)

	admin("GET /v1/admin/honors", handler.AdminListHonors)
	admin("POST /v1/admin/honors", handler.AdminCreateHonors)
	admin("GET /v1/admin/honors/{id}", handler.AdminGetHonors)
	admin("PUT /v1/admin/honors/{id}", handler.AdminUpdateHonors)
	admin("DELETE /v1/admin/honors/{id}", handler.AdminDeleteHonors)
}
