package server

import (
	"encoding/json"
	"net/http"

	openapi "github.com/swaggest/openapi-go"
	"github.com/swaggest/openapi-go/openapi3"
)

// ErrorResponse is returned for all error responses.
type ErrorResponse struct {
	Error string `json:"error"`
}

func newOpenAPISpec() *openapi3.Spec {
	r := openapi3.NewReflector()
	r.Spec.Info.Title = "PaintingGuessr API"
	r.Spec.Info.Version = "0.1.0"
	r.Spec.Info.WithDescription("Backend API for the PaintingGuessr game.")

	// GET /healthz
	getHealthz, _ := r.NewOperationContext(http.MethodGet, "/healthz")
	getHealthz.SetSummary("Health check")
	getHealthz.SetDescription("Returns the health status of backend dependencies.")
	getHealthz.AddRespStructure(HealthResponse{}, openapi.WithHTTPStatus(http.StatusOK))
	getHealthz.AddRespStructure(HealthResponse{}, openapi.WithHTTPStatus(http.StatusServiceUnavailable))
	_ = r.AddOperation(getHealthz)

	// GET /api/daily
	getDaily, _ := r.NewOperationContext(http.MethodGet, "/api/daily")
	getDaily.SetSummary("Today's painting set")
	getDaily.SetDescription("Returns the date-seeded painting set shared by all players today.")
	getDaily.AddRespStructure(DailyResponse{}, openapi.WithHTTPStatus(http.StatusOK))
	_ = r.AddOperation(getDaily)

	// GET /api/daily/clock
	getClock, _ := r.NewOperationContext(http.MethodGet, "/api/daily/clock")
	getClock.SetSummary("Time until next daily")
	getClock.SetDescription("Returns the countdown until the next daily reset at midnight in the fixed UTC-5 reference zone.")
	getClock.AddRespStructure(DailyClockResponse{}, openapi.WithHTTPStatus(http.StatusOK))
	_ = r.AddOperation(getClock)

	// GET /api/daily/session
	getSession, _ := r.NewOperationContext(http.MethodGet, "/api/daily/session")
	getSession.SetSummary("Load daily progress")
	getSession.SetDescription("Returns the stored daily session snapshot for the given player key.")
	getSession.AddRespStructure(SessionResponse{}, openapi.WithHTTPStatus(http.StatusOK))
	getSession.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusBadRequest))
	getSession.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusNotFound))
	_ = r.AddOperation(getSession)

	// PUT /api/daily/session
	putSession, _ := r.NewOperationContext(http.MethodPut, "/api/daily/session")
	putSession.SetSummary("Save daily progress")
	putSession.SetDescription("Upserts the daily session snapshot for the given player key under today's date.")
	putSession.AddRespStructure(SessionResponse{}, openapi.WithHTTPStatus(http.StatusOK))
	putSession.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusBadRequest))
	_ = r.AddOperation(putSession)

	// GET /api/paintings
	getPaintings, _ := r.NewOperationContext(http.MethodGet, "/api/paintings")
	getPaintings.SetSummary("Random painting set")
	getPaintings.SetDescription("Returns a random painting set for standard games. Supports count and source=fallback query parameters.")
	getPaintings.AddRespStructure(PaintingsResponse{}, openapi.WithHTTPStatus(http.StatusOK))
	getPaintings.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusBadRequest))
	_ = r.AddOperation(getPaintings)

	// POST /api/score
	postScore, _ := r.NewOperationContext(http.MethodPost, "/api/score")
	postScore.SetSummary("Score a guess")
	postScore.SetDescription("Computes distance, year difference, and score components for a single guess.")
	postScore.AddReqStructure(ScoreRequest{})
	postScore.AddRespStructure(ScoreResponse{}, openapi.WithHTTPStatus(http.StatusOK))
	postScore.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusBadRequest))
	_ = r.AddOperation(postScore)

	return r.Spec
}

func handleOpenAPI() http.HandlerFunc {
	spec := newOpenAPISpec()
	data, _ := json.MarshalIndent(spec, "", "  ")

	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(data)
	}
}
