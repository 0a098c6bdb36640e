package api

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/Flapjacck/pbat/internal/engine"
	"github.com/Flapjacck/pbat/internal/games"
	"github.com/Flapjacck/pbat/internal/store"
)

// GamesResponse lists the registered games.
type GamesResponse struct {
	Games         []games.GameSpec `json:"games"`
	EngineVersion string           `json:"engine_version"`
}

// VerifyRequest asks for a round outcome to be recomputed from seeds.
type VerifyRequest struct {
	Game       string         `json:"game"`
	ServerSeed string         `json:"server_seed"`
	ClientSeed string         `json:"client_seed"`
	Nonce      uint64         `json:"nonce"`
	Params     map[string]any `json:"params,omitempty"`
}

// VerifyResponse carries the replayed outcome.
type VerifyResponse struct {
	Game          string        `json:"game"`
	Nonce         uint64        `json:"nonce"`
	Outcome       games.Outcome `json:"outcome"`
	EngineVersion string        `json:"engine_version"`
}

func (s *Server) handleListGames(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, GamesResponse{
		Games:         games.List(),
		EngineVersion: games.Version,
	})
}

func (s *Server) handleListSessions(w http.ResponseWriter, r *http.Request) {
	query := store.SessionsQuery{
		Game:    r.URL.Query().Get("game"),
		Page:    queryInt(r, "page", 1),
		PerPage: queryInt(r, "perPage", 25),
	}

	list, err := s.db.ListSessions(query)
	if err != nil {
		s.writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	s.writeJSON(w, http.StatusOK, list)
}

func (s *Server) handleGetSession(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	session, err := s.db.GetSession(id)
	if err != nil {
		s.writeError(w, http.StatusNotFound, err.Error())
		return
	}
	s.writeJSON(w, http.StatusOK, session)
}

func (s *Server) handleSessionRounds(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	page, err := s.db.GetSessionRounds(id, queryInt(r, "page", 1), queryInt(r, "perPage", 100))
	if err != nil {
		s.writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	s.writeJSON(w, http.StatusOK, page)
}

func (s *Server) handleVerify(w http.ResponseWriter, r *http.Request) {
	var req VerifyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if req.ServerSeed == "" || req.ClientSeed == "" {
		s.writeError(w, http.StatusBadRequest, "server_seed and client_seed are required")
		return
	}

	game, ok := games.Get(req.Game)
	if !ok {
		s.writeError(w, http.StatusBadRequest, "unknown game: "+req.Game)
		return
	}

	seeds := engine.Seeds{Server: req.ServerSeed, Client: req.ClientSeed}
	outcome, err := game.Replay(seeds, req.Nonce, req.Params)
	if err != nil {
		s.writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	s.writeJSON(w, http.StatusOK, VerifyResponse{
		Game:          req.Game,
		Nonce:         req.Nonce,
		Outcome:       outcome,
		EngineVersion: games.Version,
	})
}

func queryInt(r *http.Request, key string, def int) int {
	v := r.URL.Query().Get(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}
