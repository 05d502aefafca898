package httpadapter

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/gofrs/uuid/v5"

	"svw.info/sudokukit/internal/domain"
	"svw.info/sudokukit/internal/game"
)

// HTTPError is the JSON error body of every non-2xx response.
type HTTPError struct {
	Message string `json:"message"`
}

func (e *HTTPError) Error() string { return e.Message }

func newError(msg string) *HTTPError { return &HTTPError{Message: msg} }

func badRequest(w http.ResponseWriter, r *http.Request, msg string) {
	render.Status(r, http.StatusBadRequest)
	render.JSON(w, r, newError(msg))
}

// checkGrid applies boundary validation to a grid decoded from JSON
// before any search touches it.
func checkGrid(g *domain.Grid) error {
	return g.CheckRange()
}

// ---- generate ----

type generateRequest struct {
	Difficulty string `json:"difficulty,omitempty"`
	Seed       int64  `json:"seed,omitempty"`
}

func (s *Server) handleGenerate(w http.ResponseWriter, r *http.Request) {
	var req generateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		badRequest(w, r, "invalid JSON: "+err.Error())
		return
	}
	diff := domain.Medium
	if req.Difficulty != "" {
		parsed, err := domain.ParseDifficulty(req.Difficulty)
		if err != nil {
			badRequest(w, r, err.Error())
			return
		}
		diff = parsed
	}
	seed := req.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	p, st, err := s.uc.Generate(r.Context(), seed, diff)
	if err != nil {
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, newError(err.Error()))
		return
	}
	render.JSON(w, r, render.M{
		"puzzle":     p,
		"durationMs": st.Duration.Milliseconds(),
		"nodes":      st.Nodes,
	})
}

// ---- solve / count ----

type solveRequest struct {
	Board domain.Grid `json:"board"`
}

func (s *Server) handleSolve(w http.ResponseWriter, r *http.Request) {
	var req solveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		badRequest(w, r, "invalid JSON: "+err.Error())
		return
	}
	if err := checkGrid(&req.Board); err != nil {
		badRequest(w, r, err.Error())
		return
	}
	out, st, err := s.uc.Solve(r.Context(), &req.Board)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, domain.ErrUnsolvable) {
			status = http.StatusUnprocessableEntity
		}
		render.Status(r, status)
		render.JSON(w, r, newError(err.Error()))
		return
	}
	render.JSON(w, r, render.M{
		"board":      out,
		"durationMs": st.Duration.Milliseconds(),
		"nodes":      st.Nodes,
	})
}

type countRequest struct {
	Board domain.Grid `json:"board"`
	Limit int         `json:"limit,omitempty"`
}

func (s *Server) handleCount(w http.ResponseWriter, r *http.Request) {
	var req countRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		badRequest(w, r, "invalid JSON: "+err.Error())
		return
	}
	if err := checkGrid(&req.Board); err != nil {
		badRequest(w, r, err.Error())
		return
	}
	limit := req.Limit
	if limit == 0 {
		limit = 2
	}
	if limit < 1 || limit > 16 {
		badRequest(w, r, "limit out of range 1..16")
		return
	}
	n, st, err := s.uc.CountSolutions(r.Context(), &req.Board, limit)
	if err != nil {
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, newError(err.Error()))
		return
	}
	render.JSON(w, r, render.M{
		"count":      n,
		"durationMs": st.Duration.Milliseconds(),
		"nodes":      st.Nodes,
	})
}

// ---- validate ----

func (s *Server) handleValidate(w http.ResponseWriter, r *http.Request) {
	var req solveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		badRequest(w, r, "invalid JSON: "+err.Error())
		return
	}
	if err := checkGrid(&req.Board); err != nil {
		badRequest(w, r, err.Error())
		return
	}
	ok, conflicts, err := s.uc.Validate(r.Context(), &req.Board)
	if err != nil {
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, newError(err.Error()))
		return
	}
	render.JSON(w, r, render.M{"ok": ok, "conflicts": conflicts})
}

// ---- hint ----

type hintRequest struct {
	Board    domain.Grid  `json:"board"`
	Solution *domain.Grid `json:"solution,omitempty"`
}

func (s *Server) handleHint(w http.ResponseWriter, r *http.Request) {
	var req hintRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		badRequest(w, r, "invalid JSON: "+err.Error())
		return
	}
	if err := checkGrid(&req.Board); err != nil {
		badRequest(w, r, err.Error())
		return
	}
	if req.Solution != nil {
		if err := checkGrid(req.Solution); err != nil {
			badRequest(w, r, err.Error())
			return
		}
	}
	h, found, err := s.uc.Hint(r.Context(), &req.Board, req.Solution)
	if err != nil {
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, newError(err.Error()))
		return
	}
	resp := render.M{"found": found}
	if found {
		resp["hint"] = h
	}
	render.JSON(w, r, resp)
}

// ---- puzzles ----

func (s *Server) handleSavePuzzle(w http.ResponseWriter, r *http.Request) {
	var p domain.Puzzle
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		badRequest(w, r, "invalid JSON: "+err.Error())
		return
	}
	if err := checkGrid(&p.Givens); err != nil {
		badRequest(w, r, err.Error())
		return
	}
	if p.ID == "" {
		p.ID = uuid.Must(uuid.NewV4()).String()
	}
	if p.CreatedAt == 0 {
		p.CreatedAt = time.Now().Unix()
	}
	if err := s.uc.SavePuzzle(r.Context(), &p); err != nil {
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, newError(err.Error()))
		return
	}
	render.JSON(w, r, render.M{"id": p.ID})
}

func (s *Server) handleListPuzzles(w http.ResponseWriter, r *http.Request) {
	metas, err := s.uc.ListPuzzles(r.Context())
	if err != nil {
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, newError(err.Error()))
		return
	}
	render.JSON(w, r, render.M{"puzzles": metas})
}

func (s *Server) handleLoadPuzzle(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	p, err := s.uc.LoadPuzzle(r.Context(), id)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, domain.ErrNotFound) {
			status = http.StatusNotFound
		}
		render.Status(r, status)
		render.JSON(w, r, newError(err.Error()))
		return
	}
	render.JSON(w, r, p)
}

// ---- game ----

func (s *Server) handleSaveGame(w http.ResponseWriter, r *http.Request) {
	var st game.State
	if err := json.NewDecoder(r.Body).Decode(&st); err != nil {
		badRequest(w, r, "invalid JSON: "+err.Error())
		return
	}
	if err := s.uc.SaveGame(r.Context(), &st); err != nil {
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, newError(err.Error()))
		return
	}
	render.JSON(w, r, render.M{"ok": true})
}

func (s *Server) handleLoadGame(w http.ResponseWriter, r *http.Request) {
	st, err := s.uc.LoadGame(r.Context())
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, domain.ErrNotFound) {
			status = http.StatusNotFound
		}
		render.Status(r, status)
		render.JSON(w, r, newError(err.Error()))
		return
	}
	render.JSON(w, r, st)
}
