package adapthttp

import (
	"net/http"

	"abbed/internal/app"
)

const defaultListLimit = 30

type weightBody struct {
	Weight float64 `json:"weight"`
	Unit   string  `json:"unit"`
	Date   string  `json:"date"`
}

func (b weightBody) input() (app.WeightInput, error) {
	date, err := parseDate(b.Date)
	if err != nil {
		return app.WeightInput{}, err
	}
	return app.WeightInput{Value: b.Weight, Unit: b.Unit, Date: date}, nil
}

func decodeWeight(r *http.Request) (app.WeightInput, error) {
	var body weightBody
	if err := parseJSON(r, &body); err != nil {
		return app.WeightInput{}, err
	}
	return body.input()
}

func (s *Server) handleListWeights(w http.ResponseWriter, r *http.Request) {
	user := userFromContext(r)
	limit := intQuery(r, "limit", defaultListLimit)
	items, err := s.weight.ListRecent(r.Context(), user.ID, limit)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"items": items})
}

func (s *Server) handleCreateWeight(w http.ResponseWriter, r *http.Request) {
	in, err := decodeWeight(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	entry, err := s.weight.RecordWeight(r.Context(), userFromContext(r).ID, in)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	if s.metrics != nil {
		s.metrics.CounterWeightEntries.Inc()
	}
	writeJSON(w, http.StatusCreated, map[string]any{"entry": entry})
}

func (s *Server) handleUpdateWeight(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	in, err := decodeWeight(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	entry, err := s.weight.UpdateWeight(r.Context(), userFromContext(r).ID, id, in)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"entry": entry})
}

func (s *Server) handleDeleteWeight(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	if err := s.weight.DeleteWeight(r.Context(), userFromContext(r).ID, id); err != nil {
		s.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"ok": true})
}

func (s *Server) handleUndoLastWeight(w http.ResponseWriter, r *http.Request) {
	deleted, entry, err := s.weight.UndoLast(r.Context(), userFromContext(r).ID)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"ok": true, "deleted": deleted, "entry": entry})
}
