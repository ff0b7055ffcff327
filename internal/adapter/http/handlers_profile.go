package adapthttp

import (
	"net/http"

	"abbed/internal/app"
)

func (s *Server) handleGetProfile(w http.ResponseWriter, r *http.Request) {
	p, err := s.profile.GetProfile(r.Context(), userFromContext(r).ID)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"profile": p})
}

func (s *Server) handleUpdateProfile(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Name        string   `json:"name"`
		HeightCm    *float64 `json:"heightCm"`
		StartWeight *float64 `json:"startWeight"`
		GoalWeight  *float64 `json:"goalWeight"`
	}
	if err := parseJSON(r, &body); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	p, err := s.profile.UpdateProfile(r.Context(), userFromContext(r).ID, app.ProfileInput{
		Name:        body.Name,
		HeightCm:    body.HeightCm,
		StartWeight: body.StartWeight,
		GoalWeight:  body.GoalWeight,
	})
	if err != nil {
		s.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"profile": p})
}
