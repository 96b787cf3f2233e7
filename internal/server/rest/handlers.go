package rest

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"

	"github.com/cmurillo08gap/skills-integrate-mcp-with-copilot/internal/common"
	"github.com/cmurillo08gap/skills-integrate-mcp-with-copilot/internal/server/models"
)

// activitiesPayload marshals the catalog as a JSON object keyed by
// activity name, in catalog order.
type activitiesPayload []models.Activity

func (p activitiesPayload) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, a := range p {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(a.Name)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		body, err := json.Marshal(a)
		if err != nil {
			return nil, err
		}
		buf.Write(body)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeDetail(w http.ResponseWriter, status int, detail string) {
	writeJSON(w, status, map[string]string{"detail": detail})
}

func (s *Server) getActivities(w http.ResponseWriter, r *http.Request) {
	list, err := s.activities.List(r.Context())
	if err != nil {
		writeDetail(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	writeJSON(w, http.StatusOK, activitiesPayload(list))
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (s *Server) login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeDetail(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	res, err := s.auth.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, common.ErrorInvalidCredentials) {
			writeDetail(w, http.StatusUnauthorized, "Invalid username or password")
			return
		}
		writeDetail(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{
		"token":    res.Token,
		"username": res.Username,
		"role":     "admin",
	})
}

func (s *Server) logout(w http.ResponseWriter, r *http.Request) {
	if err := s.auth.Logout(r.Context(), bearerToken(r)); err != nil {
		writeDetail(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{
		"message": fmt.Sprintf("Logged out %s", usernameFromContext(r.Context())),
	})
}

func (s *Server) getSession(w http.ResponseWriter, r *http.Request) {
	token := bearerToken(r)
	if token == "" {
		writeJSON(w, http.StatusOK, map[string]any{"authenticated": false})
		return
	}

	username, err := s.auth.Authenticate(r.Context(), token)
	if err != nil {
		writeJSON(w, http.StatusOK, map[string]any{"authenticated": false})
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"authenticated": true,
		"username":      username,
		"role":          "admin",
	})
}

// activityName returns the {name} route parameter. chi yields the escaped
// segment when the request path contains percent-encoding, so it is
// unescaped here.
func activityName(r *http.Request) string {
	name := chi.URLParam(r, "name")
	if decoded, err := url.PathUnescape(name); err == nil {
		return decoded
	}
	return name
}

func (s *Server) signup(w http.ResponseWriter, r *http.Request) {
	name := activityName(r)
	email := r.URL.Query().Get("email")
	if email == "" {
		writeDetail(w, http.StatusBadRequest, "Email is required")
		return
	}

	if err := s.activities.Signup(r.Context(), name, email); err != nil {
		s.writeActivityError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{
		"message": fmt.Sprintf("%s signed up %s for %s", usernameFromContext(r.Context()), email, name),
	})
}

func (s *Server) unregister(w http.ResponseWriter, r *http.Request) {
	name := activityName(r)
	email := r.URL.Query().Get("email")
	if email == "" {
		writeDetail(w, http.StatusBadRequest, "Email is required")
		return
	}

	if err := s.activities.Unregister(r.Context(), name, email); err != nil {
		s.writeActivityError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{
		"message": fmt.Sprintf("%s unregistered %s from %s", usernameFromContext(r.Context()), email, name),
	})
}

func (s *Server) writeActivityError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, common.ErrorActivityNotFound):
		writeDetail(w, http.StatusNotFound, "Activity not found")
	case errors.Is(err, common.ErrorAlreadySignedUp):
		writeDetail(w, http.StatusBadRequest, "Student is already signed up")
	case errors.Is(err, common.ErrorActivityFull):
		writeDetail(w, http.StatusBadRequest, "Activity is full")
	case errors.Is(err, common.ErrorNotSignedUp):
		writeDetail(w, http.StatusBadRequest, "Student is not signed up for this activity")
	default:
		writeDetail(w, http.StatusInternalServerError, "Internal server error")
	}
}
