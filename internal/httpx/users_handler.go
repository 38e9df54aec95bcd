package httpx

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/ariefcatur/go-user-orders/internal/apperr"
	"github.com/ariefcatur/go-user-orders/internal/users"
)

type UsersHandler struct {
	Service *users.Service
	Log     *zap.Logger
}

func (h *UsersHandler) Register(r chi.Router) {
	r.Post("/users", h.createUser)
	r.Get("/users", h.listUsers)
	r.Get("/users/search", h.searchUsers)
	r.Get("/users/{id}", h.getUser)
	r.Put("/users/{id}", h.updateUser)
	r.Delete("/users/{id}", h.deleteUser)
	r.Get("/users/{id}/exists", h.userExists)
}

// decodeUser returns a nil request for a JSON null body; the service
// rejects that itself.
func (h *UsersHandler) decodeUser(w http.ResponseWriter, r *http.Request) (*users.Request, error) {
	var req *users.Request
	if err := decodeJSON(w, r, &req); err != nil {
		return nil, err
	}
	if req != nil {
		if err := validateStruct(req); err != nil {
			return nil, err
		}
	}
	return req, nil
}

func (h *UsersHandler) createUser(w http.ResponseWriter, r *http.Request) {
	req, err := h.decodeUser(w, r)
	if err != nil {
		writeError(w, r, h.Log, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), opTimeout)
	defer cancel()

	u, err := h.Service.Create(ctx, req)
	if err != nil {
		writeError(w, r, h.Log, err)
		return
	}
	writeJSON(w, http.StatusCreated, u)
}

func (h *UsersHandler) listUsers(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), opTimeout)
	defer cancel()

	list, err := h.Service.List(ctx)
	if err != nil {
		writeError(w, r, h.Log, err)
		return
	}
	writeJSON(w, http.StatusOK, list)
}

func (h *UsersHandler) searchUsers(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), opTimeout)
	defer cancel()

	var (
		u   users.Response
		err error
	)
	q := r.URL.Query()
	switch {
	case q.Get("username") != "":
		u, err = h.Service.FindByUsername(ctx, q.Get("username"))
	case q.Get("email") != "":
		u, err = h.Service.FindByEmail(ctx, q.Get("email"))
	default:
		err = apperr.Validation("username or email query parameter is required")
	}
	if err != nil {
		writeError(w, r, h.Log, err)
		return
	}
	writeJSON(w, http.StatusOK, u)
}

func (h *UsersHandler) getUser(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "id")
	if err != nil {
		writeError(w, r, h.Log, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), opTimeout)
	defer cancel()

	u, err := h.Service.Get(ctx, id)
	if err != nil {
		writeError(w, r, h.Log, err)
		return
	}
	writeJSON(w, http.StatusOK, u)
}

func (h *UsersHandler) updateUser(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "id")
	if err != nil {
		writeError(w, r, h.Log, err)
		return
	}
	req, err := h.decodeUser(w, r)
	if err != nil {
		writeError(w, r, h.Log, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), opTimeout)
	defer cancel()

	u, err := h.Service.Update(ctx, id, req)
	if err != nil {
		writeError(w, r, h.Log, err)
		return
	}
	writeJSON(w, http.StatusOK, u)
}

func (h *UsersHandler) deleteUser(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "id")
	if err != nil {
		writeError(w, r, h.Log, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), opTimeout)
	defer cancel()

	if err := h.Service.Delete(ctx, id); err != nil {
		writeError(w, r, h.Log, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// userExists answers the order service's existence check: 200 or 404,
// both with an empty body.
func (h *UsersHandler) userExists(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "id")
	if err != nil {
		writeError(w, r, h.Log, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), opTimeout)
	defer cancel()

	ok, err := h.Service.Exists(ctx, id)
	if err != nil {
		writeError(w, r, h.Log, err)
		return
	}
	if !ok {
		w.WriteHeader(http.StatusNotFound)
		return
	}
	w.WriteHeader(http.StatusOK)
}
