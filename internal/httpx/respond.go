package httpx

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/ariefcatur/go-user-orders/internal/apperr"
)

const (
	maxBodyBytes = 1 << 20
	opTimeout    = 10 * time.Second
)

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

// writeError translates err into its status and body. Server errors are
// logged with their cause, which never reaches the client.
func writeError(w http.ResponseWriter, r *http.Request, log *zap.Logger, err error) {
	status, body := apperr.Translate(err, time.Now())
	fields := []zap.Field{
		zap.String("request_id", middleware.GetReqID(r.Context())),
		zap.String("kind", apperr.KindOf(err).String()),
		zap.Error(err),
	}
	if status >= http.StatusInternalServerError {
		log.Error("request failed", fields...)
	} else {
		log.Warn("request rejected", fields...)
	}
	writeJSON(w, status, body)
}

// decodeJSON reads the body into v. Any syntax or type error becomes the
// same generic validation message.
func decodeJSON(w http.ResponseWriter, r *http.Request, v any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return &apperr.Error{Kind: apperr.KindValidation, Msg: apperr.MsgInvalidInput, Err: err}
	}
	return nil
}

func idParam(r *http.Request, name string) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, name), 10, 64)
	if err != nil {
		return 0, &apperr.Error{Kind: apperr.KindValidation, Msg: apperr.MsgInvalidParam, Err: err}
	}
	return id, nil
}
