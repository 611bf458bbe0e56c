package transport

import (
	"encoding/json"
	"net/http"

	"github.com/muhammadheryan/pickup-inventory/constant"
	"github.com/muhammadheryan/pickup-inventory/utils/errors"
)

type Response struct {
	Code    string      `json:"code"`
	Message string      `json:"message"`
	Detail  string      `json:"detail,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

func writeSuccess(w http.ResponseWriter, data interface{}) {
	writeJSON(w, http.StatusOK, Response{
		Code:    constant.ErrorTypeCode[constant.Successful],
		Message: constant.ErrorTypeMessage[constant.Successful],
		Data:    data,
	})
}

// writeError maps typed errors to their status and code. Anything untyped is an internal error
// and its text is not exposed.
func writeError(w http.ResponseWriter, err error) {
	var typed errors.Typed
	if !errors.As(err, &typed) {
		typed = errors.SetCustomError(constant.ErrInternal)
	}

	res := Response{
		Code:    typed.ErrorCode(),
		Message: constant.ErrorTypeMessage[typed.Type()],
	}
	if _, plain := typed.(errors.CustomError); !plain {
		res.Detail = typed.Error()
	}
	writeJSON(w, typed.ErrorHTTPCode(), res)
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
