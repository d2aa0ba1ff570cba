package middleware

import (
	"errors"
	"math"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
)

var (
	ErrNotPositive = errors.New("must be a positive integer")
	ErrNotFinite   = errors.New("must be a finite number")
)

// Respond writes resp with code, or the error when err is set.
func Respond(w http.ResponseWriter, code int, resp interface{}, err error) {
	if err != nil {
		WriteError(w, err)
		return
	}
	WriteJSON(w, code, resp)
}

// PathID reads the chi URL parameter name as a positive id.
func PathID(r *http.Request, name string) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, name), 10, 64)
	if err != nil {
		return 0, err
	}
	if id <= 0 {
		return 0, ErrNotPositive
	}
	return id, nil
}

// Int32Param parses an optional query value; empty means zero.
func Int32Param(v string) (int32, error) {
	if v == "" {
		return 0, nil
	}
	n, err := strconv.ParseInt(v, 10, 32)
	return int32(n), err
}

func OptionalInt64(v string) (*int64, error) {
	if v == "" {
		return nil, nil
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return nil, err
	}
	return &n, nil
}

// OptionalFloat parses an optional query value. NaN and infinities are rejected.
func OptionalFloat(v string) (*float64, error) {
	if v == "" {
		return nil, nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return nil, err
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return nil, ErrNotFinite
	}
	return &f, nil
}
