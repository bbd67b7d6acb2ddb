package utils

import (
	"encoding/json"
	"net/http"
)

// Json writes data as a JSON response with the given status code.
func Json(w http.ResponseWriter, status int, data interface{}) error {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	return json.NewEncoder(w).Encode(data)
}

// Err writes an error as a JSON response with the given status code.
func Err(w http.ResponseWriter, status int, err error) error {
	return Json(w, status, map[string]string{"error": err.Error()})
}
