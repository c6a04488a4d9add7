package api

import (
	"encoding/json"
	"net/http"
)

// Envelope is the uniform response body shared by every endpoint.
type Envelope struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

// OK writes a 200 response wrapping data in a success envelope.
func OK(w http.ResponseWriter, data interface{}) {
	write(w, http.StatusOK, Envelope{Success: true, Data: data})
}

// Created writes a 201 response wrapping data in a success envelope.
func Created(w http.ResponseWriter, data interface{}) {
	write(w, http.StatusCreated, Envelope{Success: true, Data: data})
}

// Fail writes an error envelope with the given status and message.
func Fail(w http.ResponseWriter, status int, msg string) {
	write(w, status, Envelope{Success: false, Error: msg})
}

// Decode parses a JSON request body into v.
func Decode(r *http.Request, v interface{}) error {
	return json.NewDecoder(r.Body).Decode(v)
}

func write(w http.ResponseWriter, status int, body Envelope) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}
