// Package handlers implements the JSON API surface. Every handler
// validates its input, runs the store queries and converts faults to an
// {"error": ...} body at its own boundary.
package handlers

import "drone-delivery-api/store"

type Handler struct {
	store *store.Store
}

func New(st *store.Store) *Handler {
	return &Handler{store: st}
}
