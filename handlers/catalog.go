// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"

	"github.com/danielhkuo/pickparty/middleware"
	"github.com/danielhkuo/pickparty/models"
	"github.com/danielhkuo/pickparty/store"
)

type CatalogHandler struct {
	store *store.Store
}

func NewCatalogHandler(st *store.Store) *CatalogHandler {
	return &CatalogHandler{store: st}
}

// Categories handles GET /categories
func (h *CatalogHandler) Categories(w http.ResponseWriter, r *http.Request) {
	middleware.JSONResponse(w, http.StatusOK, h.store.Catalog().Groups())
}

// Lockout handles GET /lockout
func (h *CatalogHandler) Lockout(w http.ResponseWriter, r *http.Request) {
	middleware.JSONResponse(w, http.StatusOK, models.LockoutResponse{
		LockoutAt: h.store.LockoutAt,
		Locked:    h.store.Locked(),
	})
}
