// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/danielhkuo/pickparty/cliparse"
	"github.com/danielhkuo/pickparty/middleware"
	"github.com/danielhkuo/pickparty/models"
	"github.com/danielhkuo/pickparty/store"
	"github.com/skip2/go-qrcode"
)

// qrSize is the edge length of invite QR codes in pixels
const qrSize = 320

type PartyHandler struct {
	store *store.Store
	cfg   cliparse.Config
}

func NewPartyHandler(st *store.Store, cfg cliparse.Config) *PartyHandler {
	return &PartyHandler{store: st, cfg: cfg}
}

// CreateParty handles POST /parties
func (h *PartyHandler) CreateParty(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(w, r)
	if !ok {
		return
	}

	var req models.CreatePartyRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	party, err := h.store.CreateParty(r.Context(), req.Name, user.UserID)
	if err != nil {
		writeStoreError(w, "create party", err)
		return
	}

	inviteURL := h.inviteURL(party.InviteCode)
	middleware.JSONResponse(w, http.StatusCreated, models.CreatePartyResponse{
		Party:         party,
		InviteURL:     inviteURL,
		InviteMessage: inviteMessage(party, inviteURL),
	})
}

// JoinParty handles POST /parties/join
func (h *PartyHandler) JoinParty(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(w, r)
	if !ok {
		return
	}

	var req models.JoinPartyRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	party, err := h.store.JoinParty(r.Context(), req.InviteCode, user.UserID)
	if err != nil {
		writeStoreError(w, "join party", err)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, party)
}

// LeaveParty handles DELETE /parties/{id}/members/me
func (h *PartyHandler) LeaveParty(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(w, r)
	if !ok {
		return
	}

	partyID := r.PathValue("id")
	if partyID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "party id is required")
		return
	}

	if err := h.store.LeaveParty(r.Context(), partyID, user.UserID); err != nil {
		writeStoreError(w, "leave party", err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// MyParties handles GET /me/parties
func (h *PartyHandler) MyParties(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(w, r)
	if !ok {
		return
	}

	parties, err := h.store.ListMyParties(r.Context(), user.UserID)
	if err != nil {
		writeStoreError(w, "list parties", err)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.MyPartiesResponse{Parties: parties})
}

// Preview handles GET /invites/{code}
// Shows what a joiner is about to join without joining
func (h *PartyHandler) Preview(w http.ResponseWriter, r *http.Request) {
	party, err := h.store.PartyByInviteCode(r.Context(), r.PathValue("code"))
	if err != nil {
		writeStoreError(w, "preview party", err)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.PartyPreviewResponse{
		Name:        party.Name,
		InviteCode:  party.InviteCode,
		MemberCount: party.MemberCount,
	})
}

// QRCode handles GET /invites/{code}/qr
// Returns a PNG encoding the party's invite URL
func (h *PartyHandler) QRCode(w http.ResponseWriter, r *http.Request) {
	party, err := h.store.PartyByInviteCode(r.Context(), r.PathValue("code"))
	if err != nil {
		writeStoreError(w, "party qr", err)
		return
	}

	png, err := qrcode.Encode(h.inviteURL(party.InviteCode), qrcode.Medium, qrSize)
	if err != nil {
		slog.Error("failed to encode qr code", "party_id", party.ID, "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to render QR code")
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "public, max-age=86400")
	w.WriteHeader(http.StatusOK)
	w.Write(png)
}

func (h *PartyHandler) inviteURL(code string) string {
	return strings.TrimRight(h.cfg.PublicURL, "/") + "/join/" + code
}

func inviteMessage(p models.Party, url string) string {
	return fmt.Sprintf("Join my Super Bowl party %q! Make your picks before kickoff.\nCode: %s\n%s",
		p.Name, p.InviteCode, url)
}
