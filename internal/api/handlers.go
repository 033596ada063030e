package api

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/interledger-go/iroha-settlement/internal/model"
	"go.uber.org/zap"
)

// handleCreateAccount registers a settlement account. The first time an
// account is seen the engine runs the payment-details handshake through the
// connector to learn the peer's ledger identity; re-creating a known account
// is a no-op.
func (s *Server) handleCreateAccount(w http.ResponseWriter, r *http.Request) {
	var account model.SettlementAccount
	if err := json.NewDecoder(r.Body).Decode(&account); err != nil || account.ID == "" {
		s.writeError(w, http.StatusBadRequest, "malformed settlement account")
		return
	}

	_, found, err := s.store.GetPeerLedgerAccount(r.Context(), account.ID)
	if err != nil {
		s.logger.Error("failed to look up peer ledger account", zap.Error(err))
		s.writeError(w, http.StatusInternalServerError, "account lookup failed")
		return
	}
	if found {
		s.writeJSON(w, http.StatusCreated, account)
		return
	}

	details := model.PaymentDetailsMessage{IrohaAccountID: s.selfAccount}
	response, err := s.messenger.SendPaymentDetails(r.Context(), account.ID, details)
	if err != nil {
		s.logger.Error("payment details handshake failed",
			zap.String("settlement_account_id", string(account.ID)),
			zap.Error(err),
		)
		s.writeError(w, http.StatusInternalServerError, "payment details handshake failed")
		return
	}

	if err := s.store.SavePeerLedgerAccount(r.Context(), account.ID, response.IrohaAccountID); err != nil {
		s.logger.Error("failed to save peer ledger account", zap.Error(err))
		s.writeError(w, http.StatusInternalServerError, "account setup failed")
		return
	}

	s.logger.Info("settlement account created",
		zap.String("settlement_account_id", string(account.ID)),
		zap.String("peer", string(response.IrohaAccountID)),
	)
	s.writeJSON(w, http.StatusCreated, account)
}

// handleDeleteAccount removes a settlement account and its leftover.
// Idempotency records survive so a replayed settlement request cannot
// settle twice against a re-created account.
func (s *Server) handleDeleteAccount(w http.ResponseWriter, r *http.Request) {
	sid := model.SettlementAccountID(chi.URLParam(r, "id"))

	exists, err := s.store.ExistsSettlementAccount(r.Context(), sid)
	if err != nil {
		s.logger.Error("failed to look up settlement account", zap.Error(err))
		s.writeError(w, http.StatusInternalServerError, "account lookup failed")
		return
	}
	if !exists {
		s.writeError(w, http.StatusInternalServerError, "unknown settlement account")
		return
	}

	if err := s.store.DeleteSettlementAccount(r.Context(), sid); err != nil {
		s.logger.Error("failed to delete settlement account", zap.Error(err))
		s.writeError(w, http.StatusInternalServerError, "account deletion failed")
		return
	}

	s.logger.Info("settlement account deleted", zap.String("settlement_account_id", string(sid)))
	w.WriteHeader(http.StatusNoContent)
}

// handleSettlement performs an outgoing settlement. The response status
// comes from the settler, so a replayed idempotency key answers with the
// originally stored status.
func (s *Server) handleSettlement(w http.ResponseWriter, r *http.Request) {
	sid := model.SettlementAccountID(chi.URLParam(r, "id"))

	idempotencyKey := r.Header.Get("Idempotency-Key")
	if _, err := uuid.Parse(idempotencyKey); err != nil {
		s.writeError(w, http.StatusBadRequest, "Idempotency-Key header must be a UUID")
		return
	}

	var quantity model.SettlementQuantity
	if err := json.NewDecoder(r.Body).Decode(&quantity); err != nil {
		s.writeError(w, http.StatusBadRequest, "malformed settlement quantity")
		return
	}
	amount, err := quantity.AmountDecimal()
	if err != nil {
		s.writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := model.ValidateAssetScale(quantity.Scale); err != nil {
		s.writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	status, err := s.settler.Settle(r.Context(), sid, idempotencyKey, amount, quantity.Scale)
	if err != nil {
		s.logger.Error("settlement failed",
			zap.String("settlement_account_id", string(sid)),
			zap.String("idempotency_key", idempotencyKey),
			zap.Error(err),
		)
		s.writeError(w, status, "settlement failed")
		return
	}

	s.writeJSON(w, status, quantity)
}

// handleMessage receives the peer's payment details from the connector's
// message channel and answers with our own. The channel is opaque bytes
// end to end, so the response goes out as an octet stream.
func (s *Server) handleMessage(w http.ResponseWriter, r *http.Request) {
	sid := model.SettlementAccountID(chi.URLParam(r, "id"))

	body, err := io.ReadAll(r.Body)
	if err != nil {
		s.writeError(w, http.StatusInternalServerError, "failed to read message")
		return
	}

	var details model.PaymentDetailsMessage
	if err := json.Unmarshal(body, &details); err != nil || details.IrohaAccountID == "" {
		s.logger.Error("unreadable peer message",
			zap.String("settlement_account_id", string(sid)),
			zap.ByteString("message", body),
		)
		s.writeError(w, http.StatusInternalServerError, "unreadable peer message")
		return
	}

	if err := s.store.SavePeerLedgerAccount(r.Context(), sid, details.IrohaAccountID); err != nil {
		s.logger.Error("failed to save peer ledger account", zap.Error(err))
		s.writeError(w, http.StatusInternalServerError, "account setup failed")
		return
	}

	response, err := json.Marshal(model.PaymentDetailsMessage{IrohaAccountID: s.selfAccount})
	if err != nil {
		s.writeError(w, http.StatusInternalServerError, "failed to build response")
		return
	}

	s.logger.Info("peer payment details received",
		zap.String("settlement_account_id", string(sid)),
		zap.String("peer", string(details.IrohaAccountID)),
	)
	w.Header().Set("Content-Type", "application/octet-stream")
	w.WriteHeader(http.StatusCreated)
	w.Write(response)
}

type errorResponse struct {
	Error string `json:"error"`
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Error("failed to encode response", zap.Error(err))
	}
}

func (s *Server) writeError(w http.ResponseWriter, status int, message string) {
	s.writeJSON(w, status, errorResponse{Error: message})
}
