package ledger

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/shopspring/decimal"

	"github.com/inkwell-market/inkwell/internal/domain"
	"github.com/inkwell-market/inkwell/internal/dto"
	"github.com/inkwell-market/inkwell/internal/service/ledgerservice"
	"github.com/inkwell-market/inkwell/pkg/auth"
	"github.com/inkwell-market/inkwell/pkg/utils"
)

// Service is the ledger surface exposed over HTTP.
type Service interface {
	Balance(ctx context.Context, userID *int, account domain.Account, filter domain.BalanceFilter) (decimal.Decimal, error)
	TransactionsFor(ctx context.Context, userID int, account domain.Account) ([]domain.TransactionRecord, error)
	WithdrawHoldings(ctx context.Context, userID int, amount decimal.Decimal) (*domain.TransactionRecord, error)
	ChargeBankFee(ctx context.Context, userID int, fee decimal.Decimal) (*domain.TransactionRecord, error)
}

type LedgerHandler struct {
	ledgerService Service
	bankFee       decimal.Decimal
}

func New(ledgerService Service, bankFee decimal.Decimal) *LedgerHandler {
	return &LedgerHandler{
		ledgerService: ledgerService,
		bankFee:       bankFee,
	}
}

// GetBalance godoc
//
//	@Summary		Show the user's holdings balance
//	@Description	Posted and pending balance of the user's finalized earnings
//	@Tags			Ledger
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{object}	dto.BalanceResponseDTO
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/ledger/balance [get]
func (h *LedgerHandler) GetBalance(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	posted, err := h.ledgerService.Balance(r.Context(), &userID, domain.AccountHoldings, domain.BalancePostedOnly)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	pending, err := h.ledgerService.Balance(r.Context(), &userID, domain.AccountHoldings, domain.BalancePending)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.BalanceResponseDTO{
		Posted:  posted.StringFixed(2),
		Pending: pending.StringFixed(2),
	})
}

// Withdraw godoc
//
//	@Summary		Withdraw holdings to the bank
//	@Description	Move finalized earnings to the user's connected bank account
//	@Tags			Ledger
//	@Accept			json
//	@Produce		json
//	@Param			request	body	dto.WithdrawRequestDTO	true	"Withdrawal amount"
//	@Security		BearerAuth
//	@Success		200	{object}	utils.Response
//	@Failure		402	{object}	utils.Response	"Insufficient balance"
//	@Failure		422	{object}	utils.Response	"Invalid amount"
//	@Router			/api/ledger/withdraw [post]
func (h *LedgerHandler) Withdraw(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	var req dto.WithdrawRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	amount, err := decimal.NewFromString(req.Amount)
	if err != nil {
		utils.RespondWithError(w, http.StatusUnprocessableEntity, "Invalid amount format")
		return
	}
	if _, err := h.ledgerService.WithdrawHoldings(r.Context(), userID, amount); err != nil {
		respondWithLedgerError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.Response{Message: "Withdrawal accepted"})
}

// ConnectBank godoc
//
//	@Summary		Connect a bank account
//	@Description	Charges the flat connection fee from the user's holdings
//	@Tags			Ledger
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{object}	utils.Response
//	@Failure		402	{object}	utils.Response	"Insufficient balance for the fee"
//	@Router			/api/ledger/bank [post]
func (h *LedgerHandler) ConnectBank(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	if _, err := h.ledgerService.ChargeBankFee(r.Context(), userID, h.bankFee); err != nil {
		respondWithLedgerError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.Response{Message: "Bank account connected"})
}

// GetTransactions godoc
//
//	@Summary		List holdings transactions
//	@Description	Every ledger record touching the user's holdings account
//	@Tags			Ledger
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{array}		dto.TransactionResponseDTO
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/ledger/transactions [get]
func (h *LedgerHandler) GetTransactions(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	records, err := h.ledgerService.TransactionsFor(r.Context(), userID, domain.AccountHoldings)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	response := make([]dto.TransactionResponseDTO, 0, len(records))
	for i := range records {
		record := &records[i]
		response = append(response, dto.TransactionResponseDTO{
			ID:          record.ID,
			Source:      record.Source.String(),
			Destination: record.Destination.String(),
			Amount:      record.Amount.StringFixed(2),
			Status:      record.Status.String(),
			Category:    record.Category.String(),
			CreatedOn:   record.CreatedOn,
			FinalizedOn: record.FinalizedOn,
		})
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

func respondWithLedgerError(w http.ResponseWriter, err error) {
	var validation *domain.ValidationError
	var gatewayFail *domain.GatewayError
	switch {
	case errors.Is(err, ledgerservice.ErrInsufficientBalance):
		utils.RespondWithError(w, http.StatusPaymentRequired, err.Error())
	case errors.As(err, &gatewayFail):
		utils.RespondWithError(w, http.StatusPaymentRequired, gatewayFail.Message)
	case errors.As(err, &validation):
		utils.RespondWithError(w, http.StatusUnprocessableEntity, validation.Error())
	default:
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
	}
}
