package handler

import (
	"net/http"

	"github.com/stpnv0/rahi/internal/handler/dto"
	"github.com/wb-go/wbf/ginext"
)

func (h *Handler) WalletBalance(c *ginext.Context) {
	workerID := walletOwner(c)
	balance, err := h.walletService.Balance(c.Request.Context(), workerID)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.BalanceResponse{WorkerID: workerID, Balance: balance})
}

func (h *Handler) WalletTransactions(c *ginext.Context) {
	limit, ok := queryLimit(c)
	if !ok {
		return
	}

	txs, err := h.walletService.Transactions(c.Request.Context(), walletOwner(c), limit)
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.TransactionResponse, 0, len(txs))
	for _, t := range txs {
		resp = append(resp, dto.ToTransactionResponse(t))
	}
	c.JSON(http.StatusOK, resp)
}

func (h *Handler) WalletSummary(c *ginext.Context) {
	summary, err := h.walletService.Summary(c.Request.Context(), walletOwner(c))
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, summary)
}

func (h *Handler) Withdraw(c *ginext.Context) {
	var req dto.WithdrawRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}

	tx, err := h.walletService.Withdraw(c.Request.Context(), actor(c).ID, req.Amount, req.UpiID)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.ToTransactionResponse(tx))
}

func (h *Handler) Reconcile(c *ginext.Context) {
	rec, err := h.walletService.Reconcile(c.Request.Context(), walletOwner(c))
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, rec)
}

func (h *Handler) GrantBonus(c *ginext.Context) {
	var req dto.BonusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}

	tx, err := h.walletService.RecordBonus(c.Request.Context(), req.WorkerID, req.Amount, req.Description)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.ToTransactionResponse(tx))
}
