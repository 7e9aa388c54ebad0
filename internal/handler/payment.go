package handler

import (
	"net/http"
	"time"

	"khata-ledger/internal/models"
	"khata-ledger/internal/service"
	"khata-ledger/internal/util"

	"github.com/gin-gonic/gin"
)

// PaymentHandler owns the mark-payment endpoints.
type PaymentHandler struct {
	Ledger *service.LedgerService
}

func NewPaymentHandler(ledger *service.LedgerService) *PaymentHandler {
	return &PaymentHandler{Ledger: ledger}
}

type markPaymentReq struct {
	Amount string `form:"amount" json:"amount" binding:"required"`
	Notes  string `form:"notes" json:"notes"`
}

type paymentResp struct {
	ID           uint      `json:"id"`
	KhataEntryID uint      `json:"khata_entry_id"`
	PaymentDate  time.Time `json:"payment_date"`
	Amount       float64   `json:"amount"`
	Notes        string    `json:"notes"`
}

func toPaymentResp(p *models.Payment) paymentResp {
	return paymentResp{
		ID:           p.ID,
		KhataEntryID: p.KhataEntryID,
		PaymentDate:  p.PaymentDate,
		Amount:       p.Amount,
		Notes:        p.Notes,
	}
}

// MarkPayment records a receipt against one of the caller's entries.
func (h *PaymentHandler) MarkPayment(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		util.Error(c, http.StatusUnauthorized, util.CodeAuth, "not logged in")
		return
	}
	id, ok := entryID(c)
	if !ok {
		return
	}

	var req markPaymentReq
	if err := c.ShouldBind(&req); err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "amount is required")
		return
	}

	payment, err := h.Ledger.MarkPayment(c.Request.Context(), user.ID, id, req.Amount, req.Notes)
	if err != nil {
		respondErr(c, err)
		return
	}

	util.Success(c, util.Response{
		"payment": toPaymentResp(payment),
	})
}

// EntryPayments returns one owned entry with its payments, backing the
// mark-payment form.
func (h *PaymentHandler) EntryPayments(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		util.Error(c, http.StatusUnauthorized, util.CodeAuth, "not logged in")
		return
	}
	id, ok := entryID(c)
	if !ok {
		return
	}

	entry, err := h.Ledger.GetEntry(c.Request.Context(), user.ID, id)
	if err != nil {
		respondErr(c, err)
		return
	}
	payments, err := h.Ledger.EntryPayments(c.Request.Context(), user.ID, id)
	if err != nil {
		respondErr(c, err)
		return
	}

	items := make([]paymentResp, 0, len(payments))
	for i := range payments {
		items = append(items, toPaymentResp(&payments[i]))
	}

	util.Success(c, util.Response{
		"entry":    toEntryResp(entry),
		"payments": items,
	})
}
