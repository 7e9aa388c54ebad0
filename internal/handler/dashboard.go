package handler

import (
	"net/http"

	"khata-ledger/internal/service"
	"khata-ledger/internal/util"

	"github.com/gin-gonic/gin"
)

// DashboardHandler serves the aggregated ledger view.
type DashboardHandler struct {
	Ledger *service.LedgerService
}

func NewDashboardHandler(ledger *service.LedgerService) *DashboardHandler {
	return &DashboardHandler{Ledger: ledger}
}

// Dashboard returns every entry owned by the caller plus the billed,
// received and balance totals.
func (h *DashboardHandler) Dashboard(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		util.Error(c, http.StatusUnauthorized, util.CodeAuth, "not logged in")
		return
	}

	entries, summary, err := h.Ledger.Dashboard(c.Request.Context(), user.ID)
	if err != nil {
		respondErr(c, err)
		return
	}

	items := make([]entryResp, 0, len(entries))
	for i := range entries {
		items = append(items, toEntryResp(&entries[i]))
	}

	util.Success(c, util.Response{
		"user":           userResp(user),
		"entries":        items,
		"billed_total":   summary.BilledTotal,
		"payments_total": summary.PaymentsTotal,
		"balance":        summary.Balance,
	})
}
