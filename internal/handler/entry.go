package handler

import (
	"net/http"
	"time"

	"khata-ledger/internal/models"
	"khata-ledger/internal/service"
	"khata-ledger/internal/util"

	"github.com/gin-gonic/gin"
)

// EntryHandler owns the khata entry endpoints.
type EntryHandler struct {
	Ledger *service.LedgerService
}

func NewEntryHandler(ledger *service.LedgerService) *EntryHandler {
	return &EntryHandler{Ledger: ledger}
}

// entryReq takes the numeric fields as strings; the service parses and
// rejects non-numeric input as a validation error.
type entryReq struct {
	FarmerName     string `form:"farmer_name" json:"farmer_name"`
	CropKind       string `form:"crop_kind" json:"crop_kind"`
	Locality       string `form:"locality" json:"locality"`
	FarmArea       string `form:"farm_area" json:"farm_area"`
	BilledAmount   string `form:"billed_amount" json:"billed_amount"`
	DateOfActivity string `form:"date_of_activity" json:"date_of_activity"`
}

type entryResp struct {
	ID             uint      `json:"id"`
	FarmerName     string    `json:"farmer_name"`
	CropKind       string    `json:"crop_kind"`
	Locality       string    `json:"locality"`
	FarmArea       float64   `json:"farm_area"`
	BilledAmount   float64   `json:"billed_amount"`
	DateOfActivity time.Time `json:"date_of_activity"`
}

func toEntryResp(e *models.KhataEntry) entryResp {
	return entryResp{
		ID:             e.ID,
		FarmerName:     e.FarmerName,
		CropKind:       e.CropKind,
		Locality:       e.Locality,
		FarmArea:       e.FarmArea,
		BilledAmount:   e.BilledAmount,
		DateOfActivity: e.DateOfActivity,
	}
}

func (r entryReq) toInput() service.EntryInput {
	return service.EntryInput{
		FarmerName:     r.FarmerName,
		CropKind:       r.CropKind,
		Locality:       r.Locality,
		FarmArea:       r.FarmArea,
		BilledAmount:   r.BilledAmount,
		DateOfActivity: r.DateOfActivity,
	}
}

func (h *EntryHandler) AddEntry(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		util.Error(c, http.StatusUnauthorized, util.CodeAuth, "not logged in")
		return
	}

	var req entryReq
	if err := c.ShouldBind(&req); err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "invalid request")
		return
	}

	entry, err := h.Ledger.AddEntry(c.Request.Context(), user.ID, req.toInput())
	if err != nil {
		respondErr(c, err)
		return
	}

	util.Success(c, util.Response{
		"entry": toEntryResp(entry),
	})
}

// GetEntry returns one owned entry, backing the edit form.
func (h *EntryHandler) GetEntry(c *gin.Context) {
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

	util.Success(c, util.Response{
		"entry": toEntryResp(entry),
	})
}

func (h *EntryHandler) EditEntry(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		util.Error(c, http.StatusUnauthorized, util.CodeAuth, "not logged in")
		return
	}
	id, ok := entryID(c)
	if !ok {
		return
	}

	var req entryReq
	if err := c.ShouldBind(&req); err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "invalid request")
		return
	}

	entry, err := h.Ledger.EditEntry(c.Request.Context(), user.ID, id, req.toInput())
	if err != nil {
		respondErr(c, err)
		return
	}

	util.Success(c, util.Response{
		"entry": toEntryResp(entry),
	})
}

func (h *EntryHandler) DeleteEntry(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		util.Error(c, http.StatusUnauthorized, util.CodeAuth, "not logged in")
		return
	}
	id, ok := entryID(c)
	if !ok {
		return
	}

	if err := h.Ledger.DeleteEntry(c.Request.Context(), user.ID, id); err != nil {
		respondErr(c, err)
		return
	}

	util.Success(c, util.Response{
		"message": "entry deleted",
	})
}
