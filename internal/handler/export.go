package handler

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"khata-ledger/internal/models"
	"khata-ledger/internal/service"
	"khata-ledger/internal/util"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"
)

// ExportHandler streams the caller's entries as CSV or XLSX. The auth
// middleware accepts ?token= so these URLs work as plain download links.
type ExportHandler struct {
	Ledger *service.LedgerService
}

func NewExportHandler(ledger *service.LedgerService) *ExportHandler {
	return &ExportHandler{Ledger: ledger}
}

var exportHeader = []string{"ID", "Farmer", "Crop", "Locality", "Farm Area", "Billed Amount", "Date of Activity"}

func exportRow(e *models.KhataEntry) []string {
	return []string{
		strconv.FormatUint(uint64(e.ID), 10),
		e.FarmerName,
		e.CropKind,
		e.Locality,
		strconv.FormatFloat(e.FarmArea, 'f', 2, 64),
		strconv.FormatFloat(e.BilledAmount, 'f', 2, 64),
		e.DateOfActivity.Format("2006-01-02"),
	}
}

func exportFilename(ext string) string {
	return fmt.Sprintf("khata_entries_%s.%s", time.Now().Format("20060102"), ext)
}

// ExportCSV writes the caller's entries as a CSV attachment.
func (h *ExportHandler) ExportCSV(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		util.Error(c, http.StatusUnauthorized, util.CodeAuth, "not logged in")
		return
	}

	entries, _, err := h.Ledger.Dashboard(c.Request.Context(), user.ID)
	if err != nil {
		respondErr(c, err)
		return
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	_ = w.Write(exportHeader)
	for i := range entries {
		_ = w.Write(exportRow(&entries[i]))
	}
	w.Flush()
	if err := w.Error(); err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "export failed")
		return
	}

	c.Header("Content-Disposition", "attachment; filename="+exportFilename("csv"))
	c.Data(http.StatusOK, "text/csv", buf.Bytes())
}

// ExportXLSX writes the caller's entries as an Excel attachment.
func (h *ExportHandler) ExportXLSX(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		util.Error(c, http.StatusUnauthorized, util.CodeAuth, "not logged in")
		return
	}

	entries, _, err := h.Ledger.Dashboard(c.Request.Context(), user.ID)
	if err != nil {
		respondErr(c, err)
		return
	}

	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	sheet := "Entries"
	idx, err := f.NewSheet(sheet)
	if err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "export failed")
		return
	}
	f.SetActiveSheet(idx)
	_ = f.DeleteSheet("Sheet1")

	for col, title := range exportHeader {
		cell, _ := excelize.CoordinatesToCellName(col+1, 1)
		_ = f.SetCellValue(sheet, cell, title)
	}
	for row := range entries {
		for col, value := range exportRow(&entries[row]) {
			cell, _ := excelize.CoordinatesToCellName(col+1, row+2)
			_ = f.SetCellValue(sheet, cell, value)
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "export failed")
		return
	}

	c.Header("Content-Disposition", "attachment; filename="+exportFilename("xlsx"))
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", buf.Bytes())
}
