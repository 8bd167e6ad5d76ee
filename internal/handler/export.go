// Package handler: export.go implements GET /export.
// The default response is the structured JSON document (trip profile plus
// item list); ?format=csv and ?format=xlsx render the tabular view, one row
// per item.
package handler

import (
	"bytes"
	"encoding/csv"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/mverstraete/tripdash/internal/domain"
	"github.com/mverstraete/tripdash/internal/middleware"
)

// csvHeaders defines the column names written as the first row of any
// tabular export.
var csvHeaders = []string{"day", "time", "title", "category", "cost", "tags"}

// exportSheet is the worksheet name used for XLSX exports.
const exportSheet = "Itinerary"

// GetExport handles GET /export.
// format=csv and format=xlsx stream the tabular export with a download
// Content-Disposition; any other (or absent) format returns the JSON
// document.
func (s *Server) GetExport(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	sess := middleware.SessionFrom(ctx)

	switch r.URL.Query().Get("format") {
	case "csv":
		rows, err := s.export.Rows(ctx, sess)
		if err != nil {
			writeServiceError(w, err, "")
			return
		}
		writeCSV(w, rows)
	case "xlsx":
		rows, err := s.export.Rows(ctx, sess)
		if err != nil {
			writeServiceError(w, err, "")
			return
		}
		writeXLSX(w, rows)
	default:
		doc, err := s.export.Document(ctx, sess)
		if err != nil {
			writeServiceError(w, err, "")
			return
		}
		writeJSON(w, http.StatusOK, doc)
	}
}

// writeCSV encodes rows as CSV. Tags within a row are pipe-separated ("|")
// to keep each item on a single line regardless of commas inside tags.
func writeCSV(w http.ResponseWriter, rows []domain.ExportRow) {
	var buf bytes.Buffer
	cw := csv.NewWriter(&buf)

	// csv.Writer writes into a bytes.Buffer here, which never fails; the
	// error is surfaced by Flush/Error if it ever could.
	_ = cw.Write(csvHeaders)
	for _, r := range rows {
		_ = cw.Write(rowToRecord(r))
	}
	cw.Flush()

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename="itinerary.csv"`)
	w.Header().Set("Content-Length", strconv.Itoa(buf.Len()))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(buf.Bytes())
}

// writeXLSX encodes rows as a single-sheet workbook.
func writeXLSX(w http.ResponseWriter, rows []domain.ExportRow) {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	if err := f.SetSheetName(f.GetSheetName(0), exportSheet); err != nil {
		slog.Error("xlsx export", "error", err)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	header := make([]any, len(csvHeaders))
	for i, h := range csvHeaders {
		header[i] = h
	}
	if err := f.SetSheetRow(exportSheet, "A1", &header); err != nil {
		slog.Error("xlsx export", "error", err)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	for i, r := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			slog.Error("xlsx export", "error", err)
			writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
			return
		}
		row := []any{r.Day, r.Time, r.Title, r.Category, r.Cost, strings.Join(r.Tags, "|")}
		if err := f.SetSheetRow(exportSheet, cell, &row); err != nil {
			slog.Error("xlsx export", "error", err)
			writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
			return
		}
	}

	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", `attachment; filename="itinerary.xlsx"`)
	w.WriteHeader(http.StatusOK)
	if err := f.Write(w); err != nil {
		slog.Error("xlsx export", "error", err)
	}
}

// rowToRecord encodes an ExportRow as a flat string slice for CSV.
func rowToRecord(r domain.ExportRow) []string {
	return []string{
		strconv.Itoa(r.Day),
		r.Time,
		r.Title,
		r.Category,
		strconv.Itoa(r.Cost),
		strings.Join(r.Tags, "|"),
	}
}
