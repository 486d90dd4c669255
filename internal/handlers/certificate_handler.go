package handlers

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/go-pdf/fpdf"
)

type CertificateHandler struct{}

func NewCertificateHandler() *CertificateHandler {
	return &CertificateHandler{}
}

// Issue renders a completion certificate PDF from the supplied details and
// returns the bytes directly; nothing is persisted.
func (h *CertificateHandler) Issue(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name       string `json:"name"`
		CourseName string `json:"courseName"`
		Grade      string `json:"grade"`
		StartDate  string `json:"start_date"`
		EndDate    string `json:"end_date"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	pdf := fpdf.New("L", "mm", "A4", "")
	pdf.AddPage()
	pageW, pageH := pdf.GetPageSize()

	pdf.SetLineWidth(1)
	pdf.Rect(10, 10, pageW-20, pageH-20, "D")

	pdf.SetFont("Times", "B", 32)
	pdf.SetXY(0, 40)
	pdf.CellFormat(pageW, 14, "Certificate of Completion", "", 1, "C", false, 0, "")

	lines := []string{
		"This certificate is awarded to " + req.Name,
		"upon successful completion of " + req.CourseName + ".",
		"",
		"We congratulate you for securing " + req.Grade + " and",
		"hope your skills will make a difference.",
		"",
		"Start date: " + req.StartDate,
		"End date: " + req.EndDate,
	}

	pdf.SetFont("Times", "", 20)
	y := 75.0
	for _, line := range lines {
		pdf.SetXY(0, y)
		pdf.CellFormat(pageW, 9, line, "", 1, "C", false, 0, "")
		y += 9
	}

	if pdf.Error() != nil {
		log.Printf("Failed to render certificate: %v", pdf.Error())
		writeError(w, http.StatusInternalServerError, "Failed to render certificate")
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	if err := pdf.Output(w); err != nil {
		log.Printf("Failed to write certificate: %v", err)
	}
}
