package itinerary

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"strings"
	"unicode"

	"tripplanr/utils"

	"github.com/julienschmidt/httprouter"
	"github.com/phpdave11/gofpdf"
	"github.com/skip2/go-qrcode"
	"go.uber.org/zap"
)

// core PDF fonts are cp1252, which has no rupee sign
var pdfReplacer = strings.NewReplacer(currencyGlyph, "INR ", "**", "", "*", "")

// RenderPDF lays out an itinerary markdown document on A4 pages. When
// qrURL is set a QR code pointing at it is placed under the heading.
func RenderPDF(markdown, qrURL string) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(15, 15, 15)
	pdf.SetAutoPageBreak(true, 15)
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.AddPage()

	lines := strings.Split(markdown, "\n")
	for i, line := range lines {
		text := pdfReplacer.Replace(strings.TrimRightFunc(line, unicode.IsSpace))
		switch {
		case strings.HasPrefix(text, "### "):
			pdf.SetFont("Helvetica", "B", 12)
			pdf.MultiCell(0, 6, tr(text[4:]), "", "L", false)
		case strings.HasPrefix(text, "## "):
			pdf.Ln(2)
			pdf.SetFont("Helvetica", "B", 15)
			pdf.MultiCell(0, 8, tr(text[3:]), "", "L", false)
		case strings.HasPrefix(text, "# "):
			pdf.SetFont("Helvetica", "B", 20)
			pdf.MultiCell(0, 10, tr(text[2:]), "", "L", false)
			if i == 0 && qrURL != "" {
				if err := placeQR(pdf, qrURL); err != nil {
					return nil, err
				}
			}
		case strings.TrimSpace(text) == "":
			pdf.Ln(2)
		default:
			indent := len(text) - len(strings.TrimLeft(text, " "))
			pdf.SetFont("Helvetica", "", 10)
			pdf.SetX(15 + float64(indent)*2)
			pdf.MultiCell(0, 5, tr(strings.TrimLeft(text, " ")), "", "L", false)
		}
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render pdf: %w", err)
	}
	return buf.Bytes(), nil
}

func placeQR(pdf *gofpdf.Fpdf, url string) error {
	png, err := qrcode.Encode(url, qrcode.Medium, 256)
	if err != nil {
		return fmt.Errorf("encode qr: %w", err)
	}
	opts := gofpdf.ImageOptions{ImageType: "PNG"}
	pdf.RegisterImageOptionsReader("qr", opts, bytes.NewReader(png))

	y := pdf.GetY()
	pdf.ImageOptions("qr", 15, y, 30, 30, false, opts, 0, url)
	pdf.SetXY(48, y+12)
	pdf.SetFont("Helvetica", "I", 9)
	pdf.CellFormat(0, 5, "Scan for a video guide", "", 1, "L", false, 0, "")
	pdf.SetY(y + 32)
	return pdf.Error()
}

// fileSlug keeps letters and digits and turns everything else into dashes.
func fileSlug(s string) string {
	var b strings.Builder
	dash := false
	for _, r := range strings.ToLower(s) {
		if r < unicode.MaxASCII && (unicode.IsLetter(r) || unicode.IsDigit(r)) {
			b.WriteRune(r)
			dash = false
		} else if !dash && b.Len() > 0 {
			b.WriteByte('-')
			dash = true
		}
	}
	slug := strings.TrimSuffix(b.String(), "-")
	if slug == "" {
		return "trip"
	}
	return slug
}

// POST /api/itinerary/pdf
func (h *Handler) DownloadPDF(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	req, days, ok := h.decodeTrip(w, r)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	text, src := h.planner.Itinerary(ctx, req, days)
	var qrURL string
	if videos, _ := h.planner.Videos(ctx, req.Destination); len(videos) > 0 {
		qrURL = videos[0].URL
	}

	doc, err := RenderPDF(text, qrURL)
	if err != nil {
		h.log.Error("pdf rendering failed", zap.String("destination", req.Destination), zap.Error(err))
		utils.RespondWithError(w, http.StatusInternalServerError, "Error rendering itinerary")
		return
	}

	w.Header().Set(SourceHeader, string(src))
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s-itinerary.pdf"`, fileSlug(req.Destination)))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(doc); err != nil {
		h.log.Debug("pdf write failed", zap.String("destination", req.Destination), zap.Error(err))
	}
}
