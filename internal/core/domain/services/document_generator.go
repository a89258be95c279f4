package services

import (
	"bytes"
	"fmt"
	"image/png"
	"time"

	"github.com/go-pdf/fpdf"

	"missionops/internal/core/domain/model/missionorder"
	"missionops/internal/pkg/errs"
)

// documentCreationDate pins the PDF metadata clock so that generating a
// document twice for the same order state yields byte-identical output.
var documentCreationDate = time.Date(2000, time.January, 1, 0, 0, 0, 0, time.UTC)

const signaturePlaceholder = "signature unavailable"

// DocumentGenerator is a domain service that renders an approved mission
// order into its printable PDF form.
//
// Key responsibilities:
//   - Laying out the order header, mission details and validation block
//   - Embedding the direction signature image when one is supplied
//   - Producing deterministic output for a given order state
//
// Business rules:
//   - Only approved, in-progress or completed orders may be rendered
//   - A missing or unreadable signature image degrades to a textual
//     placeholder instead of failing generation
type DocumentGenerator struct{}

// NewDocumentGenerator creates a new DocumentGenerator instance.
func NewDocumentGenerator() DocumentGenerator {
	return DocumentGenerator{}
}

// Generate renders the mission order as a PDF document. signatureImage holds
// the PNG bytes of the direction signature, or nil when the image could not
// be fetched; in that case the signature block renders a placeholder.
func (DocumentGenerator) Generate(order *missionorder.MissionOrder, signatureImage []byte) ([]byte, error) {
	if order == nil {
		return nil, errs.NewValueIsRequiredError("order")
	}
	if err := order.Validate(); err != nil {
		return nil, err
	}
	switch order.Status() {
	case missionorder.Approved, missionorder.InProgress, missionorder.Completed:
	default:
		return nil, errs.NewInvalidStateError("generate document", order.Status().String())
	}

	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetCreationDate(documentCreationDate)
	pdf.SetModificationDate(documentCreationDate)
	pdf.SetTitle(fmt.Sprintf("Mission Order %s", order.ID()), false)
	pdf.SetMargins(20, 20, 20)
	pdf.AddPage()

	writeHeader(pdf, order)
	writeDetails(pdf, order)
	writeValidation(pdf, order, signatureImage)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render mission order %s: %w", order.ID(), err)
	}
	return buf.Bytes(), nil
}

func writeHeader(pdf *fpdf.Fpdf, order *missionorder.MissionOrder) {
	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(0, 10, "MISSION ORDER", "", 1, "C", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(0, 6, fmt.Sprintf("Reference: %s", order.ID()), "", 1, "C", false, 0, "")
	pdf.CellFormat(0, 6, fmt.Sprintf("Status: %s", order.Status()), "", 1, "C", false, 0, "")
	pdf.Ln(4)
}

func writeDetails(pdf *fpdf.Fpdf, order *missionorder.MissionOrder) {
	pdf.SetFont("Helvetica", "B", 12)
	pdf.CellFormat(0, 8, "Mission details", "B", 1, "L", false, 0, "")
	pdf.Ln(2)

	detailRow(pdf, "Requester", order.RequesterID().String())
	detailRow(pdf, "Destination", order.Destination())
	detailRow(pdf, "Purpose", order.Purpose())
	detailRow(pdf, "From", order.Period().Start().Format("2006-01-02"))
	detailRow(pdf, "To", order.Period().End().Format("2006-01-02"))
	if budget := order.EstimatedBudget(); budget != nil {
		detailRow(pdf, "Estimated budget", fmt.Sprintf("%d", *budget))
	}

	if activities := order.PlannedActivities(); activities != "" {
		pdf.Ln(2)
		pdf.SetFont("Helvetica", "B", 10)
		pdf.CellFormat(0, 6, "Planned activities", "", 1, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 10)
		pdf.MultiCell(0, 5, activities, "", "L", false)
	}
	pdf.Ln(4)
}

func writeValidation(pdf *fpdf.Fpdf, order *missionorder.MissionOrder, signatureImage []byte) {
	pdf.SetFont("Helvetica", "B", 12)
	pdf.CellFormat(0, 8, "Validation", "B", 1, "L", false, 0, "")
	pdf.Ln(2)

	if validatorID := order.ValidatorAt(missionorder.LevelTeamLead); validatorID != nil {
		detailRow(pdf, "Team lead", validatorID.String())
	}
	if validatorID := order.ValidatorAt(missionorder.LevelFinance); validatorID != nil {
		detailRow(pdf, "Finance", validatorID.String())
	}
	if validatorID := order.ValidatorAt(missionorder.LevelDirection); validatorID != nil {
		detailRow(pdf, "Direction", validatorID.String())
	}
	if comment := order.ValidationComment(); comment != "" {
		detailRow(pdf, "Comment", comment)
	}

	signature := order.Signature()
	if signature == nil {
		return
	}
	detailRow(pdf, "Signed at", signature.SignedAt().Format(time.RFC3339))
	detailRow(pdf, "Digest", signature.Digest())

	if embedSignature(pdf, signatureImage) {
		return
	}
	pdf.SetFont("Helvetica", "I", 10)
	pdf.CellFormat(0, 6, signaturePlaceholder, "", 1, "L", false, 0, "")
}

// embedSignature reports whether the image was drawn. Invalid or missing
// bytes are not an error, the caller falls back to the placeholder.
func embedSignature(pdf *fpdf.Fpdf, signatureImage []byte) bool {
	if len(signatureImage) == 0 {
		return false
	}
	if _, err := png.DecodeConfig(bytes.NewReader(signatureImage)); err != nil {
		return false
	}

	options := fpdf.ImageOptions{ImageType: "PNG"}
	pdf.RegisterImageOptionsReader("direction-signature", options, bytes.NewReader(signatureImage))
	if pdf.Err() {
		pdf.ClearError()
		return false
	}
	pdf.ImageOptions("direction-signature", pdf.GetX(), pdf.GetY()+2, 50, 0, true, options, 0, "")
	return true
}

func detailRow(pdf *fpdf.Fpdf, label, value string) {
	pdf.SetFont("Helvetica", "B", 10)
	pdf.CellFormat(45, 6, label, "", 0, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	pdf.MultiCell(0, 6, value, "", "L", false)
}
