package agreement

import (
	"encoding/base64"
	"fmt"
	"strings"

	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/image"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/extension"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
)

// pdfSanitizer maps characters the PDF core fonts cannot render onto ASCII
// equivalents.
var pdfSanitizer = strings.NewReplacer(
	"₹", "Rs. ",
	"•", "-",
	"–", "-",
	"—", "-",
	"‘", "'",
	"’", "'",
	"“", `"`,
	"”", `"`,
)

func sanitizeForPDF(s string) string {
	return pdfSanitizer.Replace(s)
}

// RenderPDF lays the assembled agreement out as an A4 PDF and returns the
// raw bytes. The partner's drawn signature is embedded where the assembler
// placed the image block.
func RenderPDF(doc *Document) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageNumber(props.PageNumber{
			Pattern: "Page {current} of {total}",
			Place:   props.RightBottom,
		}).
		WithLeftMargin(15).
		WithRightMargin(15).
		WithTopMargin(15).
		Build()

	m := maroto.New(cfg)

	m.AddRow(10,
		text.NewCol(12, sanitizeForPDF(doc.Title), props.Text{
			Size:  16,
			Style: fontstyle.Bold,
			Align: align.Center,
		}),
	)
	m.AddRow(8,
		text.NewCol(12, sanitizeForPDF(doc.Version), props.Text{
			Size:  9,
			Align: align.Center,
			Color: &props.Color{Red: 90, Green: 90, Blue: 90},
		}),
	)
	m.AddRow(4, col.New(12))

	renderPartyDetails(m, doc)

	for _, block := range doc.Blocks {
		// The title and version already render as the centered header rows.
		if block.Type == BlockHeading && block.Text == doc.Title {
			continue
		}
		if block.Type == BlockSubHeading && block.Text == doc.Version {
			continue
		}
		// The execution section renders as a dedicated two-column layout
		// instead of the stacked template blocks.
		if block.Type == BlockHeading && block.Text == "EXECUTION" {
			renderExecution(m, doc)
			break
		}
		addBlock(m, block)
	}

	rendered, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("generating agreement pdf: %w", err)
	}
	return rendered.GetBytes(), nil
}

// renderPartyDetails lays the company and partner identification out side by
// side under the header.
func renderPartyDetails(m core.Maroto, doc *Document) {
	m.AddRow(7, text.NewCol(12, "PARTY DETAILS", props.Text{
		Size:  11,
		Style: fontstyle.Bold,
	}))
	m.AddRow(34,
		col.New(6).Add(
			text.New("Company", props.Text{Size: 9, Style: fontstyle.Bold}),
			text.New(sanitizeForPDF(CompanyName), props.Text{Size: 9, Top: 5}),
			text.New("PAN: "+CompanyPAN, props.Text{Size: 9, Top: 10}),
			text.New(sanitizeForPDF(CompanyAddress), props.Text{Size: 9, Top: 15}),
		),
		col.New(6).Add(
			text.New("Partner", props.Text{Size: 9, Style: fontstyle.Bold}),
			text.New(sanitizeForPDF(doc.PartnerName), props.Text{Size: 9, Top: 5}),
			text.New("PAN: "+doc.PartnerPAN, props.Text{Size: 9, Top: 10}),
			text.New(sanitizeForPDF(doc.PartnerAddress), props.Text{Size: 9, Top: 15}),
			text.New("Aadhaar: "+doc.AadhaarMasked, props.Text{Size: 9, Top: 20}),
			text.New("Effective Date: "+doc.EffectiveDate, props.Text{Size: 9, Top: 25}),
		),
	)
	m.AddRow(3, col.New(12))
}

// renderExecution renders the IN WITNESS WHEREOF section as two signature
// columns: the company's blanks on the left, the partner's details and drawn
// signature on the right.
func renderExecution(m core.Maroto, doc *Document) {
	m.AddRow(3, col.New(12))
	m.AddRow(7, text.NewCol(12, "EXECUTION", props.Text{
		Size:  11,
		Style: fontstyle.Bold,
	}))
	m.AddRow(6, text.NewCol(12, "IN WITNESS WHEREOF", props.Text{
		Size:  10,
		Style: fontstyle.Bold,
	}))
	m.AddAutoRow(text.NewCol(12, "The Parties have executed this Agreement on the date first written above.", props.Text{
		Size: 9,
		Top:  1,
	}))
	m.AddRow(2, col.New(12))

	companyCol := col.New(6).Add(
		text.New("FOR THE COMPANY", props.Text{Size: 9, Style: fontstyle.Bold}),
		text.New(sanitizeForPDF(CompanyName), props.Text{Size: 9, Top: 5}),
		text.New("Name: _______________________", props.Text{Size: 9, Top: 11}),
		text.New("Designation: __________________", props.Text{Size: 9, Top: 16}),
		text.New(signatureBlankLine, props.Text{Size: 9, Top: 21}),
		text.New("Date: ________________________", props.Text{Size: 9, Top: 26}),
		text.New("Place: _______________________", props.Text{Size: 9, Top: 31}),
	)

	partnerCol := col.New(6).Add(
		text.New("FOR THE PARTNER (Affiliate Manager)", props.Text{Size: 9, Style: fontstyle.Bold}),
		text.New("Name: "+sanitizeForPDF(doc.SignatureName), props.Text{Size: 9, Top: 5}),
		text.New("PAN: "+doc.PartnerPAN, props.Text{Size: 9, Top: 11}),
		text.New("Aadhaar: "+doc.AadhaarMasked, props.Text{Size: 9, Top: 16}),
	)
	signatureLine := signatureBlankLine
	if doc.Verified {
		signatureLine = "Signature: Digitally signed (Aadhaar verified)"
		if png, err := DecodeSignaturePNG(doc.SignatureDataURL); err == nil {
			partnerCol.Add(image.NewFromBytes(png, extension.Png, props.Rect{
				Top:     21,
				Percent: 45,
			}))
		}
	}
	partnerCol.Add(
		text.New(signatureLine, props.Text{Size: 9, Top: 42}),
		text.New("Date: "+doc.EffectiveDate, props.Text{Size: 9, Top: 47}),
		text.New("Place: "+sanitizeForPDF(doc.Place), props.Text{Size: 9, Top: 52}),
	)

	m.AddRow(60, companyCol, partnerCol)

	m.AddAutoRow(text.NewCol(12, "Note: This Agreement may be executed via digital signature, which shall have the same legal validity as physical signatures.", props.Text{
		Size:  8,
		Style: fontstyle.Italic,
		Top:   2,
	}))
}

func addBlock(m core.Maroto, block Block) {
	switch block.Type {
	case BlockHeading:
		m.AddRow(3, col.New(12))
		m.AddAutoRow(text.NewCol(12, sanitizeForPDF(block.Text), props.Text{
			Size:  11,
			Style: fontstyle.Bold,
			Top:   1,
		}))
	case BlockSubHeading:
		m.AddAutoRow(text.NewCol(12, sanitizeForPDF(block.Text), props.Text{
			Size:  10,
			Style: fontstyle.Bold,
			Top:   1,
		}))
	case BlockBullets:
		for _, item := range block.Items {
			m.AddAutoRow(
				col.New(1),
				text.NewCol(11, "- "+sanitizeForPDF(item), props.Text{Size: 9, Top: 1}),
			)
		}
	case BlockNumbered:
		for _, item := range block.Items {
			m.AddAutoRow(
				col.New(1),
				text.NewCol(11, sanitizeForPDF(item), props.Text{Size: 9, Top: 1}),
			)
		}
	case BlockParagraph:
		for _, line := range strings.Split(block.Text, "\n") {
			m.AddAutoRow(text.NewCol(12, sanitizeForPDF(line), props.Text{Size: 9, Top: 1}))
		}
	case BlockImage:
		addSignatureBlock(m, block.Text)
	}
}

// addSignatureBlock renders the verified-signature stamp: the drawn
// signature image (when present) over an "Aadhaar verified" caption.
func addSignatureBlock(m core.Maroto, dataURL string) {
	if png, err := DecodeSignaturePNG(dataURL); err == nil {
		m.AddRow(22,
			image.NewFromBytesCol(4, png, extension.Png, props.Rect{
				Center:  false,
				Percent: 90,
			}),
			col.New(8),
		)
	}
	m.AddAutoRow(text.NewCol(12, "Signature: Digitally signed (Aadhaar verified)", props.Text{
		Size:  9,
		Style: fontstyle.Italic,
		Top:   1,
	}))
}

// DecodeSignaturePNG extracts the raw PNG bytes from a signature data URI.
func DecodeSignaturePNG(dataURL string) ([]byte, error) {
	const prefix = "data:image/png;base64,"
	if !strings.HasPrefix(dataURL, prefix) {
		return nil, fmt.Errorf("signature is not a PNG data URI")
	}
	raw, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(dataURL, prefix))
	if err != nil {
		return nil, fmt.Errorf("decoding signature image: %w", err)
	}
	return raw, nil
}
