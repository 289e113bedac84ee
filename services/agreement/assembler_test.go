package agreement

import (
	"strings"
	"testing"

	"auditveda/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func filledData() models.AgreementData {
	return models.AgreementData{
		FullName:        "Asha Kumar",
		PANNumber:       "ABCDE1234F",
		Address:         "12 MG Road",
		City:            "Pune",
		State:           "Maharashtra",
		Date:            "2026-01-28",
		Jurisdiction:    "Mumbai, Maharashtra",
		Place:           "Navi Mumbai",
		AadhaarNumber:   "123456789012",
		AadhaarVerified: true,
		SignatureName:   "Asha R Kumar",
		SignatureDataURL: "data:image/png;base64," +
			"iVBORw0KGgoAAAANSUhEUgAAAAEAAAABCAYAAAAfFcSJAAAADUlEQVR42mP8z8BQDwAEhQGAhKmMIQAAAABJRU5ErkJggg==",
		HasAgreed: true,
	}
}

func TestAssembleSubstitutesPartnerDetails(t *testing.T) {
	doc := Assemble(filledData())

	assert.Equal(t, "28th day of January 2026", doc.EffectiveDate)
	assert.Equal(t, "Asha Kumar", doc.PartnerName)
	assert.Equal(t, "ABCDE1234F", doc.PartnerPAN)
	assert.Equal(t, "12 MG Road, Pune, Maharashtra", doc.PartnerAddress)
	assert.Equal(t, "XXXX-XXXX-9012", doc.AadhaarMasked)
	assert.Equal(t, "Asha R Kumar", doc.SignatureName)

	assert.Contains(t, doc.PlainText, "28th day of January 2026")
	assert.Contains(t, doc.PlainText, "PAN No: ABCDE1234F")
	assert.Contains(t, doc.PlainText, "12 MG Road, Pune, Maharashtra")
	assert.NotContains(t, doc.PlainText, "{{")
	// The full number never appears, only the masked form.
	assert.NotContains(t, doc.PlainText, "123456789012")
	assert.Contains(t, doc.PlainText, "XXXX-XXXX-9012")
}

func TestAssemblePlaceRendersInExecutionBlock(t *testing.T) {
	doc := Assemble(filledData())

	assert.Equal(t, "Navi Mumbai", doc.Place)
	assert.Contains(t, doc.PlainText, "Place: Navi Mumbai")

	blank := Assemble(models.AgreementData{})
	assert.Equal(t, blankRule, blank.Place)
	assert.NotContains(t, blank.PlainText, "{{")
}

func TestAssembleBlankFieldsRenderAsRules(t *testing.T) {
	doc := Assemble(models.AgreementData{})

	assert.Equal(t, blankRule, doc.PartnerPAN)
	assert.Equal(t, blankRule, doc.PartnerAddress)
	assert.Equal(t, defaultJurisdiction, doc.Jurisdiction)
	assert.Contains(t, doc.PlainText, blankRule)
	assert.Contains(t, doc.PlainText, defaultJurisdiction)
}

func TestAssembleSignatureNameFallsBackToFullName(t *testing.T) {
	data := filledData()
	data.SignatureName = ""
	doc := Assemble(data)
	assert.Equal(t, "Asha Kumar", doc.SignatureName)
}

func TestAssembleClassifiesBlocks(t *testing.T) {
	doc := Assemble(filledData())
	require.NotEmpty(t, doc.Blocks)

	assert.Equal(t, BlockHeading, doc.Blocks[0].Type)
	assert.Equal(t, "AFFILIATE PARTNER AGREEMENT", doc.Blocks[0].Text)
	assert.Equal(t, BlockSubHeading, doc.Blocks[1].Type)
	assert.True(t, strings.HasPrefix(doc.Blocks[1].Text, "Version"))

	var sawBullets, sawNumbered, sawDefinitionsHeading bool
	for _, b := range doc.Blocks {
		switch b.Type {
		case BlockBullets:
			sawBullets = true
			for _, item := range b.Items {
				assert.False(t, strings.HasPrefix(item, "•"))
			}
		case BlockNumbered:
			sawNumbered = true
		case BlockHeading:
			if b.Text == "1. DEFINITIONS" {
				sawDefinitionsHeading = true
			}
		}
	}
	assert.True(t, sawBullets)
	assert.True(t, sawNumbered)
	assert.True(t, sawDefinitionsHeading)
}

func TestAssembleVerifiedStamp(t *testing.T) {
	data := filledData()
	doc := Assemble(data)

	var images []Block
	for _, b := range doc.Blocks {
		if b.Type == BlockImage {
			images = append(images, b)
		}
	}
	require.Len(t, images, 1, "exactly one signature stamp when verified")
	assert.Equal(t, data.SignatureDataURL, images[0].Text)
	assert.Contains(t, doc.PlainText, "Digitally signed (Aadhaar verified)")

	// The company slot still renders as a blank signature line.
	assert.Contains(t, doc.PlainText, signatureBlankLine)
}

func TestAssembleUnverifiedHasNoStamp(t *testing.T) {
	data := filledData()
	data.AadhaarVerified = false
	doc := Assemble(data)

	for _, b := range doc.Blocks {
		assert.NotEqual(t, BlockImage, b.Type)
	}
	assert.NotContains(t, doc.PlainText, "Digitally signed")
}

func TestAssembleJurisdictionOverride(t *testing.T) {
	data := filledData()
	data.Jurisdiction = "Bengaluru, Karnataka"
	doc := Assemble(data)
	assert.Contains(t, doc.PlainText, "courts at Bengaluru, Karnataka shall have exclusive jurisdiction")
}
