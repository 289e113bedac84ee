package agreement

import (
	"regexp"
	"strings"

	"auditveda/models"
)

// BlockType identifies how a template fragment should be rendered.
type BlockType string

const (
	BlockHeading    BlockType = "heading"
	BlockSubHeading BlockType = "subheading"
	BlockBullets    BlockType = "bullets"
	BlockNumbered   BlockType = "numbered"
	BlockParagraph  BlockType = "paragraph"
	BlockImage      BlockType = "image"
)

// Block is one renderable unit of the assembled agreement. List blocks carry
// their entries in Items; all other blocks use Text. An image block's Text
// holds the signature data URI (possibly empty).
type Block struct {
	Type  BlockType `json:"type"`
	Text  string    `json:"text,omitempty"`
	Items []string  `json:"items,omitempty"`
}

// Document is the fully assembled agreement: typed blocks for structured
// rendering plus the flattened text used for PDF pagination.
type Document struct {
	Title         string `json:"title"`
	Version       string `json:"version"`
	EffectiveDate string `json:"effectiveDate"`

	PartnerName    string `json:"partnerName"`
	PartnerPAN     string `json:"partnerPan"`
	PartnerAddress string `json:"partnerAddress"`
	AadhaarMasked  string `json:"aadhaarMasked"`
	Jurisdiction   string `json:"jurisdiction"`
	Place          string `json:"place"`
	SignatureName  string `json:"signatureName"`

	Verified         bool   `json:"verified"`
	SignatureDataURL string `json:"-"`

	Blocks    []Block `json:"blocks"`
	PlainText string  `json:"-"`
}

// verifiedStampMarker replaces the partner signature slot when the partner's
// Aadhaar is verified; the classifier turns it into an image block.
const verifiedStampMarker = "[[VERIFIED_SIGNATURE_STAMP]]"

const defaultJurisdiction = "Mumbai or Thane, Maharashtra"

var (
	headingNumberedRe = regexp.MustCompile(`^\d+\.\s+(.+)$`)
	listItemRe        = regexp.MustCompile(`^(\([a-z]\)|\d+\.(\d+)?)\s`)
	subHeadingRe      = regexp.MustCompile(`^(Version\s|Scenario\s\d)`)
)

// Assemble fills the agreement template with the partner's details and
// classifies the result into typed blocks. Unfilled fields render as blank
// rules so a partial preview is still a coherent document.
func Assemble(data models.AgreementData) *Document {
	effectiveDate := FormatAgreementDate(data.Date)

	signatureName := strings.TrimSpace(data.SignatureName)
	if signatureName == "" {
		signatureName = strings.TrimSpace(data.FullName)
	}
	partnerPAN := orBlank(strings.ToUpper(strings.TrimSpace(data.PANNumber)))
	partnerAddress := orBlank(ComposeAddress(data.Address, data.City, data.State))
	jurisdiction := strings.TrimSpace(data.Jurisdiction)
	if jurisdiction == "" {
		jurisdiction = defaultJurisdiction
	}
	aadhaarMasked := orBlank(MaskAadhaar(data.AadhaarNumber))
	place := orBlank(strings.TrimSpace(data.Place))

	replacer := strings.NewReplacer(
		tokenEffectiveDate, effectiveDate,
		tokenPartnerName, orBlank(strings.TrimSpace(data.FullName)),
		tokenPartnerPAN, partnerPAN,
		tokenPartnerAddress, partnerAddress,
		tokenPartnerAadhaar, aadhaarMasked,
		tokenJurisdiction, jurisdiction,
		tokenPartnerPlace, place,
		tokenSignatureName, orBlank(signatureName),
	)
	body := replacer.Replace(agreementTemplate)

	slot := signatureBlankLine
	plainSlot := signatureBlankLine
	if data.AadhaarVerified {
		slot = verifiedStampMarker
		plainSlot = "Signature: Digitally signed (Aadhaar verified)"
	}

	doc := &Document{
		Title:            "AFFILIATE PARTNER AGREEMENT",
		Version:          TemplateVersion,
		EffectiveDate:    effectiveDate,
		PartnerName:      orBlank(strings.TrimSpace(data.FullName)),
		PartnerPAN:       partnerPAN,
		PartnerAddress:   partnerAddress,
		AadhaarMasked:    aadhaarMasked,
		Jurisdiction:     jurisdiction,
		Place:            place,
		SignatureName:    orBlank(signatureName),
		Verified:         data.AadhaarVerified,
		SignatureDataURL: data.SignatureDataURL,
	}
	doc.Blocks = classify(strings.ReplaceAll(body, tokenSignatureSlot, slot), data.SignatureDataURL)
	doc.PlainText = strings.ReplaceAll(body, tokenSignatureSlot, plainSlot)
	return doc
}

func orBlank(s string) string {
	if s == "" {
		return blankRule
	}
	return s
}

// classify splits the substituted template into typed blocks by
// fixed-pattern line matching. Consecutive list lines of the same kind
// collapse into a single list block.
func classify(body, signatureDataURL string) []Block {
	var blocks []Block
	var para []string
	var items []string
	var itemType BlockType

	flushPara := func() {
		if len(para) > 0 {
			blocks = append(blocks, Block{Type: BlockParagraph, Text: strings.Join(para, "\n")})
			para = nil
		}
	}
	flushItems := func() {
		if len(items) > 0 {
			blocks = append(blocks, Block{Type: itemType, Items: items})
			items = nil
		}
	}

	for _, line := range strings.Split(body, "\n") {
		line = strings.TrimRight(line, " \t")
		switch {
		case line == "":
			flushPara()
			flushItems()
		case line == verifiedStampMarker:
			flushPara()
			flushItems()
			blocks = append(blocks, Block{Type: BlockImage, Text: signatureDataURL})
		case isHeading(line):
			flushPara()
			flushItems()
			blocks = append(blocks, Block{Type: BlockHeading, Text: line})
		case subHeadingRe.MatchString(line):
			flushPara()
			flushItems()
			blocks = append(blocks, Block{Type: BlockSubHeading, Text: line})
		case strings.HasPrefix(line, "• "):
			flushPara()
			if itemType != BlockBullets {
				flushItems()
				itemType = BlockBullets
			}
			items = append(items, strings.TrimPrefix(line, "• "))
		case listItemRe.MatchString(line):
			flushPara()
			if itemType != BlockNumbered {
				flushItems()
				itemType = BlockNumbered
			}
			items = append(items, line)
		default:
			flushItems()
			para = append(para, line)
		}
	}
	flushPara()
	flushItems()
	return blocks
}

// isHeading reports whether a line is a section heading: either a top-level
// numbered title ("12. DATA PROTECTION ...") or an all-caps line. Lines with
// any lowercase letters are never headings.
func isHeading(line string) bool {
	text := line
	if m := headingNumberedRe.FindStringSubmatch(line); m != nil {
		text = m[1]
	}
	hasLetter := false
	for _, r := range text {
		if r >= 'a' && r <= 'z' {
			return false
		}
		if r >= 'A' && r <= 'Z' {
			hasLetter = true
		}
	}
	return hasLetter
}
