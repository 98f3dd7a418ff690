package constant

// Page geometry, in points. The first page is ISO A4; every page after it
// keeps the A4 width but runs 1.2x taller.
const (
	PageWidth      = 595.28
	PageHeight     = 841.89
	TallPageHeight = PageHeight * 1.2
	PageMargin     = 50.0
)

// Summary page positions.
const (
	HeaderLogoX     = 50.0
	HeaderLogoY     = 45.0
	HeaderLogoSize  = 50.0
	HeaderTitleX    = 110.0
	HeaderTitleY    = 57.0
	SummaryFooterY  = 750.0
	TableStartX     = 50.0
	TableColSpacing = 120.0
	TableRowHeight  = 30.0
	HrStartX        = 50.0
	HrEndX          = 550.0
)

// Iteration page positions.
const (
	QrImageSize          = 75.0
	SellerCircleDiameter = 75.0
	SellerCircleOffsetX  = 120.0
	RepImageWidth        = 100.0
	RepImageRightMargin  = 40.0
	RepImageY            = 40.0
	EventImageY          = 120.0
	TermsTopMargin       = 100.0
	AppLogoSize          = 70.0
	AppButtonWidth       = 90.0
	AppButtonHeight      = 35.0
)

// Palette.
var (
	ColorText         = [3]int{68, 68, 68}    // #444444
	ColorRuleGray     = [3]int{128, 128, 128} // thin rules on ticket pages
	ColorSellerCircle = [3]int{255, 221, 193} // #FFDDC1
)
