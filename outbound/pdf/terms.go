package pdf

import (
	"context"

	"eticket-invoice/common/constant"
	"eticket-invoice/model"
)

const termsSectionGap = 15.0

// staticTerms draws the usage-tip box on the left and the four-section legal
// column on the right, then the app strip below the box. The box height is
// computed from the measured text heights; when it would not fit above the
// bottom of the page, a new page is started first.
func (e *Engine) staticTerms(ctx context.Context, d *doc, order model.Order) {
	usage := order.Header.UsageBox
	pageW, pageH := d.pageSize()
	boxWidth := pageW * 0.45

	d.setFont("", 12)
	titleHeight := d.heightOf(usage.Title, boxWidth-20)
	d.setFont("", 7)
	detailsHeight := d.heightOf(usage.Details, boxWidth-30)
	boxHeight := titleHeight + detailsHeight + 20

	if d.pdf.GetY()+boxHeight+constant.TermsTopMargin > pageH {
		d.addTallPage()
		d.pdf.SetY(constant.TermsTopMargin)
	}

	startX := pageW * 0.05
	startY := d.pdf.GetY() + constant.TermsTopMargin

	d.pdf.SetDrawColor(0, 0, 0)
	d.pdf.SetLineWidth(1)
	d.pdf.Rect(startX, startY, boxWidth, boxHeight, "D")

	d.setTextColor(constant.ColorText)
	d.setFont("", 12)
	d.writeAt(startX+10, startY+10, boxWidth-20, "L", usage.Title)
	d.setFont("", 7)
	d.writeAt(startX+10, startY+titleHeight+15, boxWidth-20, "L", usage.Details)

	rightStartX := startX + boxWidth + 10
	contentWidth := pageW - rightStartX - pageW*0.05
	rightY := startY

	d.setFont("", 10)
	d.writeAt(rightStartX, rightY, contentWidth, "L", constant.TermsHeading)
	rightY += 20

	d.setFont("", 5)
	d.writeAt(rightStartX, rightY, contentWidth, "L", constant.TermsContractClause)
	rightY += d.heightOf(constant.TermsContractClause, contentWidth) + termsSectionGap

	for _, section := range []struct {
		heading string
		clause  string
	}{
		{constant.TermsValidityHeading, constant.TermsValidityClause},
		{constant.TermsCounterfeitHeading, constant.TermsCounterfeitClause},
		{constant.TermsProgressHeading, constant.TermsProgressClause},
	} {
		d.setFont("", 7)
		d.writeAt(rightStartX, rightY, contentWidth, "L", section.heading)
		rightY += 15

		d.setFont("", 5)
		d.writeAt(rightStartX, rightY, contentWidth, "L", section.clause)
		rightY += d.heightOf(section.clause, contentWidth) + termsSectionGap
	}

	// Further flow continues below the left-hand box only; the legal column
	// never pushes the cursor.
	d.pdf.SetY(startY + boxHeight + 10)

	e.appSection(ctx, d)
}

// appSection draws the promotional strip: centered logo, two copy lines, and
// the two store badges wrapped in clickable link regions.
func (e *Engine) appSection(ctx context.Context, d *doc) {
	pageW, _ := d.pageSize()
	customX := 30.0
	contentWidth := pageW * 0.4

	logoX := customX + (contentWidth-constant.AppLogoSize)/2
	d.drawImageFile(ctx, e.logoPath, logoX, d.pdf.GetY(), constant.AppLogoSize, constant.AppLogoSize)

	d.moveDown(6)
	d.pdf.SetY(d.pdf.GetY() + 50)

	d.setFont("", 8)
	d.writeAt(customX+5, d.pdf.GetY(), contentWidth, "C", e.appLineOne)
	d.writeAt(customX+10, d.pdf.GetY(), contentWidth, "C", e.appLineTwo)

	d.moveDown(2)

	totalMargin := (contentWidth - 2*constant.AppButtonWidth) / 3
	iosX := customX + totalMargin
	androidX := iosX + constant.AppButtonWidth + totalMargin
	y := d.pdf.GetY()

	d.drawImageFile(ctx, e.iosBadgePath, iosX, y, constant.AppButtonWidth, constant.AppButtonHeight)
	d.drawImageFile(ctx, e.androidBadgePath, androidX, y, constant.AppButtonWidth, constant.AppButtonHeight)

	d.pdf.LinkString(iosX, y, constant.AppButtonWidth, constant.AppButtonHeight, e.iosStoreUrl)
	d.pdf.LinkString(androidX, y, constant.AppButtonWidth, constant.AppButtonHeight, e.androidStoreUrl)

	d.moveDown(2)
}
