package pptx

const (
	emuPerInch = 914400

	slideWidth  = int64(10.0 * emuPerInch)
	slideHeight = int64(5.625 * emuPerInch)

	marginLeft   = int64(0.5 * emuPerInch)
	contentWidth = int64(9.0 * emuPerInch)

	accentBarHeight = int64(0.12 * emuPerInch)

	// title layout
	coverTitleY      = int64(1.5 * emuPerInch)
	coverTitleHeight = int64(1.1 * emuPerInch)
	coverSubtitleY   = int64(2.8 * emuPerInch)
	coverSubtitleH   = int64(1.2 * emuPerInch)

	// title + content layout
	headingY      = int64(0.35 * emuPerInch)
	headingHeight = int64(0.8 * emuPerInch)
	bodyY         = int64(1.3 * emuPerInch)
	bodyHeight    = int64(3.9 * emuPerInch)
)

// bulletChar is the list marker set on every body paragraph.
const bulletChar = "•"
