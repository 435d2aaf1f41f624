package constants

import "time"

// Loop & Pacing
const (
	TickInterval = 100 * time.Millisecond // Control loop poll interval

	DefaultMode1Delay = 100 * time.Millisecond // Settle time between mode 1 interactions
	DefaultMode2Delay = 170 * time.Millisecond // Settle time between mode 2 interactions
)

// Prices
const (
	DefaultMode1IdealPrice = 2000000
	DefaultMode2IdealPrice = 100
)

// Sampling & OCR
const (
	PriceThreshold = 55  // Binarization threshold for the price region
	NameThreshold  = 100 // Binarization threshold for the item name region

	OCRUpscale = 2 // Scale factor applied before thresholding (1 = off)

	PriceWhitelist = "0123456789,." // Characters tesseract may emit for prices
	PriceLanguage  = "eng"
	LabelLanguage  = "chi_sim"
)

// Config Keys
const (
	KeyMode1PriceRegion = "mode1_item_price_range"
	KeyMode2PriceRegion = "mode2_item_price_range"
	KeyItemNameRegion   = "item_name_range"
	KeyMode             = "mode"
)

// Files
const (
	ConfigFile   = "config.json"
	LedgerFile   = "logs.txt"
	ScratchDir   = "images"
	PriceImage   = "item_price.png"
	NameImage    = "item_name.png"
	LogHistory   = 100 // Lines kept in the UI log pane
	CancelKey    = "esc"
	Mode1OpenKey = "l"
)

// Screen positions as fractions of the screen size (x, y).
var (
	Mode1OpenPos     = [2]float64{0.1214, 0.4731}
	Mode1PurchasePos = [2]float64{0.8214, 0.7954}

	Mode2OpenPos      = [2]float64{0.2786, 0.2361}
	Mode2PresetPos    = [2]float64{0.9078, 0.7194} // Quantity preset (200)
	Mode2IncrementPos = [2]float64{0.9313, 0.7194} // "+" button
	Mode2PurchasePos  = [2]float64{0.8495, 0.7843}
)

// Mode2IncrementClicks is how many times "+" is pressed after the preset.
const Mode2IncrementClicks = 2
