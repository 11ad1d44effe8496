package logo

import "image/color"

// Core palette tuned to the Umami reference mark.
var (
	Primary    = color.NRGBA{R: 58, G: 84, B: 96, A: 255}    // #3a5460
	Background = color.NRGBA{R: 236, G: 238, B: 239, A: 255} // #eceeef
)
