// Package shade generates tonal palettes from a single base color.
//
// # Overview
//
// shade converts a base color to HSL, holds its hue and saturation fixed,
// and walks lightness linearly from 100 down to 0. The result is an ordered
// list of hex strings, lightest first.
//
// # Quick Start
//
//	import "github.com/gogpu/shade"
//
//	shades, err := shade.Generate("#3366cc", 5)
//	if err != nil {
//	    return err
//	}
//	// shades == ["#ffffff", "#99b3e6", "#3366cc", "#193366", "#000000"]
//
// # Hex Format
//
// Input must be exactly six hexadecimal digits with an optional leading '#'.
// Case is ignored on input. Output is always lowercase "#rrggbb".
//
// # Endpoints
//
// The first shade is always "#ffffff" and the last is always "#000000":
// lightness 100 and 0 collapse every hue to white and black. The base color
// itself only appears in the set when its lightness happens to fall on one
// of the interpolation steps.
//
// # Concurrency
//
// Every function in this package is pure and safe for concurrent use.
//
// # Sub-packages
//
//   - palette: encoders for text, JSON, YAML, CSS and GIMP palette output
//   - swatch: PNG swatch sheets rendered with github.com/gogpu/gg
package shade

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 1

	// VersionPatch is the patch version
	VersionPatch = 0
)
