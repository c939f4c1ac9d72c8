// Package palette wraps a generated shade set with its inputs and encodes it
// for other tools.
//
// Supported formats:
//   - text: one shade per line, optionally with a truecolor swatch
//   - json and yaml: structured documents with index, hex and lightness
//   - css: custom properties on :root
//   - gpl: GIMP palette
//
// Example:
//
//	p, err := palette.New("#3366cc", 10)
//	if err != nil {
//	    return err
//	}
//	err = palette.Encode(os.Stdout, p, palette.FormatCSS)
package palette
