package palette

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownFormat is returned by ParseFormat for unsupported names.
var ErrUnknownFormat = errors.New("palette: unknown format")

// Format selects an output encoding.
type Format uint8

const (
	// FormatText is a human-readable listing.
	FormatText Format = iota
	// FormatJSON is an indented JSON document.
	FormatJSON
	// FormatYAML is a YAML document.
	FormatYAML
	// FormatCSS is a block of CSS custom properties.
	FormatCSS
	// FormatGPL is a GIMP palette file.
	FormatGPL
)

var formatNames = [...]string{
	FormatText: "text",
	FormatJSON: "json",
	FormatYAML: "yaml",
	FormatCSS:  "css",
	FormatGPL:  "gpl",
}

// String returns the format name.
func (f Format) String() string {
	if int(f) < len(formatNames) {
		return formatNames[f]
	}
	return fmt.Sprintf("Format(%d)", f)
}

// Formats returns the names of all supported formats.
func Formats() []string {
	return append([]string(nil), formatNames[:]...)
}

// ParseFormat resolves a format name. Matching ignores case and accepts
// "txt", "yml" and "gimp" as aliases.
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "text", "txt", "":
		return FormatText, nil
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	case "css":
		return FormatCSS, nil
	case "gpl", "gimp":
		return FormatGPL, nil
	}
	return 0, fmt.Errorf("%w %q (want one of %s)", ErrUnknownFormat, name, strings.Join(Formats(), ", "))
}

// MarshalText implements encoding.TextMarshaler.
func (f Format) MarshalText() ([]byte, error) {
	return []byte(f.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (f *Format) UnmarshalText(b []byte) error {
	v, err := ParseFormat(string(b))
	if err != nil {
		return err
	}
	*f = v
	return nil
}
