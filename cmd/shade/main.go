// Command shade generates tonal palettes from a base color.
//
// Usage:
//
//	shade generate --base "#3366cc" --count 10 --format css
//	shade swatch --base "#3366cc" --count 10 --out shades.png
//	shade convert "#3366cc" ff0000
package main

import (
	"log"
	"os"
)

func main() {
	log.SetFlags(0)
	if err := newApp(os.Stdout, os.Stderr).Run(os.Args); err != nil {
		log.Fatalf("shade: %v", err)
	}
}
