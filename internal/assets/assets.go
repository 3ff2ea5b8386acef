// Package assets loads the static images embedded inline in the declaration.
package assets

import (
	"encoding/base64"
	"log"
	"os"
	"path/filepath"
)

const (
	LogoFile      = "liberdade_medica_logo.webp"
	SignatureFile = "signature.png"
	WatermarkFile = "watermark.png"
)

// Image is a static image kept in memory.
type Image struct {
	Data []byte
	MIME string
}

// Present reports whether the image was loaded.
func (i Image) Present() bool {
	return len(i.Data) > 0
}

// DataURI returns the image as a base64 data URI, or "" when absent.
func (i Image) DataURI() string {
	if !i.Present() {
		return ""
	}
	return "data:" + i.MIME + ";base64," + base64.StdEncoding.EncodeToString(i.Data)
}

// Assets holds the declaration images.
type Assets struct {
	Logo      Image
	Signature Image
	Watermark Image
}

// Load reads the images from dir. Missing files are logged and left empty so
// the document falls back to text or blank space.
func Load(dir string) *Assets {
	return &Assets{
		Logo:      load(dir, LogoFile, "image/webp"),
		Signature: load(dir, SignatureFile, "image/png"),
		Watermark: load(dir, WatermarkFile, "image/png"),
	}
}

func load(dir, name, mime string) Image {
	data, err := os.ReadFile(filepath.Join(dir, name))
	if err != nil {
		log.Printf("[assets] %s not loaded: %v", name, err)
		return Image{}
	}
	return Image{Data: data, MIME: mime}
}
