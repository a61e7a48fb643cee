package qr

import (
	"encoding/base64"
	"errors"
	"strings"

	qrcode "github.com/skip2/go-qrcode"
)

// DefaultSize is the pixel size used when no size is configured.
const DefaultSize = 256

var (
	// ErrEmptyContent indicates the content to encode was empty.
	ErrEmptyContent = errors.New("qr: content is empty")
	// ErrEncodeFailed indicates the underlying encoder failed.
	ErrEncodeFailed = errors.New("qr: encode failed")
)

// Encoder renders opaque payloads (provisioning URIs) as QR images.
type Encoder interface {
	// Encode returns a PNG image of content.
	Encode(content string) ([]byte, error)
	// EncodeDataURI returns a data:image/png;base64 URI of content, suitable
	// for embedding directly in an <img> tag.
	EncodeDataURI(content string) (string, error)
}

// PNGEncoder implements Encoder with medium error-correction PNG output.
type PNGEncoder struct {
	size int
}

// NewPNGEncoder returns an Encoder producing size x size pixel images.
func NewPNGEncoder(size int) *PNGEncoder {
	if size <= 0 {
		size = DefaultSize
	}

	return &PNGEncoder{size: size}
}

// Encode returns a PNG image of content.
func (e *PNGEncoder) Encode(content string) ([]byte, error) {
	if strings.TrimSpace(content) == "" {
		return nil, ErrEmptyContent
	}

	png, err := qrcode.Encode(content, qrcode.Medium, e.size)
	if err != nil {
		return nil, errors.Join(ErrEncodeFailed, err)
	}

	return png, nil
}

// EncodeDataURI returns a base64 data URI of the PNG rendering of content.
func (e *PNGEncoder) EncodeDataURI(content string) (string, error) {
	png, err := e.Encode(content)
	if err != nil {
		return "", err
	}

	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(png), nil
}
