package qr

import (
	"bytes"
	"encoding/base64"
	"errors"
	"image/png"
	"strings"
	"testing"
)

func TestEncode(t *testing.T) {
	e := NewPNGEncoder(256)

	img, err := e.Encode("otpauth://totp/TwoGate:alice?secret=ABC")
	if err != nil {
		t.Fatalf("encode: %v", err)
	}

	decoded, err := png.Decode(bytes.NewReader(img))
	if err != nil {
		t.Fatalf("result is not a valid PNG: %v", err)
	}
	if decoded.Bounds().Dx() != 256 || decoded.Bounds().Dy() != 256 {
		t.Errorf("image is %dx%d, want 256x256", decoded.Bounds().Dx(), decoded.Bounds().Dy())
	}
}

func TestEncodeEmptyContent(t *testing.T) {
	e := NewPNGEncoder(0)

	for _, content := range []string{"", "   \t\n"} {
		if _, err := e.Encode(content); !errors.Is(err, ErrEmptyContent) {
			t.Errorf("Encode(%q) error = %v, want ErrEmptyContent", content, err)
		}
	}
}

func TestEncodeDataURI(t *testing.T) {
	e := NewPNGEncoder(DefaultSize)

	uri, err := e.EncodeDataURI("otpauth://totp/TwoGate:alice?secret=ABC")
	if err != nil {
		t.Fatalf("encode data uri: %v", err)
	}

	const prefix = "data:image/png;base64,"
	if !strings.HasPrefix(uri, prefix) {
		t.Fatalf("uri %q is missing the data-uri prefix", uri[:40])
	}

	raw, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(uri, prefix))
	if err != nil {
		t.Fatalf("payload is not valid base64: %v", err)
	}
	if _, err := png.Decode(bytes.NewReader(raw)); err != nil {
		t.Fatalf("payload is not a valid PNG: %v", err)
	}
}

func TestDefaultSizeFallback(t *testing.T) {
	e := NewPNGEncoder(-1)
	if e.size != DefaultSize {
		t.Fatalf("size = %d, want %d", e.size, DefaultSize)
	}
}
