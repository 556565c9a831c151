// file: internals/features/forms/engine/signature.go
package engine

import (
	"bytes"
	"encoding/base64"
	"errors"
	"strings"

	"github.com/chai2010/webp"
	"github.com/disintegration/imaging"
)

const signatureMaxWidth = 600

var ErrBadSignatureImage = errors.New("signature image could not be decoded")

// RenderSignatureImage decodes a drawn signature's data URL and
// re-encodes it as webp for the printable view, scaled down to a
// printable width. Typed signatures never reach this path.
func RenderSignatureImage(dataURL string) ([]byte, error) {
	payload := dataURL
	if i := strings.Index(payload, ","); i >= 0 && strings.HasPrefix(payload, "data:") {
		payload = payload[i+1:]
	}

	raw, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return nil, ErrBadSignatureImage
	}

	img, err := imaging.Decode(bytes.NewReader(raw))
	if err != nil {
		return nil, ErrBadSignatureImage
	}

	if img.Bounds().Dx() > signatureMaxWidth {
		img = imaging.Resize(img, signatureMaxWidth, 0, imaging.Lanczos)
	}

	var buf bytes.Buffer
	if err := webp.Encode(&buf, img, &webp.Options{Lossless: false, Quality: 85}); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
