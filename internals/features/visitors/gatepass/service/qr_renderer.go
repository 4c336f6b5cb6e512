// file: internals/features/visitors/gatepass/service/qr_renderer.go
package service

import (
	"bytes"
	"encoding/base64"
	"image/png"

	"github.com/disintegration/imaging"
	qrcode "github.com/skip2/go-qrcode"
)

// RenderedPass: hasil render QR untuk satu pass.
// Image dipakai di halaman pass tamu, Thumb di tabel list reception.
type RenderedPass struct {
	Image string // data URL PNG ukuran penuh
	Thumb string // data URL PNG kecil
}

// PassRenderer adalah boundary kolaborator QR. Registry hanya bergantung
// pada interface ini supaya bisa di-mock di test.
type PassRenderer interface {
	Render(text string) (RenderedPass, error)
}

/* ===================== Implementasi QR ===================== */

type QRPassRenderer struct {
	Size      int // sisi gambar utama (px)
	ThumbSize int // sisi thumbnail (px)
}

func NewQRPassRenderer(size, thumbSize int) *QRPassRenderer {
	if size <= 0 {
		size = 320
	}
	if thumbSize <= 0 {
		thumbSize = 96
	}
	return &QRPassRenderer{Size: size, ThumbSize: thumbSize}
}

func (r *QRPassRenderer) Render(text string) (RenderedPass, error) {
	// error correction Medium, sama dengan pass generasi sebelumnya
	raw, err := qrcode.Encode(text, qrcode.Medium, r.Size)
	if err != nil {
		return RenderedPass{}, err
	}

	img, err := png.Decode(bytes.NewReader(raw))
	if err != nil {
		return RenderedPass{}, err
	}

	// thumbnail: nearest neighbor biar kotak QR tetap tajam
	thumbImg := imaging.Resize(img, r.ThumbSize, r.ThumbSize, imaging.NearestNeighbor)
	var thumbBuf bytes.Buffer
	if err := png.Encode(&thumbBuf, thumbImg); err != nil {
		return RenderedPass{}, err
	}

	return RenderedPass{
		Image: toDataURL(raw),
		Thumb: toDataURL(thumbBuf.Bytes()),
	}, nil
}

func toDataURL(pngBytes []byte) string {
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(pngBytes)
}
