package services

import (
	"bytes"
	"encoding/base64"
	"image/png"

	"github.com/skip2/go-qrcode"
)

// QRService renders checkout links as scannable images so a merchant can show
// the hosted payment page on another device.
type QRService struct{}

func NewQRService() *QRService {
	return &QRService{}
}

// EncodeURL returns a base64 PNG QR code for the given URL.
func (s *QRService) EncodeURL(target string) (string, error) {
	qr, err := qrcode.New(target, qrcode.Medium)
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, qr.Image(256)); err != nil {
		return "", err
	}

	return base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}
