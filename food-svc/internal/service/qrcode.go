package service

import (
	"fmt"

	"github.com/skip2/go-qrcode"
)

type DefaultQRGenerator struct {
	BaseURL string
}

// Generate encodes a share link to the restaurant's page as a 256px PNG.
func (g DefaultQRGenerator) Generate(restaurantID string) ([]byte, error) {
	link := fmt.Sprintf("%s/restaurant/%s", g.BaseURL, restaurantID)
	return qrcode.Encode(link, qrcode.Medium, 256)
}

var _ QRGenerator = DefaultQRGenerator{}
