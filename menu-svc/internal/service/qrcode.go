package service

import (
	"fmt"

	"github.com/skip2/go-qrcode"
)

type QRGenerator interface {
	Generate(weekStart string) ([]byte, error)
}

// DefaultQRGenerator encodes a link to the family nutrition view of a week,
// printed on the paper menu posted in each unit.
type DefaultQRGenerator struct {
	BaseURL string
}

func (g DefaultQRGenerator) Generate(weekStart string) ([]byte, error) {
	qrData := fmt.Sprintf("%s/family/nutrition?week=%s", g.BaseURL, weekStart)
	return qrcode.Encode(qrData, qrcode.Medium, 256)
}
