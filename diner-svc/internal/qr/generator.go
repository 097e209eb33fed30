package qr

import (
	"fmt"

	"foodfriend/diner-svc/internal/domain"

	"github.com/skip2/go-qrcode"
)

type Generator interface {
	Generate(table int) ([]byte, error)
}

// TableGenerator renders the code printed on each table.
type TableGenerator struct {
	Size int
}

func Payload(table int) string {
	return fmt.Sprintf("FOODFRIEND-TABLE-%d", table)
}

func (g TableGenerator) Generate(table int) ([]byte, error) {
	if !domain.ValidTable(table) {
		return nil, domain.ErrInvalidTable
	}
	size := g.Size
	if size <= 0 {
		size = 256
	}
	return qrcode.Encode(Payload(table), qrcode.Medium, size)
}
