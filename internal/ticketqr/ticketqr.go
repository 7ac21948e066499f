package ticketqr

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/Domenick1991/alkawthar/internal/domain"
	"github.com/skip2/go-qrcode"
)

const DefaultSize = 256

type Generator struct {
	size int
}

func NewGenerator(size int) *Generator {
	if size <= 0 {
		size = DefaultSize
	}
	return &Generator{size: size}
}

// Payload is the text encoded on a boarding pass:
// AKF|ticket|reference|flight|departure|seat|passport
func Payload(d domain.TicketDetails) string {
	return strings.Join([]string{
		"AKF",
		d.TicketNumber,
		d.BookingReference,
		d.FlightNumber,
		d.DepartureDate + " " + d.DepartureTime,
		d.SeatNumber,
		d.PassportNumber,
	}, "|")
}

func (g *Generator) PNG(d domain.TicketDetails) ([]byte, error) {
	png, err := qrcode.Encode(Payload(d), qrcode.Medium, g.size)
	if err != nil {
		return nil, fmt.Errorf("encode qr for %s: %w", d.TicketNumber, err)
	}
	return png, nil
}

// WriteFile stores the code as <dir>/<ticket>.png and returns the path.
func (g *Generator) WriteFile(d domain.TicketDetails, dir string) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}
	path := filepath.Join(dir, d.TicketNumber+".png")
	if err := qrcode.WriteFile(Payload(d), qrcode.Medium, g.size, path); err != nil {
		return "", fmt.Errorf("write qr for %s: %w", d.TicketNumber, err)
	}
	return path, nil
}
