package qrcode

import (
	"strings"

	"showcase/config"
	"showcase/internal/domain/entity"
	"showcase/internal/domain/service"
	"showcase/internal/errors"

	"github.com/skip2/go-qrcode"
)

const (
	defaultSize    = 256
	vCardOrgName   = "SpeedSafe"
	vCardLineBreak = "\r\n"
)

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
}

// NewQRCodeService creates a new QR code service instance
func NewQRCodeService(cfg *config.Config) service.QRCodeService {
	size := defaultSize
	levelName := ""
	if cfg != nil && cfg.QRCode != nil {
		if cfg.QRCode.Size > 0 {
			size = cfg.QRCode.Size
		}
		levelName = cfg.QRCode.ErrorCorrectionLevel
	}

	return &qrcodeService{
		size:                 size,
		errorCorrectionLevel: recoveryLevel(levelName),
	}
}

func recoveryLevel(name string) qrcode.RecoveryLevel {
	switch strings.ToUpper(name) {
	case "L":
		return qrcode.Low
	case "Q":
		return qrcode.High
	case "H":
		return qrcode.Highest
	default:
		return qrcode.Medium
	}
}

// GenerateContactCard renders the company contact details as a vCard QR PNG.
func (s *qrcodeService) GenerateContactCard(info *entity.CompanyInfo) ([]byte, error) {
	if info == nil {
		return nil, errors.New("company info is required")
	}

	pngBytes, err := qrcode.Encode(BuildVCard(info), s.errorCorrectionLevel, s.size)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate QR code")
	}

	return pngBytes, nil
}

// BuildVCard formats a vCard 3.0 payload. Empty fields are omitted.
func BuildVCard(info *entity.CompanyInfo) string {
	lines := []string{
		"BEGIN:VCARD",
		"VERSION:3.0",
		"FN:" + escapeVCard(vCardOrgName),
		"ORG:" + escapeVCard(vCardOrgName),
	}

	appendIf := func(prefix, value string) {
		if value = strings.TrimSpace(value); value != "" {
			lines = append(lines, prefix+escapeVCard(value))
		}
	}

	appendIf("TEL;TYPE=WORK,VOICE:", info.Phone.Main)
	appendIf("TEL;TYPE=WORK,MSG:", info.Phone.Support)
	appendIf("EMAIL;TYPE=WORK:", info.Email.General)

	addr := info.Address
	if addr.Street != "" || addr.City != "" || addr.Country != "" {
		street := strings.TrimSpace(strings.Join([]string{addr.Street, addr.Suite}, " "))
		lines = append(lines, "ADR;TYPE=WORK:;;"+
			escapeVCard(street)+";"+
			escapeVCard(addr.City)+";;;"+
			escapeVCard(addr.Country))
	}

	appendIf("URL:", info.SocialMedia.LinkedIn)
	lines = append(lines, "END:VCARD")

	return strings.Join(lines, vCardLineBreak) + vCardLineBreak
}

func escapeVCard(s string) string {
	return strings.NewReplacer(`\`, `\\`, ";", `\;`, ",", `\,`, "\n", `\n`).Replace(s)
}
