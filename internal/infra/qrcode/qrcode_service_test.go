package qrcode

import (
	"strings"
	"testing"

	"showcase/config"
	"showcase/internal/domain/entity"

	"github.com/skip2/go-qrcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewQRCodeService(t *testing.T) {
	tests := []struct {
		name      string
		cfg       *config.Config
		wantSize  int
		wantLevel qrcode.RecoveryLevel
	}{
		{"nil config", nil, defaultSize, qrcode.Medium},
		{"low", &config.Config{QRCode: &config.QRCodeConfig{Size: 128, ErrorCorrectionLevel: "L"}}, 128, qrcode.Low},
		{"quartile", &config.Config{QRCode: &config.QRCodeConfig{Size: 300, ErrorCorrectionLevel: "Q"}}, 300, qrcode.High},
		{"highest", &config.Config{QRCode: &config.QRCodeConfig{ErrorCorrectionLevel: "h"}}, defaultSize, qrcode.Highest},
		{"unknown level", &config.Config{QRCode: &config.QRCodeConfig{ErrorCorrectionLevel: "x"}}, defaultSize, qrcode.Medium},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewQRCodeService(tt.cfg).(*qrcodeService)
			assert.Equal(t, tt.wantSize, svc.size)
			assert.Equal(t, tt.wantLevel, svc.errorCorrectionLevel)
		})
	}
}

func TestQRCodeService_GenerateContactCard(t *testing.T) {
	svc := NewQRCodeService(nil)

	png, err := svc.GenerateContactCard(entity.NewDefaultCompanyInfo())
	require.NoError(t, err)
	require.Greater(t, len(png), 4)

	// PNG magic number
	assert.Equal(t, []byte{0x89, 0x50, 0x4E, 0x47}, png[:4])
}

func TestQRCodeService_GenerateContactCard_NilInfo(t *testing.T) {
	_, err := NewQRCodeService(nil).GenerateContactCard(nil)
	assert.Error(t, err)
}

func TestBuildVCard(t *testing.T) {
	info := entity.NewDefaultCompanyInfo()
	info.SocialMedia.LinkedIn = "https://linkedin.com/company/speedsafe"

	card := BuildVCard(info)

	assert.True(t, strings.HasPrefix(card, "BEGIN:VCARD\r\nVERSION:3.0\r\n"))
	assert.True(t, strings.HasSuffix(card, "END:VCARD\r\n"))
	assert.Contains(t, card, "EMAIL;TYPE=WORK:info@speedsafe.com")
	assert.Contains(t, card, "ADR;TYPE=WORK:;;123 Security Avenue Suite 500;Riyadh;;;Saudi Arabia")
	assert.Contains(t, card, "URL:https://linkedin.com/company/speedsafe")
}

func TestBuildVCard_OmitsEmptyFields(t *testing.T) {
	card := BuildVCard(&entity.CompanyInfo{Phone: entity.CompanyPhone{Main: "+1 555"}})

	assert.Contains(t, card, "TEL;TYPE=WORK,VOICE:+1 555")
	assert.NotContains(t, card, "EMAIL")
	assert.NotContains(t, card, "ADR")
	assert.NotContains(t, card, "URL:")
}

func TestEscapeVCard(t *testing.T) {
	assert.Equal(t, `a\;b\,c\\d`, escapeVCard(`a;b,c\d`))
}
