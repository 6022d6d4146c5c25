package service

import "showcase/internal/domain/entity"

// QRCodeService renders scannable codes for public pages.
type QRCodeService interface {
	// GenerateContactCard encodes the company contact details as a vCard PNG.
	GenerateContactCard(info *entity.CompanyInfo) ([]byte, error)
}
