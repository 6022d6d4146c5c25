package repository

import (
	"context"
	"errors"

	"showcase/internal/domain/entity"
)

var (
	// ErrCompanyInfoNotFound is returned by Get before the singleton exists.
	ErrCompanyInfoNotFound = errors.New("company info not found")
	// ErrCompanyInfoExists is returned by Create when another writer created the singleton first.
	ErrCompanyInfoExists = errors.New("company info already exists")
)

// CompanyInfoRepository stores the single company info record.
type CompanyInfoRepository interface {
	Get(ctx context.Context) (*entity.CompanyInfo, error)
	Create(ctx context.Context, info *entity.CompanyInfo) error
	Update(ctx context.Context, info *entity.CompanyInfo) error
}
