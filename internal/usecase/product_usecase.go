package usecase

import (
	"context"
	"errors"

	"github.com/yourusername/belle-tracker/internal/domain/entity"
	"github.com/yourusername/belle-tracker/internal/domain/repository"
)

// ErrUnrecognizedProduct URL ham, kod ham emas
var ErrUnrecognizedProduct = errors.New("unrecognized product url or code")

// ProductView mahsulot ma'lumoti va guruhlangan variantlar
type ProductView struct {
	Info    *entity.ProductInfo
	Options []entity.StyleOption
}

// ProductUseCase mahsulot ma'lumoti bilan bog'liq logika
type ProductUseCase interface {
	// ResolveCode URL yoki koddan mahsulot kodini olish
	ResolveCode(input string) (string, error)

	// Lookup mahsulotni olib, variantlarini guruhlash
	Lookup(ctx context.Context, input string) (*ProductView, error)
}

type productUseCase struct {
	api repository.ProductAPI
}

// NewProductUseCase yangi ProductUseCase yaratish
func NewProductUseCase(api repository.ProductAPI) ProductUseCase {
	return &productUseCase{
		api: api,
	}
}

// ResolveCode URL yoki koddan mahsulot kodini olish
func (u *productUseCase) ResolveCode(input string) (string, error) {
	code := entity.ResolveProductCode(input)
	if code == "" {
		return "", ErrUnrecognizedProduct
	}
	return code, nil
}

// Lookup backend xatoligi o'zgarishsiz qaytariladi
func (u *productUseCase) Lookup(ctx context.Context, input string) (*ProductView, error) {
	code, err := u.ResolveCode(input)
	if err != nil {
		return nil, err
	}

	info, err := u.api.FetchProductInfo(ctx, code)
	if err != nil {
		return nil, err
	}

	return &ProductView{
		Info:    info,
		Options: entity.StylesToOptions(info.Styles()),
	}, nil
}
