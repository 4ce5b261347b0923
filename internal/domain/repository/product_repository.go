package repository

import (
	"context"

	"github.com/yourusername/belle-tracker/internal/domain/entity"
)

// ProductAPI mahsulot ma'lumotini olish uchun interface
type ProductAPI interface {
	// FetchProductInfo mahsulot kodi bo'yicha nom va variantlarni olish
	FetchProductInfo(ctx context.Context, productCode string) (*entity.ProductInfo, error)
}
