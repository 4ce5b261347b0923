package entity

import (
	"bytes"
	"encoding/json"
)

// Style mahsulotning rang+o'lcham varianti
type Style struct {
	StyleCode string `json:"StyleCode"`
	ImageUrl  string `json:"ImageUrl"`
	Colour    string `json:"Colour"`
	Size      string `json:"Size"`
	Price     uint   `json:"Price"`
	Stock     uint   `json:"Stock"`
}

// Product mahsulot nomi va variantlari
type Product struct {
	Name   string  `json:"Name"`
	Styles []Style `json:"Styles"`
}

// ProductInfo backend /api/product javobi
type ProductInfo struct {
	ProductCode string   `json:"ProductCode"`
	Product     *Product `json:"Product"`
	Err         ErrText  `json:"Err"`
}

// ErrText backend xatolik matni.
// Backend error qiymatini ba'zan obyekt yoki null sifatida yuboradi, ular bo'sh satrga aylanadi.
type ErrText string

// UnmarshalJSON faqat string qiymatni saqlaydi
func (e *ErrText) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || data[0] != '"' {
		*e = ""
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	*e = ErrText(s)
	return nil
}

// Styles variantlar ro'yxati (Product nil bo'lsa bo'sh)
func (p *ProductInfo) Styles() []Style {
	if p == nil || p.Product == nil {
		return nil
	}
	return p.Product.Styles
}
