package api

import (
	"strconv"
	"strings"
)

// Paths backend endpointlari (bazaviy URL dan hosil qilinadi)
type Paths struct {
	Logout       string
	GetProduct   string
	AddTarget    string
	DeleteTarget string
	UpdateTarget string // hozircha hech qaysi operatsiya ishlatmaydi
	GetTargets   string
}

// TrimBase oxiridagi bitta "/" ni olib tashlash
func TrimBase(base string) string {
	if strings.HasSuffix(base, "/") {
		return base[:len(base)-1]
	}
	return base
}

// NewPaths bazaviy URL dan endpointlarni yaratish.
// Bo'sh base root-relative yo'llarni beradi.
func NewPaths(base string) Paths {
	base = TrimBase(base)
	return Paths{
		Logout:       base + "/logout",
		GetProduct:   base + "/api/product/",
		AddTarget:    base + "/api/target/",
		DeleteTarget: base + "/api/target/",
		UpdateTarget: base + "/api/target/",
		GetTargets:   base + "/api/targets",
	}
}

// Product mahsulot ma'lumoti URL i
func (p Paths) Product(productCode string) string {
	return p.GetProduct + productCode
}

// Add target qo'shish URL i
func (p Paths) Add(productCode string) string {
	return p.AddTarget + productCode
}

// Delete target o'chirish URL i
func (p Paths) Delete(id uint) string {
	return p.DeleteTarget + strconv.FormatUint(uint64(id), 10)
}
