package entity

import (
	"strings"
	"unicode/utf8"
)

// ProductCodeLength bellemaison mahsulot kodi uzunligi
const ProductCodeLength = 7

var vendorURLPrefixes = []string{
	"https://www.bellemaison.jp/shop/commodity/0000",
	"http://www.bellemaison.jp/shop/commodity/0000",
	"www.bellemaison.jp/shop/commodity/0000",
	"bellemaison.jp/shop/commodity/0000",
}

// IsVendorURL URL bellemaison mahsulot sahifasi ekanligini tekshirish
func IsVendorURL(url string) bool {
	for _, prefix := range vendorURLPrefixes {
		if strings.HasPrefix(url, prefix) {
			return true
		}
	}
	return false
}

// ProductCodeFromURL mahsulot sahifasi URL idan 7 belgili kodni ajratib olish.
// Tanilmagan URL uchun bo'sh satr qaytaradi.
func ProductCodeFromURL(url string) string {
	if url == "" || !IsVendorURL(url) {
		return ""
	}

	path, _, _ := strings.Cut(url, "/?")

	parts := strings.Split(path, "/")
	offset := 1
	if parts[len(parts)-1] == "" {
		offset++
	}
	if len(parts) < offset {
		return ""
	}

	code := parts[len(parts)-offset]
	// alfanumerik tekshiruv yo'q, faqat uzunlik
	if utf8.RuneCountInString(code) != ProductCodeLength {
		return ""
	}
	return code
}

// ResolveProductCode foydalanuvchi kiritgan URL yoki 7 belgili kodni kodga aylantirish
func ResolveProductCode(input string) string {
	input = strings.TrimSpace(input)
	if IsVendorURL(input) {
		return ProductCodeFromURL(input)
	}
	if utf8.RuneCountInString(input) == ProductCodeLength && !strings.ContainsAny(input, "/? ") {
		return input
	}
	return ""
}
