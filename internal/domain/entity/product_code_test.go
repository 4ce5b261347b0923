package entity

import "testing"

func TestProductCodeFromURL(t *testing.T) {
	tests := []struct {
		name string
		url  string
		want string
	}{
		{"empty", "", ""},
		{"other host", "https://example.com/foo", ""},
		{"https trailing slash", "https://www.bellemaison.jp/shop/commodity/0000/ABC1234/", "ABC1234"},
		{"https no trailing slash", "https://www.bellemaison.jp/shop/commodity/0000/ABC1234", "ABC1234"},
		{"http", "http://www.bellemaison.jp/shop/commodity/0000/1234567/", "1234567"},
		{"no scheme", "www.bellemaison.jp/shop/commodity/0000/1234567", "1234567"},
		{"bare host", "bellemaison.jp/shop/commodity/0000/1234567/", "1234567"},
		{"query string", "https://www.bellemaison.jp/shop/commodity/0000/1234567/?sc_i=top", "1234567"},
		{"segment glued to prefix", "https://www.bellemaison.jp/shop/commodity/0000ABC1234/", ""},
		{"short segment", "https://www.bellemaison.jp/shop/commodity/0000/ABC12/", ""},
		{"long segment", "https://www.bellemaison.jp/shop/commodity/0000/ABC123456/", ""},
		{"non-ascii segment", "https://www.bellemaison.jp/shop/commodity/0000/あいうえおかき/", "あいうえおかき"},
		{"non-ascii too long", "https://www.bellemaison.jp/shop/commodity/0000/あいうえおかきく/", ""},
		{"punctuation passes", "https://www.bellemaison.jp/shop/commodity/0000/--__--./", "--__--."},
		{"upper case host", "HTTPS://WWW.BELLEMAISON.JP/shop/commodity/0000/1234567/", ""},
		{"wrong path", "https://www.bellemaison.jp/shop/item/0000/1234567/", ""},
		{"double trailing slash", "https://www.bellemaison.jp/shop/commodity/0000/1234567//", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ProductCodeFromURL(tt.url); got != tt.want {
				t.Errorf("ProductCodeFromURL(%q) = %q, wanted %q", tt.url, got, tt.want)
			}
		})
	}
}

func TestIsVendorURL(t *testing.T) {
	if !IsVendorURL("bellemaison.jp/shop/commodity/0000") {
		t.Errorf("bare prefix not recognised")
	}
	if IsVendorURL("ftp://www.bellemaison.jp/shop/commodity/0000/1234567") {
		t.Errorf("ftp scheme should be rejected")
	}
}

func TestResolveProductCode(t *testing.T) {
	tests := map[string]string{
		"1234567":   "1234567",
		" 1234567 ": "1234567",
		"https://www.bellemaison.jp/shop/commodity/0000/ABC1234/": "ABC1234",
		"あいうえおかき":                                                 "あいうえおかき",
		"123456":                                                  "",
		"12/4567":                                                 "",
		"https://x.jp/":                                           "",
		"":                                                        "",
	}
	for in, want := range tests {
		if got := ResolveProductCode(in); got != want {
			t.Errorf("ResolveProductCode(%q) = %q, wanted %q", in, got, want)
		}
	}
}
