package entity

// StyleOption kaskadli tanlash uchun variant (rang -> o'lcham)
type StyleOption struct {
	Value    string        `json:"value"`
	Label    string        `json:"label"`
	Children []StyleOption `json:"children,omitempty"`
}

// StylesToOptions variantlarni rang bo'yicha guruhlash.
// Ranglar birinchi uchragan tartibda, har bir rang ichida asl tartib saqlanadi.
func StylesToOptions(styles []Style) []StyleOption {
	options := make([]StyleOption, 0)
	if len(styles) == 0 {
		return options
	}

	index := make(map[string]int)
	for _, style := range styles {
		i, ok := index[style.Colour]
		if !ok {
			i = len(options)
			index[style.Colour] = i
			options = append(options, StyleOption{
				Value:    style.Colour,
				Label:    style.Colour,
				Children: []StyleOption{},
			})
		}
		options[i].Children = append(options[i].Children, StyleOption{
			Value: style.StyleCode,
			Label: style.Size,
		})
	}

	return options
}
