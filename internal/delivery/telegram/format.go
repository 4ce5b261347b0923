package telegram

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/yourusername/belle-tracker/internal/domain/entity"
	"github.com/yourusername/belle-tracker/internal/usecase"
)

// parseTrackArgs "/track" argumentlarini ajratish.
// Qiymatlarda bo'sh joy bo'lsa "|" bilan ajratiladi.
func parseTrackArgs(args string) (input, colour, size string, price uint, err error) {
	var parts []string
	if strings.Contains(args, "|") {
		for _, p := range strings.Split(args, "|") {
			parts = append(parts, strings.TrimSpace(p))
		}
	} else {
		parts = strings.Fields(args)
	}

	if len(parts) != 4 {
		return "", "", "", 0, fmt.Errorf("expected 4 values, got %d", len(parts))
	}
	for _, p := range parts {
		if p == "" {
			return "", "", "", 0, fmt.Errorf("values must not be empty")
		}
	}

	parsed, err := strconv.ParseUint(strings.TrimPrefix(parts[3], "¥"), 10, 32)
	if err != nil || parsed == 0 {
		return "", "", "", 0, fmt.Errorf("invalid price %q", parts[3])
	}

	return parts[0], parts[1], parts[2], uint(parsed), nil
}

func parseTargetID(args string) (uint, error) {
	id, err := strconv.ParseUint(strings.TrimPrefix(strings.TrimSpace(args), "#"), 10, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid target id %q", args)
	}
	return uint(id), nil
}

func formatTargets(targets []entity.Target) string {
	if len(targets) == 0 {
		return "No tracked products yet. Use /track to add one."
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("📋 Tracked products (%d):\n\n", len(targets)))
	for _, t := range targets {
		mark := "⏳"
		if t.Reached() {
			mark = "🎯"
		}
		sb.WriteString(fmt.Sprintf("%s #%d %s\n", mark, t.ID, t.Name))
		sb.WriteString(fmt.Sprintf("   %s · %s / %s\n", t.ProductCode, t.Colour, t.Size))
		sb.WriteString(fmt.Sprintf("   ¥%d now, target ¥%d, stock %d\n", t.Price, t.TargetPrice, t.Stock))
	}
	return sb.String()
}

func formatProduct(view *usecase.ProductView) string {
	info := view.Info
	if info.Product == nil {
		return fmt.Sprintf("Product %s has no details.", info.ProductCode)
	}

	styles := make(map[string]entity.Style, len(info.Product.Styles))
	for _, s := range info.Product.Styles {
		styles[s.StyleCode] = s
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("🛋 %s (%s)\n", info.Product.Name, info.ProductCode))
	if len(view.Options) == 0 {
		sb.WriteString("\nNo variants available.")
		return sb.String()
	}

	for _, colour := range view.Options {
		sb.WriteString(fmt.Sprintf("\n🎨 %s\n", colour.Label))
		for _, child := range colour.Children {
			s := styles[child.Value]
			sb.WriteString(fmt.Sprintf("   • %s: ¥%d, stock %d\n", child.Label, s.Price, s.Stock))
		}
	}
	return sb.String()
}

func formatHistory(actions []entity.Action) string {
	if len(actions) == 0 {
		return "No actions yet."
	}

	var sb strings.Builder
	sb.WriteString("🕑 Recent actions:\n\n")
	for _, a := range actions {
		sb.WriteString(fmt.Sprintf("%s %-7s %s\n", a.Timestamp.Format("01-02 15:04"), a.Kind, a.Details))
	}
	return sb.String()
}
