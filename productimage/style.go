package productimage

import "strings"

type Style struct {
	Primary   string
	Secondary string
	Accent    string
}

const defaultCategory = "default"

// Categories lists the styled categories in display order.
var Categories = []string{"electronics", "books", "clothes", "general", defaultCategory}

var styles = map[string]Style{
	"electronics":   {Primary: "#3B82F6", Secondary: "#1E40AF", Accent: "#60A5FA"},
	"books":         {Primary: "#10B981", Secondary: "#047857", Accent: "#34D399"},
	"clothes":       {Primary: "#F59E0B", Secondary: "#D97706", Accent: "#FBBF24"},
	"general":       {Primary: "#8B5CF6", Secondary: "#7C3AED", Accent: "#A78BFA"},
	defaultCategory: {Primary: "#6B7280", Secondary: "#4B5563", Accent: "#9CA3AF"},
}

// StyleFor looks the category up case-insensitively; unknown names get the default style.
func StyleFor(category string) Style {
	if s, ok := styles[strings.ToLower(category)]; ok {
		return s
	}
	return styles[defaultCategory]
}
