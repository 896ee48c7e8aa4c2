package descriptions

import (
	"fmt"
	"strings"
)

var templates = map[string]string{
	"electronics": "A quality %s perfect for students and tech enthusiasts. Well-maintained and ready to use.",
	"books":       "This %s is in good condition and perfect for your studies. Great value for money.",
	"clothes":     "Stylish %s in excellent condition. Perfect for campus life and casual wear.",
	"general":     "Quality %s in good condition. Great value for students and campus community.",
}

const fallbackTemplate = "Quality %s in good condition. Perfect for students."

// Default is the templated description used when generation is unavailable.
func Default(name, category string) string {
	tmpl, ok := templates[strings.ToLower(category)]
	if !ok {
		tmpl = fallbackTemplate
	}
	return fmt.Sprintf(tmpl, name)
}
