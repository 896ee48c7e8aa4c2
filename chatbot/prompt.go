package chatbot

import (
	"regexp"
	"strings"
)

// SystemPrompt introduces the assistant and the only contacts it may hand out.
var SystemPrompt = "You are Zyraa, an AI assistant built by Team Invicta to help users in the CampTrade platform. " +
	"Purpose: Assist students in finding, buying, and selling products within their campus community. " +
	"Guidelines: 1) Always respond in a friendly, helpful, and professional tone. " +
	"2) Clearly guide users toward their desired product or solution. " +
	"3) If asked about your origin, say you were created by Team Invicta. " +
	"4) If a problem cannot be solved directly, recommend contacting a CampTrade executive: " + executiveList() + ". " +
	"5) If a user asks for a person by name, return only that person's details. " +
	"6) Never invent contacts beyond this list. " +
	"7) Keep answers short, actionable, and clear."

const FallbackReply = "Sorry, I could not process your request."

var (
	markdownRe = regexp.MustCompile("[*_`]+")
	bulletRe   = regexp.MustCompile(`(?m)^\s*[•\-*]+\s*`)
	newlineRe  = regexp.MustCompile(`\r\n|\r`)
	blankRe    = regexp.MustCompile(`\n{3,}`)
	spaceRe    = regexp.MustCompile(`[ \t]{2,}`)
)

func executiveList() string {
	parts := make([]string, len(Executives))
	for i, e := range Executives {
		parts[i] = e.Name + " – " + e.Phone
	}
	return strings.Join(parts, "; ")
}

// Sanitize strips markdown emphasis from a model reply and normalises whitespace.
func Sanitize(text string) string {
	if text == "" {
		return text
	}
	text = markdownRe.ReplaceAllString(text, "")
	text = bulletRe.ReplaceAllString(text, "- ")
	text = newlineRe.ReplaceAllString(text, "\n")
	text = blankRe.ReplaceAllString(text, "\n\n")
	text = spaceRe.ReplaceAllString(text, " ")
	return strings.TrimSpace(text)
}
