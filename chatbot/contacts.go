package chatbot

import (
	"fmt"
	"strings"
	"unicode/utf16"
)

type Executive struct {
	Name  string
	Phone string
}

var Executives = []Executive{
	{Name: "Monic Auditya A", Phone: "8825511797"},
	{Name: "Akshaya", Phone: "7667447308"},
	{Name: "Harini", Phone: "8122071086"},
	{Name: "DhivyaShree", Phone: "8807099153"},
}

type alias struct {
	name  string
	index int
}

// aliases are scanned in order, the first substring match wins.
var aliases = []alias{
	{"monic", 0},
	{"monic auditya", 0},
	{"monic auditya a", 0},
	{"akshaya", 1},
	{"harini", 2},
	{"dhivyashree", 3},
	{"dhivya shree", 3},
	{"dhivya", 3},
	{"divyashree", 3},
}

var contactKeywords = []string{"executive", "contact", "support", "talk to", "call", "phone", "help", "assistance"}

// RouteContact answers contact requests locally. The second return is false
// when the message should go to the completion API instead.
func RouteContact(message string) (string, bool) {
	lower := strings.ToLower(message)

	for _, a := range aliases {
		if strings.Contains(lower, a.name) {
			return contactReply(Executives[a.index]), true
		}
	}

	for _, kw := range contactKeywords {
		if strings.Contains(lower, kw) {
			return contactReply(Executives[checksum(message)%len(Executives)]), true
		}
	}

	return "", false
}

// checksum sums the UTF-16 code units of the message as typed, not lowercased.
func checksum(message string) int {
	sum := 0
	for _, u := range utf16.Encode([]rune(message)) {
		sum += int(u)
	}
	return sum
}

func contactReply(e Executive) string {
	return fmt.Sprintf("You can contact %s – %s.", e.Name, e.Phone)
}
