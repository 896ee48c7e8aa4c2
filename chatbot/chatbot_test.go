package chatbot

import (
	"strings"
	"testing"

	"gotest.tools/assert"
)

func TestRouteContactByName(t *testing.T) {
	reply, ok := RouteContact("please contact Harini")
	assert.Equal(t, true, ok)
	assert.Equal(t, "You can contact Harini – 8122071086.", reply)

	reply, ok = RouteContact("Is Dhivya Shree around?")
	assert.Equal(t, true, ok)
	assert.Equal(t, "You can contact DhivyaShree – 8807099153.", reply)

	reply, _ = RouteContact("MONIC AUDITYA A please")
	assert.Equal(t, "You can contact Monic Auditya A – 8825511797.", reply)
}

func TestRouteContactByKeyword(t *testing.T) {
	// "I need help" sums to 974, 974 % 4 == 2
	reply, ok := RouteContact("I need help")
	assert.Equal(t, true, ok)
	assert.Equal(t, "You can contact Harini – 8122071086.", reply)

	// checksum uses the original case, so these can differ
	assert.Equal(t, 974, checksum("I need help"))
	assert.Equal(t, 1006, checksum("i need help"))
	reply, _ = RouteContact("i need help")
	assert.Equal(t, "You can contact Harini – 8122071086.", reply)

	reply, ok = RouteContact("Can I TALK TO someone")
	assert.Equal(t, true, ok)
	assert.Assert(t, strings.HasPrefix(reply, "You can contact "))
}

func TestRouteContactNoMatch(t *testing.T) {
	for _, m := range []string{"what's the weather", "", "how much is this lamp"} {
		_, ok := RouteContact(m)
		assert.Equal(t, false, ok, m)
	}
}

func TestAliasesInRange(t *testing.T) {
	for _, a := range aliases {
		assert.Assert(t, a.index >= 0 && a.index < len(Executives), a.name)
	}
}

func TestSanitize(t *testing.T) {
	assert.Equal(t, "", Sanitize(""))
	assert.Equal(t, "Hello world", Sanitize("**Hello** _world_"))
	assert.Equal(t, "use code", Sanitize("use `code`"))
	assert.Equal(t, "Options:\n- one\n- two", Sanitize("Options:\n• one\n- two"))
	assert.Equal(t, "a\n\nb", Sanitize("a\r\n\r\n\r\n\r\nb"))
	assert.Equal(t, "a b", Sanitize("a  \t b"))
}

func TestSystemPrompt(t *testing.T) {
	assert.Assert(t, strings.Contains(SystemPrompt, "Zyraa"))
	for _, e := range Executives {
		assert.Assert(t, strings.Contains(SystemPrompt, e.Name+" – "+e.Phone))
	}
}
