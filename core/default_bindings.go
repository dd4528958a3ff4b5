package core

import (
	"slices"
	"strings"
	"unicode/utf8"
)

const (
	ScopeContacts       = "screen:contacts"
	ScopeContactDetails = "screen:contact-details"
	ScopeLabelPicker    = "screen:label-picker"
)

const (
	ActionQuit   = "quit"
	ActionUp     = "up"
	ActionDown   = "down"
	ActionSelect = "select"
	ActionBack   = "back"
)

func DefaultKeyBindings() []KeyBinding {
	return []KeyBinding{
		{Keys: []string{"q"}, Action: ActionQuit, Description: "quit", Scopes: []string{ScopeContacts}},
		{Keys: []string{"k", "up"}, Action: ActionUp, Description: "up", Scopes: []string{ScopeContacts, ScopeContactDetails}},
		{Keys: []string{"j", "down"}, Action: ActionDown, Description: "down", Scopes: []string{ScopeContacts, ScopeContactDetails}},
		{Keys: []string{"up"}, Action: ActionUp, Description: "up", Scopes: []string{ScopeLabelPicker}},
		{Keys: []string{"down"}, Action: ActionDown, Description: "down", Scopes: []string{ScopeLabelPicker}},
		{Keys: []string{"enter"}, Action: ActionSelect, Description: "open", Scopes: []string{ScopeContacts}},
		{Keys: []string{"enter"}, Action: ActionSelect, Description: "change label", Scopes: []string{ScopeContactDetails}},
		{Keys: []string{"enter"}, Action: ActionSelect, Description: "select", Scopes: []string{ScopeLabelPicker}},
		{Keys: []string{"esc"}, Action: ActionBack, Description: "back", Scopes: []string{ScopeContactDetails}},
		{Keys: []string{"esc"}, Action: ActionBack, Description: "back", Scopes: []string{ScopeLabelPicker}},
	}
}

func DefaultKeybindingsByAction(bindings []KeyBinding) map[string][]string {
	out := make(map[string][]string, len(bindings))
	for _, b := range bindings {
		if strings.TrimSpace(b.Action) == "" || len(b.Keys) == 0 {
			continue
		}
		if _, exists := out[b.Action]; exists {
			continue
		}
		out[b.Action] = append([]string(nil), b.Keys...)
	}
	return out
}

// ApplyActionKeybindings overrides the keys of every binding whose action is
// present in actionKeys. Scopes and descriptions are kept. Label picker
// bindings never take printable keys, which belong to the filter; if nothing
// else is left the picker keeps its default keys.
func ApplyActionKeybindings(bindings []KeyBinding, actionKeys map[string][]string) []KeyBinding {
	out := make([]KeyBinding, 0, len(bindings))
	for _, b := range bindings {
		next := KeyBinding{
			Keys:        append([]string(nil), b.Keys...),
			Action:      b.Action,
			Description: b.Description,
			Scopes:      append([]string(nil), b.Scopes...),
		}
		if keys, ok := actionKeys[b.Action]; ok && len(keys) > 0 {
			if slices.Contains(b.Scopes, ScopeLabelPicker) {
				keys = withoutPrintable(keys)
			}
			if len(keys) > 0 {
				next.Keys = append([]string(nil), keys...)
			}
		}
		out = append(out, next)
	}
	return out
}

func withoutPrintable(keys []string) []string {
	out := make([]string, 0, len(keys))
	for _, k := range keys {
		if isPrintableKey(k) {
			continue
		}
		out = append(out, k)
	}
	return out
}

func isPrintableKey(k string) bool {
	if k == " " || normalizeKey(k) == "space" {
		return true
	}
	k = normalizeKey(k)
	return k != "" && utf8.RuneCountInString(k) == 1
}
