package keymap

import (
	"testing"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func keyMsg(s string) tea.KeyMsg {
	if s == "esc" {
		return tea.KeyMsg{Type: tea.KeyEsc}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestDefaultKeyMap(t *testing.T) {
	km := DefaultKeyMap()

	require.NotNil(t, km)
}

func TestDefaultKeyMap_QuitBinding(t *testing.T) {
	km := DefaultKeyMap()

	keys := km.Quit.Keys()
	assert.Contains(t, keys, "q")
	assert.Contains(t, keys, "ctrl+c")
}

func TestDefaultKeyMap_HelpBinding(t *testing.T) {
	km := DefaultKeyMap()

	keys := km.Help.Keys()
	assert.Contains(t, keys, "?")
}

func TestDefaultKeyMap_BackBinding(t *testing.T) {
	km := DefaultKeyMap()

	keys := km.Back.Keys()
	assert.Contains(t, keys, "esc")
}

func TestDefaultKeyMap_RunBinding(t *testing.T) {
	km := DefaultKeyMap()

	keys := km.Run.Keys()
	assert.Contains(t, keys, "ctrl+r")
}

func TestDefaultKeyMap_NavigationBindings(t *testing.T) {
	km := DefaultKeyMap()

	assert.Contains(t, km.Up.Keys(), "up")
	assert.Contains(t, km.Up.Keys(), "shift+tab")
	assert.Contains(t, km.Down.Keys(), "down")
	assert.Contains(t, km.Down.Keys(), "tab")
	assert.Contains(t, km.Select.Keys(), "enter")
}

func TestDefaultKeyMap_HistoryBindings(t *testing.T) {
	km := DefaultKeyMap()

	assert.Contains(t, km.Save.Keys(), "s")
	assert.Contains(t, km.Delete.Keys(), "d")
	assert.Contains(t, km.Refresh.Keys(), "r")
}

func TestShortHelp(t *testing.T) {
	km := DefaultKeyMap()

	bindings := km.ShortHelp()
	require.Len(t, bindings, 2)
}

func TestFormHelp(t *testing.T) {
	km := DefaultKeyMap()

	bindings := km.FormHelp()
	require.Len(t, bindings, 4)
}

func TestFullHelp(t *testing.T) {
	km := DefaultKeyMap()

	groups := km.FullHelp()
	require.Len(t, groups, 3)
	for _, group := range groups {
		for _, binding := range group {
			assert.NotEmpty(t, binding.Keys())
		}
	}
}

func TestBindingsMatchKeys(t *testing.T) {
	km := DefaultKeyMap()

	assert.True(t, key.Matches(keyMsg("q"), km.Quit))
	assert.True(t, key.Matches(keyMsg("esc"), km.Back))
	assert.False(t, key.Matches(keyMsg("x"), km.Quit))
}
