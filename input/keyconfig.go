package input

import (
	"fmt"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/BurntSushi/toml"
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/starlight-reaver/core"
)

// Named keys accepted in keymap files
var specialKeyNames = map[string]tcell.Key{
	"up":        tcell.KeyUp,
	"down":      tcell.KeyDown,
	"left":      tcell.KeyLeft,
	"right":     tcell.KeyRight,
	"enter":     tcell.KeyEnter,
	"esc":       tcell.KeyEscape,
	"escape":    tcell.KeyEscape,
	"tab":       tcell.KeyTab,
	"backspace": tcell.KeyBackspace2,
}

// Rune aliases for keys that can't be bare single-char TOML values
var runeAliases = map[string]rune{
	"space": ' ',
}

// keymapFile is the TOML layout:
//
//	[keys]
//	shoot = ["space", "z"]
//	up = ["up", "k"]
type keymapFile struct {
	Keys map[string][]string `toml:"keys"`
}

// LoadKeyConfig parses TOML keymap data into a sparse override KeyTable
// Returns error on unknown intent names, invalid key names, or parse failure
func LoadKeyConfig(data string) (*KeyTable, error) {
	var f keymapFile
	if _, err := toml.Decode(data, &f); err != nil {
		return nil, fmt.Errorf("keymap parse: %w", err)
	}

	intents := make(map[string]core.Intent, core.IntentCount)
	for i := core.Intent(0); i < core.IntentCount; i++ {
		intents[i.String()] = i
	}

	kt := &KeyTable{
		SpecialKeys: make(map[tcell.Key]core.Intent),
		Runes:       make(map[rune]core.Intent),
	}
	for name, keys := range f.Keys {
		intent, ok := intents[name]
		if !ok {
			return nil, fmt.Errorf("keymap: unknown intent '%s'", name)
		}
		for _, key := range keys {
			if err := kt.bind(key, intent); err != nil {
				return nil, fmt.Errorf("keymap [%s]: %w", name, err)
			}
		}
	}
	return kt, nil
}

// LoadKeyConfigFile reads a keymap file and merges it over the defaults
func LoadKeyConfigFile(path string) (*KeyTable, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read keymap %s: %w", path, err)
	}
	override, err := LoadKeyConfig(string(data))
	if err != nil {
		return nil, err
	}
	kt := DefaultKeyTable()
	kt.Merge(override)
	return kt, nil
}

func (kt *KeyTable) bind(key string, intent core.Intent) error {
	lower := strings.ToLower(key)
	if k, ok := specialKeyNames[lower]; ok {
		kt.SpecialKeys[k] = intent
		return nil
	}
	if r, ok := runeAliases[lower]; ok {
		kt.Runes[r] = intent
		return nil
	}
	if utf8.RuneCountInString(lower) == 1 {
		r, _ := utf8.DecodeRuneInString(lower)
		kt.Runes[r] = intent
		return nil
	}
	return fmt.Errorf("invalid key name '%s'", key)
}
