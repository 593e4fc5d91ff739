// Package icon renders feedback symbols for the management commands.
//
// Icons can be displayed as emoji, nerd-font glyphs, plain ASCII, kaomoji,
// or Unicode squares depending on user preference.
package icon

import (
	"github.com/instantsaver/instantsaver/key"
	"github.com/spf13/viper"
)

const (
	emoji   = "emoji"
	nerd    = "nerd"
	plain   = "plain"
	kaomoji = "kaomoji"
	squares = "squares"
)

// AvailableVariants returns all supported icon styles.
func AvailableVariants() []string {
	return []string{emoji, nerd, plain, kaomoji, squares}
}

// Icon identifies a symbol in the registry.
type Icon int

const (
	Fail Icon = iota
	Success
	Progress
	Warn
)

type iconDef struct {
	emoji   string
	nerd    string
	plain   string
	kaomoji string
	squares string
}

func (d *iconDef) get() string {
	switch viper.GetString(key.IconsVariant) {
	case emoji:
		return d.emoji
	case nerd:
		return d.nerd
	case plain:
		return d.plain
	case kaomoji:
		return d.kaomoji
	case squares:
		return d.squares
	default:
		return ""
	}
}

var icons = map[Icon]*iconDef{
	Fail:     {emoji: "💀", nerd: "", plain: "x", kaomoji: "(×_×)", squares: "🟥"},
	Success:  {emoji: "🎉", nerd: "", plain: "ok", kaomoji: "(ᵔᴥᵔ)", squares: "🟩"},
	Progress: {emoji: "👾", nerd: "", plain: "..", kaomoji: "(•_•)", squares: "🟦"},
	Warn:     {emoji: "⚠️", nerd: "", plain: "!", kaomoji: "(¬_¬)", squares: "🟨"},
}

// Get returns the symbol for i in the configured variant.
func Get(i Icon) string {
	return icons[i].get()
}
