// Package config registers every configuration key with its default and wires them into viper.
package config

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"text/template"

	"github.com/instantsaver/instantsaver/color"
	"github.com/instantsaver/instantsaver/constant"
	"github.com/instantsaver/instantsaver/key"
	"github.com/instantsaver/instantsaver/style"
	"github.com/samber/lo"
	"github.com/spf13/viper"
)

// Field is a registered configuration key.
type Field struct {
	Key         string
	Value       any
	Description string
	// Options lists the accepted values of an enumerated string key.
	Options []string
}

// Pretty renders the field for config info.
func (f *Field) Pretty() string {
	var b strings.Builder
	lo.Must0(prettyTemplate.Execute(&b, f))
	return b.String()
}

// Env returns the environment variable overriding this field.
func (f *Field) Env() string {
	return strings.ToUpper(constant.App + "_" + EnvKeyReplacer.Replace(f.Key))
}

// Validate checks a string value against Options. Other values always pass.
func (f *Field) Validate(value any) error {
	s, ok := value.(string)
	if !ok || len(f.Options) == 0 || lo.Contains(f.Options, s) {
		return nil
	}
	return fmt.Errorf("invalid value %q for %s (valid: %s)", s, f.Key, strings.Join(f.Options, ", "))
}

// MarshalJSON includes the current value next to the default.
func (f *Field) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Key         string   `json:"key"`
		Value       any      `json:"value"`
		Default     any      `json:"default"`
		Description string   `json:"description"`
		Type        string   `json:"type"`
		Options     []string `json:"options,omitempty"`
	}{
		Key:         f.Key,
		Value:       viper.Get(f.Key),
		Default:     f.Value,
		Description: f.Description,
		Type:        f.TypeName(),
		Options:     f.Options,
	})
}

// TypeName is the type of the default value, as shown by config info.
func (f *Field) TypeName() string {
	switch f.Value.(type) {
	case string:
		return "string"
	case int:
		return "int"
	case bool:
		return "bool"
	case []string:
		return "[]string"
	default:
		return "unknown"
	}
}

// Default holds every registered field by key.
var Default = make(map[string]Field)

// EnvExposed holds the keys bound to environment variables.
var EnvExposed []string

func register(field Field) {
	if _, exists := Default[field.Key]; exists {
		panic("duplicate config key: " + field.Key)
	}
	Default[field.Key] = field
	EnvExposed = append(EnvExposed, field.Key)
}

func init() {
	for _, field := range []Field{
		{key.ExtractorBackend, "ytdlp", "Extractor backend.\nnative only serves YouTube and falls back to ytdlp elsewhere", []string{"ytdlp", "native"}},
		{key.ExtractorPath, "yt-dlp", "Path to the yt-dlp executable", nil},
		{key.ExtractorRetries, 2, "How many times the extractor is invoked before giving up", nil},
		{key.ExtractorCookies, "", "Cookie file passed to the extractor.\nUsed only if it exists. Empty means cookies.txt in the config directory", nil},
		{key.ExtractorUpdateCheck, true, "Check for newer yt-dlp releases when running the check command", nil},

		{key.SelectorMode, "full", "Format selection mode.\nfull falls back to split streams and images, progressive does not", []string{"full", "progressive"}},
		{key.SelectorPreferMP4, true, "Prefer mp4 progressive formats over higher bitrate ones in other containers", nil},

		{key.PlatformHostMatch, "auto", "How URL hosts are checked against the platform allow-list.\nauto uses exact for Instagram and contains for YouTube", []string{"auto", "exact", "contains"}},
		{key.PlatformNormalize, true, "Rewrite YouTube shorts and youtu.be links to canonical watch URLs", nil},

		{key.CacheEnable, false, "Cache extracted metadata on disk", nil},
		{key.CacheLifetime, 10, "Lifetime of cached metadata, in minutes", nil},

		{key.OpenApp, "", "Application used by --open.\nEmpty means the system default handler", nil},
		{key.HistorySave, false, "Remember successfully resolved URLs in the history file", nil},

		{key.LogsWrite, false, "Write logs", nil},
		{key.LogsLevel, "info", "Log level, from less to most verbose", []string{"panic", "fatal", "error", "warn", "info", "debug", "trace"}},
		{key.LogsJson, false, "Use json format for logs", nil},

		{key.IconsVariant, "plain", "Icons variant.\nnerd requires a nerd font", []string{"emoji", "kaomoji", "plain", "squares", "nerd"}},
		{key.CliColored, true, "Enable colored CLI output", nil},
	} {
		register(field)
	}
}

var prettyTemplate = lo.Must(template.New("pretty").Funcs(template.FuncMap{
	"faint":  style.Faint,
	"blue":   style.Fg(color.Blue),
	"purple": style.Fg(color.Purple),
	"value":  func(k string) any { return viper.Get(k) },
	"join":   strings.Join,
	"hl": func(v any) string {
		switch value := v.(type) {
		case bool:
			b := strconv.FormatBool(value)
			if value {
				return style.Fg(color.Green)(b)
			}
			return style.Fg(color.Red)(b)
		case string:
			if value == "" {
				return style.Faint(`""`)
			}
			return style.Fg(color.Yellow)(value)
		default:
			return fmt.Sprint(value)
		}
	},
}).Parse(`{{ faint .Description }}
{{ blue "Key:" }}     {{ purple .Key }}
{{ blue "Env:" }}     {{ .Env }}
{{ blue "Value:" }}   {{ hl (value .Key) }}
{{ blue "Default:" }} {{ hl .Value }}
{{ blue "Type:" }}    {{ .TypeName }}{{ if .Options }}
{{ blue "Options:" }} {{ join .Options ", " }}{{ end }}`))
