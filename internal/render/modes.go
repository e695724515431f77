package render

import (
	"fmt"
	"strings"

	"github.com/spf13/pflag"
)

var (
	_ pflag.Value = (*ColorMode)(nil)
	_ pflag.Value = (*WrapMode)(nil)
)

// ColorMode selects when swatches carry ANSI color.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"
	ColorAlways ColorMode = "always"
	ColorNever  ColorMode = "never"
)

// String implements pflag.Value.
func (m *ColorMode) String() string {
	if *m == "" {
		return string(ColorAuto)
	}
	return string(*m)
}

// Set implements pflag.Value.
func (m *ColorMode) Set(value string) error {
	mode, err := ParseColorMode(value)
	if err != nil {
		return err
	}
	*m = mode
	return nil
}

// Type implements pflag.Value.
func (m *ColorMode) Type() string {
	return "auto|always|never"
}

// ParseColorMode parses a color mode name, case-insensitively.
func ParseColorMode(value string) (ColorMode, error) {
	switch mode := ColorMode(strings.ToLower(strings.TrimSpace(value))); mode {
	case ColorAuto, ColorAlways, ColorNever:
		return mode, nil
	case "":
		return ColorAuto, nil
	default:
		return "", fmt.Errorf("invalid color mode %q (want auto, always or never)", value)
	}
}

// WrapMode selects how long action lines are broken.
type WrapMode string

const (
	// WrapChar breaks strictly at the column width.
	WrapChar WrapMode = "char"
	// WrapWord prefers word boundaries and falls back to WrapChar for long words.
	WrapWord WrapMode = "word"
)

// String implements pflag.Value.
func (m *WrapMode) String() string {
	if *m == "" {
		return string(WrapChar)
	}
	return string(*m)
}

// Set implements pflag.Value.
func (m *WrapMode) Set(value string) error {
	mode, err := ParseWrapMode(value)
	if err != nil {
		return err
	}
	*m = mode
	return nil
}

// Type implements pflag.Value.
func (m *WrapMode) Type() string {
	return "char|word"
}

// ParseWrapMode parses a wrap mode name, case-insensitively.
func ParseWrapMode(value string) (WrapMode, error) {
	switch mode := WrapMode(strings.ToLower(strings.TrimSpace(value))); mode {
	case WrapChar, WrapWord:
		return mode, nil
	case "":
		return WrapChar, nil
	default:
		return "", fmt.Errorf("invalid wrap mode %q (want char or word)", value)
	}
}
