package render

import (
	"errors"
	"fmt"
	"strings"
)

var ErrUnknownTheme = errors.New("unknown theme")

type Theme struct {
	Name   string
	Fg     string
	Accent string
	XColor string
	OColor string
	WinBg  string
}

var (
	Dark = Theme{
		Name:   "dark",
		Fg:     "#eaeaea",
		Accent: "#e94560",
		XColor: "#e94560",
		OColor: "#00d9ff",
		WinBg:  "#2ecc71",
	}

	Light = Theme{
		Name:   "light",
		Fg:     "#333333",
		Accent: "#e74c3c",
		XColor: "#e74c3c",
		OColor: "#3498db",
		WinBg:  "#2ecc71",
	}

	Retro = Theme{
		Name:   "retro",
		Fg:     "#ecf0f1",
		Accent: "#f39c12",
		XColor: "#e74c3c",
		OColor: "#f39c12",
		WinBg:  "#27ae60",
	}
)

func ParseTheme(name string) (Theme, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case Dark.Name:
		return Dark, nil
	case Light.Name:
		return Light, nil
	case Retro.Name:
		return Retro, nil
	default:
		return Theme{}, fmt.Errorf("%w: %q", ErrUnknownTheme, name)
	}
}
