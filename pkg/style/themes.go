package style

import (
	"github.com/charmbracelet/lipgloss"
)

// Adaptive colors switch between light and dark terminals
var (
	PrimaryColor = lipgloss.AdaptiveColor{
		Light: "#007ACC", // Blue
		Dark:  "#3D9EFF",
	}

	SecondaryColor = lipgloss.AdaptiveColor{
		Light: "#6C757D", // Gray
		Dark:  "#A0A8B0",
	}

	SuccessColor = lipgloss.AdaptiveColor{
		Light: "#28A745", // Green
		Dark:  "#4CDD76",
	}

	ErrorColor = lipgloss.AdaptiveColor{
		Light: "#DC3545", // Red
		Dark:  "#FF6B7D",
	}

	WarningColor = lipgloss.AdaptiveColor{
		Light: "#FFC107", // Amber
		Dark:  "#FFD54F",
	}

	HeadingColor = lipgloss.AdaptiveColor{
		Light: "#212529",
		Dark:  "#F8F9FA",
	}

	MutedColor = lipgloss.AdaptiveColor{
		Light: "#6C757D",
		Dark:  "#ADB5BD",
	}

	BorderColor = lipgloss.AdaptiveColor{
		Light: "#DEE2E6",
		Dark:  "#3B3C4F",
	}
)

// HTTP method colors, as API consoles usually show them
var methodColors = map[string]lipgloss.AdaptiveColor{
	"GET":    {Light: "#0EA5E9", Dark: "#38BDF8"},
	"POST":   {Light: "#10B981", Dark: "#34D399"},
	"PUT":    {Light: "#F59E0B", Dark: "#FBBF24"},
	"PATCH":  {Light: "#8B5CF6", Dark: "#A78BFA"},
	"DELETE": {Light: "#DC3545", Dark: "#FF6B7D"},
}
