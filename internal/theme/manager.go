package theme

// Name identifies a built-in theme
type Name string

const (
	Default      Name = "default"
	Professional Name = "professional"
	Plain        Name = "plain"
)

// Manager handles theme selection and management
type Manager struct {
	currentTheme Theme
}

// NewManager creates a new theme manager with default settings
func NewManager(t Theme) *Manager {
	return &Manager{
		currentTheme: t,
	}
}

// NewManagerByName creates a manager for a built-in theme. Unknown names use the professional theme.
func NewManagerByName(name Name) *Manager {
	switch name {
	case Default:
		return NewManager(NewDefaultTheme())
	case Plain:
		return NewManager(NewPlainTheme())
	default:
		return NewManager(NewProfessionalTheme())
	}
}

// GetCurrentTheme returns the currently active theme
func (m *Manager) GetCurrentTheme() Theme {
	return m.currentTheme
}
