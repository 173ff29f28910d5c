// Package config provides YAML-based configuration loading for solitui:
// rule toggles and display theming. The game engine itself reads no files;
// the CLI loads a Config and injects the relevant pieces.
package config

// Config is the top-level configuration file structure.
type Config struct {
	Rules RulesConfig `yaml:"rules"`
	Theme ThemeConfig `yaml:"theme"`
}

// RulesConfig adjusts move validation.
type RulesConfig struct {
	// StrictFoundation enforces ascending-rank foundation building
	// (Ace, 2, 3, ...). When false, foundations accept any card of the
	// matching suit, which is the behavior of the original game.
	StrictFoundation bool `yaml:"strict_foundation"`
}

// ThemeConfig adjusts how the board is drawn.
type ThemeConfig struct {
	// CardBack is the fill character for face-down cards.
	CardBack string `yaml:"card_back"`
	// HighContrast uses the bright ANSI palette for card labels.
	HighContrast bool `yaml:"high_contrast"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Rules: RulesConfig{
			StrictFoundation: false,
		},
		Theme: ThemeConfig{
			CardBack:     "░",
			HighContrast: false,
		},
	}
}

// BackRune returns the theme's card back as a rune, or 0 when unset.
func (t ThemeConfig) BackRune() rune {
	for _, r := range t.CardBack {
		return r
	}
	return 0
}
