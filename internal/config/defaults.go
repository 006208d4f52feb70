package config

import (
	_ "embed"
)

//go:embed defaults/termfolio.yaml
var defaultYAML []byte

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultYAML
}

// DefaultConfig returns the hardcoded configuration used when the embedded
// YAML cannot be parsed.
func DefaultConfig() Config {
	return Config{
		Profile: Profile{
			Name:      "Gaurav",
			Handle:    "poi5en",
			About:     "I am Gaurav, a Full Stack Developer. I build intelligent systems.",
			Skills:    []string{"React", "Node.js", "Three.js", "Next.js", "AI/ML"},
			Languages: []string{"JavaScript", "Python", "C++", "Java", "Rust", "Go"},
			Projects: []Project{
				{Name: "termfolio", Description: "This portfolio, served as a terminal.", Tags: []string{"go", "tui"}},
			},
			Pitch:   "I turn fuzzy product ideas into fast, reliable software.",
			Spotify: "Now Playing: 'Never Gonna Give You Up' - Rick Astley",
			Editor:  "Visual Studio Code (Dark Mode, always)",
			Links: Links{
				GitHub:   "https://github.com/Poi5eN",
				Twitter:  "https://twitter.com",
				LinkedIn: "https://linkedin.com",
				Discord:  "https://github.com/Poi5eN",
				Repo:     "https://github.com/Poi5eN",
				Resume:   "https://github.com/Poi5eN",
				Email:    "gaurav@poi5en.dev",
			},
			Files:    []string{"projects/", "skills/", "about.txt", "contact.md", "secret_plans.pdf"},
			CatImage: "https://cataas.com/cat/cute?width=300",
		},
		Terminal: Terminal{
			Prompt: "gaurav@/poi5en:~$",
			Title:  "gaurav@portfolio — -zsh",
			Welcome: []string{
				"Welcome to Gaurav's Portfolio Terminal v1.0.0",
				"Type 'help' to see available commands.",
			},
		},
		Snake: Snake{
			GridSize: 20,
			TickMS:   100,
		},
		Server: Server{
			SSHAddr:            ":23234",
			HTTPAddr:           ":8080",
			IdleTimeoutMinutes: 30,
			SessionTTLMinutes:  60,
		},
		Storage: Storage{
			DBPath: "~/.termfolio/scores.db",
		},
	}
}
