// Package config provides YAML-based configuration for termfolio: the
// portfolio profile the terminal commands answer from, terminal and game
// settings, and server addresses.
package config

import (
	"errors"
	"fmt"
	"strings"
)

// Config is the complete termfolio configuration.
type Config struct {
	Profile  Profile  `yaml:"profile"`
	Terminal Terminal `yaml:"terminal"`
	Snake    Snake    `yaml:"snake"`
	Server   Server   `yaml:"server"`
	Storage  Storage  `yaml:"storage"`
}

// Profile is the portfolio content served by the informational commands.
type Profile struct {
	Name      string    `yaml:"name"`
	Handle    string    `yaml:"handle"`
	About     string    `yaml:"about"`
	Skills    []string  `yaml:"skills"`
	Languages []string  `yaml:"languages"`
	Projects  []Project `yaml:"projects"`
	Pitch     string    `yaml:"pitch"`
	Spotify   string    `yaml:"spotify"`
	Editor    string    `yaml:"editor"`
	Links     Links     `yaml:"links"`
	Files     []string  `yaml:"files"`     // fictional `ls` listing
	CatImage  string    `yaml:"cat_image"` // image shown by `cat`
}

// Project is a single portfolio entry.
type Project struct {
	Name        string   `yaml:"name"`
	Description string   `yaml:"description"`
	Tags        []string `yaml:"tags"`
	URL         string   `yaml:"url"`
}

// Links are the external resources the link commands open.
type Links struct {
	GitHub   string `yaml:"github"`
	Twitter  string `yaml:"twitter"`
	LinkedIn string `yaml:"linkedin"`
	Discord  string `yaml:"discord"`
	Repo     string `yaml:"repo"`
	Resume   string `yaml:"resume"`
	Email    string `yaml:"email"`
}

// Terminal holds presentation settings for the terminal widget.
type Terminal struct {
	Prompt  string   `yaml:"prompt"`
	Title   string   `yaml:"title"`
	Banner  string   `yaml:"banner"`
	Welcome []string `yaml:"welcome"`
}

// Snake holds the Snake game settings.
type Snake struct {
	GridSize int `yaml:"grid_size"` // cells per side of the square board
	TickMS   int `yaml:"tick_ms"`   // milliseconds per simulation tick
}

// Server holds listen addresses and session lifetimes for the remote modes.
type Server struct {
	SSHAddr            string `yaml:"ssh_addr"`
	HostKeyPath        string `yaml:"host_key_path"`
	HTTPAddr           string `yaml:"http_addr"`
	IdleTimeoutMinutes int    `yaml:"idle_timeout_minutes"`
	SessionTTLMinutes  int    `yaml:"session_ttl_minutes"`
}

// Storage holds the score database location.
type Storage struct {
	DBPath string `yaml:"db_path"`
}

// Validate reports configuration values that would break the game or servers.
func (c Config) Validate() error {
	var problems []string

	if c.Snake.GridSize < 4 {
		problems = append(problems, fmt.Sprintf("snake.grid_size must be at least 4, got %d", c.Snake.GridSize))
	}
	if c.Snake.TickMS <= 0 {
		problems = append(problems, fmt.Sprintf("snake.tick_ms must be positive, got %d", c.Snake.TickMS))
	}
	if c.Server.IdleTimeoutMinutes < 0 || c.Server.SessionTTLMinutes < 0 {
		problems = append(problems, "server timeouts must not be negative")
	}
	if strings.TrimSpace(c.Terminal.Prompt) == "" {
		problems = append(problems, "terminal.prompt must not be empty")
	}

	if len(problems) > 0 {
		return errors.New("config: " + strings.Join(problems, "; "))
	}
	return nil
}
