// termfolio is a terminal portfolio: an interactive command line with a
// Snake minigame, served locally, over SSH or behind an HTTP API.
//
// Usage:
//
//	termfolio               - Start the full-screen terminal
//	termfolio shell         - Line-mode shell on readline
//	termfolio snake         - Play Snake directly
//	termfolio serve         - Start the SSH server
//	termfolio web           - Start the HTTP API
//	termfolio commands      - List terminal commands
//	termfolio scores        - Show Snake high scores
//
// Global flags:
//
//	--config <path> - Config file (default: ~/.termfolio/config.yaml)
//	--db <path>     - Scores database (default from config)
//	--seed <value>  - RNG seed for reproducible games
//	--debug         - Debug logging
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Register games.
	_ "github.com/poi5en/termfolio/internal/games/snake"
)

var (
	flagConfig     string
	flagDBPath     string
	flagSeed       int64
	flagDebug      bool
	flagFullscreen bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "termfolio",
	Short: "termfolio - a portfolio you can type into",
	Long: `termfolio presents a developer portfolio as an interactive terminal.
Type 'help' inside it for the command list, or 'snake' to play.

Available commands:
  term      - Full-screen terminal (default)
  shell     - Line-mode shell
  snake     - Play Snake directly
  serve     - SSH server, one terminal per connection
  web       - HTTP API for a browser front end
  commands  - List terminal commands
  scores    - Show Snake high scores

Examples:
  termfolio
  termfolio --fullscreen
  termfolio shell
  termfolio serve --ssh :2222
  termfolio web --http :8080`,
	Run: runTerm,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to scores database (overrides config)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Enable debug logging")
	rootCmd.Flags().BoolVar(&flagFullscreen, "fullscreen", false, "Use the alternate screen")

	rootCmd.AddCommand(termCmd)
	rootCmd.AddCommand(shellCmd)
	rootCmd.AddCommand(snakeCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(webCmd)
	rootCmd.AddCommand(commandsCmd)
	rootCmd.AddCommand(scoresCmd)
}

// fatal prints err in the CLI's format and exits.
func fatal(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}
