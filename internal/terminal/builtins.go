package terminal

import (
	"fmt"
	"strings"

	"github.com/poi5en/termfolio/internal/config"
	"github.com/poi5en/termfolio/internal/storage"
)

// SnakeGameID is the game the snake command launches.
const SnakeGameID = "snake"

// Scoreboard reads persisted game scores.
type Scoreboard interface {
	TopScores(gameID string, limit int) ([]storage.ScoreEntry, error)
}

// Builtins returns the portfolio command set, answering from profile.
// scores may be nil when persistence is unavailable.
func Builtins(profile config.Profile, scores Scoreboard) []Command {
	return []Command{
		{"help", "List all available commands", helpCmd},
		{"cd", "Change directory, not really, lol!", cdCmd},
		{"ls", "List files in the current directory", text(strings.Join(profile.Files, "  "))},
		{"mkdir", "Make a directory", mkdirCmd},
		{"clear", "Clears the terminal", clearCmd},
		{"cat", "Get a cute cat image.", catCmd(profile.CatImage)},
		{"echo", "Prints the given text to the console", echoCmd},
		{"about", "About Me.", text(profile.About)},
		{"whoami", "Who is this terminal about?", whoamiCmd(profile)},
		{"twitter", "Opens my Twitter Handle.", link("twitter", profile.Links.Twitter)},
		{"github", "Opens my GitHub Profile.", link("github", profile.Links.GitHub)},
		{"linkedin", "Opens my LinkedIn Profile.", link("linkedin", profile.Links.LinkedIn)},
		{"discord", "Opens my Discord Account.", link("discord", profile.Links.Discord)},
		{"email", "Write me an email.", link("email", mailto(profile.Links.Email))},
		{"resume", "Opens my resume.", link("resume", profile.Links.Resume)},
		{"repo", "Opens this website's github repository.", link("repo", profile.Links.Repo)},
		{"languages", "Languages I know.", text(strings.Join(profile.Languages, ", "))},
		{"skills", "Skills I have.", text(strings.Join(profile.Skills, ", "))},
		{"projects", "Projects I have worked on.", projectsCmd(profile.Projects)},
		{"pitch", "Why you should work with me.", text(profile.Pitch)},
		{"editor", "Details about my current editor", text(profile.Editor)},
		{"spotify", "Get info about my recently played song.", text(profile.Spotify)},
		{"color", "Change the output text color", colorCmd},
		{"history", "Show previously entered commands", historyCmd},
		{"scores", "Show the Snake high scores", scoresCmd(scores)},
		{"sudo", "???", sudoCmd},
		{"exit", "Exit fullscreen", exitCmd},
		{"snake", "Play Snake Game", snakeCmd},
	}
}

// DefaultTable builds the builtin table for profile.
func DefaultTable(profile config.Profile, scores Scoreboard) *Table {
	return MustTable(Builtins(profile, scores)...)
}

func reply(lines ...Line) Reply {
	return Reply{Lines: lines}
}

// text answers with s, one response line per line of s.
func text(s string) Handler {
	parts := strings.Split(strings.TrimRight(s, "\n"), "\n")
	return func(Env) (Reply, error) {
		var r Reply
		for _, l := range parts {
			r.Lines = append(r.Lines, responseLine(l))
		}
		return r, nil
	}
}

func helpCmd(env Env) (Reply, error) {
	return reply(Line{Kind: KindHelpTable, Help: env.Commands}), nil
}

func cdCmd(env Env) (Reply, error) {
	if len(env.Args) == 0 {
		return Reply{}, usage("Please specify a directory.")
	}
	return reply(responseLine(fmt.Sprintf("Changed directory to %s (just kidding)", env.Args[0]))), nil
}

func mkdirCmd(env Env) (Reply, error) {
	if len(env.Args) == 0 {
		return Reply{}, usage("Usage: mkdir <directory>")
	}
	return reply(responseLine("Created directory " + env.Args[0])), nil
}

func clearCmd(Env) (Reply, error) {
	return Reply{Effects: []Effect{ClearLog()}}, nil
}

func catCmd(url string) Handler {
	return func(Env) (Reply, error) {
		if url == "" {
			return reply(responseLine("The cat is asleep. Try again later.")), nil
		}
		return reply(imageLine(url)), nil
	}
}

func echoCmd(env Env) (Reply, error) {
	return reply(responseLine(strings.Join(env.Args, " "))), nil
}

func whoamiCmd(p config.Profile) Handler {
	return func(Env) (Reply, error) {
		switch {
		case p.Handle != "" && p.Name != "":
			return reply(responseLine(fmt.Sprintf("%s (%s)", p.Handle, p.Name))), nil
		case p.Name != "":
			return reply(responseLine(p.Name)), nil
		default:
			return reply(responseLine("guest")), nil
		}
	}
}

// link logs "Opening <name>..." and asks the host to open url.
func link(name, url string) Handler {
	return func(Env) (Reply, error) {
		if url == "" {
			return reply(responseLine(fmt.Sprintf("No %s link configured.", name))), nil
		}
		return Reply{
			Lines:   []Line{responseLine(fmt.Sprintf("Opening %s...", name))},
			Effects: []Effect{OpenExternal(url)},
		}, nil
	}
}

func mailto(addr string) string {
	if addr == "" || strings.HasPrefix(addr, "mailto:") {
		return addr
	}
	return "mailto:" + addr
}

func projectsCmd(projects []config.Project) Handler {
	return func(Env) (Reply, error) {
		if len(projects) == 0 {
			return reply(responseLine("No projects listed yet.")), nil
		}
		var r Reply
		for _, p := range projects {
			line := p.Name
			if p.Description != "" {
				line += " - " + p.Description
			}
			if len(p.Tags) > 0 {
				line += " [" + strings.Join(p.Tags, ", ") + "]"
			}
			r.Lines = append(r.Lines, responseLine(line))
		}
		return r, nil
	}
}

// colorCmd stores the value as an opaque token; renderers decide what it means.
func colorCmd(env Env) (Reply, error) {
	if len(env.Args) == 0 {
		return Reply{}, usage("Usage: color <value>")
	}
	value := strings.Join(env.Args, " ")
	return Reply{
		Lines:   []Line{responseLine("Text color set to " + value)},
		Effects: []Effect{SetColor(value)},
	}, nil
}

func historyCmd(env Env) (Reply, error) {
	var r Reply
	for i, h := range env.History {
		r.Lines = append(r.Lines, responseLine(fmt.Sprintf("%4d  %s", i+1, h)))
	}
	return r, nil
}

func scoresCmd(board Scoreboard) Handler {
	return func(Env) (Reply, error) {
		if board == nil {
			return reply(responseLine("Scores are not available in this session.")), nil
		}
		entries, err := board.TopScores(SnakeGameID, 5)
		if err != nil {
			return Reply{}, err
		}
		if len(entries) == 0 {
			return reply(responseLine("No scores yet. Type 'snake' to play.")), nil
		}
		var r Reply
		for i, e := range entries {
			who := e.Player
			if who == "" {
				who = "anonymous"
			}
			r.Lines = append(r.Lines, responseLine(fmt.Sprintf("%d. %5d  %s", i+1, e.Score, who)))
		}
		return r, nil
	}
}

func sudoCmd(Env) (Reply, error) {
	return Reply{}, ErrPermissionDenied
}

func exitCmd(env Env) (Reply, error) {
	if !env.Fullscreen {
		return reply(responseLine("Already in embedded mode.")), nil
	}
	return Reply{
		Lines:   []Line{responseLine("Exiting fullscreen...")},
		Effects: []Effect{ExitFullscreen()},
	}, nil
}

func snakeCmd(Env) (Reply, error) {
	return Reply{Effects: []Effect{EnterGame(SnakeGameID)}}, nil
}
