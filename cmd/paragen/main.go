package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/csheth/paragen/internal/config"
	"github.com/csheth/paragen/internal/llm"
	"github.com/csheth/paragen/internal/promptfile"
	"github.com/csheth/paragen/internal/tui"
)

var version = "dev"

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	flags := flag.NewFlagSet("paragen", flag.ContinueOnError)
	provider := flags.String("provider", "", "generation provider: gemini, openai or ollama")
	model := flags.String("model", "", "override the provider's default model")
	endpoint := flags.String("endpoint", "", "custom API base URL or Ollama host")
	timeout := flags.String("timeout", "", "per-request timeout, e.g. 90s (0 disables)")
	configPath := flags.String("config", "", "config file (default $XDG_CONFIG_HOME/paragen/config.yaml)")
	promptPath := flags.String("prompt-file", "", "pre-fill the prompt from a .txt, .md or .pdf file")
	noAltScreen := flags.Bool("no-alt-screen", false, "disable the alternate screen buffer")
	logPath := flags.String("log-file", os.Getenv("PARAGEN_LOG"), "write debug logs to this file")
	initConfig := flags.Bool("init-config", false, "write the effective settings to the config file and exit")
	showVersion := flags.Bool("version", false, "print the version and exit")
	if err := flags.Parse(args); err != nil {
		return 2
	}

	if *showVersion {
		fmt.Println("paragen", version)
		return 0
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, "config error:", err)
		return 1
	}
	cfg.ApplyEnv()
	cfg.Override(*provider, *model, *endpoint, *timeout)

	requestTimeout, err := cfg.RequestTimeout()
	if err != nil {
		fmt.Fprintln(os.Stderr, "config error:", err)
		return 1
	}

	if *initConfig {
		if err := config.Save(*configPath, cfg); err != nil {
			fmt.Fprintln(os.Stderr, "config error:", err)
			return 1
		}
		fmt.Println("config written")
		return 0
	}

	prompt, err := promptfile.Load(*promptPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, "prompt file error:", err)
		return 1
	}

	generator, err := llm.New(llm.Config{
		Provider: cfg.Provider,
		Model:    cfg.Model,
		Endpoint: cfg.Endpoint,
	})
	if err != nil {
		fmt.Fprintln(os.Stderr, "provider error:", err)
		return 1
	}

	closeLog, err := setupLogging(*logPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, "log error:", err)
		return 1
	}
	defer closeLog()
	log.Printf("[main] starting %s (timeout=%s)", generator.Name(), requestTimeout)

	opts := []tea.ProgramOption{}
	if !*noAltScreen {
		opts = append(opts, tea.WithAltScreen())
	}
	program := tea.NewProgram(
		tui.New(tui.Config{
			Generator: generator,
			Timeout:   requestTimeout,
			Prompt:    prompt,
		}),
		opts...,
	)

	if _, err := program.Run(); err != nil {
		fmt.Fprintln(os.Stderr, "program error:", err)
		return 1
	}
	return 0
}

// setupLogging sends the log package to path. With no path, logs are
// discarded so they never draw over the TUI.
func setupLogging(path string) (func(), error) {
	if strings.TrimSpace(path) == "" {
		log.SetOutput(io.Discard)
		return func() {}, nil
	}
	f, err := tea.LogToFile(path, "paragen")
	if err != nil {
		return nil, err
	}
	return func() { _ = f.Close() }, nil
}
