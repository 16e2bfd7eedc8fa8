// Copyright 2026 The sublime-rest-client Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

// Command restcli sends an HTTP request document and renders the
// response, either in a terminal panel or inline on stdout.
package main

import (
	"fmt"
	"io"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	restclient "github.com/james-black/sublime-rest-client"
	"github.com/james-black/sublime-rest-client/internal/config"
	"github.com/james-black/sublime-rest-client/internal/tui"
	"github.com/james-black/sublime-rest-client/poll"
	"github.com/james-black/sublime-rest-client/surface"
)

var (
	configPath string
	width      int
	intervalMS int
	timeoutMS  int
	view       string
	exitOnDone bool
)

var rootCmd = &cobra.Command{
	Use:   "restcli [file]",
	Short: "Send an HTTP request document and render the response",
	Long: `restcli reads a request document (a request line, optional headers, and
an optional body, with {{variable}} substitution from @name = value
lines), sends it, and renders the response the way the editor plugin
does: an animated waiting panel while the request is in flight, then
the status line, headers, and body.

The document is read from the file argument, or from stdin when no
argument is given.`,
	Args:          cobra.MaximumNArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          run,
}

func init() {
	flags := rootCmd.Flags()
	flags.StringVarP(&configPath, "config", "c", "", "settings file (default "+config.DefaultFile+" if present)")
	flags.IntVar(&width, "width", 0, "progress indicator width")
	flags.IntVar(&intervalMS, "interval", 0, "refresh interval in milliseconds")
	flags.IntVar(&timeoutMS, "timeout", 0, "request timeout in milliseconds (0 means none)")
	flags.StringVar(&view, "view", "", "response view: panel or inline")
	flags.BoolVar(&exitOnDone, "exit-on-done", false, "quit the panel as soon as the response renders")
}

func run(cmd *cobra.Command, args []string) error {
	settings, err := config.Load(configPath)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("width") {
		settings.ThrobberWidth = width
	}
	if cmd.Flags().Changed("interval") {
		settings.RefreshIntervalMS = intervalMS
	}
	if cmd.Flags().Changed("timeout") {
		settings.TimeoutMS = timeoutMS
	}
	if cmd.Flags().Changed("view") {
		settings.ResponseView = view
	}
	switch settings.ResponseView {
	case config.ViewPanel, config.ViewInline:
	default:
		return fmt.Errorf("unknown response view %q", settings.ResponseView)
	}

	source, err := readDocument(args)
	if err != nil {
		return err
	}

	transport := &restclient.Client{Timeout: settings.Timeout()}
	defer transport.CloseIdleConnections()

	if settings.ResponseView == config.ViewInline {
		return runInline(source, transport, settings)
	}

	model := tui.New(source, transport, settings, exitOnDone)
	if _, err := tea.NewProgram(model, tea.WithAltScreen()).Run(); err != nil {
		return err
	}
	if err := model.ParseErr(); err != nil {
		return err
	}
	return nil
}

// runInline drives a full request cycle on the calling goroutine and
// prints the terminal panel text to stdout.
func runInline(source string, transport *restclient.Client, settings config.Settings) error {
	buf := surface.NewBuffer()
	loop := &poll.Loop{}
	session := &restclient.Session{
		Transport:       transport,
		Surface:         buf,
		Scheduler:       loop,
		ThrobberWidth:   settings.ThrobberWidth,
		RefreshInterval: settings.RefreshInterval(),
	}
	if err := session.Send(source); err != nil {
		return err
	}
	loop.Run()
	fmt.Println(buf.String())
	return nil
}

func readDocument(args []string) (string, error) {
	if len(args) == 1 {
		b, err := os.ReadFile(args[0])
		if err != nil {
			return "", err
		}
		return string(b), nil
	}
	b, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", fmt.Errorf("reading request document from stdin: %w", err)
	}
	return string(b), nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Fatal(err)
	}
}
