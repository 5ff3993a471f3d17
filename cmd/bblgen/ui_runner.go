package main

import (
	"context"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"babble/internal/cxxast"
	"babble/internal/driver"
	"babble/internal/ui"
)

// runExtractWithUI drives CompileAndExtract in a goroutine, streaming its
// progress events into a Bubble Tea program so the terminal shows a live
// parse/match/link view instead of going silent until the run finishes.
func runExtractWithUI(goctx context.Context, title string, files []string, argv []string, provider cxxast.Provider) driver.Result {
	events := make(chan driver.Event, 256)
	resultCh := make(chan driver.Result, 1)

	go func() {
		res := driver.CompileAndExtract(goctx, argv, provider, events)
		resultCh <- res
		close(events)
	}()

	model := ui.NewProgressModel(title, files, events)
	program := tea.NewProgram(model, tea.WithOutput(os.Stdout))
	_, _ = program.Run()
	return <-resultCh
}
