package tui

import (
	"context"
	"errors"
	"io"

	tea "github.com/charmbracelet/bubbletea"

	"hunterlog/internal/engine"
	"hunterlog/internal/scheduler"
)

// RunBoard shows the dashboard and runs the daily penalty sweep while it is open.
func RunBoard(ctx context.Context, svc *engine.Service, out io.Writer) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	m := newBoardModel(ctx, svc)
	p := tea.NewProgram(m, tea.WithOutput(out), tea.WithContext(ctx))

	sweep := scheduler.NewDaily("penalty-sweep", svc.Location(), func(ctx context.Context) error {
		res, err := svc.CheckIncompleteItems(ctx)
		if err != nil {
			return err
		}
		p.Send(sweptMsg{res: res})
		return nil
	})
	go sweep.Start(ctx)

	_, err := p.Run()
	cancel()
	<-sweep.Done()
	if errors.Is(err, tea.ErrProgramKilled) {
		return nil
	}
	return err
}
