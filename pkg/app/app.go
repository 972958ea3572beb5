package app

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/posterforge/tendies/pkg/app/components"
	"github.com/posterforge/tendies/pkg/app/styles"
	"github.com/posterforge/tendies/pkg/data"
	"github.com/posterforge/tendies/pkg/services"
)

type progressMsg services.BuildProgress

type doneMsg struct {
	wallpaper *data.Wallpaper
	err       error
}

// BuildApp drives one bundle build behind a live progress view.
type BuildApp struct {
	builder   *services.Builder
	params    data.BuildParams
	outputDir string
	ctx       context.Context

	spinner spinner.Model
	tracker *components.Tracker

	wallpaper *data.Wallpaper
	err       error
	done      bool
}

func NewBuildApp(builder *services.Builder, params data.BuildParams, outputDir string) *BuildApp {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = styles.ProgressBarStyle

	return &BuildApp{
		builder:   builder,
		params:    params,
		outputDir: outputDir,
		spinner:   s,
		tracker:   components.NewTracker(60),
	}
}

// Run executes the build and blocks until it finishes or the user aborts.
func (a *BuildApp) Run(ctx context.Context) (*data.Wallpaper, error) {
	a.ctx = ctx
	p := tea.NewProgram(a)
	model, err := p.Run()
	if err != nil {
		return nil, err
	}

	final := model.(*BuildApp)
	return final.wallpaper, final.err
}

func (a *BuildApp) Init() tea.Cmd {
	return tea.Batch(a.spinner.Tick, a.startBuild(), a.waitForProgress())
}

func (a *BuildApp) startBuild() tea.Cmd {
	return func() tea.Msg {
		wallpaper, err := a.builder.Build(a.ctx, a.params, a.outputDir)
		return doneMsg{wallpaper: wallpaper, err: err}
	}
}

func (a *BuildApp) waitForProgress() tea.Cmd {
	return func() tea.Msg {
		return progressMsg(<-a.builder.ProgressChannel())
	}
}

func (a *BuildApp) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			a.err = fmt.Errorf("build aborted")
			return a, tea.Quit
		}

	case progressMsg:
		a.tracker.Update(services.BuildProgress(msg))
		return a, a.waitForProgress()

	case doneMsg:
		a.done = true
		a.wallpaper = msg.wallpaper
		a.err = msg.err
		return a, tea.Quit

	case spinner.TickMsg:
		var cmd tea.Cmd
		a.spinner, cmd = a.spinner.Update(msg)
		return a, cmd
	}

	return a, nil
}

func (a *BuildApp) View() string {
	if a.done {
		if a.err != nil {
			return styles.ErrorStyle.Render(fmt.Sprintf("build failed: %v", a.err)) + "\n"
		}
		return styles.SuccessStyle.Render(fmt.Sprintf("created %s", a.wallpaper.OutputPath)) + "\n"
	}

	title := styles.TitleStyle.Render(fmt.Sprintf("Building %s.tendies", a.params.Name))
	return fmt.Sprintf("%s\n%s %s", title, a.spinner.View(), a.tracker.View())
}
