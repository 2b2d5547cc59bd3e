// internal/app/app.go

// Package app assembles the full-screen editor: it owns the tcell screen and
// the draw loop, and wires the widget, status bar, theme manager and
// highlight manager together over the event bus.
package app

import (
	"context"
	"fmt"
	"sync"

	"github.com/gdamore/tcell/v2"

	"github.com/mvetter/codearea/internal/config"
	"github.com/mvetter/codearea/internal/editing"
	"github.com/mvetter/codearea/internal/event"
	"github.com/mvetter/codearea/internal/highlight"
	"github.com/mvetter/codearea/internal/logger"
	"github.com/mvetter/codearea/internal/statusbar"
	"github.com/mvetter/codearea/internal/textops"
	"github.com/mvetter/codearea/internal/theme"
	"github.com/mvetter/codearea/internal/widget"
)

// App encapsulates the editor's components and main loop.
type App struct {
	screen   tcell.Screen
	events   *event.Manager
	themes   *theme.Manager
	widget   *widget.Widget
	status   *statusbar.StatusBar
	hlMgr    *HighlightManager
	cfg      *config.Config
	filePath string

	quit          chan struct{}
	quitOnce      sync.Once
	redrawRequest chan struct{}
}

// New builds an application editing the given file.
func New(cfg *config.Config, filePath string) (*App, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("screen creation failed: %w", err)
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("screen initialization failed: %w", err)
	}

	events := event.NewManager()

	themes := theme.NewManager()
	if cfg.Editor.Theme != "" {
		if err := themes.SetCurrent(cfg.Editor.Theme); err != nil {
			logger.Warnf("app: %v, keeping built-in theme", err)
		}
	}
	th := themes.Current()

	text, err := loadFile(filePath)
	if err != nil {
		screen.Fini()
		return nil, err
	}

	tabs := cfg.Editor.Tabs()
	if cfg.Editor.DetectIndent {
		tabs = textops.Detect(text, tabs)
	}

	w := widget.New(text, events, th, widget.Options{
		Tabs:       tabs,
		ScrollOff:  cfg.Editor.ScrollOff,
		ShowGutter: true,
		Editing: editing.Options{
			AutoCloseBrackets: cfg.Editor.AutoCloseBrackets,
			AutoIndent:        cfg.Editor.AutoIndent,
			SystemClipboard:   cfg.Editor.SystemClipboard,
		},
	})

	status := statusbar.New(statusbar.DefaultConfig())
	status.SetStyles(
		th.GetStyle("StatusBar"),
		th.GetStyle("StatusBarModified"),
		th.GetStyle("StatusBarMessage"),
	)
	status.SetFileInfo(filePath, false)
	status.SetIndent(indentDesc(tabs))
	status.SetCaret(0, 0)

	a := &App{
		screen:        screen,
		events:        events,
		themes:        themes,
		widget:        w,
		status:        status,
		cfg:           cfg,
		filePath:      filePath,
		quit:          make(chan struct{}),
		redrawRequest: make(chan struct{}, 1),
	}

	a.hlMgr = NewHighlightManager(
		highlight.New(),
		func() string { return w.Surface().Text() },
		func(result highlight.Result) {
			w.SetHighlights(result)
			a.requestRedraw()
		},
	)
	a.hlMgr.SetLanguage(highlight.ForPath(filePath))

	events.Subscribe(event.TypeBufferChanged, func(e event.Event) bool {
		a.hlMgr.Notify()
		row, col := a.widget.Caret()
		a.status.SetCaret(row, col)
		a.status.SetFileInfo(a.filePath, a.widget.Surface().Modified())
		return false
	})
	events.Subscribe(event.TypeSelectionMoved, func(e event.Event) bool {
		row, col := a.widget.Caret()
		a.status.SetCaret(row, col)
		return false
	})
	events.Subscribe(event.TypeFileSaved, func(e event.Event) bool {
		a.status.SetFileInfo(a.filePath, false)
		return false
	})

	// Parse once before the first frame so the document opens styled.
	a.hlMgr.RunNow(context.Background())

	events.Dispatch(event.TypeFileLoaded, event.FileLoadedData{Path: filePath})
	return a, nil
}

// Run starts the event and drawing loops and blocks until quit.
func (a *App) Run() error {
	defer a.screen.Fini()
	defer a.hlMgr.Shutdown()

	go a.eventLoop()

	a.status.SetTemporaryMessage("Ctrl+S save | Ctrl+Q quit")
	a.requestRedraw()

	for {
		select {
		case <-a.quit:
			a.events.Dispatch(event.TypeAppQuit, nil)
			if a.widget.Surface().Modified() {
				logger.Warnf("app: exited with unsaved changes to %q", a.filePath)
			}
			return nil
		case <-a.redrawRequest:
			a.draw()
		}
	}
}

// eventLoop polls terminal events; app-level chords are handled here, the
// rest goes to the widget.
func (a *App) eventLoop() {
	for {
		ev := a.screen.PollEvent()
		if ev == nil {
			return
		}

		needsRedraw := false
		switch ev := ev.(type) {
		case *tcell.EventResize:
			a.screen.Sync()
			needsRedraw = true
		case *tcell.EventKey:
			switch ev.Key() {
			case tcell.KeyCtrlS:
				a.save()
				needsRedraw = true
			case tcell.KeyCtrlQ:
				a.requestQuit()
			default:
				needsRedraw = a.widget.HandleKey(ev)
			}
		}

		if needsRedraw {
			a.requestRedraw()
		}
	}
}

// draw renders one frame: widget on top, status bar on the last row.
func (a *App) draw() {
	width, height := a.screen.Size()
	if height < 1 {
		return
	}
	a.widget.Draw(a.screen, 0, 0, width, height-1)
	a.status.Draw(a.screen, height-1, width)
	a.screen.Show()
}

func (a *App) save() {
	text := a.widget.Surface().Text()
	if err := saveFile(a.filePath, text); err != nil {
		logger.Errorf("app: save failed: %v", err)
		a.status.SetTemporaryMessage("save failed: %v", err)
		return
	}
	a.widget.Surface().ClearModified()
	a.events.Dispatch(event.TypeFileSaved, event.FileSavedData{Path: a.filePath})
	a.status.SetTemporaryMessage("saved %s", a.filePath)
	logger.Infof("app: saved %q (%d bytes)", a.filePath, len(text))
}

func (a *App) requestQuit() {
	a.quitOnce.Do(func() { close(a.quit) })
}

// requestRedraw coalesces redraw requests; a pending one is enough.
func (a *App) requestRedraw() {
	select {
	case a.redrawRequest <- struct{}{}:
	default:
	}
}

// SetTheme activates a theme by name and restyles everything.
func (a *App) SetTheme(name string) error {
	if err := a.themes.SetCurrent(name); err != nil {
		return err
	}
	th := a.themes.Current()
	a.widget.SetTheme(th)
	a.status.SetStyles(
		th.GetStyle("StatusBar"),
		th.GetStyle("StatusBarModified"),
		th.GetStyle("StatusBarMessage"),
	)
	a.events.Dispatch(event.TypeThemeChanged, event.ThemeChangedData{Name: th.Name})
	a.requestRedraw()
	return nil
}

// indentDesc renders the indent mode for the status bar.
func indentDesc(tabs textops.Tabs) string {
	if tabs.UseSpaces {
		return fmt.Sprintf("spaces:%d", tabs.Width)
	}
	return fmt.Sprintf("tabs:%d", tabs.Width)
}
