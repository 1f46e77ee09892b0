package app

import (
	"os"
	"path/filepath"
	"runtime"

	"github.com/gdamore/tcell/v2"

	"github.com/callmesalmon/vine/internal/config"
	"github.com/callmesalmon/vine/internal/editor"
	"github.com/callmesalmon/vine/internal/logger"
	"github.com/callmesalmon/vine/internal/session"
	"github.com/callmesalmon/vine/internal/syntax"
)

// App is the top-level runtime for vine.
type App struct {
	args []string
}

func New(args []string) *App {
	return &App{args: args}
}

func (a *App) Run() error {
	runtime.LockOSThread()
	if err := logger.Init(os.Getenv("VINE_DEBUG") != ""); err != nil {
		return err
	}
	defer logger.Close()

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	registry := syntax.NewRegistry()
	if dir, err := config.ConfigDir(); err == nil {
		if err := registry.LoadUserLanguages(dir); err != nil {
			logger.Warn("user languages not loaded", "error", err)
		}
	}

	s, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := s.Init(); err != nil {
		return err
	}
	defer s.Fini()

	sm, err := session.NewManager()
	if err != nil {
		logger.Warn("session manager unavailable", "error", err)
		sm = nil
	} else {
		defer sm.Stop()
	}

	ed := editor.New(cfg, registry)
	ed.SetStatusMessage("HELP: Ctrl-S = Save | Ctrl-Q = Quit | Ctrl-F = Find")
	if len(a.args) > 0 {
		openPath := a.args[0]
		if err := ed.OpenFile(openPath); err != nil {
			ed.SetStatusMessage("[ERROR] The requested file could not be opened: " + err.Error())
		} else if sm != nil {
			if abs, err := filepath.Abs(openPath); err == nil {
				if state, ok := sm.GetFileState(abs); ok {
					ed.SetPosition(state.CursorCol, state.CursorRow, state.RowOffset, state.ColOffset)
				}
			}
		}
	}

	for {
		ed.Render(s)
		switch ev := s.PollEvent().(type) {
		case *tcell.EventKey:
			if ed.HandleKey(ev) {
				a.persistState(sm, ed)
				return nil
			}
		case *tcell.EventResize:
			s.Sync()
		}
	}
}

func (a *App) persistState(sm *session.Manager, ed *editor.Editor) {
	if sm == nil || ed.Filename() == "" {
		return
	}
	abs, err := filepath.Abs(ed.Filename())
	if err != nil {
		return
	}
	cx, cy, rowOff, colOff := ed.Position()
	sm.SetFileState(abs, session.FileState{
		CursorRow: cy,
		CursorCol: cx,
		RowOffset: rowOff,
		ColOffset: colOff,
	})
}
