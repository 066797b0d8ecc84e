// SPDX-License-Identifier: Apache-2.0
// Copyright Authors of tabula

package view

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/derailed/tcell/v2"
	"github.com/derailed/tview"
	"github.com/tabula/tabula/internal/config"
	"github.com/tabula/tabula/internal/story"
	"github.com/tabula/tabula/internal/ui"
)

const (
	mainPage  = "main"
	storyPage = "story"
	helpPage  = "help"
)

// App represents the main application container.
type App struct {
	*tview.Application

	version string
	cfg     *config.Config
	aliases *config.Aliases
	env     *story.Env
	log     *slog.Logger
	main    *tview.Pages
	content *ui.Pages
	stories *tview.List
	prompt  *ui.Prompt
	confirm *ui.Confirm
	menu    *ui.Menu
	flash   *Flash
	help    *Help
	current *StoryView
	ctx     context.Context
	cancel  context.CancelFunc
	mx      sync.RWMutex
}

// NewApp creates a new application instance.
func NewApp(cfg *config.Config, aliases *config.Aliases, env *story.Env, log *slog.Logger, version string) *App {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	if aliases == nil {
		aliases = config.NewAliases()
	}

	a := App{
		Application: tview.NewApplication(),
		version:     version,
		cfg:         cfg,
		aliases:     aliases,
		env:         env,
		log:         log,
		main:        tview.NewPages(),
		content:     ui.NewPages(),
		stories:     tview.NewList(),
		menu:        ui.NewMenu(),
		help:        NewHelp(),
	}
	a.flash = NewFlash(a.QueueUpdateDraw)
	a.confirm = ui.NewConfirm(a.content)
	a.prompt = ui.NewPrompt(':', a.storyNames)
	a.ctx, a.cancel = context.WithCancel(context.Background())

	return &a
}

// Init builds the application layout.
func (a *App) Init() error {
	a.stories.ShowSecondaryText(false)
	a.stories.SetBorder(true)
	a.stories.SetTitle(" Stories ")
	a.stories.SetBackgroundColor(tcell.ColorDefault)
	a.stories.SetHighlightFullLine(true)
	for _, s := range story.All() {
		a.stories.AddItem(s.Name, s.Description, 0, nil)
	}
	a.stories.SetSelectedFunc(func(_ int, name, _ string, _ rune) {
		if err := a.ShowStory(name); err != nil {
			a.flash.Err(err)
		}
	})

	a.help.SetCloseFn(func() {
		a.content.Pop()
		a.focusTable()
	})
	a.confirm.SetDoneFn(a.focusTable)
	a.prompt.SetActiveFn(func(active bool) {
		if active {
			a.SetFocus(a.prompt)
			return
		}
		a.focusTable()
	})
	a.prompt.SetExecuteFn(func(name string) {
		if err := a.ShowStory(name); err != nil {
			a.flash.Err(err)
		}
	})

	a.main.AddPage(mainPage, a.buildLayout(), true, true)
	a.SetRoot(a.main, true)
	a.SetInputCapture(a.keyboard)
	a.EnableMouse(a.cfg != nil && a.cfg.Tabula.UI.EnableMouse)

	return nil
}

// Run shows the named story, or the default one, and starts the event loop.
func (a *App) Run(name string) error {
	if name == "" && a.cfg != nil {
		name = a.cfg.Tabula.DefaultStory
	}
	if name != "" {
		if err := a.ShowStory(name); err != nil {
			a.flash.Err(err)
		}
	}
	a.flash.Infof("tabula %s ready", a.version)

	return a.Application.Run()
}

// Stop terminates the app and aborts in flight loads.
func (a *App) Stop() {
	a.mx.Lock()
	current := a.current
	a.current = nil
	a.mx.Unlock()

	if current != nil {
		current.Stop()
	}
	a.cancel()
	a.Application.Stop()
}

// Flash returns the flash message handler.
func (a *App) Flash() *Flash {
	return a.flash
}

// Current returns the story view on screen.
func (a *App) Current() *StoryView {
	a.mx.RLock()
	defer a.mx.RUnlock()

	return a.current
}

// QueueUpdateDraw queues a function to be executed on the UI thread.
func (a *App) QueueUpdateDraw(fn func()) {
	go a.Application.QueueUpdateDraw(fn)
}

// ShowStory replaces the table with the named story or alias.
func (a *App) ShowStory(name string) error {
	s, err := story.Get(a.aliases.Get(name))
	if err != nil {
		return err
	}

	v := NewStoryView(s, a.env)
	v.SetUpdater(a.QueueUpdateDraw)
	v.SetErrorFn(a.flash.Err)
	v.SetConfirmFn(func(msg string, ack func()) {
		a.confirm.Ask(msg, ack)
		a.SetFocus(a.confirm)
	})
	if err := v.Init(a.ctx); err != nil {
		return fmt.Errorf("unable to open %s: %w", s.Name, err)
	}

	a.mx.Lock()
	prev := a.current
	a.current = v
	a.mx.Unlock()
	if prev != nil {
		prev.Stop()
	}

	a.log.Info("story opened", "story", s.Name)
	a.content.ClearStack()
	a.content.Push(storyPage, v)
	a.menu.HydrateMenu(v.Hints())
	a.help.Populate(v.Hints())
	a.SetFocus(v)
	v.Start()
	a.flash.Info(v.Summary())

	return nil
}

// storyNames lists story names and aliases for completion.
func (a *App) storyNames() []string {
	names := story.Names()
	for alias := range a.aliases.All() {
		names = append(names, alias)
	}
	return names
}

func (a *App) buildLayout() *tview.Flex {
	body := tview.NewFlex().
		AddItem(a.stories, 28, 0, false).
		AddItem(a.content, 0, 1, true)

	return tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(a.prompt, 1, 0, false).
		AddItem(a.menu, 2, 0, false).
		AddItem(body, 0, 1, true).
		AddItem(a.flash, 1, 0, false)
}

func (a *App) focusTable() {
	if v := a.Current(); v != nil {
		a.SetFocus(v)
		return
	}
	a.SetFocus(a.stories)
}

// keyboard handles global keyboard events.
func (a *App) keyboard(evt *tcell.EventKey) *tcell.EventKey {
	if a.prompt.IsActive() || a.confirm.IsOpen() || a.content.Current() == helpPage {
		return evt
	}

	switch evt.Key() {
	case tcell.KeyCtrlC:
		a.Stop()
		return nil
	case tcell.KeyTab:
		if a.stories.HasFocus() {
			a.focusTable()
		} else {
			a.SetFocus(a.stories)
		}
		return nil
	case tcell.KeyRune:
		switch evt.Rune() {
		case 'q':
			a.Stop()
			return nil
		case '?':
			a.content.Push(helpPage, a.help)
			a.SetFocus(a.help)
			return nil
		case ':':
			a.prompt.Activate()
			return nil
		}
	}

	return evt
}
