package ui

import (
	"context"
	"log/slog"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"llm-calculator/internal/calculator"
	"llm-calculator/internal/config"
)

// Window is the calculator's main window. Requests run on their own goroutine
// and the result is rendered back on the UI goroutine; all controls stay
// disabled while a request is in flight.
type Window struct {
	win    fyne.Window
	calc   *calculator.Calculator
	ctx    context.Context
	cancel context.CancelFunc

	entry      *widget.Entry
	display    *widget.Label
	explainBtn *widget.Button
	keys       []*widget.Button
	syncing    bool // true while render writes into the entry

	spawn   func(func())                                     // runs a request off the UI goroutine
	do      func(func())                                     // runs on the UI goroutine
	collect func(onConfirm func(calculator.IntegralRequest)) // opens the integral dialog
}

// NewWindow creates the calculator window on app. Closing the window cancels
// any request still in flight.
func NewWindow(ctx context.Context, app fyne.App, cfg config.WindowConfig, calc *calculator.Calculator) *Window {
	w := newWindow(ctx, app.NewWindow(cfg.Title), calc)
	w.win.Resize(fyne.NewSize(cfg.Width, cfg.Height))
	return w
}

func newWindow(ctx context.Context, win fyne.Window, calc *calculator.Calculator) *Window {
	ctx, cancel := context.WithCancel(ctx)
	w := &Window{
		win:    win,
		calc:   calc,
		ctx:    ctx,
		cancel: cancel,
		spawn:  func(fn func()) { go fn() },
		do:     fyne.Do,
	}
	w.collect = func(onConfirm func(calculator.IntegralRequest)) {
		NewIntegralDialog(w.win, onConfirm).Show()
	}

	w.win.SetContent(w.build())
	w.win.SetOnClosed(cancel)
	w.render(calc.Snapshot())
	return w
}

// ShowAndRun shows the window and runs the application loop.
func (w *Window) ShowAndRun() {
	w.win.ShowAndRun()
}

func (w *Window) build() fyne.CanvasObject {
	w.entry = widget.NewEntry()
	w.entry.SetPlaceHolder("Enter an expression")
	w.entry.OnChanged = w.onEntryChanged
	w.entry.OnSubmitted = func(string) { w.request("evaluate", w.calc.Evaluate) }

	w.display = widget.NewLabel("")
	w.display.Alignment = fyne.TextAlignTrailing
	w.display.Wrapping = fyne.TextWrapWord
	scroll := container.NewVScroll(w.display)
	scroll.SetMinSize(fyne.NewSize(0, 120))

	w.explainBtn = widget.NewButton(config.ExplainButtonLabel, func() {
		w.request("explain", w.calc.Explain)
	})

	grid := container.NewGridWithColumns(len(calculator.Keypad[0]))
	for _, row := range calculator.Keypad {
		for _, key := range row {
			btn := widget.NewButton(key.Label, w.keyHandler(key))
			btn.Importance = importanceFor(key.Role)
			w.keys = append(w.keys, btn)
			grid.Add(btn)
		}
	}

	return container.NewPadded(container.NewBorder(
		w.entry,
		container.NewVBox(w.explainBtn, grid),
		nil, nil,
		scroll,
	))
}

func (w *Window) keyHandler(key calculator.Key) func() {
	switch {
	case key.IsToken():
		token := key.Action
		return func() { w.local("press", func() error { return w.calc.Press(token) }) }
	case key.Action == calculator.ActionClear:
		return func() { w.local("clear", w.calc.Clear) }
	case key.Action == calculator.ActionEvaluate:
		return func() { w.request("evaluate", w.calc.Evaluate) }
	default:
		return func() {
			w.collect(func(req calculator.IntegralRequest) {
				w.request("integral", func(ctx context.Context) error {
					return w.calc.Integral(ctx, req)
				})
			})
		}
	}
}

func (w *Window) onEntryChanged(text string) {
	if w.syncing {
		return
	}
	if err := w.calc.SetEntry(text); err != nil {
		slog.Debug("entry edit ignored", "error", err)
	}
}

// local applies an action that needs no request and renders the result.
func (w *Window) local(action string, fn func() error) {
	if err := fn(); err != nil {
		slog.Debug("action ignored", "action", action, "error", err)
	}
	w.render(w.calc.Snapshot())
}

// request disables the controls, runs fn off the UI goroutine and renders the outcome.
func (w *Window) request(action string, fn func(context.Context) error) {
	w.setBusy(true)
	w.spawn(func() {
		if err := fn(w.ctx); err != nil {
			slog.Debug("action ignored", "action", action, "error", err)
		}
		w.do(func() { w.render(w.calc.Snapshot()) })
	})
}

func (w *Window) render(s calculator.State) {
	if w.entry.Text != s.Entry {
		w.syncing = true
		w.entry.SetText(s.Entry)
		w.syncing = false
	}
	w.display.SetText(s.Display)
	w.setBusy(s.Busy)

	if s.ExplainEnabled && !s.Busy {
		w.explainBtn.Importance = widget.HighImportance
		w.explainBtn.Enable()
	} else {
		w.explainBtn.Importance = widget.LowImportance
		w.explainBtn.Disable()
	}
	w.explainBtn.Refresh()
}

func (w *Window) setBusy(busy bool) {
	for _, btn := range w.keys {
		if busy {
			btn.Disable()
		} else {
			btn.Enable()
		}
	}
	if busy {
		w.entry.Disable()
		w.explainBtn.Disable()
	} else {
		w.entry.Enable()
	}
}

func importanceFor(role calculator.Role) widget.Importance {
	switch role {
	case calculator.RoleOperator:
		return widget.WarningImportance
	case calculator.RoleFunction:
		return widget.SuccessImportance
	case calculator.RoleEquals:
		return widget.DangerImportance
	default:
		return widget.MediumImportance
	}
}
