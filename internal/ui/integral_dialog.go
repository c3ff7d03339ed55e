package ui

import (
	"log/slog"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"llm-calculator/internal/calculator"
	"llm-calculator/internal/config"
)

// IntegralDialog is a modal form collecting an integrand and its limits.
// Any text is accepted, including empty fields.
type IntegralDialog struct {
	function *widget.Entry
	lower    *widget.Entry
	upper    *widget.Entry

	onConfirm func(calculator.IntegralRequest)
	form      dialog.Dialog
}

// NewIntegralDialog builds the dialog over parent. onConfirm runs on OK only.
func NewIntegralDialog(parent fyne.Window, onConfirm func(calculator.IntegralRequest)) *IntegralDialog {
	d := &IntegralDialog{
		function:  widget.NewEntry(),
		lower:     widget.NewEntry(),
		upper:     widget.NewEntry(),
		onConfirm: onConfirm,
	}
	d.function.SetPlaceHolder("x^2")
	d.lower.SetPlaceHolder("0")
	d.upper.SetPlaceHolder("1")

	d.form = dialog.NewForm(config.IntegralDialogTitle, "OK", "Cancel",
		[]*widget.FormItem{
			widget.NewFormItem("Function:", d.function),
			widget.NewFormItem("Lower Limit:", d.lower),
			widget.NewFormItem("Upper Limit:", d.upper),
		},
		d.submit,
		parent,
	)
	d.form.Resize(fyne.NewSize(320, 220))
	return d
}

// Show opens the dialog.
func (d *IntegralDialog) Show() {
	d.form.Show()
}

// Values returns the current field contents.
func (d *IntegralDialog) Values() calculator.IntegralRequest {
	return calculator.IntegralRequest{
		Function: d.function.Text,
		Lower:    d.lower.Text,
		Upper:    d.upper.Text,
	}
}

func (d *IntegralDialog) submit(ok bool) {
	if !ok {
		slog.Debug("integral dialog cancelled")
		return
	}
	d.onConfirm(d.Values())
}
