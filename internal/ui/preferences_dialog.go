package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/preachit/logistics-site/internal/appstate"
	"github.com/preachit/logistics-site/internal/model"
)

// PreferencesDialog edits the language and theme preferences together
type PreferencesDialog struct {
	state  *appstate.State
	window fyne.Window
	dialog *dialog.ConfirmDialog

	// UI components
	languageRadio *widget.RadioGroup
	themeRadio    *widget.RadioGroup
	resetBtn      *widget.Button

	languages []model.Language
	modes     []model.ThemeOption
}

// NewPreferencesDialog creates a new preferences dialog
func NewPreferencesDialog(state *appstate.State, window fyne.Window) *PreferencesDialog {
	pd := &PreferencesDialog{
		state:     state,
		window:    window,
		languages: model.Languages(),
		modes:     model.ThemeModes(),
	}

	pd.createUI()
	return pd
}

// Show displays the preferences dialog
func (pd *PreferencesDialog) Show() {
	pd.loadCurrentPreferences()
	pd.dialog.Show()
}

// createUI creates the preferences dialog UI
func (pd *PreferencesDialog) createUI() {
	languageOptions := make([]string, 0, len(pd.languages))
	for _, l := range pd.languages {
		languageOptions = append(languageOptions, languageLabel(l))
	}
	pd.languageRadio = widget.NewRadioGroup(languageOptions, nil)
	pd.languageRadio.Required = true

	themeOptions := make([]string, 0, len(pd.modes))
	for _, m := range pd.modes {
		themeOptions = append(themeOptions, themeIcon(m.Mode)+" "+pd.state.T(themeLabelKey(m.Mode)))
	}
	pd.themeRadio = widget.NewRadioGroup(themeOptions, nil)
	pd.themeRadio.Horizontal = true
	pd.themeRadio.Required = true

	pd.resetBtn = widget.NewButton(pd.state.T("resetPreferences"), pd.onReset)

	form := container.NewVBox(
		widget.NewLabelWithStyle(pd.state.T("language"), fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		pd.languageRadio,
		widget.NewSeparator(),
		widget.NewLabelWithStyle(pd.state.T("theme"), fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		pd.themeRadio,
		widget.NewSeparator(),
		pd.resetBtn,
	)

	pd.dialog = dialog.NewCustomConfirm(
		IconSettings,
		"OK",
		IconClose,
		form,
		pd.onSave,
		pd.window,
	)

	pd.dialog.Resize(fyne.NewSize(PreferencesDialogW, PreferencesDialogH))
}

// loadCurrentPreferences selects the options matching the current state
func (pd *PreferencesDialog) loadCurrentPreferences() {
	for i, l := range pd.languages {
		if l.Code == pd.state.Language() {
			pd.languageRadio.SetSelected(pd.languageRadio.Options[i])
		}
	}
	for i, m := range pd.modes {
		if m.Mode == pd.state.Mode() {
			pd.themeRadio.SetSelected(pd.themeRadio.Options[i])
		}
	}
}

// selectedLanguage maps the radio selection back to a code
func (pd *PreferencesDialog) selectedLanguage() (model.LanguageCode, bool) {
	for i, opt := range pd.languageRadio.Options {
		if opt == pd.languageRadio.Selected {
			return pd.languages[i].Code, true
		}
	}
	return "", false
}

func (pd *PreferencesDialog) selectedMode() (model.ThemeMode, bool) {
	for i, opt := range pd.themeRadio.Options {
		if opt == pd.themeRadio.Selected {
			return pd.modes[i].Mode, true
		}
	}
	return "", false
}

// onSave applies the selection when the dialog is confirmed
func (pd *PreferencesDialog) onSave(confirmed bool) {
	if !confirmed {
		return
	}

	if code, ok := pd.selectedLanguage(); ok && code != pd.state.Language() {
		pd.state.SetLanguage(string(code))
	}
	if mode, ok := pd.selectedMode(); ok && mode != pd.state.Mode() {
		pd.state.SetTheme(string(mode))
	}
}

// onReset restores defaults and reflects them in the open dialog
func (pd *PreferencesDialog) onReset() {
	pd.state.Reset()
	pd.loadCurrentPreferences()
}
