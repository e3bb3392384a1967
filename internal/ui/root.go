package ui

import (
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"
	"go.uber.org/zap"

	"github.com/preachit/logistics-site/internal/appstate"
	"github.com/preachit/logistics-site/internal/model"
)

// RootUI represents the main window: header, page sections and footer. All
// text comes from the shared state and is re-read on every change notice.
type RootUI struct {
	window fyne.Window
	app    fyne.App
	state  *appstate.State
	mobile *MobileUI
	logger *zap.Logger
	now    func() time.Time

	languageSelect *widget.Select
	themeSelect    *widget.Select
	menuButton     *widget.Button
	mobileNav      *fyne.Container
	scroll         *container.Scroll
	sections       map[string]fyne.CanvasObject
	heroTitle      *widget.Label
	copyright      *widget.Label

	preferences *PreferencesDialog
	unsubscribe func()
}

// NewRootUI creates and initializes the main UI
func NewRootUI(window fyne.Window, app fyne.App, state *appstate.State, logger *zap.Logger) *RootUI {
	if logger == nil {
		logger = zap.NewNop()
	}

	ui := &RootUI{
		window: window,
		app:    app,
		state:  state,
		mobile: NewMobileUI(),
		logger: logger,
		now:    time.Now,
	}

	ui.applyTheme()
	ui.setupUI()

	// Notices may arrive from any goroutine
	ui.unsubscribe = state.Subscribe(func(change appstate.Change) {
		ui.logger.Debug("Re-rendering after preference change",
			zap.Int("kind", int(change.Kind)),
			zap.String("language", string(change.Language)),
			zap.Bool("dark", change.IsDark))
		fyne.Do(ui.refresh)
	})

	return ui
}

// Close stops listening to preference changes
func (ui *RootUI) Close() {
	if ui.unsubscribe != nil {
		ui.unsubscribe()
		ui.unsubscribe = nil
	}
}

// refresh re-applies the theme and rebuilds every text-bearing widget,
// keeping the scroll position
func (ui *RootUI) refresh() {
	var offset fyne.Position
	if ui.scroll != nil {
		offset = ui.scroll.Offset
	}

	ui.applyTheme()
	ui.setupUI()

	ui.scroll.Offset = offset
	ui.scroll.Refresh()
}

func (ui *RootUI) applyTheme() {
	ui.app.Settings().SetTheme(NewCompactTheme(ui.state.IsDark))
}

// setupUI creates and arranges all UI components
func (ui *RootUI) setupUI() {
	ui.window.SetTitle(CompanyName + MiddleDotSeparator + ui.state.T(SectionHome))

	header := ui.createHeader()

	ui.sections = map[string]fyne.CanvasObject{
		SectionHome:     container.NewPadded(ui.createHero()),
		SectionServices: container.NewPadded(ui.createServices()),
		SectionTracking: container.NewPadded(ui.createTracking()),
		SectionAbout:    container.NewPadded(ui.createAbout()),
		SectionContact:  container.NewPadded(ui.createContact()),
	}

	page := container.NewVBox()
	for _, key := range NavSections {
		page.Add(ui.sections[key])
		page.Add(widget.NewSeparator())
	}
	page.Add(ui.createFooter())

	ui.scroll = container.NewVScroll(page)

	ui.window.SetContent(container.NewBorder(header, nil, nil, nil, ui.scroll))
}

// ScrollTo moves the page so that the named section is at the top
func (ui *RootUI) ScrollTo(section string) {
	obj, ok := ui.sections[section]
	if !ok {
		return
	}
	if ui.mobileNav != nil {
		ui.mobileNav.Hide()
	}

	ui.scroll.Offset = fyne.NewPos(0, obj.Position().Y)
	ui.scroll.Refresh()
}

// createHeader builds the brand, navigation and preference selectors
func (ui *RootUI) createHeader() fyne.CanvasObject {
	brand := widget.NewLabelWithStyle(IconAnchor+" "+CompanyName, fyne.TextAlignLeading, fyne.TextStyle{Bold: true})

	ui.languageSelect = ui.createLanguageSelect()
	ui.themeSelect = ui.createThemeSelect()

	settingsBtn := widget.NewButton(IconSettings, ui.onShowPreferences)
	settingsBtn.Importance = widget.LowImportance

	controls := container.NewHBox(
		widget.NewLabel(IconLanguage),
		ui.languageSelect,
		ui.themeSelect,
		settingsBtn,
	)

	if ui.mobile.IsMobileDevice() {
		ui.mobileNav = container.NewVBox(ui.createNavButtons()...)
		ui.mobileNav.Hide()
		ui.menuButton = widget.NewButton(IconMenu, ui.onToggleMenu)
		ui.menuButton.Importance = widget.LowImportance

		bar := container.NewBorder(nil, nil, brand, container.NewHBox(controls, ui.menuButton))
		return container.NewVBox(bar, ui.mobileNav, widget.NewSeparator())
	}

	ui.mobileNav = nil
	ui.menuButton = nil
	nav := container.NewHBox(ui.createNavButtons()...)
	bar := container.NewBorder(nil, nil, brand, controls, container.NewCenter(nav))
	return container.NewVBox(bar, widget.NewSeparator())
}

func (ui *RootUI) createNavButtons() []fyne.CanvasObject {
	buttons := make([]fyne.CanvasObject, 0, len(NavSections))
	for _, key := range NavSections {
		section := key // Capture for closure
		btn := widget.NewButton(ui.state.T(section), func() {
			ui.ScrollTo(section)
		})
		btn.Importance = widget.LowImportance
		buttons = append(buttons, btn)
	}
	return buttons
}

// createLanguageSelect lists languages as "flag name"; the selection is set
// before the handler so building the widget does not write the preference
func (ui *RootUI) createLanguageSelect() *widget.Select {
	languages := model.Languages()
	options := make([]string, 0, len(languages))
	for _, l := range languages {
		options = append(options, languageLabel(l))
	}

	sel := widget.NewSelect(options, nil)
	if current, ok := model.LanguageByCode(ui.state.Language()); ok {
		sel.SetSelected(languageLabel(current))
	}
	sel.OnChanged = func(string) {
		idx := sel.SelectedIndex()
		if idx < 0 || idx >= len(languages) {
			return
		}
		ui.state.SetLanguage(string(languages[idx].Code))
	}
	return sel
}

func (ui *RootUI) createThemeSelect() *widget.Select {
	modes := model.ThemeModes()
	options := make([]string, 0, len(modes))
	for _, m := range modes {
		options = append(options, ui.themeLabel(m.Mode))
	}

	sel := widget.NewSelect(options, nil)
	sel.SetSelected(ui.themeLabel(ui.state.Mode()))
	sel.OnChanged = func(string) {
		idx := sel.SelectedIndex()
		if idx < 0 || idx >= len(modes) {
			return
		}
		ui.state.SetTheme(string(modes[idx].Mode))
	}
	return sel
}

func (ui *RootUI) createHero() fyne.CanvasObject {
	ui.heroTitle = heading(ui.state.T("heroTitle"))
	subtitle := paragraph(ui.state.T("heroSubtitle"))
	subtitle.Alignment = fyne.TextAlignCenter

	quote := widget.NewButton(ui.state.T("getQuote"), func() { ui.ScrollTo(SectionContact) })
	quote.Importance = widget.HighImportance
	track := widget.NewButton(ui.state.T("trackShipment"), func() { ui.ScrollTo(SectionTracking) })

	return container.NewVBox(
		ui.heroTitle,
		subtitle,
		container.NewCenter(container.NewHBox(quote, track)),
	)
}

func (ui *RootUI) createServices() fyne.CanvasObject {
	cards := make([]fyne.CanvasObject, 0, len(ServiceKeys))
	for _, keys := range ServiceKeys {
		cards = append(cards, widget.NewCard(ui.state.T(keys[0]), "", paragraph(ui.state.T(keys[1]))))
	}

	return container.NewVBox(
		heading(ui.state.T("servicesTitle")),
		ui.mobile.ServiceGrid(cards...),
	)
}

// createTracking shows the lookup form; there is no shipment backend, so the
// action stays disabled
func (ui *RootUI) createTracking() fyne.CanvasObject {
	entry := widget.NewEntry()
	entry.SetPlaceHolder(ui.state.T("tracking"))
	lookup := widget.NewButton(ui.state.T("trackShipment"), nil)
	lookup.Disable()

	return container.NewVBox(
		heading(ui.state.T("trackShipment")),
		container.NewBorder(nil, nil, nil, lookup, entry),
	)
}

func (ui *RootUI) createAbout() fyne.CanvasObject {
	return container.NewVBox(
		heading(ui.state.T("aboutTitle")),
		paragraph(ui.state.T("aboutText")),
	)
}

func (ui *RootUI) createContact() fyne.CanvasObject {
	message := widget.NewMultiLineEntry()
	message.SetMinRowsVisible(4)

	form := widget.NewForm(
		widget.NewFormItem(ui.state.T("contactName"), widget.NewEntry()),
		widget.NewFormItem(ui.state.T("contactEmail"), widget.NewEntry()),
		widget.NewFormItem(ui.state.T("contactPhone"), widget.NewEntry()),
		widget.NewFormItem(ui.state.T("contactMessage"), message),
	)

	send := widget.NewButton(ui.state.T("sendMessage"), nil)
	send.Disable()

	return container.NewVBox(
		heading(ui.state.T("contactTitle")),
		form,
		container.NewHBox(layout.NewSpacer(), send),
	)
}

func (ui *RootUI) createFooter() fyne.CanvasObject {
	links := container.NewVBox(widget.NewLabelWithStyle(ui.state.T("quickLinks"), fyne.TextAlignLeading, fyne.TextStyle{Bold: true}))
	for _, btn := range ui.createNavButtons() {
		links.Add(btn)
	}

	follow := container.NewVBox(widget.NewLabelWithStyle(ui.state.T("followUs"), fyne.TextAlignLeading, fyne.TextStyle{Bold: true}))

	ui.copyright = widget.NewLabel(ui.state.Tf("copyright", ui.now().Year(), ui.state.T("allRightsReserved")))
	ui.copyright.Alignment = fyne.TextAlignCenter

	return container.NewVBox(
		container.NewGridWithColumns(2, links, follow),
		widget.NewSeparator(),
		ui.copyright,
	)
}

// onToggleMenu shows or hides the mobile navigation list
func (ui *RootUI) onToggleMenu() {
	if ui.mobileNav == nil {
		return
	}
	if ui.mobileNav.Visible() {
		ui.mobileNav.Hide()
		ui.menuButton.SetText(IconMenu)
		return
	}
	ui.mobileNav.Show()
	ui.menuButton.SetText(IconClose)
}

// onShowPreferences shows the preferences dialog
func (ui *RootUI) onShowPreferences() {
	ui.preferences = NewPreferencesDialog(ui.state, ui.window)
	ui.preferences.Show()
}

func (ui *RootUI) themeLabel(mode model.ThemeMode) string {
	return themeIcon(mode) + " " + ui.state.T(themeLabelKey(mode))
}

func languageLabel(l model.Language) string {
	return l.Flag + " " + l.Name
}

func themeLabelKey(mode model.ThemeMode) string {
	switch mode {
	case model.ThemeLight:
		return "themeLight"
	case model.ThemeDark:
		return "themeDark"
	default:
		return "themeSystem"
	}
}

func themeIcon(mode model.ThemeMode) string {
	switch mode {
	case model.ThemeLight:
		return IconSun
	case model.ThemeDark:
		return IconMoon
	default:
		return IconMonitor
	}
}

func heading(text string) *widget.Label {
	return widget.NewLabelWithStyle(text, fyne.TextAlignCenter, fyne.TextStyle{Bold: true})
}

func paragraph(text string) *widget.Label {
	l := widget.NewLabel(text)
	l.Wrapping = fyne.TextWrapWord
	return l
}
