package ui

// UI-wide constants to avoid magic numbers/strings scattered across the codebase.

// Icons (emojis/symbols)
const (
	IconAnchor   = "⚓"
	IconSettings = "⚙"
	IconLanguage = "🌐"
	IconMenu     = "☰"
	IconClose    = "×"
	IconSun      = "☀"
	IconMoon     = "☾"
	IconMonitor  = "🖥"
)

// Text fragments
const (
	CompanyName        = "Preach It Enterprise"
	MiddleDotSeparator = " · "
)

// Layout sizing
const (
	ServiceColumns       = 4
	MobileServiceColumns = 1
)

// Dialog sizing
const (
	PreferencesDialogW float32 = 420
	PreferencesDialogH float32 = 320
)

// Section anchors, in page order. Values are catalog keys.
const (
	SectionHome     = "home"
	SectionServices = "services"
	SectionTracking = "tracking"
	SectionAbout    = "about"
	SectionContact  = "contact"
)

// NavSections lists the header navigation entries in order
var NavSections = []string{SectionHome, SectionServices, SectionTracking, SectionAbout, SectionContact}

// ServiceKeys pairs each service title key with its description key
var ServiceKeys = [][2]string{
	{"oceanFreight", "oceanFreightDesc"},
	{"airFreight", "airFreightDesc"},
	{"landTransport", "landTransportDesc"},
	{"warehousing", "warehousingDesc"},
}
