package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
)

// MobileUI adapts layout choices to the device form factor
type MobileUI struct {
	isMobile func() bool
}

// NewMobileUI creates a helper that asks the current device
func NewMobileUI() *MobileUI {
	return &MobileUI{isMobile: func() bool { return fyne.CurrentDevice().IsMobile() }}
}

// IsMobileDevice checks if the app is running on a mobile device
func (m *MobileUI) IsMobileDevice() bool {
	return m.isMobile()
}

// ServiceGrid lays the service cards out in one column on mobile and in a
// row on desktop
func (m *MobileUI) ServiceGrid(objects ...fyne.CanvasObject) *fyne.Container {
	if m.IsMobileDevice() {
		return container.NewGridWithColumns(MobileServiceColumns, objects...)
	}
	return container.NewAdaptiveGrid(ServiceColumns, objects...)
}
