package app

// Viewport is the device breakpoint class.
type Viewport int

const (
	ViewportDesktop Viewport = iota
	ViewportMobile
)

// Tab is the active top-level section.
type Tab string

const (
	TabExplore   Tab = "explore"
	TabBookings  Tab = "bookings"
	TabCommunity Tab = "community"
	TabAdmin     Tab = "admin"
)

// ViewState is the input to view composition.
type ViewState struct {
	Tab              Tab
	Viewport         Viewport
	MobileMapVisible bool
	HasSelection     bool
}

// Layout says which panels render. On mobile the detail panel overlays as a
// bottom sheet; on desktop it is a third column.
type Layout struct {
	List          bool
	Map           bool
	Detail        bool
	DetailAsSheet bool
}

// Compose applies the panel policy table. Mobile shows exactly one of
// list/map per the toggle; desktop shows both side by side. The detail panel
// renders whenever a selection exists, regardless of the list/map toggle.
func Compose(s ViewState) Layout {
	if s.Viewport == ViewportMobile {
		return Layout{
			List:          !s.MobileMapVisible,
			Map:           s.MobileMapVisible,
			Detail:        s.HasSelection,
			DetailAsSheet: true,
		}
	}
	return Layout{
		List:   true,
		Map:    true,
		Detail: s.HasSelection,
	}
}
