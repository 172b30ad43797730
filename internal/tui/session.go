// Package tui renders the interactive zone and record screens.
package tui

import (
	"github.com/kreigan/powerdns-tui/internal/logger"
	"github.com/kreigan/powerdns-tui/internal/view"
)

// Session owns the state shared by every screen: the active gateways in
// configured order and the logger. It is passed explicitly; there are no
// package-level globals.
type Session struct {
	Gateways []view.ServerGateway
	Log      *logger.Logger
}
