// Package module holds the module contract and the helpers mains use to cross wire
// ports between modules (PortsOf, the name registry)
package module

import (
	phttp "bbcenglish/internal/platform/net/http"
)

// Module mirrors modkit.Module. It lives here so a module package can import the
// helpers without importing modkit
type Module interface {
	MountRoutes(r phttp.Router)
	Ports() any
	Name() string
}
