// Package common contains shared constants and sentinel errors used across
// gophcal components.
package common

const (
	// AppName is shown in the menu header and used in exported UIDs.
	AppName = "gophcal"

	// ICSProductID identifies the exporter in generated calendars.
	ICSProductID = "-//dmitrijs2005//gophcal//EN"
)
