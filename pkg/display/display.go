// Package display defines the driver interface a front end implements to
// show rendered frames, and a registry drivers install themselves into.
package display

// Driver is the interface that wraps the basic methods for a display
// driver. A driver receives whole frames of greyscale pixels, one byte per
// pixel, of the dimensions it was started with.
type Driver interface {
	// Start opens the display and consumes frames until the channel
	// closes or the user asks to quit. Closing stop tells the frame
	// producer to shut down.
	Start(frames <-chan []uint8, stop chan<- struct{}) error
	// Stop releases the display's resources.
	Stop() error
}

// InstalledDriver is a driver that has registered its name.
type InstalledDriver struct {
	Name string
	Driver
}

// InstalledDrivers is a list of all the installed drivers. Drivers call
// Install from their init function; the main program picks from this list
// by name.
var InstalledDrivers []*InstalledDriver

// Install registers a display driver under the given name.
func Install(name string, driver Driver) {
	InstalledDrivers = append(InstalledDrivers, &InstalledDriver{
		Name:   name,
		Driver: driver,
	})
}

// GetDriver returns the driver with the given name, or nil if no driver
// with that name is installed. The name "auto" selects the first installed
// driver.
func GetDriver(name string) Driver {
	if name == "auto" && len(InstalledDrivers) > 0 {
		return InstalledDrivers[0]
	}
	for _, driver := range InstalledDrivers {
		if driver.Name == name {
			return driver.Driver
		}
	}
	return nil
}
