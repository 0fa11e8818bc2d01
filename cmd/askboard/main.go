// Askboard is a lightweight anonymous question board for live events.
//
// Attendees scan a QR code and post short questions from their phones; a
// projector display polls the board and shows everything asked today.
// Questions live for a single civil day in the display timezone and the
// board starts empty on every launch.
//
// Usage:
//
//	# Start the server with default configuration
//	askboard run
//
//	# Start with a custom configuration file
//	askboard run --config /path/to/config.yaml
//
//	# Validate configuration without starting the server
//	askboard run --dry-run
//
//	# Show version information
//	askboard version
package main

func main() {
	Execute()
}
