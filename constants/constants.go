package constants

import "os"

func GetRenderDir() string {
	path := os.Getenv("RENDER_PATH")
	if path != "" {
		return path
	}
	return "./out"
}

const TicksPerQuarter = 960

// every chord in a rendered progression rings for a whole note
const WholeNoteTicks = 4 * TicksPerQuarter

const DefaultVelocity = 90
