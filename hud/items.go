package hud

import (
	"strconv"
	"time"
)

// fpsUpdateInterval is how often the FPS readout recomputes.
const fpsUpdateInterval = 500 * time.Millisecond

// DeviceInfoItem shows static device and driver identification lines.
type DeviceInfoItem struct {
	lines []string
}

// NewDeviceInfoItem creates a device info item for the given identity
// strings.
func NewDeviceInfoItem(device, driver, api string) *DeviceInfoItem {
	return &DeviceInfoItem{
		lines: []string{
			"Device: " + device,
			"Driver: " + driver,
			"API:    " + api,
		},
	}
}

// Update is a no-op; the item is static.
func (i *DeviceInfoItem) Update(time.Time) {}

// Render draws the identification lines and advances past them.
func (i *DeviceInfoItem) Render(r *Renderer, pos Pos) Pos {
	for _, line := range i.lines {
		r.DrawText(pos, TextColor, line)
		pos.Y += LineHeight
	}
	return pos
}

// FPSItem shows a frame rate readout, recomputed every half second from
// the number of Update calls observed.
type FPSItem struct {
	frameCount int
	lastUpdate time.Time
	text       string
}

// NewFPSItem creates an FPS item. The readout stays empty until the
// first full measurement interval has elapsed.
func NewFPSItem() *FPSItem {
	return &FPSItem{text: "FPS: "}
}

// Update counts one frame and recomputes the readout when the
// measurement interval has elapsed.
func (i *FPSItem) Update(now time.Time) {
	if i.lastUpdate.IsZero() {
		i.lastUpdate = now
		return
	}

	i.frameCount++

	elapsed := now.Sub(i.lastUpdate)
	if elapsed < fpsUpdateInterval {
		return
	}

	fps := int64(float64(i.frameCount) * float64(time.Second) / float64(elapsed))
	i.text = "FPS: " + strconv.FormatInt(fps, 10)
	i.frameCount = 0
	i.lastUpdate = now
}

// Render draws the readout and advances one line.
func (i *FPSItem) Render(r *Renderer, pos Pos) Pos {
	r.DrawText(pos, TextColor, i.text)
	pos.Y += LineHeight
	return pos
}
