package d3d11

import "sync/atomic"

// Device is the owner of all state objects created through this package.
//
// Lifetime follows the D3D11 model: every holder of a device pointer owns
// one share of it, obtained through Retain and returned through Release.
// A device starts with one share belonging to its creator. Dropping the
// last share has no observable side effect; the device simply becomes
// garbage once nothing references it.
type Device struct {
	name string
	refs atomic.Int64
}

// NewDevice creates a device with the given debug name. The caller holds
// the initial share and must Release it when done.
func NewDevice(name string) *Device {
	d := &Device{name: name}
	d.refs.Store(1)
	return d
}

// Name returns the debug name the device was created with.
func (d *Device) Name() string { return d.name }

// Retain acquires one additional share of the device and returns it.
func (d *Device) Retain() *Device {
	d.refs.Add(1)
	return d
}

// Release returns one share of the device.
func (d *Device) Release() {
	d.refs.Add(-1)
}

// refCount reports the current share count. Test hook.
func (d *Device) refCount() int64 {
	return d.refs.Load()
}
