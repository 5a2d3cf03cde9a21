package d3d11

import "errors"

// ErrNoInterface is returned by QueryInterface when the requested
// capability is not implemented by the object (the E_NOINTERFACE
// equivalent). The query is answered, not failed: the caller is expected
// to probe and fall back.
var ErrNoInterface = errors.New("d3d11: interface not supported")

// InterfaceID names a queryable object capability. The set is closed;
// there is no dynamic registration.
type InterfaceID uint8

const (
	// InterfaceUnknown is the base shared-object capability
	// (the IUnknown equivalent). Every object supports it.
	InterfaceUnknown InterfaceID = iota

	// InterfaceDeviceChild identifies objects owned by a Device.
	InterfaceDeviceChild

	// InterfaceBlendState identifies blend state objects.
	InterfaceBlendState
)

var interfaceIDNames = [...]string{
	InterfaceUnknown:     "Unknown",
	InterfaceDeviceChild: "DeviceChild",
	InterfaceBlendState:  "BlendState",
}

// String returns the name of the interface identity.
func (id InterfaceID) String() string {
	if int(id) < len(interfaceIDNames) {
		return interfaceIDNames[id]
	}
	return "Invalid"
}
