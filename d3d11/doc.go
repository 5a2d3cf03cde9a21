// Package d3d11 models the Direct3D 11 fixed-function blend state and its
// translation to Vulkan.
//
// State objects follow the D3D11 object model: they are created from a
// descriptor, immutable afterwards, share-counted, and owned by a Device.
// All enum decoding happens once at creation time, so binding a state
// object to a context is a cheap, stateless O(8) operation that can run
// concurrently from any number of context threads.
package d3d11
