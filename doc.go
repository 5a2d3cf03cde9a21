// Package arx translates Direct3D 11 fixed-function render state into its
// Vulkan equivalent.
//
// # Overview
//
// The root package only carries shared infrastructure (the logger). The
// translation work lives in the subpackages:
//
//   - d3d11: the source-API object model and the resolved state objects.
//     The central type is d3d11.BlendState, which decodes a d3d11.BlendDesc
//     into per-render-target Vulkan blend modes at creation time and binds
//     them to a context together with the per-draw sample mask.
//   - native: the Vulkan-side state vocabulary consumed by d3d11, built on
//     the core1_0 enums from vkngwrapper, plus the Context interface that
//     receives the translated state.
//   - hud: a small diagnostic overlay configured through the ARX_HUD
//     environment variable.
//
// # Quick Start
//
//	dev := d3d11.NewDevice("arx")
//	defer dev.Release()
//
//	state := d3d11.NewBlendState(dev, d3d11.DefaultBlendDesc())
//	defer state.Release()
//
//	ctx := native.NewRecordingContext()
//	state.BindToContext(ctx, 0xFFFFFFFF)
//
// # Logging
//
// The package produces no log output by default. Call [SetLogger] to enable
// diagnostics for invalid enumerants and unsupported interface queries.
package arx
