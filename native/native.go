// Package native defines the Vulkan-side render state vocabulary produced
// by the translation layer.
//
// The types in this package are plain values built on the core1_0 enums
// from vkngwrapper. They carry no handles and no ownership: a BlendMode or
// MultisampleState is cheap to copy and safe to share between goroutines.
//
// Context is the consumer interface. The real command-recording context is
// provided by the embedding renderer; RecordingContext is a lightweight
// implementation that captures the issued calls as typed commands.
package native

import (
	"github.com/vkngwrapper/core/v2/core1_0"
)

// BlendMode is the fully resolved blend configuration for a single render
// target. All enum fields hold Vulkan values; nothing in a BlendMode needs
// further translation before pipeline creation.
type BlendMode struct {
	// EnableBlending controls whether blending is performed at all for
	// this target. The factor and op fields are ignored by the backend
	// when it is false, but are still populated by the decoder.
	EnableBlending bool

	ColorSrcFactor core1_0.BlendFactor
	ColorDstFactor core1_0.BlendFactor
	ColorBlendOp   core1_0.BlendOp

	AlphaSrcFactor core1_0.BlendFactor
	AlphaDstFactor core1_0.BlendFactor
	AlphaBlendOp   core1_0.BlendOp

	// WriteMask selects the color channels written by draws to this
	// target. It applies regardless of EnableBlending.
	WriteMask core1_0.ColorComponentFlags
}

// MultisampleState is the aggregate multisample configuration.
//
// SampleMask is per-draw dynamic state: state objects keep it zero and the
// bind path fills it in from the caller on every bind.
type MultisampleState struct {
	SampleMask            uint32
	EnableAlphaToCoverage bool
	EnableAlphaToOne      bool
	EnableSampleShading   bool
	MinSampleShading      float32
}

// Context receives translated render state. Both calls are synchronous and
// do not fail; whatever the underlying recorder does with the state is its
// own concern.
//
// SetBlendMode registrations must be issued in ascending slot order.
type Context interface {
	// SetBlendMode sets the blend configuration for one render target slot.
	SetBlendMode(slot uint32, mode BlendMode)

	// SetMultisampleState sets the multisample configuration, including
	// the per-draw sample mask.
	SetMultisampleState(state MultisampleState)
}
