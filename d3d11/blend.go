package d3d11

import (
	"sync/atomic"

	"github.com/vkngwrapper/core/v2/core1_0"

	arx "github.com/Speedwagen/Arx-DXVK-Remix"
	"github.com/Speedwagen/Arx-DXVK-Remix/native"
)

// blendOpReverseSubtract is VK_BLEND_OP_REVERSE_SUBTRACT. vkngwrapper's
// core1_0 package does not export this constant even though the Vulkan
// header it ships defines it.
const blendOpReverseSubtract = core1_0.BlendOp(2)

// BlendState is a resolved, immutable blend state object.
//
// All descriptor decoding happens in NewBlendState. In particular, when
// independent blend is disabled the render target 0 configuration is
// replicated into all eight slots at creation time, because Vulkan
// requires identical blend modes in that case. BindToContext therefore
// never has to look at the descriptor again.
//
// A BlendState is never mutated after creation, so any number of
// goroutines may bind it concurrently, each with its own sample mask.
type BlendState struct {
	device *Device
	desc   BlendDesc

	blendModes [MaxRenderTargets]native.BlendMode
	msState    native.MultisampleState

	refs atomic.Int64
}

// NewBlendState resolves desc into a blend state object owned by device.
// The state holds one share of the device until its last share is
// released. The caller holds the initial share of the state.
func NewBlendState(device *Device, desc BlendDesc) *BlendState {
	s := &BlendState{
		device: device.Retain(),
		desc:   desc,
	}
	s.refs.Store(1)

	for i := range s.blendModes {
		rt := &desc.RenderTarget[0]
		if desc.IndependentBlendEnable {
			rt = &desc.RenderTarget[i]
		}
		s.blendModes[i] = decodeBlendMode(rt)
	}

	// Multisample state is part of the blend state in D3D11. The sample
	// mask stays zero here; it is dynamic state filled in during bind.
	s.msState = native.MultisampleState{
		EnableAlphaToCoverage: desc.AlphaToCoverageEnable,
		EnableAlphaToOne:      false,
		EnableSampleShading:   false,
		MinSampleShading:      0.0,
	}

	return s
}

// Retain acquires one additional share of the state and returns it.
func (s *BlendState) Retain() *BlendState {
	s.refs.Add(1)
	return s
}

// Release returns one share of the state. Releasing the last share also
// returns the state's share of its device.
func (s *BlendState) Release() {
	if s.refs.Add(-1) == 0 {
		s.device.Release()
	}
}

// QueryInterface probes the object for a capability. Supported identities
// return the object itself with one additional share acquired; anything
// else returns ErrNoInterface.
func (s *BlendState) QueryInterface(id InterfaceID) (any, error) {
	switch id {
	case InterfaceUnknown, InterfaceDeviceChild, InterfaceBlendState:
		return s.Retain(), nil
	}

	arx.Logger().Warn("d3d11: unknown interface query on blend state", "iid", id.String())
	return nil, ErrNoInterface
}

// Device returns the owning device with one additional share acquired.
// The caller must Release it.
func (s *BlendState) Device() *Device {
	return s.device.Retain()
}

// Desc returns a copy of the descriptor the state was created from,
// unchanged by resolution.
func (s *BlendState) Desc() BlendDesc {
	return s.desc
}

// BindToContext issues the resolved state to ctx. Blend modes are
// registered in ascending slot order; independent blend was handled at
// creation time, so the slots already hold their final values.
//
// sampleMask is dynamic state in D3D11, so it is merged into a call-local
// copy of the multisample template on every bind. The shared object is
// never written, which keeps concurrent binds with different masks safe.
func (s *BlendState) BindToContext(ctx native.Context, sampleMask uint32) {
	for i := range s.blendModes {
		ctx.SetBlendMode(uint32(i), s.blendModes[i])
	}

	msState := s.msState
	msState.SampleMask = sampleMask
	ctx.SetMultisampleState(msState)
}

// decodeBlendMode resolves one render target descriptor into its native
// blend mode. The write mask is passed through even when blending is
// disabled, matching Vulkan semantics.
func decodeBlendMode(rt *RenderTargetBlendDesc) native.BlendMode {
	return native.BlendMode{
		EnableBlending: rt.BlendEnable,
		ColorSrcFactor: decodeBlendFactor(rt.SrcBlend, false),
		ColorDstFactor: decodeBlendFactor(rt.DestBlend, false),
		ColorBlendOp:   decodeBlendOp(rt.BlendOp),
		AlphaSrcFactor: decodeBlendFactor(rt.SrcBlendAlpha, true),
		AlphaDstFactor: decodeBlendFactor(rt.DestBlendAlpha, true),
		AlphaBlendOp:   decodeBlendOp(rt.BlendOpAlpha),
		WriteMask:      core1_0.ColorComponentFlags(rt.RenderTargetWriteMask),
	}
}

// decodeBlendFactor translates a D3D11 blend factor to Vulkan. The
// constant-factor values split into the constant-color and constant-alpha
// Vulkan forms depending on the channel being decoded.
//
// Total over the legal domain. An out-of-range value yields
// BlendFactorZero and one diagnostic; upstream validation normally keeps
// such values out, and a draw with a defaulted factor beats a crash.
func decodeBlendFactor(factor Blend, isAlpha bool) core1_0.BlendFactor {
	switch factor {
	case BlendZero:
		return core1_0.BlendFactorZero
	case BlendOne:
		return core1_0.BlendFactorOne
	case BlendSrcColor:
		return core1_0.BlendFactorSrcColor
	case BlendInvSrcColor:
		return core1_0.BlendFactorOneMinusSrcColor
	case BlendSrcAlpha:
		return core1_0.BlendFactorSrcAlpha
	case BlendInvSrcAlpha:
		return core1_0.BlendFactorOneMinusSrcAlpha
	case BlendDestAlpha:
		return core1_0.BlendFactorDstAlpha
	case BlendInvDestAlpha:
		return core1_0.BlendFactorOneMinusDstAlpha
	case BlendDestColor:
		return core1_0.BlendFactorDstColor
	case BlendInvDestColor:
		return core1_0.BlendFactorOneMinusDstColor
	case BlendSrcAlphaSat:
		return core1_0.BlendFactorSrcAlphaSaturate
	case BlendBlendFactor:
		if isAlpha {
			return core1_0.BlendFactorConstantAlpha
		}
		return core1_0.BlendFactorConstantColor
	case BlendInvBlendFactor:
		if isAlpha {
			return core1_0.BlendFactorOneMinusConstantAlpha
		}
		return core1_0.BlendFactorOneMinusConstantColor
	case BlendSrc1Color:
		return core1_0.BlendFactorSrc1Color
	case BlendInvSrc1Color:
		return core1_0.BlendFactorOneMinusSrc1Color
	case BlendSrc1Alpha:
		return core1_0.BlendFactorSrc1Alpha
	case BlendInvSrc1Alpha:
		return core1_0.BlendFactorOneMinusSrc1Alpha
	}

	arx.Logger().Error("d3d11: invalid blend factor", "factor", uint32(factor))
	return core1_0.BlendFactorZero
}

// decodeBlendOp translates a D3D11 blend operation to Vulkan.
//
// Total over the legal domain. An out-of-range value yields BlendOpAdd
// and one diagnostic.
func decodeBlendOp(op BlendOp) core1_0.BlendOp {
	switch op {
	case BlendOpAdd:
		return core1_0.BlendOpAdd
	case BlendOpSubtract:
		return core1_0.BlendOpSubtract
	case BlendOpRevSubtract:
		return blendOpReverseSubtract
	case BlendOpMin:
		return core1_0.BlendOpMin
	case BlendOpMax:
		return core1_0.BlendOpMax
	}

	arx.Logger().Error("d3d11: invalid blend op", "op", uint32(op))
	return core1_0.BlendOpAdd
}
