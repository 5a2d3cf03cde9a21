package d3d11

// MaxRenderTargets is the number of simultaneous render target slots
// (D3D11_SIMULTANEOUS_RENDER_TARGET_COUNT).
const MaxRenderTargets = 8

// Blend is a D3D11 blend factor (D3D11_BLEND). The constants carry the
// D3D11 numeric values; descriptors received from API translation keep
// their on-the-wire encoding.
type Blend uint32

const (
	BlendZero           Blend = 1
	BlendOne            Blend = 2
	BlendSrcColor       Blend = 3
	BlendInvSrcColor    Blend = 4
	BlendSrcAlpha       Blend = 5
	BlendInvSrcAlpha    Blend = 6
	BlendDestAlpha      Blend = 7
	BlendInvDestAlpha   Blend = 8
	BlendDestColor      Blend = 9
	BlendInvDestColor   Blend = 10
	BlendSrcAlphaSat    Blend = 11
	BlendBlendFactor    Blend = 14
	BlendInvBlendFactor Blend = 15
	BlendSrc1Color      Blend = 16
	BlendInvSrc1Color   Blend = 17
	BlendSrc1Alpha      Blend = 18
	BlendInvSrc1Alpha   Blend = 19
)

// BlendOp is a D3D11 blend operation (D3D11_BLEND_OP).
type BlendOp uint32

const (
	BlendOpAdd         BlendOp = 1
	BlendOpSubtract    BlendOp = 2
	BlendOpRevSubtract BlendOp = 3
	BlendOpMin         BlendOp = 4
	BlendOpMax         BlendOp = 5
)

// ColorWriteMask selects the color channels a render target write affects
// (D3D11_COLOR_WRITE_ENABLE). The bit layout matches Vulkan's
// VkColorComponentFlags, so the mask passes through translation unchanged.
type ColorWriteMask uint8

const (
	ColorWriteEnableRed   ColorWriteMask = 1
	ColorWriteEnableGreen ColorWriteMask = 2
	ColorWriteEnableBlue  ColorWriteMask = 4
	ColorWriteEnableAlpha ColorWriteMask = 8
	ColorWriteEnableAll   ColorWriteMask = ColorWriteEnableRed |
		ColorWriteEnableGreen | ColorWriteEnableBlue | ColorWriteEnableAlpha
)

// RenderTargetBlendDesc describes the blend configuration of a single
// render target (D3D11_RENDER_TARGET_BLEND_DESC).
type RenderTargetBlendDesc struct {
	BlendEnable           bool
	SrcBlend              Blend
	DestBlend             Blend
	BlendOp               BlendOp
	SrcBlendAlpha         Blend
	DestBlendAlpha        Blend
	BlendOpAlpha          BlendOp
	RenderTargetWriteMask ColorWriteMask
}

// BlendDesc describes a complete blend state (D3D11_BLEND_DESC).
//
// When IndependentBlendEnable is false, only RenderTarget[0] is honored;
// the remaining seven entries are ignored during resolution.
type BlendDesc struct {
	AlphaToCoverageEnable  bool
	IndependentBlendEnable bool
	RenderTarget           [MaxRenderTargets]RenderTargetBlendDesc
}

// DefaultBlendDesc returns the D3D11 default blend state: blending
// disabled, One/Zero additive factors, all channels writable, on every
// render target.
func DefaultBlendDesc() BlendDesc {
	var desc BlendDesc
	for i := range desc.RenderTarget {
		desc.RenderTarget[i] = RenderTargetBlendDesc{
			SrcBlend:              BlendOne,
			DestBlend:             BlendZero,
			BlendOp:               BlendOpAdd,
			SrcBlendAlpha:         BlendOne,
			DestBlendAlpha:        BlendZero,
			BlendOpAlpha:          BlendOpAdd,
			RenderTargetWriteMask: ColorWriteEnableAll,
		}
	}
	return desc
}
