package texture

import (
	"encoding/binary"
	"errors"
)

// DDS header sizes, from the documented layout:
// https://docs.microsoft.com/en-us/windows/desktop/direct3ddds/dds-header
const (
	ddsHeaderSize      = 124
	ddsPixelFormatSize = 32
	ddsDX10HeaderSize  = 20
)

// Header flags (dwFlags).
const (
	ddsdCaps        = 0x00000001
	ddsdHeight      = 0x00000002
	ddsdWidth       = 0x00000004
	ddsdPitch       = 0x00000008
	ddsdPixelFormat = 0x00001000
	ddsdMipmapCount = 0x00020000
	ddsdLinearSize  = 0x00080000
	ddsdDepth       = 0x00800000
)

// Pixel-format flags (ddspf.dwFlags).
const (
	ddpfAlphaPixels = 0x00000001
	ddpfAlpha       = 0x00000002
	ddpfFourCC      = 0x00000004
	ddpfIndexed     = 0x00000020
	ddpfRGB         = 0x00000040
	ddpfYUV         = 0x00000200
	ddpfLuminance   = 0x00020000
	ddpfBumpDuDv    = 0x00080000
)

// Surface caps (dwCaps, dwCaps2).
const (
	ddsCapsComplex = 0x00000008
	ddsCapsTexture = 0x00001000
	ddsCapsMipmap  = 0x00400000

	ddsCaps2Volume           = 0x00200000
	ddsCaps2Cubemap          = 0x00000200
	ddsCaps2CubemapPositiveX = 0x00000400
	ddsCaps2CubemapNegativeX = 0x00000800
	ddsCaps2CubemapPositiveY = 0x00001000
	ddsCaps2CubemapNegativeY = 0x00002000
	ddsCaps2CubemapPositiveZ = 0x00004000
	ddsCaps2CubemapNegativeZ = 0x00008000

	ddsCaps2CubemapAllFaces = ddsCaps2CubemapPositiveX | ddsCaps2CubemapNegativeX |
		ddsCaps2CubemapPositiveY | ddsCaps2CubemapNegativeY |
		ddsCaps2CubemapPositiveZ | ddsCaps2CubemapNegativeZ
)

func makeFourCC(a, b, c, d byte) uint32 {
	return uint32(a) | uint32(b)<<8 | uint32(c)<<16 | uint32(d)<<24
}

// FourCC codes seen in the pixel-format header.
var (
	fourCCDXT1 = makeFourCC('D', 'X', 'T', '1')
	fourCCDXT2 = makeFourCC('D', 'X', 'T', '2')
	fourCCDXT3 = makeFourCC('D', 'X', 'T', '3')
	fourCCDXT4 = makeFourCC('D', 'X', 'T', '4')
	fourCCDXT5 = makeFourCC('D', 'X', 'T', '5')
	fourCCATI1 = makeFourCC('A', 'T', 'I', '1')
	fourCCBC4U = makeFourCC('B', 'C', '4', 'U')
	fourCCATI2 = makeFourCC('A', 'T', 'I', '2')
	fourCCBC5U = makeFourCC('B', 'C', '5', 'U')
	fourCCDX10 = makeFourCC('D', 'X', '1', '0')
)

// Legacy D3DFMT codes that show up in the FourCC field.
const (
	d3dfmtR8G8B8        = 20
	d3dfmtA8R8G8B8      = 21
	d3dfmtR5G6B5        = 23
	d3dfmtA1R5G5B5      = 25
	d3dfmtA4R4G4B4      = 26
	d3dfmtA2B10G10R10   = 31
	d3dfmtG16R16        = 34
	d3dfmtA2R10G10B10   = 35
	d3dfmtA16B16G16R16  = 36
	d3dfmtA8L8          = 51
	d3dfmtR16F          = 111
	d3dfmtG16R16F       = 112
	d3dfmtA16B16G16R16F = 113
	d3dfmtR32F          = 114
	d3dfmtG32R32F       = 115
	d3dfmtA32B32G32R32F = 116
)

// DXGI_FORMAT codes used by the DX10 extension header.
const (
	dxgiFormatR16G16B16A16Float = 10
	dxgiFormatR16G16B16A16Unorm = 11
	dxgiFormatR10G10B10A2Unorm  = 24
	dxgiFormatR11G11B10Float    = 26
	dxgiFormatR8G8B8A8Unorm     = 28
	dxgiFormatR8G8B8A8UnormSRGB = 29
	dxgiFormatR16G16Float       = 34
	dxgiFormatR16G16Unorm       = 35
	dxgiFormatR32Float          = 41
	dxgiFormatR8G8Unorm         = 49
	dxgiFormatR16Float          = 54
	dxgiFormatR16Unorm          = 56
	dxgiFormatR8Unorm           = 61
	dxgiFormatBC1Unorm          = 71
	dxgiFormatBC1UnormSRGB      = 72
	dxgiFormatBC2Unorm          = 74
	dxgiFormatBC2UnormSRGB      = 75
	dxgiFormatBC3Unorm          = 77
	dxgiFormatBC3UnormSRGB      = 78
	dxgiFormatBC4Unorm          = 80
	dxgiFormatBC5Unorm          = 83
	dxgiFormatB8G8R8A8Unorm     = 87
	dxgiFormatB8G8R8A8UnormSRGB = 91
	dxgiFormatBC6HSF16          = 96
	dxgiFormatBC7Unorm          = 98
	dxgiFormatBC7UnormSRGB      = 99
)

// ddsPixelFormat is the 32-byte ddspf sub-header.
type ddsPixelFormat struct {
	size        uint32
	flags       uint32
	fourCC      uint32
	rgbBitCount uint32
	bitMask     [4]uint32
}

// ddsHeader is the 124-byte primary header that follows the magic.
type ddsHeader struct {
	size              uint32
	flags             uint32
	height            uint32
	width             uint32
	pitchOrLinearSize uint32
	depth             uint32
	mipCount          uint32
	pixelFormat       ddsPixelFormat
	caps1             uint32
	caps2             uint32
	caps3             uint32
	caps4             uint32
}

// decodeDDSHeader decodes the packed little-endian header from buf, which
// must be ddsHeaderSize bytes. Fields are read one at a time; the on-disk
// record is packed and cannot be overlaid on a Go struct.
func decodeDDSHeader(buf []byte) ddsHeader {
	var h ddsHeader
	h.size = binary.LittleEndian.Uint32(buf[0:4])
	h.flags = binary.LittleEndian.Uint32(buf[4:8])
	h.height = binary.LittleEndian.Uint32(buf[8:12])
	h.width = binary.LittleEndian.Uint32(buf[12:16])
	h.pitchOrLinearSize = binary.LittleEndian.Uint32(buf[16:20])
	h.depth = binary.LittleEndian.Uint32(buf[20:24])
	h.mipCount = binary.LittleEndian.Uint32(buf[24:28])
	// 11 reserved DWORDs at 28..71
	h.pixelFormat.size = binary.LittleEndian.Uint32(buf[72:76])
	h.pixelFormat.flags = binary.LittleEndian.Uint32(buf[76:80])
	h.pixelFormat.fourCC = binary.LittleEndian.Uint32(buf[80:84])
	h.pixelFormat.rgbBitCount = binary.LittleEndian.Uint32(buf[84:88])
	for i := range h.pixelFormat.bitMask {
		h.pixelFormat.bitMask[i] = binary.LittleEndian.Uint32(buf[88+4*i : 92+4*i])
	}
	h.caps1 = binary.LittleEndian.Uint32(buf[104:108])
	h.caps2 = binary.LittleEndian.Uint32(buf[108:112])
	h.caps3 = binary.LittleEndian.Uint32(buf[112:116])
	h.caps4 = binary.LittleEndian.Uint32(buf[116:120])
	// reserved DWORD at 120..123
	return h
}

// ddsCodeMapping maps a FourCC or DXGI code to a format. First match wins,
// so table order encodes preference.
type ddsCodeMapping struct {
	code   uint32
	format Format
	srgb   bool
}

var ddsFourCCFormats = []ddsCodeMapping{
	{fourCCDXT1, FormatBC1, false},
	{fourCCDXT2, FormatBC2, false},
	{fourCCDXT3, FormatBC2, false},
	{fourCCDXT4, FormatBC3, false},
	{fourCCDXT5, FormatBC3, false},
	{fourCCATI1, FormatBC4, false},
	{fourCCBC4U, FormatBC4, false},
	{fourCCATI2, FormatBC5, false},
	{fourCCBC5U, FormatBC5, false},
	{d3dfmtA16B16G16R16, FormatRGBA16, false},
	{d3dfmtA16B16G16R16F, FormatRGBA16F, false},
	{ddpfRGB | ddpfAlphaPixels, FormatBGRA8, false},
	{ddpfIndexed, FormatR8, false},
	{ddpfLuminance, FormatR8, false},
	{ddpfAlpha, FormatR8, false},
	{d3dfmtR16F, FormatR16F, false},
	{d3dfmtR32F, FormatR32F, false},
	{d3dfmtA8L8, FormatRG8, false},
	{d3dfmtG16R16, FormatRG16, false},
	{d3dfmtG16R16F, FormatRG16F, false},
	{d3dfmtR8G8B8, FormatRGB8, false},
	{d3dfmtA8R8G8B8, FormatBGRA8, false},
	{d3dfmtA2B10G10R10, FormatRGB10A2, false},
}

var dxgiFormats = []ddsCodeMapping{
	{dxgiFormatBC1Unorm, FormatBC1, false},
	{dxgiFormatBC1UnormSRGB, FormatBC1, true},
	{dxgiFormatBC2Unorm, FormatBC2, false},
	{dxgiFormatBC2UnormSRGB, FormatBC2, true},
	{dxgiFormatBC3Unorm, FormatBC3, false},
	{dxgiFormatBC3UnormSRGB, FormatBC3, true},
	{dxgiFormatBC4Unorm, FormatBC4, false},
	{dxgiFormatBC5Unorm, FormatBC5, false},
	{dxgiFormatBC6HSF16, FormatBC6H, false},
	{dxgiFormatBC7Unorm, FormatBC7, false},
	{dxgiFormatBC7UnormSRGB, FormatBC7, true},
	{dxgiFormatR8Unorm, FormatR8, false},
	{dxgiFormatR16Unorm, FormatR16, false},
	{dxgiFormatR16Float, FormatR16F, false},
	{dxgiFormatR32Float, FormatR32F, false},
	{dxgiFormatR8G8Unorm, FormatRG8, false},
	{dxgiFormatR16G16Unorm, FormatRG16, false},
	{dxgiFormatR16G16Float, FormatRG16F, false},
	{dxgiFormatB8G8R8A8Unorm, FormatBGRA8, false},
	{dxgiFormatB8G8R8A8UnormSRGB, FormatBGRA8, true},
	{dxgiFormatR8G8B8A8Unorm, FormatRGBA8, false},
	{dxgiFormatR8G8B8A8UnormSRGB, FormatRGBA8, true},
	{dxgiFormatR16G16B16A16Unorm, FormatRGBA16, false},
	{dxgiFormatR16G16B16A16Float, FormatRGBA16F, false},
	{dxgiFormatR10G10B10A2Unorm, FormatRGB10A2, false},
	{dxgiFormatR11G11B10Float, FormatRG11B10F, false},
}

// ddsPixelMapping matches a legacy pixel format by simultaneous equality on
// bit count, flags and all four channel masks.
type ddsPixelMapping struct {
	bitCount uint32
	flags    uint32
	bitMask  [4]uint32
	format   Format
}

var ddsPixelFormats = []ddsPixelMapping{
	{8, ddpfLuminance, [4]uint32{0x000000ff, 0x00000000, 0x00000000, 0x00000000}, FormatR8},
	{16, ddpfBumpDuDv, [4]uint32{0x000000ff, 0x0000ff00, 0x00000000, 0x00000000}, FormatRG8S},
	{24, ddpfRGB, [4]uint32{0x00ff0000, 0x0000ff00, 0x000000ff, 0x00000000}, FormatRGB8},
	{24, ddpfRGB, [4]uint32{0x000000ff, 0x0000ff00, 0x00ff0000, 0x00000000}, FormatRGB8},
	{32, ddpfRGB, [4]uint32{0x00ff0000, 0x0000ff00, 0x000000ff, 0x00000000}, FormatBGRA8},
	{32, ddpfRGB | ddpfAlphaPixels, [4]uint32{0x000000ff, 0x0000ff00, 0x00ff0000, 0xff000000}, FormatRGBA8},
	{32, ddpfBumpDuDv, [4]uint32{0x000000ff, 0x0000ff00, 0x00ff0000, 0xff000000}, FormatRGBA8S},
	{32, ddpfRGB, [4]uint32{0x00ff0000, 0x0000ff00, 0x000000ff, 0xff000000}, FormatBGRA8},
	{32, ddpfRGB | ddpfAlphaPixels, [4]uint32{0x00ff0000, 0x0000ff00, 0x000000ff, 0xff000000}, FormatBGRA8}, // D3DFMT_A8R8G8B8
	{32, ddpfRGB | ddpfAlphaPixels, [4]uint32{0x00ff0000, 0x0000ff00, 0x000000ff, 0x00000000}, FormatBGRA8}, // D3DFMT_X8R8G8B8
	{32, ddpfRGB | ddpfAlphaPixels, [4]uint32{0x000003ff, 0x000ffc00, 0x3ff00000, 0xc0000000}, FormatRGB10A2},
	{32, ddpfRGB, [4]uint32{0x0000ffff, 0xffff0000, 0x00000000, 0x00000000}, FormatRG16},
	{32, ddpfBumpDuDv, [4]uint32{0x0000ffff, 0xffff0000, 0x00000000, 0x00000000}, FormatRG16S},
}

// parseDDS parses a DDS container. data starts with the 4-byte magic, which
// the dispatcher has already recognized.
func parseDDS(data []byte) (*Info, error) {
	r := &reader{data: data, offset: 4}

	var buf [ddsHeaderSize]byte
	if r.read(buf[:]) != ddsHeaderSize {
		return nil, errors.New("dds: header size does not match")
	}
	header := decodeDDSHeader(buf[:])
	if header.size != ddsHeaderSize {
		return nil, errors.New("dds: header size does not match")
	}

	const requiredFlags = ddsdCaps | ddsdHeight | ddsdWidth | ddsdPixelFormat
	if header.flags&requiredFlags != requiredFlags {
		return nil, errors.New("dds: invalid flags")
	}

	if header.pixelFormat.size != ddsPixelFormatSize {
		return nil, errors.New("dds: invalid pixel format header")
	}

	// The DX10 extension header follows immediately when the pixel format
	// names it by FourCC.
	var dxgiFormat uint32
	arraySize := uint32(1)
	if header.pixelFormat.flags&ddpfFourCC != 0 && header.pixelFormat.fourCC == fourCCDX10 {
		var dx10 [ddsDX10HeaderSize]byte
		if r.read(dx10[:]) != ddsDX10HeaderSize {
			return nil, errors.New("dds: header size does not match")
		}
		dxgiFormat = binary.LittleEndian.Uint32(dx10[0:4])
		arraySize = binary.LittleEndian.Uint32(dx10[12:16])
	}

	if header.caps1&ddsCapsTexture == 0 {
		return nil, errors.New("dds: unsupported caps")
	}

	cubemap := header.caps2&ddsCaps2Cubemap != 0
	if cubemap && header.caps2&ddsCaps2CubemapAllFaces != ddsCaps2CubemapAllFaces {
		return nil, errors.New("dds: incomplete cubemap")
	}
	if cubemap && header.depth > 1 {
		return nil, errors.New("dds: cubemap and volume texture are mutually exclusive")
	}

	format := formatCount
	srgb := false
	switch {
	case dxgiFormat != 0:
		for _, m := range dxgiFormats {
			if m.code == dxgiFormat {
				format = m.format
				srgb = m.srgb
				break
			}
		}
	case header.pixelFormat.flags&ddpfFourCC != 0:
		for _, m := range ddsFourCCFormats {
			if m.code == header.pixelFormat.fourCC {
				format = m.format
				break
			}
		}
	default:
		for _, m := range ddsPixelFormats {
			if m.bitCount == header.pixelFormat.rgbBitCount &&
				m.flags == header.pixelFormat.flags &&
				m.bitMask == header.pixelFormat.bitMask {
				format = m.format
				break
			}
		}
	}
	if format == formatCount {
		return nil, errors.New("dds: unknown format")
	}

	info := &Info{
		DataOffset: r.offset,
		DataSize:   len(data) - r.offset,
		Format:     format,
		Width:      max(1, int(header.width)),
		Height:     max(1, int(header.height)),
		Depth:      max(1, int(header.depth)),
		Layers:     max(1, int(arraySize)),
		Mips:       1,
		BPP:        int(blockInfos[format].bpp),
		Flags:      FlagDDS,
	}
	if header.caps1&ddsCapsMipmap != 0 {
		info.Mips = max(1, int(header.mipCount))
	}
	if header.pixelFormat.flags&ddpfAlpha != 0 || format.defaultAlpha() {
		info.Flags |= FlagHasAlpha
	}
	if cubemap {
		info.Flags |= FlagCubemap
	}
	if srgb {
		info.Flags |= FlagSRGB
	}
	return info, nil
}
