package texture

import (
	"bytes"
	"encoding/binary"
	"errors"
)

// KTX v1 identifier: 0xAB "KTX 11" 0xBB "\r\n\x1A\n". The first four bytes
// double as the magic the dispatcher switches on; the parser checks the rest.
var ktxIdentifier = [12]byte{0xAB, 0x4B, 0x54, 0x58, 0x20, 0x31, 0x31, 0xBB, 0x0D, 0x0A, 0x1A, 0x0A}

// ktxHeaderSize is the packed header following the identifier: thirteen
// big-endian DWORDs starting with the endianness marker.
const ktxHeaderSize = 52

// ktxEndianRef is the value of the endianness marker once the header decodes
// with the expected byte order. Anything else means the file was written in
// the other byte order, which is not supported.
const ktxEndianRef = 0x04030201

// OpenGL format enums referenced by the translation tables.
const (
	glAlpha = 0x1906
	glRed   = 0x1903
	glRGB   = 0x1907
	glRGBA  = 0x1908

	glAlpha8     = 0x803C
	glR8         = 0x8229
	glR16        = 0x822A
	glRG8        = 0x822B
	glRG16       = 0x822C
	glR16F       = 0x822D
	glR32F       = 0x822E
	glRG16F      = 0x822F
	glRGB8       = 0x8051
	glRGBA8      = 0x8058
	glRGB10A2    = 0x8059
	glRGBA16     = 0x805B
	glRGBA16F    = 0x881A
	glR11G11B10F = 0x8C3A
	glRG8Snorm   = 0x8F95
	glRGBA8Snorm = 0x8F97
	glRG16Snorm  = 0x8F99
	glBGRA8      = 0x93A1

	glCompressedRGBS3TCDXT1  = 0x83F0
	glCompressedRGBAS3TCDXT1 = 0x83F1
	glCompressedRGBAS3TCDXT3 = 0x83F2
	glCompressedRGBAS3TCDXT5 = 0x83F3
	glCompressedRedRGTC1     = 0x8DBB
	glCompressedRGRGTC2      = 0x8DBD
	glCompressedRGBABPTC     = 0x8E8C
	glCompressedRGBBPTCSF    = 0x8E8E
	glETC1RGB8OES            = 0x8D64
	glCompressedRGB8ETC2     = 0x9274
	glCompressedRGB8A1ETC2   = 0x9276
	glCompressedRGBA8ETC2EAC = 0x9278
	glCompressedRGBPVRTC4V1  = 0x8C00
	glCompressedRGBPVRTC2V1  = 0x8C01
	glCompressedRGBAPVRTC4V1 = 0x8C02
	glCompressedRGBAPVRTC2V1 = 0x8C03
	glCompressedRGBAPVRTC2V2 = 0x9137
	glCompressedRGBAPVRTC4V2 = 0x9138
	glATCRGB                 = 0x8C92
	glATCRGBAExplicit        = 0x8C93
	glATCRGBAInterpolated    = 0x87EE
	glCompressedRGBAASTC4x4  = 0x93B0
	glCompressedRGBAASTC5x5  = 0x93B2
	glCompressedRGBAASTC6x6  = 0x93B4
	glCompressedRGBAASTC8x5  = 0x93B5
	glCompressedRGBAASTC8x6  = 0x93B6
	glCompressedRGBAASTC10x5 = 0x93B8
)

// glInternalFormats is each format's sized OpenGL internal-format enum, the
// row the KTX parser matches glInternalFormat against. Zero rows (the
// partition sentinel) never match.
var glInternalFormats = [formatCount]uint32{
	FormatBC1:      glCompressedRGBAS3TCDXT1,
	FormatBC2:      glCompressedRGBAS3TCDXT3,
	FormatBC3:      glCompressedRGBAS3TCDXT5,
	FormatBC4:      glCompressedRedRGTC1,
	FormatBC5:      glCompressedRGRGTC2,
	FormatBC6H:     glCompressedRGBBPTCSF,
	FormatBC7:      glCompressedRGBABPTC,
	FormatETC1:     glETC1RGB8OES,
	FormatETC2:     glCompressedRGB8ETC2,
	FormatETC2A:    glCompressedRGBA8ETC2EAC,
	FormatETC2A1:   glCompressedRGB8A1ETC2,
	FormatPTC12:    glCompressedRGBPVRTC2V1,
	FormatPTC14:    glCompressedRGBPVRTC4V1,
	FormatPTC12A:   glCompressedRGBAPVRTC2V1,
	FormatPTC14A:   glCompressedRGBAPVRTC4V1,
	FormatPTC22:    glCompressedRGBAPVRTC2V2,
	FormatPTC24:    glCompressedRGBAPVRTC4V2,
	FormatATC:      glATCRGB,
	FormatATCE:     glATCRGBAExplicit,
	FormatATCI:     glATCRGBAInterpolated,
	FormatASTC4x4:  glCompressedRGBAASTC4x4,
	FormatASTC5x5:  glCompressedRGBAASTC5x5,
	FormatASTC6x6:  glCompressedRGBAASTC6x6,
	FormatASTC8x5:  glCompressedRGBAASTC8x5,
	FormatASTC8x6:  glCompressedRGBAASTC8x6,
	FormatASTC10x5: glCompressedRGBAASTC10x5,
	FormatA8:       glAlpha8,
	FormatR8:       glR8,
	FormatRGBA8:    glRGBA8,
	FormatRGBA8S:   glRGBA8Snorm,
	FormatRG16:     glRG16,
	FormatRGB8:     glRGB8,
	FormatR16:      glR16,
	FormatR32F:     glR32F,
	FormatR16F:     glR16F,
	FormatRG16F:    glRG16F,
	FormatRG16S:    glRG16Snorm,
	FormatRGBA16F:  glRGBA16F,
	FormatRGBA16:   glRGBA16,
	FormatBGRA8:    glBGRA8,
	FormatRGB10A2:  glRGB10A2,
	FormatRG11B10F: glR11G11B10F,
	FormatRG8:      glRG8,
	FormatRG8S:     glRG8Snorm,
}

// ktxFallbackFormats resolves the handful of generic (unsized) enums that
// appear in the wild when the sized table finds no match.
var ktxFallbackFormats = []struct {
	internalFormat uint32
	format         Format
}{
	{glAlpha, FormatA8},
	{glRed, FormatR8},
	{glRGB, FormatRGB8},
	{glRGBA, FormatRGBA8},
	{glCompressedRGBS3TCDXT1, FormatBC1},
}

// ktxHeader is the 52-byte packed header following the identifier.
type ktxHeader struct {
	endianness           uint32
	glType               uint32
	glTypeSize           uint32
	glFormat             uint32
	glInternalFormat     uint32
	glBaseInternalFormat uint32
	pixelWidth           uint32
	pixelHeight          uint32
	pixelDepth           uint32
	arrayElements        uint32
	faces                uint32
	mipLevels            uint32
	keyValueBytes        uint32
}

func decodeKTXHeader(buf []byte) ktxHeader {
	var h ktxHeader
	h.endianness = binary.BigEndian.Uint32(buf[0:4])
	h.glType = binary.BigEndian.Uint32(buf[4:8])
	h.glTypeSize = binary.BigEndian.Uint32(buf[8:12])
	h.glFormat = binary.BigEndian.Uint32(buf[12:16])
	h.glInternalFormat = binary.BigEndian.Uint32(buf[16:20])
	h.glBaseInternalFormat = binary.BigEndian.Uint32(buf[20:24])
	h.pixelWidth = binary.BigEndian.Uint32(buf[24:28])
	h.pixelHeight = binary.BigEndian.Uint32(buf[28:32])
	h.pixelDepth = binary.BigEndian.Uint32(buf[32:36])
	h.arrayElements = binary.BigEndian.Uint32(buf[36:40])
	h.faces = binary.BigEndian.Uint32(buf[40:44])
	h.mipLevels = binary.BigEndian.Uint32(buf[44:48])
	h.keyValueBytes = binary.BigEndian.Uint32(buf[48:52])
	return h
}

// parseKTX parses a KTX v1 container. data starts with the 12-byte
// identifier; the dispatcher has already matched its first four bytes.
func parseKTX(data []byte) (*Info, error) {
	r := &reader{data: data, offset: 4}

	var tail [8]byte
	if r.read(tail[:]) != len(tail) {
		return nil, errors.New("ktx: header size does not match")
	}
	if !bytes.Equal(tail[:], ktxIdentifier[4:]) {
		return nil, errors.New("ktx: invalid file identifier")
	}

	var buf [ktxHeaderSize]byte
	if r.read(buf[:]) != ktxHeaderSize {
		return nil, errors.New("ktx: header size does not match")
	}
	header := decodeKTXHeader(buf[:])

	if header.endianness != ktxEndianRef {
		return nil, errors.New("ktx: little-endian format is not supported")
	}

	if header.faces != 1 && header.faces != 6 {
		return nil, errors.New("ktx: incomplete cubemap")
	}

	format := formatCount
	for f := Format(0); f < formatCount; f++ {
		if glInternalFormats[f] != 0 && glInternalFormats[f] == header.glInternalFormat {
			format = f
			break
		}
	}
	if format == formatCount {
		for _, m := range ktxFallbackFormats {
			if m.internalFormat == header.glInternalFormat {
				format = m.format
				break
			}
		}
	}
	if format == formatCount {
		return nil, errors.New("ktx: unsupported format")
	}

	metadataOffset := r.offset
	dataOffset := metadataOffset + int(header.keyValueBytes)
	if dataOffset > len(data) {
		return nil, errors.New("ktx: header size does not match")
	}

	info := &Info{
		DataOffset:     dataOffset,
		DataSize:       len(data) - dataOffset,
		Format:         format,
		Width:          max(1, int(header.pixelWidth)),
		Height:         max(1, int(header.pixelHeight)),
		Depth:          max(1, int(header.pixelDepth)),
		Layers:         max(1, int(header.arrayElements)),
		Mips:           max(1, int(header.mipLevels)),
		BPP:            int(blockInfos[format].bpp),
		Flags:          FlagKTX,
		MetadataOffset: metadataOffset,
		MetadataSize:   int(header.keyValueBytes),
	}
	if header.faces == 6 {
		info.Flags |= FlagCubemap
	}
	if format.defaultAlpha() {
		info.Flags |= FlagHasAlpha
	}
	return info, nil
}
