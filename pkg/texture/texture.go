// Package texture parses DDS and KTX (v1) texture containers from memory.
//
// Both containers ship GPU-ready pixel data: a header describing the logical
// texture (format, dimensions, mip chain, array layers, cube faces) followed
// by the packed sub-images. Parse reads the header portion of a fully
// loaded file and returns an Info descriptor; Info.SubImage then locates any
// single (layer, face/slice, mip) sub-image inside the same buffer.
//
// Nothing is copied or decoded. The returned descriptor records byte offsets
// into the caller's buffer, and sub-images are sub-slices of it, so the
// buffer must stay alive for as long as any SubImage derived from it is in
// use. Compressed payloads (BC, ETC, PVRTC, ATC, ASTC) are located but never
// decompressed.
package texture

import (
	"encoding/binary"
	"errors"
)

// Container magic words, little-endian over the first four bytes of the file.
const (
	ddsMagic = 0x20534444 // "DDS "
	ktxMagic = 0x58544BAB // 0xAB 'K' 'T' 'X'
)

// Flags describe properties of a parsed texture.
type Flags uint32

const (
	// FlagCubemap is set when the container holds six cube faces.
	FlagCubemap Flags = 1 << iota
	// FlagSRGB is set when the pixel data is sRGB-encoded.
	FlagSRGB
	// FlagHasAlpha is set when the format carries an alpha channel.
	FlagHasAlpha
	// FlagDDS is set when the source container was a DDS file.
	FlagDDS
	// FlagKTX is set when the source container was a KTX file.
	FlagKTX
)

// Cube face indices, in storage order.
const (
	CubeFaceXPositive = iota
	CubeFaceXNegative
	CubeFaceYPositive
	CubeFaceYNegative
	CubeFaceZPositive
	CubeFaceZNegative
)

// Info describes a parsed texture container. It holds no pixel data itself,
// only the location of the payload within the buffer passed to Parse.
type Info struct {
	DataOffset int // byte offset of the pixel payload
	DataSize   int // byte span of the payload, up to the end of the buffer
	Format     Format
	Flags      Flags
	Width      int
	Height     int
	Depth      int // > 1 for volume textures
	Layers     int // array length
	Mips       int
	BPP        int // bits per pixel of Format

	// Location of the KTX key/value metadata block. The block is recorded
	// but never interpreted. Both fields are zero for DDS containers.
	MetadataOffset int
	MetadataSize   int
}

// Cubemap reports whether the texture holds six cube faces.
func (info *Info) Cubemap() bool {
	return info.Flags&FlagCubemap != 0
}

// Parse reads a texture container from data and returns its descriptor.
// data must hold the complete file; Parse does not stream. The descriptor
// references data by offset, so the slice must outlive any SubImage
// obtained from the result.
func Parse(data []byte) (*Info, error) {
	r := &reader{data: data}

	var magic [4]byte
	if r.read(magic[:]) != len(magic) {
		return nil, errors.New("invalid texture file")
	}

	switch binary.LittleEndian.Uint32(magic[:]) {
	case ddsMagic:
		return parseDDS(data)
	case ktxMagic:
		return parseKTX(data)
	default:
		return nil, errors.New("unknown texture format")
	}
}
