package texture

import (
	"bytes"
	"encoding/binary"
	"testing"
)

// ktxFixture assembles a synthetic KTX v1 file in memory. levels holds the
// payload of each mip: the leading image-size word plus the packed
// layer/face/slice bytes with their padding.
type ktxFixture struct {
	internalFormat uint32
	width          uint32
	height         uint32
	depth          uint32
	layers         uint32
	faces          uint32 // 0 means 1
	mips           uint32 // 0 means 1
	metadata       []byte
	levels         []ktxLevel
}

type ktxLevel struct {
	imageSize uint32
	data      []byte
}

func (f *ktxFixture) encode() []byte {
	size := len(ktxIdentifier) + ktxHeaderSize + len(f.metadata)
	for _, l := range f.levels {
		size += 4 + len(l.data)
	}
	data := make([]byte, size)

	copy(data, ktxIdentifier[:])
	offset := len(ktxIdentifier)

	faces := f.faces
	if faces == 0 {
		faces = 1
	}
	mips := f.mips
	if mips == 0 {
		mips = 1
	}
	fields := []uint32{
		ktxEndianRef,
		0, // glType
		1, // glTypeSize
		0, // glFormat
		f.internalFormat,
		0, // glBaseInternalFormat
		f.width,
		f.height,
		f.depth,
		f.layers,
		faces,
		mips,
		uint32(len(f.metadata)),
	}
	for _, v := range fields {
		binary.BigEndian.PutUint32(data[offset:], v)
		offset += 4
	}

	copy(data[offset:], f.metadata)
	offset += len(f.metadata)

	for _, l := range f.levels {
		binary.BigEndian.PutUint32(data[offset:], l.imageSize)
		offset += 4
		copy(data[offset:], l.data)
		offset += len(l.data)
	}
	return data
}

func TestParseKTXMipChain(t *testing.T) {
	// 32x32 ETC2 with a 6-level chain. ETC2 packs 4x4 texels into 8-byte
	// blocks, so the tail levels round up to one block.
	levelSizes := []uint32{512, 128, 32, 8, 8, 8}
	f := &ktxFixture{
		internalFormat: glCompressedRGB8ETC2,
		width:          32,
		height:         32,
		mips:           6,
	}
	for _, s := range levelSizes {
		f.levels = append(f.levels, ktxLevel{imageSize: s, data: make([]byte, s)})
	}
	data := f.encode()
	info := mustParse(t, data)

	if info.Format != FormatETC2 {
		t.Errorf("format: got %s, want ETC2", info.Format)
	}
	if info.Flags&FlagKTX == 0 {
		t.Error("FlagKTX not set")
	}
	if info.Flags&FlagDDS != 0 {
		t.Error("FlagDDS set on a KTX file")
	}
	if info.Width != 32 || info.Height != 32 || info.Mips != 6 {
		t.Errorf("got %dx%d with %d mips, want 32x32 with 6", info.Width, info.Height, info.Mips)
	}

	// Every image-size word must agree with the block arithmetic; the
	// locator re-checks the words on each call.
	for mip, want := range levelSizes {
		sub, err := info.SubImage(data, 0, 0, mip)
		if err != nil {
			t.Fatalf("SubImage mip %d: %v", mip, err)
		}
		if sub.Size != int(want) {
			t.Errorf("mip %d size: got %d, want %d", mip, sub.Size, want)
		}
	}
}

func TestParseKTXCubemap(t *testing.T) {
	// 8x8 RGBA8 cubemap, one mip. Face payloads are tagged with the face
	// index.
	const faceSize = 8 * 8 * 4
	payload := make([]byte, 6*faceSize)
	for face := 0; face < 6; face++ {
		for i := 0; i < faceSize; i++ {
			payload[face*faceSize+i] = byte(face)
		}
	}
	f := &ktxFixture{
		internalFormat: glRGBA8,
		width:          8,
		height:         8,
		faces:          6,
		levels:         []ktxLevel{{imageSize: 6 * faceSize, data: payload}},
	}
	data := f.encode()
	info := mustParse(t, data)

	if !info.Cubemap() {
		t.Fatal("FlagCubemap not set")
	}
	if info.Flags&FlagHasAlpha == 0 {
		t.Error("FlagHasAlpha not set for RGBA8")
	}

	sub, err := info.SubImage(data, 0, CubeFaceZPositive, 0)
	if err != nil {
		t.Fatalf("SubImage face 4: %v", err)
	}
	if sub.Data[0] != 4 {
		t.Errorf("face 4 payload starts with %d, want 4", sub.Data[0])
	}
	wantOffset := info.DataOffset + 4 + 4*faceSize
	if &sub.Data[0] != &data[wantOffset] {
		t.Errorf("face view does not start at offset %d", wantOffset)
	}
}

func TestParseKTXCubePadding(t *testing.T) {
	// RGB8 5x5 cubemap faces are 75 bytes, so each face is followed by one
	// padding byte to reach the 4-byte boundary.
	const faceSize = 5 * 5 * 3
	const paddedFace = faceSize + 1
	payload := make([]byte, 6*paddedFace)
	for face := 0; face < 6; face++ {
		for i := 0; i < faceSize; i++ {
			payload[face*paddedFace+i] = byte(face + 1)
		}
	}
	f := &ktxFixture{
		internalFormat: glRGB8,
		width:          5,
		height:         5,
		faces:          6,
		levels:         []ktxLevel{{imageSize: 6 * faceSize, data: payload}},
	}
	data := f.encode()
	info := mustParse(t, data)

	for face := 0; face < 6; face++ {
		sub, err := info.SubImage(data, 0, face, 0)
		if err != nil {
			t.Fatalf("SubImage face %d: %v", face, err)
		}
		if sub.Size != faceSize {
			t.Errorf("face %d size: got %d, want %d", face, sub.Size, faceSize)
		}
		if sub.Data[0] != byte(face+1) || sub.Data[faceSize-1] != byte(face+1) {
			t.Errorf("face %d view not aligned with padded layout", face)
		}
		if sub.RowPitch != 5*3 {
			t.Errorf("face %d row pitch: got %d, want 15", face, sub.RowPitch)
		}
	}
}

func TestParseKTXMetadata(t *testing.T) {
	meta := make([]byte, 16)
	copy(meta, "KTXorientation")
	f := &ktxFixture{
		internalFormat: glRGBA8,
		width:          2,
		height:         2,
		metadata:       meta,
		levels:         []ktxLevel{{imageSize: 16, data: make([]byte, 16)}},
	}
	data := f.encode()
	info := mustParse(t, data)

	if info.MetadataOffset != 64 {
		t.Errorf("metadata offset: got %d, want 64", info.MetadataOffset)
	}
	if info.MetadataSize != len(meta) {
		t.Errorf("metadata size: got %d, want %d", info.MetadataSize, len(meta))
	}
	if info.DataOffset != 64+len(meta) {
		t.Errorf("data offset: got %d, want %d", info.DataOffset, 64+len(meta))
	}
	if !bytes.Equal(data[info.MetadataOffset:info.MetadataOffset+info.MetadataSize], meta) {
		t.Error("metadata span does not cover the key/value block")
	}
}

func TestParseKTXFallbackFormats(t *testing.T) {
	tests := []struct {
		name           string
		internalFormat uint32
		want           Format
	}{
		{"RGBA", glRGBA, FormatRGBA8},
		{"RGB", glRGB, FormatRGB8},
		{"RED", glRed, FormatR8},
		{"ALPHA", glAlpha, FormatA8},
		{"DXT1", glCompressedRGBS3TCDXT1, FormatBC1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := &ktxFixture{
				internalFormat: tt.internalFormat,
				width:          4,
				height:         4,
				levels:         []ktxLevel{{imageSize: 64, data: make([]byte, 64)}},
			}
			info := mustParse(t, f.encode())
			if info.Format != tt.want {
				t.Errorf("got %s, want %s", info.Format, tt.want)
			}
		})
	}
}

func TestParseKTXErrors(t *testing.T) {
	valid := func() *ktxFixture {
		return &ktxFixture{
			internalFormat: glRGBA8,
			width:          4,
			height:         4,
			levels:         []ktxLevel{{imageSize: 64, data: make([]byte, 64)}},
		}
	}

	t.Run("ShortHeader", func(t *testing.T) {
		wantParseError(t, valid().encode()[:40], "ktx: header size")
	})

	t.Run("BadIdentifier", func(t *testing.T) {
		data := valid().encode()
		data[7] = 0x00 // corrupt the identifier tail
		wantParseError(t, data, "ktx: invalid file identifier")
	})

	t.Run("ForeignEndianness", func(t *testing.T) {
		data := valid().encode()
		binary.BigEndian.PutUint32(data[12:16], 0x01020304)
		wantParseError(t, data, "little-endian")
	})

	t.Run("IncompleteCubemap", func(t *testing.T) {
		f := valid()
		f.faces = 3
		wantParseError(t, f.encode(), "ktx: incomplete cubemap")
	})

	t.Run("UnsupportedFormat", func(t *testing.T) {
		f := valid()
		f.internalFormat = 0xDEAD
		wantParseError(t, f.encode(), "ktx: unsupported format")
	})

	t.Run("MetadataOverrun", func(t *testing.T) {
		f := valid()
		f.metadata = nil
		data := f.encode()
		// Claim more metadata than the file holds.
		binary.BigEndian.PutUint32(data[60:64], 1<<20)
		wantParseError(t, data, "ktx: header size")
	})
}

func TestKTXImageSizeMismatch(t *testing.T) {
	f := &ktxFixture{
		internalFormat: glRGBA8,
		width:          4,
		height:         4,
		levels:         []ktxLevel{{imageSize: 60, data: make([]byte, 64)}},
	}
	data := f.encode()
	info := mustParse(t, data)

	if _, err := info.SubImage(data, 0, 0, 0); err == nil {
		t.Fatal("expected image size mismatch error")
	}
}

func TestKTXTruncatedPayload(t *testing.T) {
	f := &ktxFixture{
		internalFormat: glRGBA8,
		width:          4,
		height:         4,
		mips:           2,
		levels:         []ktxLevel{{imageSize: 64, data: make([]byte, 64)}},
	}
	// The second mip's image-size word is missing entirely.
	data := f.encode()
	info := mustParse(t, data)

	if _, err := info.SubImage(data, 0, 0, 1); err == nil {
		t.Fatal("expected truncation error for missing mip")
	}
}
