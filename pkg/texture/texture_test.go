package texture

import (
	"reflect"
	"testing"
)

func TestParseUnknownMagic(t *testing.T) {
	data := append([]byte("JUNK"), make([]byte, 200)...)
	wantParseError(t, data, "unknown texture format")
}

func TestParseTruncatedMagic(t *testing.T) {
	wantParseError(t, []byte("DD"), "invalid texture file")
	wantParseError(t, nil, "invalid texture file")
}

func TestParseIdempotent(t *testing.T) {
	dds := (&ddsFixture{
		width:    32,
		height:   32,
		mipCount: 2,
		pfFlags:  ddpfFourCC,
		fourCC:   fourCCDXT5,
		payload:  make([]byte, 1024+256),
	}).encode()
	ktx := (&ktxFixture{
		internalFormat: glCompressedRGB8ETC2,
		width:          16,
		height:         16,
		levels:         []ktxLevel{{imageSize: 128, data: make([]byte, 128)}},
	}).encode()

	for _, data := range [][]byte{dds, ktx} {
		first := mustParse(t, data)
		second := mustParse(t, data)
		if !reflect.DeepEqual(first, second) {
			t.Errorf("two parses disagree: %+v vs %+v", first, second)
		}
	}
}

func TestDescriptorInvariants(t *testing.T) {
	descriptors := []*Info{
		mustParse(t, (&ddsFixture{
			width:   64,
			height:  64,
			pfFlags: ddpfFourCC,
			fourCC:  fourCCDXT1,
			caps2:   ddsCaps2Cubemap | ddsCaps2CubemapAllFaces,
			payload: make([]byte, 6*2048),
		}).encode()),
		mustParse(t, (&ktxFixture{
			internalFormat: glRGBA8,
			width:          16,
			levels:         []ktxLevel{{imageSize: 64, data: make([]byte, 64)}},
		}).encode()),
	}

	for i, info := range descriptors {
		if info.Width < 1 || info.Height < 1 || info.Depth < 1 || info.Layers < 1 || info.Mips < 1 {
			t.Errorf("descriptor %d: dimension below 1: %+v", i, info)
		}
		dds := info.Flags&FlagDDS != 0
		ktx := info.Flags&FlagKTX != 0
		if dds == ktx {
			t.Errorf("descriptor %d: want exactly one source flag, got DDS=%v KTX=%v", i, dds, ktx)
		}
		if info.Cubemap() && info.Depth > 1 {
			t.Errorf("descriptor %d: cubemap with depth %d", i, info.Depth)
		}
	}
}
