package texture

import "testing"

// allFormats returns every defined format, skipping the partition sentinel.
func allFormats() []Format {
	formats := make([]Format, 0, int(formatCount)-1)
	for f := Format(0); f < formatCount; f++ {
		if f == formatCompressed {
			continue
		}
		formats = append(formats, f)
	}
	return formats
}

func TestBlockInfoGeometry(t *testing.T) {
	for _, f := range allFormats() {
		bi := blockInfos[f]
		if bi.bpp == 0 || bi.blockWidth == 0 || bi.blockHeight == 0 || bi.blockSize == 0 {
			t.Errorf("%s: incomplete block info %+v", f, bi)
			continue
		}
		// A block stores exactly blockWidth*blockHeight texels at bpp
		// bits each.
		if int(bi.blockSize)*8 != int(bi.bpp)*int(bi.blockWidth)*int(bi.blockHeight) {
			t.Errorf("%s: block size %d bytes disagrees with %d bpp over %dx%d texels",
				f, bi.blockSize, bi.bpp, bi.blockWidth, bi.blockHeight)
		}
		if bi.minBlockX == 0 || bi.minBlockY == 0 {
			t.Errorf("%s: zero minimum block count", f)
		}
	}
}

func TestFormatNames(t *testing.T) {
	seen := make(map[string]Format)
	for _, f := range allFormats() {
		name := f.String()
		if name == "" || name == "Unknown" {
			t.Errorf("format %d has no display name", f)
			continue
		}
		if prev, dup := seen[name]; dup {
			t.Errorf("formats %d and %d share the name %q", prev, f, name)
		}
		seen[name] = f
	}
	if got := Format(formatCount + 7).String(); got != "Unknown" {
		t.Errorf("out-of-range name: got %q, want Unknown", got)
	}
}

func TestFormatCompressed(t *testing.T) {
	compressed := map[Format]bool{
		FormatBC1: true, FormatBC2: true, FormatBC3: true, FormatBC4: true,
		FormatBC5: true, FormatBC6H: true, FormatBC7: true,
		FormatETC1: true, FormatETC2: true, FormatETC2A: true, FormatETC2A1: true,
		FormatPTC12: true, FormatPTC14: true, FormatPTC12A: true, FormatPTC14A: true,
		FormatPTC22: true, FormatPTC24: true,
		FormatATC: true, FormatATCE: true, FormatATCI: true,
		FormatASTC4x4: true, FormatASTC5x5: true, FormatASTC6x6: true,
		FormatASTC8x5: true, FormatASTC8x6: true, FormatASTC10x5: true,
	}
	for _, f := range allFormats() {
		if got := f.Compressed(); got != compressed[f] {
			t.Errorf("%s: Compressed() = %v, want %v", f, got, compressed[f])
		}
	}
}
