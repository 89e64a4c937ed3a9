package texture

// Format identifies the pixel encoding of a texture. The block-compressed
// formats come first, followed by the formatCompressed partition marker and
// the uncompressed formats, so classification is a single ordinal compare.
type Format uint32

const (
	FormatBC1 Format = iota // DXT1
	FormatBC2               // DXT3
	FormatBC3               // DXT5
	FormatBC4               // ATI1
	FormatBC5               // ATI2
	FormatBC6H
	FormatBC7
	FormatETC1   // ETC1 RGB8
	FormatETC2   // ETC2 RGB8
	FormatETC2A  // ETC2 RGBA8
	FormatETC2A1 // ETC2 RGB8A1
	FormatPTC12  // PVRTC1 RGB 2bpp
	FormatPTC14  // PVRTC1 RGB 4bpp
	FormatPTC12A // PVRTC1 RGBA 2bpp
	FormatPTC14A // PVRTC1 RGBA 4bpp
	FormatPTC22  // PVRTC2 RGBA 2bpp
	FormatPTC24  // PVRTC2 RGBA 4bpp
	FormatATC
	FormatATCE
	FormatATCI
	FormatASTC4x4
	FormatASTC5x5
	FormatASTC6x6
	FormatASTC8x5
	FormatASTC8x6
	FormatASTC10x5

	// formatCompressed partitions the enum: everything below is
	// block-compressed, everything above is uncompressed.
	formatCompressed

	FormatA8
	FormatR8
	FormatRGBA8
	FormatRGBA8S
	FormatRG16
	FormatRGB8
	FormatR16
	FormatR32F
	FormatR16F
	FormatRG16F
	FormatRG16S
	FormatRGBA16F
	FormatRGBA16
	FormatBGRA8
	FormatRGB10A2
	FormatRG11B10F
	FormatRG8
	FormatRG8S

	formatCount
)

// formatInfo carries the display name and the default alpha-channel flag of
// each format. The alpha default is what KTX containers report (their header
// has no alpha bit) and what DDS falls back to when the pixel-format flags
// say nothing.
var formatInfo = [formatCount]struct {
	name     string
	hasAlpha bool
}{
	FormatBC1:      {"BC1", false},
	FormatBC2:      {"BC2", true},
	FormatBC3:      {"BC3", true},
	FormatBC4:      {"BC4", false},
	FormatBC5:      {"BC5", false},
	FormatBC6H:     {"BC6H", false},
	FormatBC7:      {"BC7", true},
	FormatETC1:     {"ETC1", false},
	FormatETC2:     {"ETC2", false},
	FormatETC2A:    {"ETC2A", true},
	FormatETC2A1:   {"ETC2A1", true},
	FormatPTC12:    {"PTC12", false},
	FormatPTC14:    {"PTC14", false},
	FormatPTC12A:   {"PTC12A", true},
	FormatPTC14A:   {"PTC14A", true},
	FormatPTC22:    {"PTC22", true},
	FormatPTC24:    {"PTC24", true},
	FormatATC:      {"ATC", false},
	FormatATCE:     {"ATCE", true},
	FormatATCI:     {"ATCI", true},
	FormatASTC4x4:  {"ASTC4x4", true},
	FormatASTC5x5:  {"ASTC5x5", true},
	FormatASTC6x6:  {"ASTC6x6", true},
	FormatASTC8x5:  {"ASTC8x5", true},
	FormatASTC8x6:  {"ASTC8x6", true},
	FormatASTC10x5: {"ASTC10x5", true},
	FormatA8:       {"A8", true},
	FormatR8:       {"R8", false},
	FormatRGBA8:    {"RGBA8", true},
	FormatRGBA8S:   {"RGBA8S", true},
	FormatRG16:     {"RG16", false},
	FormatRGB8:     {"RGB8", false},
	FormatR16:      {"R16", false},
	FormatR32F:     {"R32F", false},
	FormatR16F:     {"R16F", false},
	FormatRG16F:    {"RG16F", false},
	FormatRG16S:    {"RG16S", false},
	FormatRGBA16F:  {"RGBA16F", true},
	FormatRGBA16:   {"RGBA16", true},
	FormatBGRA8:    {"BGRA8", true},
	FormatRGB10A2:  {"RGB10A2", true},
	FormatRG11B10F: {"RG11B10F", false},
	FormatRG8:      {"RG8", false},
	FormatRG8S:     {"RG8S", false},
}

// String returns the short display name of the format, e.g. "BC3" or
// "RGBA16F".
func (f Format) String() string {
	if f < formatCount && formatInfo[f].name != "" {
		return formatInfo[f].name
	}
	return "Unknown"
}

// Compressed reports whether the format is block-compressed.
func (f Format) Compressed() bool {
	return f < formatCompressed
}

// valid reports whether f names an actual format rather than a partition
// sentinel or an out-of-range value.
func (f Format) valid() bool {
	return f < formatCount && f != formatCompressed
}

// defaultAlpha reports the per-format alpha default.
func (f Format) defaultAlpha() bool {
	return formatInfo[f].hasAlpha
}
