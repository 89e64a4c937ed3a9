package texture

// Pixel encoding kinds.
type encodeKind uint8

const (
	encodeUnorm encodeKind = iota
	encodeSnorm
	encodeFloat
	encodeInt
	encodeUint
)

// blockInfo describes the storage geometry of one format. For uncompressed
// formats the "block" is a single texel. blockSize*8 == bpp*blockWidth*
// blockHeight holds for every row; mip sizes computed from block counts and
// from bits-per-pixel therefore agree exactly.
type blockInfo struct {
	bpp         uint8
	blockWidth  uint8
	blockHeight uint8
	blockSize   uint8 // bytes per block
	minBlockX   uint8
	minBlockY   uint8
	depthBits   uint8
	stencilBits uint8
	rBits       uint8
	gBits       uint8
	bBits       uint8
	aBits       uint8
	encoding    encodeKind
}

var blockInfos = [formatCount]blockInfo{
	//                  +---------------------------------------- bits per pixel
	//                  |   +------------------------------------ block width
	//                  |   |   +-------------------------------- block height
	//                  |   |   |   +---------------------------- block size
	//                  |   |   |   |   +------------------------ min blocks x
	//                  |   |   |   |   |  +--------------------- min blocks y
	//                  |   |   |   |   |  |  +------------------ depth bits
	//                  |   |   |   |   |  |  |  +--------------- stencil bits
	//                  |   |   |   |   |  |  |  |   +---+---+--+ r, g, b, a bits
	FormatBC1:      {4, 4, 4, 8, 1, 1, 0, 0, 0, 0, 0, 0, encodeUnorm},
	FormatBC2:      {8, 4, 4, 16, 1, 1, 0, 0, 0, 0, 0, 0, encodeUnorm},
	FormatBC3:      {8, 4, 4, 16, 1, 1, 0, 0, 0, 0, 0, 0, encodeUnorm},
	FormatBC4:      {4, 4, 4, 8, 1, 1, 0, 0, 0, 0, 0, 0, encodeUnorm},
	FormatBC5:      {8, 4, 4, 16, 1, 1, 0, 0, 0, 0, 0, 0, encodeUnorm},
	FormatBC6H:     {8, 4, 4, 16, 1, 1, 0, 0, 0, 0, 0, 0, encodeFloat},
	FormatBC7:      {8, 4, 4, 16, 1, 1, 0, 0, 0, 0, 0, 0, encodeUnorm},
	FormatETC1:     {4, 4, 4, 8, 1, 1, 0, 0, 0, 0, 0, 0, encodeUnorm},
	FormatETC2:     {4, 4, 4, 8, 1, 1, 0, 0, 0, 0, 0, 0, encodeUnorm},
	FormatETC2A:    {8, 4, 4, 16, 1, 1, 0, 0, 0, 0, 0, 0, encodeUnorm},
	FormatETC2A1:   {4, 4, 4, 8, 1, 1, 0, 0, 0, 0, 0, 0, encodeUnorm},
	FormatPTC12:    {2, 8, 4, 8, 2, 2, 0, 0, 0, 0, 0, 0, encodeUnorm},
	FormatPTC14:    {4, 4, 4, 8, 2, 2, 0, 0, 0, 0, 0, 0, encodeUnorm},
	FormatPTC12A:   {2, 8, 4, 8, 2, 2, 0, 0, 0, 0, 0, 0, encodeUnorm},
	FormatPTC14A:   {4, 4, 4, 8, 2, 2, 0, 0, 0, 0, 0, 0, encodeUnorm},
	FormatPTC22:    {2, 8, 4, 8, 2, 2, 0, 0, 0, 0, 0, 0, encodeUnorm},
	FormatPTC24:    {4, 4, 4, 8, 2, 2, 0, 0, 0, 0, 0, 0, encodeUnorm},
	FormatATC:      {4, 4, 4, 8, 1, 1, 0, 0, 0, 0, 0, 0, encodeUnorm},
	FormatATCE:     {8, 4, 4, 16, 1, 1, 0, 0, 0, 0, 0, 0, encodeUnorm},
	FormatATCI:     {8, 4, 4, 16, 1, 1, 0, 0, 0, 0, 0, 0, encodeUnorm},
	FormatASTC4x4:  {8, 4, 4, 16, 1, 1, 0, 0, 0, 0, 0, 0, encodeUnorm},
	FormatASTC5x5:  {8, 5, 5, 25, 1, 1, 0, 0, 0, 0, 0, 0, encodeUnorm},
	FormatASTC6x6:  {4, 6, 6, 18, 1, 1, 0, 0, 0, 0, 0, 0, encodeUnorm},
	FormatASTC8x5:  {4, 8, 5, 20, 1, 1, 0, 0, 0, 0, 0, 0, encodeUnorm},
	FormatASTC8x6:  {3, 8, 6, 18, 1, 1, 0, 0, 0, 0, 0, 0, encodeUnorm},
	FormatASTC10x5: {4, 10, 5, 25, 1, 1, 0, 0, 0, 0, 0, 0, encodeUnorm},
	FormatA8:       {8, 1, 1, 1, 1, 1, 0, 0, 0, 0, 0, 8, encodeUnorm},
	FormatR8:       {8, 1, 1, 1, 1, 1, 0, 0, 8, 0, 0, 0, encodeUnorm},
	FormatRGBA8:    {32, 1, 1, 4, 1, 1, 0, 0, 8, 8, 8, 8, encodeUnorm},
	FormatRGBA8S:   {32, 1, 1, 4, 1, 1, 0, 0, 8, 8, 8, 8, encodeSnorm},
	FormatRG16:     {32, 1, 1, 4, 1, 1, 0, 0, 16, 16, 0, 0, encodeUnorm},
	FormatRGB8:     {24, 1, 1, 3, 1, 1, 0, 0, 8, 8, 8, 0, encodeUnorm},
	FormatR16:      {16, 1, 1, 2, 1, 1, 0, 0, 16, 0, 0, 0, encodeUnorm},
	FormatR32F:     {32, 1, 1, 4, 1, 1, 0, 0, 32, 0, 0, 0, encodeFloat},
	FormatR16F:     {16, 1, 1, 2, 1, 1, 0, 0, 16, 0, 0, 0, encodeFloat},
	FormatRG16F:    {32, 1, 1, 4, 1, 1, 0, 0, 16, 16, 0, 0, encodeFloat},
	FormatRG16S:    {32, 1, 1, 4, 1, 1, 0, 0, 16, 16, 0, 0, encodeSnorm},
	FormatRGBA16F:  {64, 1, 1, 8, 1, 1, 0, 0, 16, 16, 16, 16, encodeFloat},
	FormatRGBA16:   {64, 1, 1, 8, 1, 1, 0, 0, 16, 16, 16, 16, encodeUnorm},
	FormatBGRA8:    {32, 1, 1, 4, 1, 1, 0, 0, 8, 8, 8, 8, encodeUnorm},
	FormatRGB10A2:  {32, 1, 1, 4, 1, 1, 0, 0, 10, 10, 10, 2, encodeUnorm},
	FormatRG11B10F: {32, 1, 1, 4, 1, 1, 0, 0, 11, 11, 10, 0, encodeFloat},
	FormatRG8:      {16, 1, 1, 2, 1, 1, 0, 0, 8, 8, 0, 0, encodeUnorm},
	FormatRG8S:     {16, 1, 1, 2, 1, 1, 0, 0, 8, 8, 0, 0, encodeSnorm},
}
