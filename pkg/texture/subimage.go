package texture

import (
	"encoding/binary"
	"fmt"
)

// SubImage is a view of one (layer, face/slice, mip) sub-image. Data is a
// sub-slice of the buffer given to SubImage, not a copy.
type SubImage struct {
	Data     []byte
	Width    int
	Height   int
	Size     int // byte size of the sub-image
	RowPitch int // bytes per row of texels
}

// mipExtent returns the stored extent of a mip level: width and height
// rounded up to whole blocks and clamped to the format's minimum block
// count.
func mipExtent(width, height int, bi *blockInfo) (int, int) {
	bw, bh := int(bi.blockWidth), int(bi.blockHeight)
	w := (width + bw - 1) / bw * bw
	h := (height + bh - 1) / bh * bh
	w = max(w, int(bi.minBlockX)*bw)
	h = max(h, int(bi.minBlockY)*bh)
	return w, h
}

// mipSize returns the byte size of one slice of a mip level with the given
// stored extent.
func mipSize(w, h int, bi *blockInfo) int {
	return w / int(bi.blockWidth) * (h / int(bi.blockHeight)) * int(bi.blockSize)
}

func align4(n int) int {
	return (n + 3) &^ 3
}

// SubImage locates one sub-image inside data, which must be the same buffer
// that Parse consumed. layer selects the array element. For cubemaps,
// sliceFace selects the face (see the CubeFace constants); otherwise it
// selects the depth slice. mip selects the mip level, 0 being full
// resolution.
//
// The walk re-reads the container's own layout on every call: for KTX it
// re-walks the per-mip image-size words, verifying each against the
// format's block arithmetic. Out-of-range indices and layout inconsistencies
// are reported as errors; no pixel data is copied.
func (info *Info) SubImage(data []byte, layer, sliceFace, mip int) (*SubImage, error) {
	if !info.Format.valid() {
		return nil, fmt.Errorf("invalid format %d", info.Format)
	}
	if layer < 0 || layer >= info.Layers {
		return nil, fmt.Errorf("layer index %d out of range [0,%d)", layer, info.Layers)
	}
	if mip < 0 || mip >= info.Mips {
		return nil, fmt.Errorf("mip index %d out of range [0,%d)", mip, info.Mips)
	}
	sliceFaceMax := info.Depth
	if info.Cubemap() {
		sliceFaceMax = 6
	}
	if sliceFace < 0 || sliceFace >= sliceFaceMax {
		return nil, fmt.Errorf("slice/face index %d out of range [0,%d)", sliceFace, sliceFaceMax)
	}

	wantFace, wantSlice := 0, sliceFace
	if info.Cubemap() {
		wantFace, wantSlice = sliceFace, 0
	}

	if info.Flags&FlagKTX != 0 {
		return info.subImageKTX(data, layer, wantFace, wantSlice, mip)
	}
	return info.subImageDDS(data, layer, wantFace, wantSlice, mip)
}

// subImageDDS walks the DDS payload, which packs sub-images in
// layer-face-mip-slice order.
func (info *Info) subImageDDS(data []byte, wantLayer, wantFace, wantSlice, wantMip int) (*SubImage, error) {
	bi := &blockInfos[info.Format]
	faces := 1
	if info.Cubemap() {
		faces = 6
	}

	offset := info.DataOffset
	for layer := 0; layer < info.Layers; layer++ {
		for face := 0; face < faces; face++ {
			width, height := info.Width, info.Height
			for mip := 0; mip < info.Mips; mip++ {
				w, h := mipExtent(width, height, bi)
				size := mipSize(w, h, bi)
				for slice := 0; slice < info.Depth; slice++ {
					if layer == wantLayer && face == wantFace && mip == wantMip && slice == wantSlice {
						return info.subImageAt(data, offset, w, h, size, bi)
					}
					offset += size
				}
				width >>= 1
				height >>= 1
			}
		}
	}
	return nil, fmt.Errorf("sub-image (%d,%d/%d,%d) not found", wantLayer, wantFace, wantSlice, wantMip)
}

// subImageKTX walks the KTX payload: each mip level opens with a big-endian
// image-size word, then packs layer-face-slice order with 4-byte padding
// after every face and again after the whole level.
func (info *Info) subImageKTX(data []byte, wantLayer, wantFace, wantSlice, wantMip int) (*SubImage, error) {
	bi := &blockInfos[info.Format]
	faces := 1
	if info.Cubemap() {
		faces = 6
	}

	offset := info.DataOffset
	width, height := info.Width, info.Height
	for mip := 0; mip < info.Mips; mip++ {
		if offset+4 > len(data) {
			return nil, fmt.Errorf("ktx: truncated payload at mip %d", mip)
		}
		imageSize := int(binary.BigEndian.Uint32(data[offset : offset+4]))
		offset += 4

		w, h := mipExtent(width, height, bi)
		size := mipSize(w, h, bi)
		if imageSize != size*faces*info.Depth {
			return nil, fmt.Errorf("ktx: image size %d of mip %d does not match computed size %d",
				imageSize, mip, size*faces*info.Depth)
		}

		for layer := 0; layer < info.Layers; layer++ {
			for face := 0; face < faces; face++ {
				for slice := 0; slice < info.Depth; slice++ {
					if layer == wantLayer && face == wantFace && mip == wantMip && slice == wantSlice {
						return info.subImageAt(data, offset, w, h, size, bi)
					}
					offset += size
				}
				offset = align4(offset) // cube padding
			}
		}
		offset = align4(offset) // mip padding
		width >>= 1
		height >>= 1
	}
	return nil, fmt.Errorf("sub-image (%d,%d/%d,%d) not found", wantLayer, wantFace, wantSlice, wantMip)
}

func (info *Info) subImageAt(data []byte, offset, w, h, size int, bi *blockInfo) (*SubImage, error) {
	if offset+size > len(data) {
		return nil, fmt.Errorf("texture buffer overflow: sub-image at %d..%d exceeds %d bytes",
			offset, offset+size, len(data))
	}
	return &SubImage{
		Data:     data[offset : offset+size : offset+size],
		Width:    w,
		Height:   h,
		Size:     size,
		RowPitch: w * int(bi.bpp) / 8,
	}, nil
}
