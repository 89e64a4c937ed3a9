package texture

// reader is a bounds-checked cursor over the input buffer. read copies what
// remains and reports the count; it never fails and never reads past the
// end. Callers detect truncated files by comparing the count against the
// request.
type reader struct {
	data   []byte
	offset int
}

func (r *reader) read(dst []byte) int {
	n := copy(dst, r.data[r.offset:])
	r.offset += n
	return n
}
