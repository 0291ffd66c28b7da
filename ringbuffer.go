package ircbot

// RingBuffer is a fixed-capacity circular byte store. It decouples the
// arbitrary chunk boundaries of transport reads from line-oriented
// consumption without allocating after construction.
//
// One byte of capacity is always kept free so that start == end means empty.
// A RingBuffer is not safe for concurrent use.
type RingBuffer struct {
	buf   []byte
	start int
	end   int
}

// NewRingBuffer creates a RingBuffer able to hold size-1 unread bytes.
func NewRingBuffer(size int) *RingBuffer {
	if size < 2 {
		panic("ircbot: ring buffer size must be at least 2")
	}

	return &RingBuffer{buf: make([]byte, size)}
}

// Cap returns the size of the underlying storage.
func (r *RingBuffer) Cap() int {
	return len(r.buf)
}

// Len returns the number of unread bytes.
func (r *RingBuffer) Len() int {
	return (r.end - r.start + len(r.buf)) % len(r.buf)
}

// Free returns how many bytes may be appended before the buffer is full.
func (r *RingBuffer) Free() int {
	return len(r.buf) - 1 - r.Len()
}

// Reset discards all unread bytes.
func (r *RingBuffer) Reset() {
	r.start = 0
	r.end = 0
}

// Append copies p into the buffer. The caller must make sure p fits; writing
// more than Free() bytes is a programming error and panics.
func (r *RingBuffer) Append(p []byte) {
	if len(p) > r.Free() {
		panic("ircbot: ring buffer append exceeds free space")
	}

	for _, c := range p {
		r.buf[r.end] = c
		r.end = (r.end + 1) % len(r.buf)
	}
}

// Find returns the offset from the read position of the first occurrence of
// c, or false if c is not buffered.
func (r *RingBuffer) Find(c byte) (int, bool) {
	n := r.Len()
	for i := 0; i < n; i++ {
		if r.buf[(r.start+i)%len(r.buf)] == c {
			return i, true
		}
	}

	return -1, false
}

// ConsumeUntil copies bytes into dst up to but not including delim and
// advances past them. It stops early when dst is full or the buffer runs
// out. The delimiter itself is left in the buffer.
func (r *RingBuffer) ConsumeUntil(delim byte, dst []byte) int {
	count := 0
	for r.start != r.end && count < len(dst) {
		c := r.buf[r.start]
		if c == delim {
			break
		}

		dst[count] = c
		count++
		r.start = (r.start + 1) % len(r.buf)
	}

	return count
}

// Skip advances the read position by up to n bytes and returns how many were
// actually skipped.
func (r *RingBuffer) Skip(n int) int {
	if n < 0 {
		return 0
	}

	if l := r.Len(); n > l {
		n = l
	}

	r.start = (r.start + n) % len(r.buf)

	return n
}

// Drain copies up to len(dst) bytes into dst regardless of content and
// returns the number copied.
func (r *RingBuffer) Drain(dst []byte) int {
	n := r.Len()
	if n > len(dst) {
		n = len(dst)
	}

	for i := 0; i < n; i++ {
		dst[i] = r.buf[r.start]
		r.start = (r.start + 1) % len(r.buf)
	}

	return n
}
