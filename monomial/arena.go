package monomial

// maskWords is the number of uint32 words a DivMask takes at the head of a
// small power product.
const maskWords = 2

/*
block carves the words of k power products out of one allocation. It is
used for batches whose members are built together: the products of one
term with a polynomial (MulAll) and the terms of one polynomial (Pack).
A power product built on its own gets an allocation of its own, so it
never keeps unrelated products alive.
*/
type block struct {
	buf   []uint32
	width int
}

func newBlock(width, k int) block {
	return block{buf: make([]uint32, width*k), width: width}
}

func (b *block) next() []uint32 {
	v := b.buf[:b.width:b.width]
	b.buf = b.buf[b.width:]

	return v
}

func setMask(w []uint32, m DivMask) {
	w[0], w[1] = uint32(m), uint32(m>>32)
}
