package words

// Orient returns word as-is when little is false. When little is true it
// writes the byte-reversed word into dst, growing it if needed, and returns
// the result. word is never modified.
func Orient(dst, word []byte, little bool) []byte {
	if !little {
		return word
	}
	if cap(dst) < len(word) {
		dst = make([]byte, len(word))
	}
	dst = dst[:len(word)]
	last := len(word) - 1
	for i, b := range word {
		dst[last-i] = b
	}
	return dst
}
