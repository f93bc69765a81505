package words

import "strings"

const upperHex = "0123456789ABCDEF"

// AppendPrintWord appends prefix and the uppercase hex digits of pw to dst.
func AppendPrintWord(dst []byte, prefix string, pw []byte) []byte {
	dst = append(dst, prefix...)
	for _, b := range pw {
		dst = append(dst, upperHex[b>>4], upperHex[b&0x0f])
	}
	return dst
}

// EncodePrintWord renders pw as prefix followed by two uppercase hex digits
// per byte.
func EncodePrintWord(prefix string, pw []byte) string {
	return string(AppendPrintWord(make([]byte, 0, len(prefix)+2*len(pw)), prefix, pw))
}

// SplitPrintWords slices word into consecutive print-words of size bytes.
// len(word) must be a multiple of size. The result aliases word.
func SplitPrintWords(word []byte, size int) [][]byte {
	out := make([][]byte, 0, len(word)/size)
	for i := 0; i+size <= len(word); i += size {
		out = append(out, word[i:i+size])
	}
	return out
}

// FormatWord returns prefix followed by printWords joined with delim.
// The delimiter separates print-words and never trails the last one.
func FormatWord(prefix, delim string, printWords []string) string {
	return prefix + strings.Join(printWords, delim)
}
