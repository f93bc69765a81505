// Package words implements the stages of the hexwords formatting pipeline.
//
// Each stage is small and independent so it can be tested on its own:
//
//   - [Reader] splits a byte stream into fixed-size words
//   - [Orient] reverses a word for little-endian output
//   - [EncodePrintWord] renders a print-word as prefixed uppercase hex
//   - [FormatWord] joins the print-words of one word
//   - [LineAssembler] groups formatted words into indented lines
//
// # Usage
//
//	r := words.NewReader(src, 4)
//	la := words.NewLineAssembler(dst, words.LineOptions{WordsPerLine: 8, WordDelim: ", "})
//	for {
//	    w, err := r.Next()
//	    if err == io.EOF {
//	        break
//	    }
//	    if err != nil {
//	        return err
//	    }
//	    ...
//	}
//	return la.Finish()
//
// The package holds no global state and is not safe for concurrent use of a
// single Reader or LineAssembler.
package words
