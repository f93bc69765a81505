// Package hexwords renders binary data as delimited hexadecimal text.
//
// Input is read in fixed-size words, optionally byte-reversed, split into
// print-words, hex encoded and laid out in lines of a fixed word count:
//
//	cfg := hexwords.DefaultConfig()
//	cfg.WordSize = 4
//	cfg.PrintSize = 4
//	cfg.AddPrefix = "0x"
//	cfg.Delim = ", "
//	cfg.BeginOfFile = "const uint32_t data[] = {"
//	cfg.EndOfFile = "};"
//	cfg.IndentLevel = 4
//	conv, err := hexwords.New(cfg)
//	if err != nil {
//	    return err
//	}
//	report := conv.ConvertAll([]string{"asset.bin"}, os.Stdout)
//	if !report.OK() {
//	    os.Exit(1)
//	}
//
// # Errors
//
// New returns a *ConfigError (matching ErrInvalidConfig) before any input
// is touched. Convert returns a *words.IndivisibleLengthError (matching
// ErrIndivisibleLength) when an input ends inside a word. ConvertAll never
// stops early: each failure is logged with the input name and counted in
// the Report.
package hexwords
