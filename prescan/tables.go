package prescan

// Byte classification tables used on the hot path. All lookups are plain
// array indexing; the tables are built once at package init and read-only
// afterwards, so concurrent scans never synchronize.
var (
	asciiLower [256]byte
	whitespace [256]bool
	nameChar   [256]bool
)

func init() {
	for i := 0; i < 256; i++ {
		b := byte(i)
		if b >= 'A' && b <= 'Z' {
			asciiLower[i] = b + 32
		} else {
			asciiLower[i] = b
		}
	}

	whitespace[0x20] = true // space
	whitespace[0x09] = true // tab
	whitespace[0x0A] = true // LF
	whitespace[0x0D] = true // CR

	for b := 'A'; b <= 'Z'; b++ {
		nameChar[b] = true
	}
	for b := 'a'; b <= 'z'; b++ {
		nameChar[b] = true
	}
	for b := '0'; b <= '9'; b++ {
		nameChar[b] = true
	}
	nameChar[':'] = true
	nameChar['_'] = true
	nameChar['-'] = true
	nameChar['.'] = true
}
