package prescan

// booleanAttrNames is the fixed table of recognized HTML boolean attributes.
// The order is part of the public contract: hints report positions in this
// table, so entries must never be reordered.
var booleanAttrNames = [...]string{
	"allowfullscreen", "async", "autofocus", "checked", "compact", "controls", "declare", "default", "defer",
	"disabled", "formnovalidate", "hidden", "inert", "ismap", "itemscope", "multiple", "muted", "nohref",
	"noresize", "noshade", "novalidate", "nowrap", "open", "readonly", "required", "reversed", "seamless",
	"selected", "sortable", "truespeed", "typemustmatch",
}

// NumBooleanAttrs is the number of entries in the boolean attribute table.
const NumBooleanAttrs = len(booleanAttrNames)

// BooleanAttrName returns the table entry for a hint index, or "" if the
// index is out of range.
func BooleanAttrName(index int) string {
	if index < 0 || index >= len(booleanAttrNames) {
		return ""
	}
	return booleanAttrNames[index]
}

// Lookup acceleration: candidate indices bucketed by lowercased first
// letter, plus a bitmap of lengths that occur in the table at all. The
// longest bucket ("n") has five candidates, so a miss costs at most five
// length comparisons.
var (
	booleanAttrBuckets [128][]uint8
	booleanAttrLengths [32]bool
)

func init() {
	for i, name := range booleanAttrNames {
		booleanAttrLengths[len(name)] = true
		booleanAttrBuckets[name[0]] = append(booleanAttrBuckets[name[0]], uint8(i))
	}
}

// booleanAttrIndex returns the table index for buf[start:end] under
// ASCII-case-insensitive comparison, or -1 if the byte range is not a
// recognized boolean attribute. Non-ASCII bytes never match.
func booleanAttrIndex(buf []byte, start, end int) int {
	length := end - start
	if length <= 0 || length >= 32 || !booleanAttrLengths[length] {
		return -1
	}
	first := buf[start]
	if first >= 0x80 {
		return -1
	}
	lowerFirst := asciiLower[first]
	if lowerFirst >= 128 {
		return -1
	}
candidates:
	for _, idx := range booleanAttrBuckets[lowerFirst] {
		target := booleanAttrNames[idx]
		if len(target) != length {
			continue
		}
		for j := 0; j < length; j++ {
			b := buf[start+j]
			if b >= 0x80 {
				return -1
			}
			if asciiLower[b] != target[j] {
				continue candidates
			}
		}
		return int(idx)
	}
	return -1
}
