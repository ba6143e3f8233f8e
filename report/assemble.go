package report

import (
	"encoding/hex"
	"strings"

	"github.com/arloliu/lcikit/internal/pool"
)

// DumpBytesPerLine is the number of bytes on each line of Dump output.
const DumpBytesPerLine = 16

const upperHexDigits = "0123456789ABCDEF"

// Join concatenates framed subelements into one report body.
//
// The result is newly allocated; nil and empty parts are skipped.
func Join(parts ...[]byte) []byte {
	buf := pool.GetReportBuffer()
	defer pool.PutReportBuffer(buf)

	for _, p := range parts {
		buf.MustWrite(p)
	}

	return append([]byte(nil), buf.Bytes()...)
}

// Hex returns b as a compact lower-case hex string, e.g. "060101".
func Hex(b []byte) string {
	return hex.EncodeToString(b)
}

// Dump returns b as upper-case two-digit hex bytes separated by spaces, with
// DumpBytesPerLine bytes per line:
//
//	06 03 06 00 80
//
// The output has no trailing newline.
func Dump(b []byte) string {
	if len(b) == 0 {
		return ""
	}

	var sb strings.Builder
	sb.Grow(len(b) * 3)
	for i, c := range b {
		if i > 0 {
			if i%DumpBytesPerLine == 0 {
				sb.WriteByte('\n')
			} else {
				sb.WriteByte(' ')
			}
		}
		sb.WriteByte(upperHexDigits[c>>4])
		sb.WriteByte(upperHexDigits[c&0x0F])
	}

	return sb.String()
}
