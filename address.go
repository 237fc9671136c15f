// Package wakey builds and sends Wake-on-LAN magic packets.
package wakey

import (
	"encoding/hex"
	"fmt"
	"strings"
)

// HardwareAddrLen is the length of a link-layer hardware address in bytes.
const HardwareAddrLen = 6

// HardwareAddr is a validated 6-byte link-layer (MAC) address. All byte
// values are legal, including the all-zero and broadcast patterns.
type HardwareAddr [HardwareAddrLen]byte

// String formats the address as lowercase colon-separated hex pairs.
func (a HardwareAddr) String() string {
	return fmt.Sprintf("%02x:%02x:%02x:%02x:%02x:%02x", a[0], a[1], a[2], a[3], a[4], a[5])
}

// InvalidLengthError reports an address with the wrong number of bytes or
// tokens.
type InvalidLengthError struct {
	Want int
	Got  int
}

func (e *InvalidLengthError) Error() string {
	return fmt.Sprintf("invalid hardware address length: got %d, want %d", e.Got, e.Want)
}

// InvalidHexError reports an address token that is not a 2-digit hex byte.
type InvalidHexError struct {
	Token string
}

func (e *InvalidHexError) Error() string {
	return fmt.Sprintf("invalid hex byte %q in hardware address", e.Token)
}

// ParseHardwareAddr converts a raw byte sequence into a HardwareAddr. The
// sequence must be exactly 6 bytes long; the byte values themselves are not
// validated.
func ParseHardwareAddr(b []byte) (HardwareAddr, error) {
	var addr HardwareAddr
	if len(b) != HardwareAddrLen {
		return addr, &InvalidLengthError{Want: HardwareAddrLen, Got: len(b)}
	}
	copy(addr[:], b)
	return addr, nil
}

// ParseHardwareAddrString converts a delimited hex string such as
// "00:11:22:33:44:55" into a HardwareAddr. The delimiter is caller-supplied,
// so alternate conventions like "-" work unchanged. The string must split
// into exactly 6 tokens, each a case-insensitive 2-digit hex byte.
func ParseHardwareAddrString(s, delim string) (HardwareAddr, error) {
	var addr HardwareAddr
	tokens := strings.Split(s, delim)
	if len(tokens) != HardwareAddrLen {
		return addr, &InvalidLengthError{Want: HardwareAddrLen, Got: len(tokens)}
	}
	for i, tok := range tokens {
		if len(tok) != 2 {
			return HardwareAddr{}, &InvalidHexError{Token: tok}
		}
		b, err := hex.DecodeString(tok)
		if err != nil {
			return HardwareAddr{}, &InvalidHexError{Token: tok}
		}
		addr[i] = b[0]
	}
	return addr, nil
}
