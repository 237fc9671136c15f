package wakey

// Magic packet layout, required byte-for-byte by Wake-on-LAN firmware:
// a 6-byte synchronization header of 0xFF followed by the hardware
// address repeated 16 times.
const (
	addrRepeats = 16
	headerLen   = 6

	// PacketLen is the size of a magic packet payload: 6 + 16*6 = 102 bytes.
	PacketLen = headerLen + addrRepeats*HardwareAddrLen
)

// MagicPacket is an immutable 102-byte Wake-on-LAN payload. The zero value
// is not a valid packet; construct one with NewMagicPacket.
type MagicPacket struct {
	payload [PacketLen]byte
}

// NewMagicPacket builds the magic packet for addr. Construction is total and
// deterministic: the same address always yields byte-identical packets.
func NewMagicPacket(addr HardwareAddr) MagicPacket {
	var p MagicPacket
	for i := 0; i < headerLen; i++ {
		p.payload[i] = 0xFF
	}
	for i := 0; i < addrRepeats; i++ {
		copy(p.payload[headerLen+i*HardwareAddrLen:], addr[:])
	}
	return p
}

// NewMagicPacketFromString parses a delimited hex address and builds its
// magic packet in one step.
func NewMagicPacketFromString(s, delim string) (MagicPacket, error) {
	addr, err := ParseHardwareAddrString(s, delim)
	if err != nil {
		return MagicPacket{}, err
	}
	return NewMagicPacket(addr), nil
}

// Payload returns a copy of the 102 packet bytes.
func (p MagicPacket) Payload() []byte {
	out := make([]byte, PacketLen)
	copy(out, p.payload[:])
	return out
}

// HardwareAddr returns the address the packet targets.
func (p MagicPacket) HardwareAddr() HardwareAddr {
	var addr HardwareAddr
	copy(addr[:], p.payload[headerLen:])
	return addr
}
