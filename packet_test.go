package wakey

import (
	"bytes"
	"net"
	"testing"

	"github.com/mdlayher/wol"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMagicPacket_Layout(t *testing.T) {
	addr := HardwareAddr{0x01, 0x02, 0x03, 0x04, 0x05, 0x06}
	payload := NewMagicPacket(addr).Payload()

	require.Len(t, payload, 102)
	assert.Equal(t, bytes.Repeat([]byte{0xFF}, 6), payload[:6])
	for i := 0; i < 16; i++ {
		offset := 6 + i*6
		assert.Equal(t, addr[:], payload[offset:offset+6], "repetition %d", i)
	}
}

func TestNewMagicPacket_Deterministic(t *testing.T) {
	addr := HardwareAddr{0xAA, 0xBB, 0xCC, 0xDD, 0xEE, 0xFF}

	first := NewMagicPacket(addr)
	second := NewMagicPacket(addr)

	assert.Equal(t, first, second)
	assert.Equal(t, first.Payload(), second.Payload())
}

func TestNewMagicPacket_BroadcastAddrIsAllFF(t *testing.T) {
	payload := NewMagicPacket(HardwareAddr{0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF}).Payload()

	assert.Equal(t, bytes.Repeat([]byte{0xFF}, 102), payload)
}

func TestNewMagicPacket_RoundTrip(t *testing.T) {
	addr, err := ParseHardwareAddr([]byte{0x01, 0x02, 0x03, 0x04, 0x05, 0x06})
	require.NoError(t, err)

	payload := NewMagicPacket(addr).Payload()

	want := append(bytes.Repeat([]byte{0xFF}, 6), bytes.Repeat([]byte{0x01, 0x02, 0x03, 0x04, 0x05, 0x06}, 16)...)
	assert.Equal(t, want, payload)
}

func TestNewMagicPacketFromString(t *testing.T) {
	p, err := NewMagicPacketFromString("01:02:03:04:05:06", ":")

	require.NoError(t, err)
	assert.Equal(t, HardwareAddr{0x01, 0x02, 0x03, 0x04, 0x05, 0x06}, p.HardwareAddr())
}

func TestNewMagicPacketFromString_Invalid(t *testing.T) {
	_, err := NewMagicPacketFromString("01:02:03", ":")

	var lenErr *InvalidLengthError
	require.ErrorAs(t, err, &lenErr)
}

func TestMagicPacket_HardwareAddr(t *testing.T) {
	addr := HardwareAddr{0xDE, 0xAD, 0xBE, 0xEF, 0x00, 0x01}
	assert.Equal(t, addr, NewMagicPacket(addr).HardwareAddr())
}

func TestMagicPacket_PayloadIsACopy(t *testing.T) {
	p := NewMagicPacket(HardwareAddr{0x01, 0x02, 0x03, 0x04, 0x05, 0x06})

	payload := p.Payload()
	payload[0] = 0x00

	assert.Equal(t, byte(0xFF), p.Payload()[0])
}

// The payload must match what mdlayher/wol encodes for the same target,
// byte for byte.
func TestNewMagicPacket_MatchesReferenceEncoder(t *testing.T) {
	mac, err := net.ParseMAC("b0:6e:bf:30:70:3a")
	require.NoError(t, err)

	want, err := (&wol.MagicPacket{Target: mac}).MarshalBinary()
	require.NoError(t, err)

	addr, err := ParseHardwareAddr(mac)
	require.NoError(t, err)

	assert.Equal(t, want, NewMagicPacket(addr).Payload())
}
