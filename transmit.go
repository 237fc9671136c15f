package wakey

import (
	"fmt"
	"net"
)

// DefaultPort is the conventional Wake-on-LAN destination UDP port (discard).
const DefaultPort = 9

// NetworkError wraps an OS or network-layer failure during bind or send.
type NetworkError struct {
	Op  string
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("wake-on-lan %s: %v", e.Op, e.Err)
}

func (e *NetworkError) Unwrap() error { return e.Err }

// Send broadcasts the packet with default endpoints: bound to an unspecified
// local address on an ephemeral port, destined for the limited broadcast
// address 255.255.255.255 on port 9.
func (p MagicPacket) Send() error {
	return p.SendTo(
		&net.UDPAddr{IP: net.IPv4zero, Port: 0},
		&net.UDPAddr{IP: net.IPv4bcast, Port: DefaultPort},
	)
}

// SendTo sends the packet from src to dst as a single UDP datagram. A nil src
// binds to an unspecified local address. Unicast destinations are accepted:
// directed Wake-on-LAN through a forwarding gateway is a valid use.
//
// The socket lives only for the duration of the call. Broadcast capability is
// set on UDP sockets at creation by the net package, so a broadcast dst needs
// no extra setup. Success means the OS accepted the datagram; Wake-on-LAN is
// fire-and-forget and no delivery confirmation exists.
func (p MagicPacket) SendTo(src, dst *net.UDPAddr) error {
	conn, err := net.ListenUDP("udp4", src)
	if err != nil {
		return &NetworkError{Op: "bind", Err: err}
	}
	defer conn.Close()

	n, err := conn.WriteToUDP(p.payload[:], dst)
	if err != nil {
		return &NetworkError{Op: "send", Err: err}
	}
	if n != PacketLen {
		return &NetworkError{Op: "send", Err: fmt.Errorf("short write: %d of %d bytes", n, PacketLen)}
	}
	return nil
}
