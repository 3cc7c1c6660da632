package hypr

import (
	"io"
	"net"
	"strings"
	"unicode/utf8"
)

// Event is one record from the event stream, decoded from a
// "name>>arg,arg,..." line.
type Event struct {
	Name string
	Args []string
}

// EventConn is the long-lived connection to the event socket. It is
// not safe for concurrent use; hyprmon reads it from a single loop.
type EventConn struct {
	conn net.Conn
}

// Listen opens the persistent event socket.
func Listen() (*EventConn, error) {
	path, err := SocketPath(EventSocket)
	if err != nil {
		return nil, err
	}
	conn, err := net.Dial("unix", path)
	if err != nil {
		return nil, &ConnError{Op: "open event socket", Err: err}
	}
	return &EventConn{conn: conn}, nil
}

// Read blocks for the next chunk of events and decodes every complete
// line in it. A zero-length read means the compositor closed the
// socket; it is reported as an empty batch with a nil error and must
// be treated as terminal by the caller.
//
// The read buffer is fixed at 256 bytes; a burst larger than that
// splits an event across reads and corrupts decoding. Known
// limitation inherited from the wire format having no length framing.
func (c *EventConn) Read() ([]Event, error) {
	buf := make([]byte, 256)

	n, err := c.conn.Read(buf)
	if err == io.EOF || (err == nil && n == 0) {
		return []Event{}, nil
	}
	if err != nil {
		return nil, &ConnError{Op: "read from event socket", Err: err}
	}

	return parseEvents(buf[:n])
}

// Close tears down the event connection.
func (c *EventConn) Close() error {
	return c.conn.Close()
}

func parseEvents(data []byte) ([]Event, error) {
	if !utf8.Valid(data) {
		return nil, &ProtocolError{Reason: "event socket did not return valid utf-8"}
	}

	events := []Event{}
	for _, line := range strings.Split(string(data), "\n") {
		if line == "" {
			continue
		}

		name, rest, found := strings.Cut(line, ">>")
		ev := Event{Name: name}
		if found {
			ev.Args = strings.Split(rest, ",")
		}
		events = append(events, ev)
	}
	return events, nil
}
