package sway

import (
	"bytes"
	"encoding/binary"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"os"
)

var magic = []byte("i3-ipc")

// Event replies have the high bit of the message type set; the low bits
// identify the event. Workspace events are type 0.
const (
	eventFlag      uint32 = 0x80000000
	eventWorkspace uint32 = 0
)

// SocketPath returns the compositor IPC socket path from the environment.
func SocketPath() (string, error) {
	if path := os.Getenv("SWAYSOCK"); path != "" {
		return path, nil
	}
	if path := os.Getenv("I3SOCK"); path != "" {
		return path, nil
	}
	return "", errors.New("SWAYSOCK is not set; is sway running?")
}

// Conn is a synchronous connection to the sway IPC socket. It is not safe
// for concurrent use; every operation is a blocking round trip.
type Conn struct {
	conn net.Conn
}

// Dial connects to the sway IPC socket advertised in the environment.
func Dial() (*Conn, error) {
	path, err := SocketPath()
	if err != nil {
		return nil, err
	}
	conn, err := net.Dial("unix", path)
	if err != nil {
		return nil, fmt.Errorf("connect to sway ipc: %w", err)
	}
	return &Conn{conn: conn}, nil
}

func (c *Conn) Close() error {
	return c.conn.Close()
}

func writeMessage(w io.Writer, msgType uint32, payload []byte) error {
	msg := make([]byte, 14+len(payload))
	copy(msg[0:6], magic)
	binary.LittleEndian.PutUint32(msg[6:10], uint32(len(payload)))
	binary.LittleEndian.PutUint32(msg[10:14], msgType)
	copy(msg[14:], payload)
	_, err := w.Write(msg)
	return err
}

func readMessage(r io.Reader) (uint32, []byte, error) {
	header := make([]byte, 14)
	if _, err := io.ReadFull(r, header); err != nil {
		return 0, nil, err
	}
	if !bytes.Equal(header[0:6], magic) {
		return 0, nil, errors.New("reply does not start with i3-ipc magic")
	}
	length := binary.LittleEndian.Uint32(header[6:10])
	msgType := binary.LittleEndian.Uint32(header[10:14])
	payload := make([]byte, length)
	if _, err := io.ReadFull(r, payload); err != nil {
		return 0, nil, err
	}
	return msgType, payload, nil
}

func (c *Conn) roundTrip(msgType uint32, payload []byte) ([]byte, error) {
	if err := writeMessage(c.conn, msgType, payload); err != nil {
		return nil, fmt.Errorf("send ipc message: %w", err)
	}
	gotType, reply, err := readMessage(c.conn)
	if err != nil {
		return nil, fmt.Errorf("read ipc reply: %w", err)
	}
	if gotType != msgType {
		return nil, fmt.Errorf("ipc reply type %d does not match request type %d", gotType, msgType)
	}
	return reply, nil
}

// GetWorkspaces queries the current workspaces.
func (c *Conn) GetWorkspaces() ([]Workspace, error) {
	reply, err := c.roundTrip(msgGetWorkspaces, nil)
	if err != nil {
		return nil, err
	}
	var workspaces []Workspace
	if err := json.Unmarshal(reply, &workspaces); err != nil {
		return nil, fmt.Errorf("decode get_workspaces reply: %w", err)
	}
	return workspaces, nil
}

// GetOutputs queries the current outputs.
func (c *Conn) GetOutputs() ([]Output, error) {
	reply, err := c.roundTrip(msgGetOutputs, nil)
	if err != nil {
		return nil, err
	}
	var outputs []Output
	if err := json.Unmarshal(reply, &outputs); err != nil {
		return nil, fmt.Errorf("decode get_outputs reply: %w", err)
	}
	return outputs, nil
}

// GetTree queries the full container tree.
func (c *Conn) GetTree() (*Node, error) {
	reply, err := c.roundTrip(msgGetTree, nil)
	if err != nil {
		return nil, err
	}
	var root Node
	if err := json.Unmarshal(reply, &root); err != nil {
		return nil, fmt.Errorf("decode get_tree reply: %w", err)
	}
	return &root, nil
}

// RunCommand submits a command string and returns the per-statement results.
func (c *Conn) RunCommand(payload string) ([]CommandResult, error) {
	reply, err := c.roundTrip(msgRunCommand, []byte(payload))
	if err != nil {
		return nil, err
	}
	var results []CommandResult
	if err := json.Unmarshal(reply, &results); err != nil {
		return nil, fmt.Errorf("decode run_command reply: %w", err)
	}
	return results, nil
}

// Subscribe registers for the named event types and returns the event
// stream. After subscribing the connection must not be used for requests;
// replies and events would interleave.
func (c *Conn) Subscribe(events ...string) (*EventStream, error) {
	payload, err := json.Marshal(events)
	if err != nil {
		return nil, err
	}
	reply, err := c.roundTrip(msgSubscribe, payload)
	if err != nil {
		return nil, fmt.Errorf("subscribe: %w", err)
	}
	var status struct {
		Success bool `json:"success"`
	}
	if err := json.Unmarshal(reply, &status); err != nil {
		return nil, fmt.Errorf("decode subscribe reply: %w", err)
	}
	if !status.Success {
		return nil, errors.New("sway rejected the event subscription")
	}
	return &EventStream{r: c.conn}, nil
}

// EventStream yields events from a subscribed connection.
type EventStream struct {
	r io.Reader
}

// NextWorkspace blocks until the next workspace change event arrives.
// Events of other types are skipped.
func (s *EventStream) NextWorkspace() (*WorkspaceEvent, error) {
	for {
		msgType, payload, err := readMessage(s.r)
		if err != nil {
			return nil, fmt.Errorf("read event: %w", err)
		}
		if msgType&eventFlag == 0 || msgType&^eventFlag != eventWorkspace {
			continue
		}
		var event WorkspaceEvent
		if err := json.Unmarshal(payload, &event); err != nil {
			return nil, fmt.Errorf("decode workspace event: %w", err)
		}
		return &event, nil
	}
}
