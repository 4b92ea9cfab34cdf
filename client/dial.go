// Copyright 2018 The CubeFS Authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or
// implied. See the License for the specific language governing
// permissions and limitations under the License.

package client

import (
	"fmt"
	"io"
	"net"
	"time"
)

// Dialer sends one command to the arena server and returns its response
// (spec §4.3: "one command per TCP connection"). It is the seam client
// tests replace with a fake (client/mocks), grounded on the teacher's
// golang/mock-based fakes (blobstore/access/controller_mock_test.go).
type Dialer interface {
	SendRequest(command string) (string, error)
}

// tcpDialer is the production Dialer: dial, write, read, close — exactly
// MPointer::sendRequest's shape (original_source/MPointersClient/Mpointer.h).
type tcpDialer struct {
	addr    string
	timeout time.Duration
}

func newTCPDialer(addr string) *tcpDialer {
	return &tcpDialer{addr: addr, timeout: 5 * time.Second}
}

func (d *tcpDialer) SendRequest(command string) (string, error) {
	conn, err := net.DialTimeout("tcp", d.addr, d.timeout)
	if err != nil {
		return "", fmt.Errorf("client: dial %s: %w", d.addr, err)
	}
	defer conn.Close()

	_ = conn.SetDeadline(time.Now().Add(d.timeout))

	if _, err := conn.Write([]byte(command)); err != nil {
		return "", fmt.Errorf("client: send %q: %w", command, err)
	}

	buf, err := io.ReadAll(conn)
	if err != nil {
		return "", fmt.Errorf("client: recv: %w", err)
	}
	return string(buf), nil
}

// defaultDialer is the package-level connection target, set by Init,
// mirroring MPointer<T>::Init(ip, port)'s static serverIP/serverPort.
var defaultDialer Dialer

// Init configures the server address every subsequently constructed Handle
// talks to (spec §4.4: handles carry only an id, so the dial target lives
// at package scope, same as the original's static members).
func Init(addr string) {
	defaultDialer = newTCPDialer(addr)
}

func init() {
	Init("127.0.0.1:8080")
}

// SetDialer overrides the package-level Dialer, used by tests to inject a
// mock in place of a real socket.
func SetDialer(d Dialer) {
	defaultDialer = d
}

// SendRaw issues a single protocol command verbatim and returns the
// server's response, for callers that operate on the wire grammar directly
// instead of through a Handle[T] (spec §4.5: the operator CLI).
func SendRaw(command string) (string, error) {
	return defaultDialer.SendRequest(command)
}
