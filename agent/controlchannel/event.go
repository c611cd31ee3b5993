// Copyright 2026 Amazon.com, Inc. or its affiliates. All Rights Reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License"). You may not
// use this file except in compliance with the License. A copy of the
// License is located at
//
// http://aws.amazon.com/apache2.0/
//
// or in the "license" file accompanying this file. This file is distributed
// on an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND,
// either express or implied. See the License for the specific language governing
// permissions and limitations under the License.

package controlchannel

// EventType identifies what happened on the control connection.
type EventType int

const (
	// MessageReceived carries one inbound line.
	MessageReceived EventType = iota
	// ChannelClosed is emitted once when a connection closes or fails.
	ChannelClosed
	// ReconnectDue fires when the reconnect delay has elapsed.
	ReconnectDue
)

func (t EventType) String() string {
	switch t {
	case MessageReceived:
		return "MessageReceived"
	case ChannelClosed:
		return "ChannelClosed"
	case ReconnectDue:
		return "ReconnectDue"
	}
	return "Unknown"
}

// Event is produced by connection and timer goroutines and consumed by the
// agent's event loop through ControlChannel.HandleEvent.
type Event struct {
	Type        EventType
	Message     string
	CloseCode   int
	CloseReason string

	// source is the connection that emitted the event; nil for ReconnectDue.
	source *WebSocketChannel
	// generation identifies the reconnect timer that emitted a ReconnectDue.
	generation uint64
}
