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

// Package controlchannel maintains the single websocket connection to the manager.
//
// Connections report what happens to them as Events on one channel. The owner
// of the ControlChannel reads Events() and passes each event back through
// HandleEvent from a single goroutine, so the connection slot and the reconnect
// timer are only ever touched by that goroutine.
package controlchannel

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/twinj/uuid"
	"github.com/xandium/bot-supervisor/agent/backoffconfig"
	"github.com/xandium/bot-supervisor/agent/context"
	"github.com/xandium/bot-supervisor/agent/websocketutil"
)

const eventQueueSize = 100

// ErrChannelInUse is returned by Open while a connection is still held.
var ErrChannelInUse = errors.New("control channel is already open")

// ErrChannelClosed is returned by Open after Close.
var ErrChannelClosed = errors.New("control channel is closed")

// IControlChannel is the connection manager used by the agent.
type IControlChannel interface {
	Open() error
	Events() <-chan Event
	HandleEvent(ev Event) (line string, ok bool)
	SendMessage(line string) error
	IsOpen() bool
	Close() error
}

// ControlChannel owns at most one WebSocketChannel and reconnects after a flat delay.
type ControlChannel struct {
	context      context.T
	wsUtil       websocketutil.IWebsocketUtil
	url          string
	loginLine    string
	pingInterval time.Duration
	backOff      backoff.BackOff

	events chan Event
	stop   chan struct{}

	channel        *WebSocketChannel
	reconnectTimer *time.Timer
	generation     uint64
	closed         bool
	stopOnce       sync.Once
}

// NewControlChannel builds a manager from the context's configuration. Nothing is dialed until Open.
func NewControlChannel(context context.T, wsUtil websocketutil.IWebsocketUtil) *ControlChannel {
	config := context.AppConfig()
	return &ControlChannel{
		context:      context,
		wsUtil:       wsUtil,
		url:          config.Manager.Url,
		loginLine:    LoginLine(config.Credentials.Account, config.Credentials.WorkerAccount, config.Credentials.Secret),
		pingInterval: config.PingInterval(),
		backOff:      backoffconfig.GetConstantBackoff(config.ReconnectDelay()),
		events:       make(chan Event, eventQueueSize),
		stop:         make(chan struct{}),
	}
}

// LoginLine is the first line sent on every new connection.
func LoginLine(account, workerAccount, secret string) string {
	return fmt.Sprintf("login %s %s %s", account, workerAccount, secret)
}

// Events is read by the owner's event loop.
func (c *ControlChannel) Events() <-chan Event {
	return c.events
}

// IsOpen reports whether a connection currently occupies the slot.
func (c *ControlChannel) IsOpen() bool {
	return c.channel != nil
}

// Open dials a new connection and logs in. A failed dial or login schedules a
// reconnect before the error is returned.
func (c *ControlChannel) Open() error {
	log := c.context.Log()
	if c.closed {
		return ErrChannelClosed
	}
	if c.channel != nil {
		return ErrChannelInUse
	}
	c.cancelReconnect()

	uuid.SwitchFormat(uuid.CleanHyphen)
	channelId := uuid.NewV4().String()
	log.Infof("Opening control channel %s to %s", channelId, c.url)

	channel := newWebSocketChannel(log, c.wsUtil, channelId, c.url, c.events)
	if err := channel.Open(); err != nil {
		log.Errorf("Failed to open control channel %s: %v", channelId, err)
		c.scheduleReconnect()
		return err
	}
	c.channel = channel

	if err := channel.SendMessage(c.loginLine); err != nil {
		log.Errorf("Failed to send login on control channel %s: %v", channelId, err)
		c.teardown()
		c.scheduleReconnect()
		return err
	}
	channel.StartPings(c.pingInterval)

	log.Infof("Control channel %s connected", channelId)
	return nil
}

// HandleEvent applies ev to the manager. It returns the inbound line for
// MessageReceived events from the current connection. Events from a
// connection that is no longer current, and reconnect ticks that were
// cancelled, are ignored.
func (c *ControlChannel) HandleEvent(ev Event) (string, bool) {
	log := c.context.Log()
	switch ev.Type {
	case MessageReceived:
		if ev.source == nil || ev.source != c.channel {
			log.Debugf("Ignoring message from stale control channel")
			return "", false
		}
		return ev.Message, true

	case ChannelClosed:
		if ev.source == nil || ev.source != c.channel {
			log.Debugf("Ignoring close of stale control channel")
			return "", false
		}
		log.Warnf("Websocket close: code: %d - reason: %s", ev.CloseCode, ev.CloseReason)
		c.teardown()
		c.scheduleReconnect()

	case ReconnectDue:
		if c.reconnectTimer == nil || ev.generation != c.generation {
			log.Debugf("Ignoring cancelled reconnect")
			return "", false
		}
		c.reconnectTimer = nil
		log.Infof("Reconnecting control channel")
		if err := c.Open(); err != nil && err != ErrChannelInUse {
			log.Debugf("Reconnect attempt failed: %v", err)
		}
	}
	return "", false
}

// SendMessage writes line on the current connection. With no connection the
// line is dropped.
func (c *ControlChannel) SendMessage(line string) error {
	if c.channel == nil {
		c.context.Log().Debugf("No control channel, dropping outbound message")
		return nil
	}
	return c.channel.SendMessage(line)
}

// Close cancels any pending reconnect and closes the current connection. The
// manager cannot be reopened.
func (c *ControlChannel) Close() error {
	c.closed = true
	c.stopOnce.Do(func() { close(c.stop) })
	c.cancelReconnect()
	return c.teardown()
}

// teardown empties the connection slot.
func (c *ControlChannel) teardown() error {
	channel := c.channel
	if channel == nil {
		return nil
	}
	c.channel = nil
	c.context.Log().Debugf("Closing control channel %s", channel.Id)
	return channel.Close()
}

// scheduleReconnect arms the single reconnect timer unless one is pending.
func (c *ControlChannel) scheduleReconnect() {
	if c.closed || c.reconnectTimer != nil {
		return
	}
	delay := c.backOff.NextBackOff()
	if delay == backoff.Stop {
		c.context.Log().Errorf("Reconnect policy gave up, control channel stays closed")
		return
	}

	c.generation++
	generation := c.generation
	c.context.Log().Infof("Reconnecting in %v", delay)
	c.reconnectTimer = time.AfterFunc(delay, func() {
		select {
		case c.events <- Event{Type: ReconnectDue, generation: generation}:
		case <-c.stop:
		}
	})
}

func (c *ControlChannel) cancelReconnect() {
	if c.reconnectTimer == nil {
		return
	}
	c.reconnectTimer.Stop()
	c.reconnectTimer = nil
}
