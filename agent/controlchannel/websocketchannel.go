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

import (
	"errors"
	"runtime/debug"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/xandium/bot-supervisor/agent/log"
	"github.com/xandium/bot-supervisor/agent/websocketutil"
)

// pingWriteTimeout bounds a single keepalive write.
const pingWriteTimeout = 10 * time.Second

// WebSocketChannel is a single control connection. It is never reopened: once
// closed, the ControlChannel replaces it with a new instance.
type WebSocketChannel struct {
	Id         string
	Url        string
	Connection *websocket.Conn

	log       log.T
	wsUtil    websocketutil.IWebsocketUtil
	events    chan<- Event
	done      chan struct{}
	closeOnce sync.Once
	writeLock sync.Mutex
}

func newWebSocketChannel(logger log.T, wsUtil websocketutil.IWebsocketUtil, id string, url string, events chan<- Event) *WebSocketChannel {
	return &WebSocketChannel{
		Id:     id,
		Url:    url,
		log:    logger,
		wsUtil: wsUtil,
		events: events,
		done:   make(chan struct{}),
	}
}

// Open dials the manager and starts the listener goroutine.
func (c *WebSocketChannel) Open() error {
	ws, err := c.wsUtil.OpenConnection(c.Url)
	if err != nil {
		return err
	}
	c.Connection = ws

	go c.listen()
	return nil
}

// listen delivers frames in the order they arrive and reports the first read
// error as a ChannelClosed event. gorilla returns the same error forever after
// a failed read, so there is nothing to retry.
func (c *WebSocketChannel) listen() {
	defer func() {
		if msg := recover(); msg != nil {
			c.log.Errorf("WebsocketChannel listener run panic: %v", msg)
			c.log.Errorf("%s: %s", msg, debug.Stack())
		}
	}()

	for {
		messageType, rawMessage, err := c.Connection.ReadMessage()
		if err != nil {
			code, reason := closeDetails(err)
			c.emit(Event{Type: ChannelClosed, CloseCode: code, CloseReason: reason, source: c})
			return
		}

		if messageType != websocket.TextMessage && messageType != websocket.BinaryMessage {
			c.log.Warnf("Ignoring websocket message of type %d", messageType)
			continue
		}
		c.log.Tracef("Message %s received.", string(rawMessage))
		if !c.emit(Event{Type: MessageReceived, Message: string(rawMessage), source: c}) {
			return
		}
	}
}

// emit hands ev to the event loop unless the channel was closed meanwhile.
func (c *WebSocketChannel) emit(ev Event) bool {
	select {
	case c.events <- ev:
		return true
	case <-c.done:
		return false
	}
}

// StartPings keeps idle connections alive through proxies. It stops with the channel.
func (c *WebSocketChannel) StartPings(pingInterval time.Duration) {
	if pingInterval <= 0 {
		return
	}
	go func() {
		ticker := time.NewTicker(pingInterval)
		defer ticker.Stop()
		for {
			select {
			case <-c.done:
				return
			case <-ticker.C:
				c.log.Debug("WebsocketChannel: Send ping. Message.")
				err := c.Connection.WriteControl(websocket.PingMessage, []byte("keepalive"), time.Now().Add(pingWriteTimeout))
				if err != nil {
					c.log.Warnf("Error while sending websocket ping: %v", err)
					return
				}
			}
		}
	}()
}

// SendMessage writes one text frame.
func (c *WebSocketChannel) SendMessage(line string) error {
	if c.isClosed() {
		return errors.New("can't send message: connection is closed")
	}
	c.writeLock.Lock()
	defer c.writeLock.Unlock()
	return c.Connection.WriteMessage(websocket.TextMessage, []byte(line))
}

// Close stops the listener and pinger and closes the connection. Events the
// listener had not delivered yet are dropped.
func (c *WebSocketChannel) Close() (err error) {
	c.closeOnce.Do(func() {
		close(c.done)
		if c.Connection != nil {
			err = c.wsUtil.CloseConnection(c.Connection)
		}
	})
	return err
}

func (c *WebSocketChannel) isClosed() bool {
	select {
	case <-c.done:
		return true
	default:
		return false
	}
}

// closeDetails extracts the close code and reason the manager sent, or
// reports an abnormal closure for transport errors.
func closeDetails(err error) (int, string) {
	var closeErr *websocket.CloseError
	if errors.As(err, &closeErr) {
		return closeErr.Code, closeErr.Text
	}
	return websocket.CloseAbnormalClosure, err.Error()
}
