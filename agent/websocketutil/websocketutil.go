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

// Package websocketutil dials and closes websocket connections to the manager.
package websocketutil

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gorilla/websocket"
	"github.com/xandium/bot-supervisor/agent/log"
)

// closeGracePeriod bounds how long a close frame may take to write.
const closeGracePeriod = time.Second

// IWebsocketUtil is the interface for the websocketutil.
type IWebsocketUtil interface {
	OpenConnection(url string) (*websocket.Conn, error)
	CloseConnection(ws *websocket.Conn) error
}

// WebsocketUtil opens and closes websocket connections with a shared dialer.
type WebsocketUtil struct {
	dialer *websocket.Dialer
	log    log.T
}

// NewWebsocketUtil returns a WebsocketUtil using dialerInput, or a proxy-aware
// dialer with handshakeTimeout when dialerInput is nil.
func NewWebsocketUtil(logger log.T, dialerInput *websocket.Dialer, handshakeTimeout time.Duration) *WebsocketUtil {
	dialer := dialerInput
	if dialer == nil {
		dialer = &websocket.Dialer{
			Proxy:            http.ProxyFromEnvironment,
			HandshakeTimeout: handshakeTimeout,
		}
	}
	return &WebsocketUtil{
		dialer: dialer,
		log:    logger,
	}
}

// OpenConnection dials url and completes the websocket handshake.
func (u *WebsocketUtil) OpenConnection(url string) (*websocket.Conn, error) {
	u.log.Infof("Opening websocket connection to: %s", url)

	conn, resp, err := u.dialer.Dial(url, nil)
	if err != nil {
		if resp != nil {
			err = fmt.Errorf("%v (http status %d)", err, resp.StatusCode)
		}
		u.log.Warnf("Failed to dial websocket: %s", err)
		return nil, err
	}

	u.log.Infof("Successfully opened websocket connection to: %s", url)
	return conn, nil
}

// CloseConnection sends a normal close frame and closes the underlying connection.
func (u *WebsocketUtil) CloseConnection(ws *websocket.Conn) error {
	if ws == nil {
		return errors.New("websocket conn object is nil")
	}

	u.log.Debugf("Closing websocket connection to: %s", ws.RemoteAddr())

	closeFrame := websocket.FormatCloseMessage(websocket.CloseNormalClosure, "")
	if err := ws.WriteControl(websocket.CloseMessage, closeFrame, time.Now().Add(closeGracePeriod)); err != nil {
		u.log.Debugf("Failed to send close frame: %s", err)
	}

	if err := ws.Close(); err != nil {
		u.log.Warnf("Failed to close websocket: %s", err)
		return err
	}

	u.log.Infof("Successfully closed websocket connection to: %s", ws.RemoteAddr())
	return nil
}
