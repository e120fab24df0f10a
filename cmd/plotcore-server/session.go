// Copyright 2025 plotcore Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"encoding/base64"
	"encoding/json"
	"io"
	"log"
	"net/http"
	"strings"

	"github.com/gorilla/websocket"
)

// server holds no mutable state of its own: every request is decoded,
// screened, and ordered independently, matching spec §6's "no persistent
// state" requirement.
type server struct {
	upgrader websocket.Upgrader
}

func newServer() *server {
	return &server{upgrader: websocket.Upgrader{
		CheckOrigin: func(r *http.Request) bool { return true },
	}}
}

// handleUpload serves POST /upload: multipart field "image", run through
// the screening+tour pipeline, responding with the waypoints JSON shape
// spec §6 names.
func (s *server) handleUpload(w http.ResponseWriter, r *http.Request) {
	file, _, err := r.FormFile("image")
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	result, err := runPipeline(data)
	if err != nil {
		writeError(w, statusFor(err), err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("encode response: %v", err)
	}
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, map[string]interface{}{
		"success": false,
		"error":   err.Error(),
	})
}

// wsMessage is the tagged envelope for every message exchanged over /ws, in
// either direction.
type wsMessage struct {
	Type      string `json:"type"`
	Data      string `json:"data,omitempty"`
	Success   bool   `json:"success,omitempty"`
	Waypoints int    `json:"waypoints,omitempty"`
	Path      *pathResult `json:"path,omitempty"`
	Error     string `json:"error,omitempty"`
}

const (
	msgDrawingStroke = "DrawingStroke"
	msgDrawingEnd    = "DrawingEnd"
	msgDrawingClear  = "DrawingClear"
	msgImageSubmit   = "ImageSubmit"
	msgDrawingAck    = "DrawingAck"
	msgAck           = "ack"
)

// handleWebSocket serves GET /ws. DrawingStroke/DrawingEnd/DrawingClear are
// freehand-sketch events the collaborating UI emits while the user draws;
// this server only needs to acknowledge them. ImageSubmit carries the
// finished raster (as a base64 data URL) and triggers the same pipeline as
// the HTTP upload handler.
func (s *server) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("websocket upgrade: %v", err)
		return
	}
	defer conn.Close()

	for {
		var msg wsMessage
		if err := conn.ReadJSON(&msg); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				log.Printf("websocket read: %v", err)
			}
			return
		}

		ack := s.handleMessage(msg)
		if err := conn.WriteJSON(ack); err != nil {
			log.Printf("websocket write: %v", err)
			return
		}
	}
}

func (s *server) handleMessage(msg wsMessage) wsMessage {
	switch msg.Type {
	case msgImageSubmit:
		data, err := decodeDataURL(msg.Data)
		if err != nil {
			return wsMessage{Type: msgAck, Success: false, Error: err.Error()}
		}
		result, err := runPipeline(data)
		if err != nil {
			return wsMessage{Type: msgAck, Success: false, Error: err.Error()}
		}
		return wsMessage{Type: msgAck, Success: true, Waypoints: result.Waypoints, Path: &result.Path}

	case msgDrawingStroke, msgDrawingEnd, msgDrawingClear:
		return wsMessage{Type: msgDrawingAck, Success: true}

	default:
		return wsMessage{Type: msgAck, Success: false, Error: "unrecognized message type: " + msg.Type}
	}
}

// decodeDataURL strips an optional "data:...;base64," prefix before
// base64-decoding the payload.
func decodeDataURL(s string) ([]byte, error) {
	if idx := strings.Index(s, ";base64,"); idx >= 0 {
		s = s[idx+len(";base64,"):]
	}
	return base64.StdEncoding.DecodeString(s)
}
