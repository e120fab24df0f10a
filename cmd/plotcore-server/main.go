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

// Command plotcore-server is a minimal demonstration host for the plotcore
// pipeline: an upload endpoint and a websocket session, nothing more.
package main

import (
	"flag"
	"fmt"
	"log"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
)

const defaultPort = 8080

func main() {
	flag.Parse()

	port := defaultPort
	if args := flag.Args(); len(args) > 0 {
		p, err := strconv.Atoi(args[0])
		if err != nil {
			log.Fatalf("invalid port %q: %v", args[0], err)
		}
		port = p
	}

	srv := newServer()
	router := mux.NewRouter()
	router.HandleFunc("/upload", srv.handleUpload).Methods(http.MethodPost)
	router.HandleFunc("/ws", srv.handleWebSocket)

	addr := fmt.Sprintf(":%d", port)
	log.Printf("plotcore-server listening on %s", addr)
	if err := http.ListenAndServe(addr, router); err != nil {
		log.Fatal(err)
	}
}
