package main

import (
	"flag"
	"log"
	"net"
	"os"
)

func main() {
	fs := flag.NewFlagSet("mock-json-server", flag.ExitOnError)
	addr := fs.String("addr", "0.0.0.0:3030", "socket address to bind (host:port)")
	openapiFile := fs.String("openapi", "", "optional OpenAPI document to seed collections from")

	_ = fs.Parse(os.Args[1:])

	bind, err := resolveBindAddr(*addr)
	if err != nil {
		log.Fatalf("invalid socket address %q: %v", *addr, err)
	}

	startServer(bind, *openapiFile)
}

// resolveBindAddr rejects unparseable host:port values before any
// listener is opened.
func resolveBindAddr(addr string) (string, error) {
	tcp, err := net.ResolveTCPAddr("tcp", addr)
	if err != nil {
		return "", err
	}
	return tcp.String(), nil
}
