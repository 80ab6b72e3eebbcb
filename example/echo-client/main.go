package main

import (
	"log"
	"net"

	cody "github.com/JadKHaddad/cody-go"
	"github.com/JadKHaddad/cody-go/codec"
)

func main() {
	conn, err := net.Dial("tcp", "127.0.0.1:8080")
	if err != nil {
		log.Fatal(err)
	}
	defer conn.Close()

	writer := cody.NewFramedWrite[[]byte](conn, codec.LengthDelimited{})
	reader := cody.NewFramedRead[[]byte](conn, codec.LengthDelimited{})

	message := "Hello, World!"
	if err := writer.WriteFrame([]byte(message)); err != nil {
		log.Fatal(err)
	}
	if err := writer.Flush(); err != nil {
		log.Fatal(err)
	}
	log.Printf("Sent: %s", message)

	frame, err := reader.ReadFrame()
	if err != nil {
		log.Fatal(err)
	}
	log.Printf("Received echo: %s", string(frame))
}
