package main

import (
	"errors"
	"io"
	"log"
	"net"

	cody "github.com/JadKHaddad/cody-go"
	"github.com/JadKHaddad/cody-go/codec"
)

func main() {
	listener, err := net.Listen("tcp", "127.0.0.1:8080")
	if err != nil {
		log.Fatal(err)
	}

	log.Println("Echo server started on 127.0.0.1:8080")
	conn, err := listener.Accept()
	if err != nil {
		log.Fatal(err)
	}
	defer conn.Close()

	reader := cody.NewFramedRead[[]byte](conn, codec.LengthDelimited{})
	writer := cody.NewFramedWrite[[]byte](conn, codec.LengthDelimited{})

	for {
		frame, err := reader.ReadFrame()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			log.Fatal(err)
		}

		log.Printf("Received: %s", string(frame))
		if err := writer.WriteFrame(frame); err != nil {
			log.Fatal(err)
		}
		if err := writer.Flush(); err != nil {
			log.Fatal(err)
		}
		log.Printf("Sent: %s", string(frame))
	}
}
