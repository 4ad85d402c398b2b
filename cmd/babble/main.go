package main

import (
	"fmt"
	"os"

	"pkt.systems/babble"
)

func main() {
	if err := babble.Run(babble.Request{Writer: os.Stdout}); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
