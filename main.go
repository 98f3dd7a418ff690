package main

import "eticket-invoice/cmd"

func main() {
	cmd.Start()
}
