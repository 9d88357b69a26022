package main

import "construlog/internal/app/server"

func main() {
	server.Run()
}
