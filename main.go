package main

import "github.com/athletiq/athletiq_backend/cmd"

func main() {
	cmd.Execute()
}
