package main

import (
	"fittrack.dev/backend/cmd/app"
)

func main() {
	app.Run()
}
