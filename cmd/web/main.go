package main

import "recruittrack/internal/app"

func main() {
	app.Run()
}
