package main

import "snowfall/internal/snow"

func main() {
	snow.RunDesktop()
}
