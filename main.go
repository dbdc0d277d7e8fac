package main

import "github.com/pibulus/cosmic-horoscope-sub001/cmd"

func main() {
	cmd.Execute()
}
