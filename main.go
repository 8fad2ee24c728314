package main

import "github.com/devenderkumar212003/cpu-scheduler/cmd"

func main() {
	cmd.Execute()
}
