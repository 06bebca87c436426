package main

import "github.com/riradoro03/sports-insights-hub/cmd"

func main() {
	cmd.Execute()
}
