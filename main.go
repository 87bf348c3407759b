package main

import "github.com/EO-DataHub/eodhp-user-listing/cmd"

func main() {
	cmd.Execute()
}
