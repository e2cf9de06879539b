package main

import "github.com/munichmade/resolvconf/cmd/resolvconf/cmd"

func main() {
	cmd.Execute()
}
