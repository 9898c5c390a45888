package main

import "github.com/ksym/mikanz/cmd"

func main() {
	cmd.Execute()
}
