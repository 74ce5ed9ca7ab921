package main

import "github.com/gitlabctl/gitlabctl/cmd/root"

func main() {
	root.Execute()
}
