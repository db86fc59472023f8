package main

import "github.com/vytor/studybuddy/cmd/buddyctl/root"

func main() {
	root.Execute()
}
