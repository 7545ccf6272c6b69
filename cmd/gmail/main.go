package main

import (
	"github.com/pixelvide/gmail-go/pkg/root"

	_ "github.com/pixelvide/gmail-go/pkg/console" // Register commands
)

func main() {
	root.Execute()
}
