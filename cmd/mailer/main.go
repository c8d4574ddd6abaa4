package main

import (
	"github.com/pixelvide/laravel-mail/pkg/root"

	_ "github.com/pixelvide/laravel-mail/pkg/console" // Register commands
)

func main() {
	root.SetInfo("mail", "", "")
	root.Execute()
}
