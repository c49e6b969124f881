// cmd/pangfa/main.go
package main

import (
	"pangfa/internal/app"
	"pangfa/internal/appshell"
)

func main() { appshell.Main(app.RunContext) }
