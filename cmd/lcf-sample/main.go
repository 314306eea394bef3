// cmd/lcf-sample/main.go
package main

import (
	"lcf/internal/app"
	"lcf/internal/appshell"
)

func main() {
	appshell.Main(app.RunContext)
}
