//go:build js && wasm

// Command hashui-wasm runs the to-do demo in a browser page that contains
// an element with id "app".
package main

import (
	"log/slog"
	"os"

	"github.com/vango-dev/hashui/internal/demo"
	"github.com/vango-dev/hashui/internal/errors"
	"github.com/vango-dev/hashui/pkg/app"
	"github.com/vango-dev/hashui/pkg/dom/jsdom"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	doc := jsdom.New(jsdom.WithLogger(logger))

	a := app.New("#app", app.WithHost(doc), app.WithLogger(logger))
	if _, err := demo.NewTodoList(a); err != nil {
		errors.PrintError(os.Stderr, err)
		return
	}
	if err := a.Initialize(); err != nil {
		errors.PrintError(os.Stderr, err)
		return
	}

	// Event callbacks need the program to stay alive.
	select {}
}
