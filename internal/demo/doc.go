// Package demo contains small applications built on hashui: a counter and a
// to-do list with filters and inline editing. The CLI, the wasm entrypoint
// and the end-to-end tests run them.
package demo
