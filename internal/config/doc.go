// Package config loads hashui project configuration.
//
// Configuration lives in hashui.yaml, hashui.yml or hashui.json in the
// project directory. Every field has a default, so a project without a file
// runs with defaults. HASHUI_* environment variables override file values.
//
// # Configuration File Structure
//
//	name: todo
//	rootSelector: "#app"
//	defaultRoute: /
//	log:
//	  level: info
//	  format: text
//	inspector:
//	  enabled: true
//	  addr: 127.0.0.1:7331
//	metrics:
//	  namespace: hashui
//	tracing:
//	  tracerName: hashui
//
// # Environment
//
//	HASHUI_NAME                HASHUI_ROOT_SELECTOR     HASHUI_DEFAULT_ROUTE
//	HASHUI_LOG_LEVEL           HASHUI_LOG_FORMAT
//	HASHUI_INSPECTOR_ENABLED   HASHUI_INSPECTOR_ADDR
//	HASHUI_METRICS_NAMESPACE   HASHUI_TRACING_TRACER_NAME
//
// # Usage
//
//	cfg, err := config.Load(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	logger := cfg.Log.NewLogger(os.Stderr)
package config
