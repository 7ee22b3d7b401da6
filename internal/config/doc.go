// Package config loads the dashboard server configuration.
//
// Values come from, in increasing precedence: built-in defaults, an optional
// YAML file, and DASHBOARD_* environment variables. Nested keys are separated
// by a double underscore in variable names:
//
//	DASHBOARD_SERVER__ADDR=:9090
//	DASHBOARD_SESSION__IDLE_TIMEOUT=5m
//
// # Configuration File Structure
//
//	server:
//	  addr: ":8080"
//	  allowed_origins: ["https://admin.spearit.example"]
//	session:
//	  idle_timeout: 10m
//	toast:
//	  limit: 3
//	  lifetime: 4s
//	log:
//	  level: info
//	  format: text
//	metrics:
//	  enabled: true
//
// # Usage
//
//	cfg, err := config.Load("dashboard.yaml")
//	if err != nil {
//	    return err
//	}
//	logger := cfg.Log.Logger(os.Stderr)
package config
