// Package config provides configuration management for rgbhsl.
//
// Configuration is loaded and merged in the following order, later layers
// overriding earlier ones:
//
//  1. Default configuration (GetDefaultConfig)
//  2. User configuration (~/.config/rgbhsl/config.yaml)
//  3. Project configuration (./.rgbhsl/config.yaml)
//
// Example:
//
//	globalSettings:
//	  logLevel: debug
//	tester:
//	  defaultBrightness: 200
//	  hueUnit: degrees   # or "sextant"
//	  precision: 3
//	server:
//	  transport: sse     # or "stdio"
//	  host: localhost
//	  port: 8090
//
// Zero values in an overlay keep the value from the layer below.
package config
