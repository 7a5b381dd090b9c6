// Package config loads the process configuration.
//
// Sources are applied in order, later ones winning:
//
//  1. Default(), the accelerator's register map on its board
//  2. a .env file in the working directory, if present
//  3. the TOML file passed to Load
//  4. FPGAIO_* environment variables
//
// Example file:
//
//	[device]
//	path = "/dev/mem"
//	base = 0xC0020000
//	span = 64
//	simulate = false
//
//	[log]
//	level = "info"      # debug, info, warn, error
//	encoding = "console" # console or json
//
//	[sink]
//	format = "csv"      # csv or sqlite
//	path = "points.csv"
//
// Unknown keys are rejected, as are an empty span and unknown levels,
// encodings and sink formats.
package config
