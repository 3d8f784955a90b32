// Package config loads sntool settings.
//
// Settings come from three layers, later ones winning: built-in defaults,
// a CUE file validated against the embedded #Config schema, and SNTOOL_*
// environment variables. A config file looks like
//
//	container:          "ReleaseKeys"
//	force_verification: true
//	timeout:            "5m"
//	candidates: versions: ["v10.0A", "v8.1A"]
package config
