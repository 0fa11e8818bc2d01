// Package config provides configuration loading for the Askboard service.
//
// Configuration is read from a YAML file, then defaults are applied,
// then environment variable overrides (ASKBOARD_SECTION_FIELD), and the
// final result is validated.
//
//	cfg, err := config.LoadConfigWithEnvOverrides("config.yaml")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// A missing file is not an error: the service runs on defaults plus
// environment overrides, which matches the container deployment where
// everything is injected through the environment.
//
// The Watcher re-reads the file on change (fsnotify, debounced) so the CORS
// origin allow-list can be updated without a restart.
package config
