// Package config loads typed configuration from environment variables.
//
// Load parses any struct annotated with `env` tags using
// github.com/caarlos0/env/v11, after reading the optional default .env file
// with github.com/joho/godotenv. Every configuration type is parsed once per
// process and served from a cache afterwards; ResetCache clears it, which is
// mostly useful in tests. LoadEnv reads additional .env files.
//
// Settings holds the knobs of a validator:
//
//	GUARDCHECK_LOG_LEVEL      debug | info | warn | error (default info)
//	GUARDCHECK_LOG_FORMAT     json | text (default text)
//	GUARDCHECK_STRING_VALUE   baseline synthesised for strings (default SomeValue)
//	GUARDCHECK_RULES_PROFILE  optional path to a YAML rules table
//
//	s, err := config.LoadSettings()
//	if err != nil {
//	    return err
//	}
package config
