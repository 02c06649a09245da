// Package config provides configuration management for the bank assistant.
//
// Configuration is read from an optional .env file in the working directory
// and then from environment variables, and validated on startup. All options
// except LLM_API_KEY have defaults suitable for local development.
//
// Example usage:
//
//	cfg, err := config.Load()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg)
package config
