//go:build !prod

package config

// DefaultDir returns the directory holding the configuration file and database
// in development builds: the working directory, so the files are easy to inspect.
func DefaultDir() string {
	return "."
}

// IsDevelopment reports whether this is a development build.
func IsDevelopment() bool {
	return true
}
