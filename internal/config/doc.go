// Package config holds the generator's merged configuration model and the
// optional HCL settings file loader.
package config
