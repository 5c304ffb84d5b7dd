// Package config provides configuration loading and validation for the
// restaurante-api service.
//
// Configuration comes from environment variables, mapped onto
// [StructuredConfig] via caarlos0/env struct tags. The main entry point is
// [GetStructuredConfig], which parses and validates the full configuration
// in one call.
package config
