package entities

// ExpandEnv exports expandEnv for testing.
var ExpandEnv = expandEnv //nolint:gochecknoglobals // test export

// ReadSecretFile exports readSecretFile for testing.
var ReadSecretFile = readSecretFile //nolint:gochecknoglobals // test export

// Validate exports validate for testing.
var Validate = validate //nolint:gochecknoglobals // test export
