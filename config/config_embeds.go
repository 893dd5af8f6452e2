package config

import _ "embed"

//go:embed .env.example
var EnvExample string
