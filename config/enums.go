package config

// Policy for source nodes the translator does not know.
// ENUM(strict, passthrough)
type UnknownNodePolicy int
