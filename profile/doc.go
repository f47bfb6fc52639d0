// Package profile loads a machine/material profile from YAML into a
// planner.Settings value and a pathcfg.Registry of named path configs.
// Top-level settings fields may be overridden by LAYERPLAN_-prefixed
// environment variables, read via viper; the structural parse itself is
// plain gopkg.in/yaml.v3 unmarshaling.
package profile
