package config

import (
	"strings"

	"github.com/spf13/viper"
)

// EnvPrefix is the prefix of every environment override (NETRES_FAILURE_CASCADETHRESHOLD, ...).
const EnvPrefix = "NETRES"

// Override keys, in viper's dotted form.
const (
	KeyCascadeThreshold      = "failure.cascadeThreshold"
	KeyMaxCascadeRounds      = "failure.maxCascadeRounds"
	KeyNominalReliability    = "failure.nominalReliability"
	KeyVulnerableReliability = "failure.vulnerableReliability"
	KeyIsolateFailed         = "failure.isolateFailed"
	KeyVerbosity             = "logging.verbosity"
	KeyFormat                = "logging.format"
	KeyMetricsEnabled        = "metrics.enabled"
	KeyMetricsNamespace      = "metrics.namespace"
)

// NewViper returns a viper instance that reads NETRES_* environment variables,
// with dots in keys mapped to underscores.
func NewViper() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	return v
}

// ApplyOverrides copies every key set in v (explicitly, from the
// environment, or from a bound flag) onto cfg and re-validates it.
// Scenario content cannot be overridden.
func ApplyOverrides(cfg *Config, v *viper.Viper) error {
	if v.IsSet(KeyCascadeThreshold) {
		cfg.Failure.CascadeThreshold = v.GetFloat64(KeyCascadeThreshold)
	}
	if v.IsSet(KeyMaxCascadeRounds) {
		cfg.Failure.MaxCascadeRounds = v.GetInt(KeyMaxCascadeRounds)
	}
	if v.IsSet(KeyNominalReliability) {
		cfg.Failure.NominalReliability = v.GetFloat64(KeyNominalReliability)
	}
	if v.IsSet(KeyVulnerableReliability) {
		cfg.Failure.VulnerableReliability = v.GetFloat64(KeyVulnerableReliability)
	}
	if v.IsSet(KeyIsolateFailed) {
		cfg.Failure.IsolateFailed = v.GetBool(KeyIsolateFailed)
	}
	if v.IsSet(KeyVerbosity) {
		cfg.Logging.Verbosity = v.GetInt(KeyVerbosity)
	}
	if v.IsSet(KeyFormat) {
		cfg.Logging.Format = v.GetString(KeyFormat)
	}
	if v.IsSet(KeyMetricsEnabled) {
		cfg.Metrics.Enabled = v.GetBool(KeyMetricsEnabled)
	}
	if v.IsSet(KeyMetricsNamespace) {
		cfg.Metrics.Namespace = v.GetString(KeyMetricsNamespace)
	}

	return cfg.Validate()
}
