package config

// MetricsConfig configures the Prometheus textfile export.
type MetricsConfig struct {
	// TextfilePath, when set, receives the run metrics in the node_exporter
	// textfile collector format.
	TextfilePath string `json:"textfile_path"`
}
