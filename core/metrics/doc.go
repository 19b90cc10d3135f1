// Package metrics defines the recorder contract used to observe generated
// rotations. The Prometheus implementation lives in infra/metrics and can
// export its registry in the node_exporter textfile format, which suits a
// command that exits right after rendering.
package metrics
