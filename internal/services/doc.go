// Package services defines shared utilities consumed by the ingest
// pipeline stages: context annotation for structured logs and the error
// taxonomy that separates fatal document rejections from per-record
// anomalies.
package services
