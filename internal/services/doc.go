// Package services holds the application services that sit between the
// transport layer and the analysis pipeline.
//
// AnalysisService owns the full pipeline for one input file: read,
// normalize, analyze, and optionally render the Excel report and flat
// exports. It keeps the latest snapshot so HTTP handlers can serve
// query endpoints without re-reading the input.
//
// HealthService reports process health and build information.
package services
