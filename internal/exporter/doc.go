// Package exporter writes analysis results to flat files alongside the
// Excel report.
//
// CSVWriter: core CSV writing with optional UTF-8 BOM for Excel
// compatibility.
//
// TableExporter: one CSV per analysis table (categorías, meses, Pareto,
// matriz de decisión, segmentación BCG, rankings).
//
// JSONExporter: the full result as a single JSON document, useful for
// feeding dashboards or diffing runs.
package exporter
