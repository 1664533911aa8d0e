// Package files discovers sales export files on disk. The analyzer
// binary uses it to scan the input directory for workbooks and CSV
// exports.
package files
