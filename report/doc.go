// Package report renders sweep curves for people and other tools.
//
// Outputs:
//   - SavePlot / NewPlot — log–log error chart (gonum/plot), one line with
//     markers per method; the file format follows the path extension.
//   - WriteCSV           — one row per point: method,resolution,used,estimate,abs_error.
//   - WriteYAML          — a Summary: run id, problem, exact value, digits,
//     per-method slope and best point, plus the raw points.
//   - Table              — a lipgloss-rendered terminal table.
//
// Points whose error is exactly zero have no place on a logarithmic axis and
// are left out of charts; CSV, YAML and Table keep them.
//
// Options.UseEffective plots Point.Used instead of Point.Resolution, which
// makes the odd-Simpson bump visible on the x axis.
package report
