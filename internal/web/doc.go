// Package web exposes stylesheet selection over HTTP.
//
//	GET /                  HTML page whose head links the selected stylesheet
//	GET /stylesheet        the link element alone (SSE patch for DataStar)
//	GET /stylesheet.json   the selection as JSON
//	GET /common/*          the stylesheets themselves
//	GET /health/live       liveness probe
//	GET /health/ready      readiness probe
//
// The vendor name and identification string for each request come from
// stylesheet.Inputs, so "?vendor=...&ua=..." selects for an arbitrary
// browser.
package web
