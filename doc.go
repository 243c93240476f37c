// Package surveyslider renders slider survey trials: one or more range
// sliders with prompts, optional side labels and tick labels, a free-text
// comment box and a submit control gated on slider movement. Submission yields
// a record with the reaction time, the ordered responses and the realized
// question order.
//
// The root package re-exports the common entry points; the pipeline lives in
// pkg/slider (definitions, layout, results), pkg/trial (the per-trial
// controller), pkg/renderers (HTML and terminal output), pkg/server (HTTP
// hosting) and pkg/orchestrator (single-call rendering).
package surveyslider
