// Package hrml is a minimal server-rendered web framework: endpoints
// return HTML fragments built with pkg/fragment, persisted through
// pkg/store, and the embedded hrml.js client runtime swaps those
// fragments into the page based on data-get/data-post/data-delete
// trigger attributes.
package hrml
