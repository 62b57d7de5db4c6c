// Package fragment builds server-rendered HTML fragments with declarative
// trigger attributes (data-get/data-post/data-delete, data-target,
// data-swap) that the hrml.js client runtime translates into fetch calls
// and DOM swaps.
//
// A Builder accumulates elements in call order and joins them on Build.
// Text content and attribute values are HTML-escaped; Raw and the content
// argument of Div are the designated seams for embedding markup produced by
// nested builders.
package fragment
