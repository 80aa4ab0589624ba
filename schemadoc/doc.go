// Package schemadoc recovers documented properties from an annotated
// pseudo-JSON schema block.
//
// API documentation often describes an object with an example that looks
// like JSON but is not: every field is preceded by "//" comment lines that
// document it, and values are placeholders. For example:
//
//	// A file object
//	{
//	  // The ID of the file
//	  "id": 569,
//	  // The MIME type
//	  "content-type": "text/plain",
//	}
//
// [Parse] returns one [Property] per field, in source order, carrying the
// comment lines that precede it. The block is never validated as JSON;
// instead each line is classified by its first significant character:
//
//  1. "{" opens the schema. Only the first one counts; the parser does not
//     track nesting and only top-level fields are expected.
//  2. "//" is a documentation line for the next field. The marker and at
//     most one following space are removed, so "//note" and "// note" both
//     yield "note" rather than cutting a fixed three characters. Comments
//     before the schema opens are discarded.
//  3. A leading double quote declares a field. Its key, up to the `": `
//     separator, becomes the property name, and subsequent comments attach to
//     the following field.
//  4. Anything else (values, closing braces) is ignored.
//
// Parsing never fails. Unrecognized lines are skipped and a field-less
// trailing record is dropped; [ParseReport] exposes counts of what was
// skipped for callers that want diagnostics.
//
// When the block is embedded in an HTML object page, [Extract] returns the
// text of the first pre element.
package schemadoc
