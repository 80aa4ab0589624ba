// Package ident converts documentation labels into declaration names.
//
// Two inputs are supported: property labels from a schema block (see
// [Label]), which may contain hyphens, and human-readable method titles (see
// [Title]), which may contain spaces, slashes, and punctuation. Both produce
// an identifier in one of the supported [Style] conventions:
//
//	Label("content-type", StyleSnake)           // content_type
//	Label("content-type", StyleLowerCamel)      // contentType
//	Title("List users (beta)", StyleSnake)      // list_users_beta
//	Title("Get a/b settings", StyleLowerCamel)  // getABSettings
//
// Each hyphen becomes one underscore and existing underscores are kept, so
// "a--b" becomes "a__b" and "__init__" is unchanged in snake style. Only the
// snake style lowercases the label. The lowerCamel style changes first runes
// only, which keeps inner capitals:
//
//	Label("HTML-parser", StyleLowerCamel)       // hTMLParser
//
// Normalization is deterministic and idempotent: applying the same style to
// its own output returns the output unchanged. Identifiers are not checked
// for legality in any target language.
package ident
