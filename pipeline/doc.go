// Package pipeline turns documentation pages into stub text.
//
// Each [Input] is routed to one of two extractors, selected by [Source]:
// annotated schema blocks ([schemadoc]) or method section pages
// ([sectiondoc]). The extracted records are then written in the requested
// [Format]: rendered stubs ([render]), a YAML dump of the records, or a JSON
// Schema of the properties.
//
// Use [Config] to bind the generator settings to CLI flags:
//
//	cfg := pipeline.NewConfig()
//	cfg.RegisterFlags(cmd.Flags())
//
//	gen, err := cfg.NewGenerator()
//	out, err := gen.Generate(inputs...)
//
// Extraction never fails on malformed content. Errors are reserved for
// unreadable inputs, invalid options, and pages of the wrong shape, and wrap
// the sentinel errors of this package or of the extractors.
package pipeline
