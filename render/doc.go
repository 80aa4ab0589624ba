// Package render turns extracted documentation records into source stubs.
//
// A [schemadoc.Property] becomes an accessor whose body delegates to a
// generic attribute lookup keyed by the original field name, and a
// [sectiondoc.MethodDoc] becomes a function stub. The original documentation
// is attached to every stub as a docstring. Declaration names follow the
// configured [ident.Style].
//
// Property docstrings take one of three shapes depending on how many
// documentation lines the property has:
//
//	@property
//	def id(self):
//	    return self.getattr('id')
//
//	@property
//	def size(self):
//	    """file size in bytes"""
//	    return self.getattr('size')
//
//	@property
//	def preview_url(self):
//	    """
//	    optional: url to the document preview.
//	    Only included in submission endpoints.
//	    """
//	    return self.getattr('preview_url')
//
// Docstring text is escaped so the stub stays valid: backslashes are
// doubled, embedded triple quotes are escaped, and a quote that would touch
// the closing delimiter of an inline docstring is escaped. Each docstring
// line is trimmed, so wrapped HTML paragraphs do not carry their source
// indentation.
//
// Rendering never fails. Missing optional fields only reduce the output.
package render
