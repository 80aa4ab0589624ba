package sectiondoc

// MethodDoc is one documented service method.
type MethodDoc struct {
	// Title is the display name of the method.
	Title string `json:"title" yaml:"title"`
	// Identifier is the function name derived from Title.
	Identifier string `json:"identifier" yaml:"identifier"`
	// Subtopic is the resource group the method belongs to, if given.
	Subtopic string `json:"subtopic,omitempty" yaml:"subtopic,omitempty"`
	// Endpoints are endpoint signatures, such as "GET /api/v1/users/:id".
	Endpoints []string `json:"endpoints,omitempty" yaml:"endpoints,omitempty"`
	// Scopes are the OAuth scopes of the method.
	Scopes []Scope `json:"scopes,omitempty" yaml:"scopes,omitempty"`
	// Parameters are the rows of the request parameter table.
	Parameters []Parameter `json:"parameters,omitempty" yaml:"parameters,omitempty"`
	// DefinedIn links to the code that implements the method, if given.
	DefinedIn *Link `json:"defined_in,omitempty" yaml:"defined_in,omitempty"`
	// Paragraphs are the description blocks, in document order.
	Paragraphs []string `json:"paragraphs,omitempty" yaml:"paragraphs,omitempty"`
	// Returns describes the return value, without the leading "Returns ".
	Returns string `json:"returns,omitempty" yaml:"returns,omitempty"`
	// SourceRef is the canonical documentation URL of the method.
	SourceRef string `json:"source_ref,omitempty" yaml:"source_ref,omitempty"`
	// Beta is set when the method is marked as a beta feature.
	Beta bool `json:"beta,omitempty" yaml:"beta,omitempty"`
	// Paginated is set when the description mentions pagination.
	Paginated bool `json:"paginated,omitempty" yaml:"paginated,omitempty"`
}

// Scope is an OAuth scope string such as "url:GET|/api/v1/files/:id",
// split into its parts.
type Scope struct {
	// Method is the HTTP method, for example "GET".
	Method string `json:"method,omitempty" yaml:"method,omitempty"`
	// URL is the scope URL with each ":key" path segment written as "{key}".
	// It holds the unparsed scope string when the scope is malformed.
	URL string `json:"url" yaml:"url"`
	// Keys are the path parameter names, in path order.
	Keys []string `json:"keys,omitempty" yaml:"keys,omitempty"`
}

// Parameter is one row of a request parameter table.
type Parameter struct {
	Name        string `json:"name"                  yaml:"name"`
	Type        string `json:"type,omitempty"        yaml:"type,omitempty"`
	Required    bool   `json:"required,omitempty"    yaml:"required,omitempty"`
	Deprecated  string `json:"deprecated,omitempty"  yaml:"deprecated,omitempty"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
}

// Link is the text and target of an anchor.
type Link struct {
	Text string `json:"text" yaml:"text"`
	Href string `json:"href" yaml:"href"`
}
