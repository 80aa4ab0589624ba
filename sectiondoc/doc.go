// Package sectiondoc extracts documented service methods from an HTML page.
//
// The page lists one method per container element beneath a common parent,
// identified by id (by default "Services"). Each container holds, as direct
// children, a title heading whose link names the method and points at its
// canonical documentation, endpoint sub-headings, descriptive paragraphs, and
// optionally a bare "Returns ..." text run followed by nodes describing the
// return value:
//
//	<div id="Services">
//	  <div class="method_details">
//	    <h2 data-subtopic="Announcements">
//	      <a href="announcements.html#method.index">List announcements</a>
//	    </h2>
//	    <h3 class="endpoint">GET /api/v1/announcements</h3>
//	    <div class="scopes"><code>url:GET|/api/v1/announcements</code></div>
//	    <p>Returns the paginated list of announcements.</p>
//	    Returns a list of <a href="#DiscussionTopic">DiscussionTopics</a>
//	  </div>
//	</div>
//
// [Extract] turns each container into a [MethodDoc]. Only direct children are
// considered, so markup nested deeper (example code, table cells) never leaks
// into endpoints or paragraphs. Missing pieces leave the corresponding fields
// empty; a malformed section never affects its siblings.
//
// Three pieces are read from fixed places inside those children:
//
//   - A link in the heading's first span names the implementing code
//     ([MethodDoc.DefinedIn]).
//   - Each code element of a scopes div is split by [ParseScope].
//   - The first table is the request parameter table. Its columns are found
//     by the "param-name", "param-req", "param-type", "param-deprecated" and
//     "param-desc" header classes, falling back to that order by position.
package sectiondoc
