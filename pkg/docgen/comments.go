package docgen

import (
	"regexp"
	"strings"

	"google.golang.org/protobuf/compiler/protogen"
)

// excludeDirective marks a node (and its subtree) as excluded from the output
// when it appears at the start of the extracted description.
const excludeDirective = "@exclude"

var leadingSpace = regexp.MustCompile(`(?m)^ `)

// Description extracts the documentation text for a declaration from its
// leading and trailing comments.
//
// protoc strips the comment delimiters before handing the text over, so a
// /** ... */ block arrives with a leading '*' and a /// comment with a leading
// '/'. Only blocks carrying one of those markers count as documentation; the
// marker is dropped and a single leading space is removed from every line.
// Plain // comments contribute nothing.
//
// The returned excluded flag reports whether the description started with the
// @exclude directive. With noExclude set the flag is always false, but the
// directive token is stripped from the text either way.
func Description(set protogen.CommentSet, noExclude bool) (string, bool) {
	var b strings.Builder
	for _, c := range []string{string(set.Leading), string(set.Trailing)} {
		if strings.HasPrefix(c, "*") || strings.HasPrefix(c, "/") {
			b.WriteString(leadingSpace.ReplaceAllString(c[1:], ""))
		}
	}

	description := strings.TrimSpace(b.String())
	excluded := false
	if strings.HasPrefix(description, excludeDirective) {
		description = description[len(excludeDirective):]
		excluded = !noExclude
	}
	return description, excluded
}
