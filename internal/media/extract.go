package media

import "regexp"

// Ref identifies one externally hosted media object embedded in a post body.
type Ref struct {
	PublicID     string
	ResourceType string
}

// cloudinaryURL matches the delivery URL shape the upload API returns:
// https://res.cloudinary.com/<cloud>/<type>/upload/<version>/<public_id>.<ext>
var cloudinaryURL = regexp.MustCompile(`https?://res\.cloudinary\.com/[^/\s"'<>]+/(image|video)/upload/(?:[^/\s"'<>]+/)*([^/\s"'<>.?#]+)\.[A-Za-z0-9]+`)

// ExtractRefs pulls every media reference out of a post body. The public ID
// is the final URL path segment minus its extension.
func ExtractRefs(body string) []Ref {
	matches := cloudinaryURL.FindAllStringSubmatch(body, -1)
	refs := make([]Ref, 0, len(matches))
	seen := make(map[Ref]struct{}, len(matches))
	for _, m := range matches {
		ref := Ref{PublicID: m[2], ResourceType: m[1]}
		if _, dup := seen[ref]; dup {
			continue
		}
		seen[ref] = struct{}{}
		refs = append(refs, ref)
	}
	return refs
}
