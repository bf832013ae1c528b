package dercodec

/*
locate.go implements [Locate]: finding the byte span of one named
element inside an already-encoded DER buffer. It decodes into a private
clone of the schema, reusing decodeNode's own traversal rather than
duplicating it, and drives that decode with a traceFunc that records
the span of the one path it's watching for and discards everything else.
*/

/*
Locate decodes data against schema and reports the start (inclusive)
and end (exclusive) byte offsets of the element named by the dotted
path (e.g. "sequence.field2"), without mutating schema's Value/Flags
fields for any node the caller doesn't otherwise decode.

schema is cloned internally, so the caller's tree is left untouched;
Locate is safe to call concurrently against the same schema from
multiple goroutines for that reason.
*/
func Locate(schema *Node, data []byte, path string) (start, end int, err error) {
	if schema == nil {
		return 0, 0, newCodecErr(GenericError, nil, "nil schema")
	}

	work := deepClone(schema)
	found := false

	trace := func(n *Node, nodePath string, s, e int) {
		if found {
			return
		}
		if nodePath == path {
			start, end = s, e
			found = true
		}
	}

	if _, err = decodeNode(work, data, 0, "", trace); err != nil {
		if !found {
			return 0, 0, err
		}
	}

	if !found {
		return 0, 0, newCodecErr(ElementNotFound, nil, "path not present in decoded structure: "+path)
	}
	return start, end, nil
}
