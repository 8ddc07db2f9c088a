/*
Package xmlmap converts between a restricted XML dialect and an
insertion-ordered, JSON-like value model, in both directions. The API
mirrors the standard encoding packages: Parse and Marshal for byte
slices, Decoder and Encoder for streams.

Parsing turns a document into a *Map, an ordered mapping of tag names
to values. A value is a string, a float64 when the text looks numeric,
a nested *Map, or a []any when a tag repeats among its siblings:

	var data = []byte(`
	<server>
	  <host>example.net</host>
	  <port>8080</port>
	  <replica>one</replica>
	  <replica>two</replica>
	</server>`)

	doc, err := xmlmap.Parse(data)
	if err != nil {
		// handle error
	}
	server, _ := doc.Get("server")
	port, _ := server.(*xmlmap.Map).Get("port") // float64 8080

Marshal is the mirror operation: it walks a *Map in insertion order
and writes indented XML, so a parsed document serializes back to an
equivalent one:

	out, err := xmlmap.Marshal(doc, xmlmap.Indent("\t"))

The dialect is deliberately small. Comments (<!-- -->) and processing
instructions (<? ?>) are stripped before parsing. CDATA sections are
copied verbatim. Attributes are not interpreted, text mixed with child
elements is not supported, and entities are never decoded or encoded.
Parse failures carry the byte offset of the offending construct; see
ParseError.

A Map also knows how to marshal itself to and from JSON and YAML with
its key order intact, which makes the package usable as a bridge
between XML documents and tooling that speaks those formats.
*/
package xmlmap
