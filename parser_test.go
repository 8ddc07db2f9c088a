package xmlmap

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func testParser(s string) *parser {
	return &parser{text: []byte(s), maxDepth: defaultMaxDepth}
}

func TestParseElement_Offsets(t *testing.T) {
	p := testParser("<a>1</a><b>2</b>")

	el, err := p.parseElement(0, 1)
	require.NoError(t, err)
	require.Equal(t, "a", el.tag)
	require.Equal(t, 8, el.next)
	require.True(t, el.hasText)
	require.Equal(t, "1", el.text)

	el, err = p.parseElement(el.next, 1)
	require.NoError(t, err)
	require.Equal(t, "b", el.tag)
	require.Equal(t, 16, el.next)
}

func TestParseElement_SkipsLeadingText(t *testing.T) {
	p := testParser("  \n<a>1</a>")
	el, err := p.parseElement(0, 1)
	require.NoError(t, err)
	require.Equal(t, "a", el.tag)
	require.Equal(t, len(p.text), el.next)
}

func TestParseElement_SelfClosing(t *testing.T) {
	p := testParser("<a/><b />")

	el, err := p.parseElement(0, 1)
	require.NoError(t, err)
	require.Equal(t, "a", el.tag)
	require.False(t, el.hasText)
	require.Equal(t, 0, el.props.Len())
	require.Equal(t, 4, el.next)

	el, err = p.parseElement(el.next, 1)
	require.NoError(t, err)
	require.Equal(t, "b", el.tag)
	require.Equal(t, 9, el.next)
}

func TestParseElement_NestedSameTag(t *testing.T) {
	// The inner </a> must close the inner element, not the outer one.
	p := testParser("<a><a>1</a></a>")
	el, err := p.parseElement(0, 1)
	require.NoError(t, err)
	require.Equal(t, "a", el.tag)
	require.Equal(t, 15, el.next)

	inner, ok := el.props.Get("a")
	require.True(t, ok)
	require.Equal(t, 1.0, inner)
}

func TestParseElement_CDataHidesClosingMarker(t *testing.T) {
	// The first "</a>" in the text sits inside the CDATA payload; the
	// element's real boundary comes after it.
	p := testParser("<a><![CDATA[</a>]]></a>")
	el, err := p.parseElement(0, 1)
	require.NoError(t, err)
	require.True(t, el.hasText)
	require.Equal(t, "</a>", el.text)
	require.Equal(t, len(p.text), el.next)
}

func TestParseElement_ChildrenBeatText(t *testing.T) {
	p := testParser("<a>pre<b>1</b>post</a>")
	el, err := p.parseElement(0, 1)
	require.NoError(t, err)
	require.False(t, el.hasText)
	v, ok := el.props.Get("b")
	require.True(t, ok)
	require.Equal(t, 1.0, v)
}

func TestElement_Value(t *testing.T) {
	el := element{text: "42", hasText: true}
	require.Equal(t, 42.0, el.value())

	el = element{text: "plain", hasText: true}
	require.Equal(t, "plain", el.value())

	m := NewMap()
	el = element{props: m}
	require.Same(t, m, el.value())
}

func TestParseDocument_StopsAtTrailingWhitespace(t *testing.T) {
	p := testParser("<a>1</a>\n\t ")
	doc, err := p.parseDocument()
	require.NoError(t, err)
	require.Equal(t, []string{"a"}, doc.Keys())
}

func TestParseDocument_DepthLimit(t *testing.T) {
	p := &parser{text: []byte("<a><b>1</b></a>"), maxDepth: 1}
	_, err := p.parseDocument()
	require.ErrorIs(t, err, ErrMaxDepth)

	var pe *ParseError
	require.ErrorAs(t, err, &pe)
	require.Equal(t, 3, pe.Offset)
}
