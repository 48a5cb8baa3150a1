package dom_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/gowade/dom"
	"github.com/gowade/dom/gqdom"
)

const page = `<html><head><title>fixture</title></head><body>
<div id="main" class="box main">
	<p class="box">one</p>
	<p>two</p>
	<span id="note">three</span>
</div>
</body></html>`

// newPage parses the fixture and routes the package diagnostics to an
// observer so tests can assert on warnings.
func newPage(t *testing.T) (*gqdom.Document, *observer.ObservedLogs) {
	core, logs := observer.New(zap.WarnLevel)
	dom.SetLogger(zap.New(core))
	t.Cleanup(func() { dom.SetLogger(nil) })

	return gqdom.ParseString(page), logs
}

func TestByID(t *testing.T) {
	d, logs := newPage(t)

	el := dom.ByID(d, "main")
	require.NotNil(t, el)
	require.Equal(t, "div", el.TagName())
	require.Equal(t, 0, logs.Len())
}

func TestByIDMissing(t *testing.T) {
	d, logs := newPage(t)

	var el dom.Element
	require.NotPanics(t, func() { el = dom.ByID(d, "nope") })
	require.Nil(t, el)
	require.Equal(t, 1, logs.Len())
}

func TestByClass(t *testing.T) {
	d, _ := newPage(t)

	els := dom.ByClass(d, "box")
	require.Len(t, els, 2)
	// Document order: the container first, then the paragraph.
	require.Equal(t, "div", els[0].TagName())
	require.Equal(t, "p", els[1].TagName())
}

func TestByClassNoMatchIsEmptyNotNil(t *testing.T) {
	d, logs := newPage(t)

	els := dom.ByClass(d, "ghost")
	require.NotNil(t, els)
	require.Empty(t, els)
	require.Equal(t, 0, logs.Len())
}

func TestByTag(t *testing.T) {
	d, _ := newPage(t)

	require.Len(t, dom.ByTag(d, "p"), 2)
	require.Empty(t, dom.ByTag(d, "table"))
}

func TestQuery(t *testing.T) {
	d, logs := newPage(t)

	el := dom.Query(d, "#main p")
	require.NotNil(t, el)
	require.Equal(t, "one", dom.Text(el))
	require.Equal(t, 0, logs.Len())

	require.Nil(t, dom.Query(d, "#main table"))
	require.Equal(t, 1, logs.Len())
}

func TestQueryFrom(t *testing.T) {
	d, logs := newPage(t)

	scope := dom.ByID(d, "main")
	require.NotNil(t, scope)

	el := dom.QueryFrom(scope, "span")
	require.NotNil(t, el)
	require.Equal(t, "three", dom.Text(el))

	require.Nil(t, dom.QueryFrom(scope, "em"))
	require.Equal(t, 1, logs.Len())
}

func TestQueryAllIsSnapshot(t *testing.T) {
	d, _ := newPage(t)

	before := dom.QueryAll(d, "p")
	require.Len(t, before, 2)

	parent := dom.ByID(d, "main")
	require.NoError(t, dom.Append(parent, dom.Create(d, "p", dom.CreateOptions{})))

	// The earlier result must not grow; a fresh query sees the change.
	require.Len(t, before, 2)
	require.Len(t, dom.QueryAll(d, "p"), 3)
}

func TestQueryAllFrom(t *testing.T) {
	d, _ := newPage(t)

	scope := dom.ByID(d, "main")
	require.Len(t, dom.QueryAllFrom(scope, "p"), 2)
	require.NotNil(t, dom.QueryAllFrom(scope, "table"))
	require.Empty(t, dom.QueryAllFrom(scope, "table"))
}
