package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunCommand(t *testing.T) {
	page := writeFile(t, "index.html", `<!DOCTYPE html><body><ul></ul></body>`)
	script := writeFile(t, "script.js", `
		var ul = document.lastChild.lastChild.firstChild;
		ul.appendChild(createElement("li")).appendChild(createTextNode("x"));
		console.log(ul.childNodes.length);
		ul.textContent`)

	var out bytes.Buffer
	require.NoError(t, testApp(&out, runCmd).Run([]string{"domtree", "run", "--script", script, page}))
	assert.Equal(t, "1\nx\n", out.String())
}

func TestRunCommand_InlineScripts(t *testing.T) {
	page := writeFile(t, "index.html", `<!DOCTYPE html><body><p>a</p><script>
document.lastChild.lastChild.firstChild.appendChild(createTextNode("b"));
console.log("inline");
</script></body>`)

	var out bytes.Buffer
	require.NoError(t, testApp(&out, runCmd).Run([]string{"domtree", "run", page}))
	assert.Equal(t, "inline\n", out.String())

	out.Reset()
	require.NoError(t, testApp(&out, runCmd).Run([]string{"domtree", "run", "--inline=false", page}))
	assert.Empty(t, out.String())
}
