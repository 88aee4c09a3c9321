package git

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleDiff = `diff --git a/src/App.jsx b/src/App.jsx
index 111..222 100644
--- a/src/App.jsx
+++ b/src/App.jsx
@@ -10,0 +11,2 @@ function App() {
+  const x = 1;
+  const y = 2;
@@ -30 +33 @@ function App() {
-  old();
+  renamed();
diff --git a/docs/readme.md b/docs/readme.md
index 333..444 100644
--- a/docs/readme.md
+++ b/docs/readme.md
@@ -1 +1 @@
-old title
+new title
diff --git a/src/gone.js b/src/gone.js
@@ -5,3 +5,0 @@
-a
-b
-c
`

func TestParseDiff(t *testing.T) {
	changes, err := parseDiff([]byte(sampleDiff))
	require.NoError(t, err)
	require.Len(t, changes, 3)

	t.Run("Added and modified lines", func(t *testing.T) {
		app := changes[0]
		assert.Equal(t, "src/App.jsx", app.Path)
		assert.Equal(t, []int{11, 12, 33}, app.ChangedLines)
	})

	t.Run("Pure deletion records no lines", func(t *testing.T) {
		gone := changes[2]
		assert.Equal(t, "src/gone.js", gone.Path)
		assert.Empty(t, gone.ChangedLines)
	})
}

func TestChangedFile_ContainsLine(t *testing.T) {
	f := ChangedFile{Path: "a.js", ChangedLines: []int{3, 7}}
	assert.True(t, f.ContainsLine(3))
	assert.True(t, f.ContainsLine(7))
	assert.False(t, f.ContainsLine(4))
}
